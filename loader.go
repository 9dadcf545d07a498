package content11

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Header date values are tried against these layouts in order. The
// filename stamp uses its own configured format.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var yamlDelimiter = []byte("---")

// metadata is the wire form of a Document header, shared between the YAML
// front matter block and the plain key/value header.
type metadata struct {
	Title     string   `yaml:"title,omitempty"`
	Date      string   `yaml:"date,omitempty"`
	Permalink string   `yaml:"permalink,omitempty"`
	Slug      string   `yaml:"slug,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`
	Blurb     string   `yaml:"blurb,omitempty"`
	Draft     bool     `yaml:"draft,omitempty"`
	static    bool
}

// ReadDocument parses one source file into a Document. The file is either
// a YAML front matter block delimited by --- followed by the body, or the
// plain form: "key: value" header lines up to the first empty line.
func ReadDocument(path, dateStampFormat string) (*Document, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var meta metadata
	var body []byte
	if bytes.HasPrefix(fileContent, yamlDelimiter) {
		body, err = frontmatter.Parse(bytes.NewReader(fileContent), &meta)
		if err != nil {
			return nil, metadataErrorf(path, "header", "bad front matter block: %v", err)
		}
	} else {
		body, err = parsePlainHeader(path, fileContent, &meta)
		if err != nil {
			return nil, err
		}
	}

	return newDocument(path, &meta, body, dateStampFormat)
}

// parsePlainHeader fills meta from header lines up to the first empty line
// and returns the remaining body.
func parsePlainHeader(path string, fileContent []byte, meta *metadata) ([]byte, error) {
	firstEmptyLine := bytes.Index(fileContent, []byte("\n\n"))
	sepLen := 2
	if firstEmptyLine == -1 {
		firstEmptyLine = bytes.Index(fileContent, []byte("\r\n\r\n"))
		sepLen = 4

		if firstEmptyLine == -1 {
			return nil, metadataErrorf(path, "header", "no empty line after the header")
		}
	}

	headerLines := bytes.Split(fileContent[:firstEmptyLine], []byte("\n"))
	for _, l := range headerLines {
		colon := bytes.Index(l, []byte(":"))
		if colon == -1 {
			return nil, metadataErrorf(path, "header", "invalid header line: %s", l)
		}

		key, val := string(l[:colon]), string(bytes.TrimSpace(l[colon+1:]))
		switch key {
		case "title":
			meta.Title = val
		case "date":
			meta.Date = val
		case "permalink":
			meta.Permalink = val
		case "slug":
			meta.Slug = val
		case "blurb":
			meta.Blurb = val
		case "tags":
			for _, t := range strings.Split(val, ",") {
				if t = strings.TrimSpace(t); t != "" {
					meta.Tags = append(meta.Tags, t)
				}
			}
		case "flags":
			for _, f := range strings.Split(val, ",") {
				switch strings.TrimSpace(f) {
				case "draft":
					meta.Draft = true
				case "static":
					meta.static = true
				}
			}
		default:
			slog.Warn("skipping unknown header field", "field", key, "document", path)
		}
	}

	return fileContent[firstEmptyLine+sepLen:], nil
}

func newDocument(path string, meta *metadata, body []byte, dateStampFormat string) (*Document, error) {
	fileBaseName := filepath.Base(path)
	fileBaseName = fileBaseName[:len(fileBaseName)-len(filepath.Ext(fileBaseName))]

	d := &Document{
		Title: meta.Title,
		Blurb: meta.Blurb,
		Path:  path,
		Body:  body,
		Draft: meta.Draft,
		Tags:  make([]Tag, 0, len(meta.Tags)),
	}
	for _, t := range meta.Tags {
		if t = strings.TrimSpace(t); t != "" {
			d.Tags = append(d.Tags, Tag(t))
		}
	}

	if meta.Permalink != "" || meta.static {
		d.Kind = Page
	}

	if meta.Date != "" {
		date, err := parseHeaderDate(meta.Date)
		if err != nil {
			return nil, metadataErrorf(path, "date", "cannot parse %q: use YYYY-MM-DD or RFC 3339", meta.Date)
		}
		d.Date = date
	} else if d.Kind == Post {
		date, err := extractDateFromFilename(fileBaseName, dateStampFormat)
		if err != nil {
			return nil, metadataErrorf(path, "date", "no date header and no filename stamp: %v", err)
		}
		d.Date = *date
	}

	switch {
	case meta.Slug != "":
		d.Slug = meta.Slug
	case meta.Permalink != "":
		d.Slug = slugFromPermalink(meta.Permalink)
	default:
		d.Slug = fileBaseName
	}
	if d.Slug == "" {
		return nil, metadataErrorf(path, "slug", "empty slug")
	}
	if d.Kind == Page && meta.Permalink == "" {
		meta.Permalink = "/" + d.Slug + "/"
	}
	d.Permalink = meta.Permalink

	if d.Title == "" {
		d.Title = titleFromSlug(d.Slug, dateStampFormat)
	}

	return d, nil
}

func parseHeaderDate(val string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, val); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matched %q", val)
}

func extractDateFromFilename(filename string, dateStampFormat string) (*time.Time, error) {
	if len(filename) < len(dateStampFormat)+1 {
		return nil, fmt.Errorf("skipping %v, name too short", filename)
	}

	dateStr := filename[:len(dateStampFormat)]
	date, err := time.Parse(dateStampFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date stamp in %v", filename)
	}
	return &date, nil
}

// slugFromPermalink turns "/about/" into "about" and "/writing/go/" into
// "writing-go".
func slugFromPermalink(permalink string) string {
	return strings.ReplaceAll(strings.Trim(permalink, "/"), "/", "-")
}

var titleCaser = cases.Title(language.English)

// titleFromSlug derives a display title when the header carries none:
// "2015-01-06-swift-enums" becomes "Swift Enums".
func titleFromSlug(slug, dateStampFormat string) string {
	if len(slug) > len(dateStampFormat)+1 {
		if _, err := time.Parse(dateStampFormat, slug[:len(dateStampFormat)]); err == nil {
			slug = slug[len(dateStampFormat)+1:]
		}
	}
	slug = strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return titleCaser.String(slug)
}

// FrontMatter re-serializes the document's metadata as a YAML front matter
// block. Loading a document and serializing it again preserves the header
// field values.
func (d *Document) FrontMatter() ([]byte, error) {
	meta := metadata{
		Title:     d.Title,
		Permalink: d.Permalink,
		Blurb:     d.Blurb,
		Draft:     d.Draft,
	}
	if !d.Date.IsZero() {
		if d.Date.Equal(d.Date.Truncate(24 * time.Hour)) {
			meta.Date = d.Date.Format("2006-01-02")
		} else {
			meta.Date = d.Date.Format(time.RFC3339)
		}
	}
	if d.Slug != slugFromPermalink(d.Permalink) {
		meta.Slug = d.Slug
	}
	for _, t := range d.Tags {
		meta.Tags = append(meta.Tags, t.String())
	}

	header, err := yaml.Marshal(&meta)
	if err != nil {
		return nil, err
	}

	b := new(bytes.Buffer)
	b.Write(yamlDelimiter)
	b.WriteByte('\n')
	b.Write(header)
	b.Write(yamlDelimiter)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

package content11

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/otiai10/copy"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Site is the aggregate of all documents under one configuration: the
// scanned writing directory, loaded and indexed. Everything in it is fixed
// once ReadSite returns; a rebuild means a fresh ReadSite.
type Site struct {
	collection *Collection
	conf       *SiteConf
}

// ReadSite discovers the source files under conf.WritingDir, loads them
// concurrently, and indexes them into a Collection. Drafts are dropped
// unless drafts is set. The first load error aborts the build; indexing
// itself is serial, which is where slug uniqueness is enforced.
func ReadSite(conf *SiteConf, drafts bool) (*Site, error) {
	files, err := findSourceFiles(conf.WritingDir, conf.WritingFileExtension)
	if err != nil {
		return nil, err
	}

	loaded := make(documents, 0, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	var mu sync.Mutex

	for _, f := range files {
		f := f
		g.Go(func() error {
			d, err := ReadDocument(f, conf.WritingFileDateStampFormat)
			if err != nil {
				return err
			}
			if d.Draft && !drafts {
				return nil
			}
			mu.Lock()
			loaded = append(loaded, d)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	collection, err := NewCollection(loaded)
	if err != nil {
		return nil, err
	}

	return &Site{collection: collection, conf: conf}, nil
}

func (s *Site) Collection() *Collection { return s.collection }

func (s *Site) Conf() *SiteConf { return s.conf }

// FrequentTags returns the configured number of most used tags, counting
// only documents recent enough per MaxAgeForFrequentTagsInMonths.
func (s *Site) FrequentTags() []Tag {
	maxAgeMonths := s.conf.MaxAgeForFrequentTagsInMonths
	if maxAgeMonths == 0 {
		maxAgeMonths = 24
	}

	minDate := time.Now().AddDate(0, -maxAgeMonths, 0)
	recent := documents(s.collection.Posts()).pruneOlderThan(minDate)
	return groupByTag(recent).frequentTags(
		s.conf.NumFrequentTags,
		s.conf.MinDocsForFrequentTags)
}

// manifest is the serialized shape of a site: every document's metadata
// plus the tag index, in collection order. It is what an external renderer
// consumes; bodies stay in the source files.
type manifest struct {
	SiteTitle string                 `yaml:"siteTitle,omitempty"`
	BaseURL   string                 `yaml:"baseURL,omitempty"`
	Author    string                 `yaml:"author,omitempty"`
	Documents []manifestDocument     `yaml:"documents"`
	Tags      map[string]manifestTag `yaml:"tags,omitempty"`
}

// manifestTag is one tag index entry, keyed in the manifest by Tag.ID so
// the key is usable in a URL. Earliest and Latest span the tag's dated
// documents.
type manifestTag struct {
	Name     string   `yaml:"name"`
	Slugs    []string `yaml:"slugs"`
	Earliest string   `yaml:"earliest,omitempty"`
	Latest   string   `yaml:"latest,omitempty"`
}

type manifestDocument struct {
	Slug      string   `yaml:"slug"`
	Title     string   `yaml:"title"`
	Kind      string   `yaml:"kind"`
	Date      string   `yaml:"date,omitempty"`
	Permalink string   `yaml:"permalink,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`
	Blurb     string   `yaml:"blurb,omitempty"`
	Draft     bool     `yaml:"draft,omitempty"`
	Path      string   `yaml:"path"`
}

// Manifest renders the site index as YAML.
func (s *Site) Manifest() ([]byte, error) {
	m := manifest{
		SiteTitle: s.conf.SiteTitle,
		BaseURL:   s.conf.BaseURL,
		Author:    s.conf.Author,
		Documents: make([]manifestDocument, 0, s.collection.Len()),
		Tags:      make(map[string]manifestTag),
	}

	for _, d := range s.collection.ListAll() {
		md := manifestDocument{
			Slug:      d.Slug,
			Title:     d.Title,
			Kind:      d.Kind.String(),
			Permalink: d.Permalink,
			Blurb:     d.Blurb,
			Draft:     d.Draft,
			Path:      d.Path,
		}
		if !d.Date.IsZero() {
			md.Date = d.Date.Format(time.RFC3339)
		}
		for _, t := range d.Tags {
			md.Tags = append(md.Tags, t.String())
		}
		m.Documents = append(m.Documents, md)
	}

	for _, grp := range s.collection.byTagOrdered {
		mt := manifestTag{Name: grp.Tag.String()}
		for _, d := range grp.Docs {
			mt.Slugs = append(mt.Slugs, d.Slug)
		}
		if latest := grp.Docs.latestDate(); !latest.IsZero() {
			mt.Earliest = grp.EarliestDateFormatted()
			mt.Latest = grp.LatestDateFormatted()
		}
		m.Tags[grp.Tag.ID()] = mt
	}

	return yaml.Marshal(&m)
}

func (s *Site) WriteManifest(path string) error {
	out, err := s.Manifest()
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, os.FileMode(0664))
}

// Bundle writes everything an external renderer needs into dir: the
// manifest, the writing tree, and the static files tree. Nothing is
// rendered; the bundle is verbatim sources plus the index.
func (s *Site) Bundle(dir string) error {
	if err := os.MkdirAll(dir, os.FileMode(0775)); err != nil {
		return err
	}

	if err := s.WriteManifest(filepath.Join(dir, "manifest.yaml")); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	if err := copy.Copy(s.conf.WritingDir, filepath.Join(dir, "writing")); err != nil {
		return fmt.Errorf("copying writing dir: %w", err)
	}

	if _, err := os.Stat(s.conf.StaticFilesDir); err == nil {
		dest := filepath.Join(dir, filepath.Base(s.conf.StaticFilesDir))
		if err := copy.Copy(s.conf.StaticFilesDir, dest); err != nil {
			return fmt.Errorf("copying static files: %w", err)
		}
	}

	return nil
}

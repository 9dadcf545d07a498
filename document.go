// Package content11 is the content model behind a static site: documents
// with a metadata header, indexed into a collection by slug, tag, and date.
// It loads and validates writing, it does not render it. Rendering is the
// job of whatever generator consumes the collection.
//
// Thomas Kappler <http://www.thomaskappler.net/>
//
// This code is under BSD license. See license-bsd.txt.
package content11

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Kind distinguishes dated posts from permalink-addressed static pages.
type Kind int

const (
	Post Kind = iota
	Page
)

func (k Kind) String() string {
	if k == Page {
		return "page"
	}
	return "post"
}

// A Document is one authored unit, post or page. It is immutable once
// loaded; the loader is the only place that writes these fields.
type Document struct {
	Title, Slug, Blurb string
	Kind               Kind
	Date               time.Time
	Tags               []Tag
	// Permalink is the page's URL path as authored, e.g. "/about/".
	// Posts leave it empty; their slug addresses them.
	Permalink string
	Path      string
	Body      []byte
	Draft     bool
}

func (d *Document) IsPost() bool { return d.Kind == Post }

func (d *Document) FormatDate() string {
	return formatDate(d.Date)
}

func (d *Document) FormatDateShort() string {
	return formatDateShort(d.Date)
}

func (d *Document) HasTag(t Tag) bool {
	return slices.Contains(d.Tags, t)
}

func (d *Document) String() string {
	b := new(bytes.Buffer)
	b.WriteString("title: ")
	b.WriteString(d.Title)
	b.WriteString("\nslug: ")
	b.WriteString(d.Slug)
	b.WriteString("\ndate: ")
	b.WriteString(d.Date.String())
	b.WriteString("\nblurb: ")
	b.WriteString(d.Blurb)
	b.WriteString("\ntags: ")
	fmt.Fprintln(b, d.Tags)

	body := d.Body
	if len(body) > 200 {
		// Copy the prefix; appending to a slice of Body would write the
		// dots into the loaded body itself.
		body = append(append([]byte(nil), body[:200]...), '.', '.', '.')
	}
	b.WriteString("\nbody: ")
	b.Write(body)

	return b.String()
}

type documents []*Document

// sortByDate orders posts newest first, pages after in slug order. Among
// equal dates the slug breaks the tie so the order is stable across runs.
func (ds documents) sortByDate() {
	slices.SortFunc(ds, func(a, b *Document) int {
		if a.Kind != b.Kind {
			if a.IsPost() {
				return -1
			}
			return 1
		}
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Slug, b.Slug)
	})
}

func (ds documents) earliestDate() time.Time {
	t := time.Now()
	for _, d := range ds {
		if !d.Date.IsZero() && d.Date.Before(t) {
			t = d.Date
		}
	}
	return t
}

func (ds documents) latestDate() time.Time {
	var t time.Time
	for _, d := range ds {
		if d.Date.After(t) {
			t = d.Date
		}
	}
	return t
}

func (ds documents) pruneOlderThan(from time.Time) documents {
	pruned := make(documents, 0, len(ds))
	for _, d := range ds {
		if !d.Date.Before(from) {
			pruned = append(pruned, d)
		}
	}
	return pruned
}

func formatDate(d time.Time) string {
	return d.Format("January 2, 2006")
}

func formatDateShort(d time.Time) string {
	return d.Format("Jan 2, 2006")
}

package content11

// A Collection is an indexed, de-duplicated set of Documents: posts ordered
// newest first, then pages, with O(1) lookup by slug and by tag. It is the
// whole contract a renderer gets; build one with NewCollection and treat it
// as read-only afterwards.
type Collection struct {
	ordered      documents
	bySlug       map[string]*Document
	byTag        map[Tag]documents
	byTagOrdered docsByTag
	numPosts     int
}

// NewCollection indexes docs. Posts come first, newest first; pages follow
// in slug order. A duplicate slug fails the whole collection with a
// CollisionError naming both source files.
func NewCollection(docs []*Document) (*Collection, error) {
	c := &Collection{
		ordered: make(documents, 0, len(docs)),
		bySlug:  make(map[string]*Document, len(docs)),
		byTag:   make(map[Tag]documents),
	}

	for _, d := range docs {
		if err := c.insert(d); err != nil {
			return nil, err
		}
	}

	c.ordered.sortByDate()
	c.byTagOrdered = groupByTag(c.ordered)
	for _, grp := range c.byTagOrdered {
		c.byTag[grp.Tag] = grp.Docs
	}

	return c, nil
}

// insert is the one place a document enters the collection; the slug
// uniqueness check lives here so a parallel loader only has to serialize
// this step.
func (c *Collection) insert(d *Document) error {
	if prev, ok := c.bySlug[d.Slug]; ok {
		return &CollisionError{Slug: d.Slug, FirstPath: prev.Path, SecondPath: d.Path}
	}
	c.bySlug[d.Slug] = d
	c.ordered = append(c.ordered, d)
	if d.IsPost() {
		c.numPosts++
	}
	return nil
}

// ListAll returns every document, posts newest first, pages after.
func (c *Collection) ListAll() []*Document {
	return c.ordered
}

// Posts returns the dated documents, newest first.
func (c *Collection) Posts() []*Document {
	return c.ordered[:c.numPosts]
}

// Pages returns the permalink-addressed documents.
func (c *Collection) Pages() []*Document {
	return c.ordered[c.numPosts:]
}

// BySlug looks up one document by its slug.
func (c *Collection) BySlug(slug string) (*Document, bool) {
	d, ok := c.bySlug[slug]
	return d, ok
}

// ByTag returns the documents carrying the tag, newest first. The result
// is empty, never nil, for an unknown tag.
func (c *Collection) ByTag(t Tag) []*Document {
	docs, ok := c.byTag[t]
	if !ok {
		return documents{}
	}
	return docs
}

// Tags returns every tag with its documents, ordered by document count,
// then by newest document.
func (c *Collection) Tags() []Tag {
	tags := make([]Tag, 0, len(c.byTagOrdered))
	for _, grp := range c.byTagOrdered {
		tags = append(tags, grp.Tag)
	}
	return tags
}

// FrequentTags returns the n most used tags carrying at least minDocs
// documents each.
func (c *Collection) FrequentTags(n, minDocs int) []Tag {
	return c.byTagOrdered.frequentTags(n, minDocs)
}

func (c *Collection) Len() int { return len(c.ordered) }

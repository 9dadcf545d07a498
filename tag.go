package content11

import (
	"cmp"
	"slices"
	"strings"
)

// A Tag is a free-text label on a Document. Matching is exact; tags are
// trimmed on load but not case-folded.
type Tag string

func (t Tag) String() string { return string(t) }

func (t Tag) ID() string { return strings.ReplaceAll(t.String(), " ", "_") }

type tagWithDocs struct {
	Tag  Tag
	Docs documents
}

func (t tagWithDocs) EarliestDateFormatted() string {
	return formatDateShort(t.Docs.earliestDate())
}

func (t tagWithDocs) LatestDateFormatted() string {
	return formatDateShort(t.Docs.latestDate())
}

// Documents grouped by tag. Create using groupByTag, which sorts by number
// of documents per tag, then by newest document.
type docsByTag []tagWithDocs

func (dt *docsByTag) addDoc(t Tag, d *Document) {
	for i, grp := range *dt {
		if grp.Tag == t {
			grp.Docs = append(grp.Docs, d)
			(*dt)[i] = grp
			return
		}
	}

	newGroup := tagWithDocs{t, make(documents, 1, 10)}
	newGroup.Docs[0] = d
	*dt = append(*dt, newGroup)
}

// Return the most frequent n tags carrying at least minDocs documents each.
func (dt docsByTag) frequentTags(n, minDocs int) []Tag {
	frequent := make([]Tag, 0, n)
	for i, grp := range dt {
		if i == n || len(grp.Docs) < minDocs {
			break
		}
		frequent = append(frequent, grp.Tag)
	}

	return frequent
}

func groupByTag(docs documents) docsByTag {
	byTag := make(docsByTag, 0, 20)

	for _, d := range docs {
		for _, t := range d.Tags {
			byTag.addDoc(t, d)
		}
	}

	// Order tags by the number of documents in them, then by newest document.
	slices.SortFunc(byTag, func(a, b tagWithDocs) int {
		if c := cmp.Compare(len(b.Docs), len(a.Docs)); c != 0 {
			return c
		}
		return b.Docs.latestDate().Compare(a.Docs.latestDate())
	})

	return byTag
}

package content11

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testPost(slug string, date time.Time, tags ...Tag) *Document {
	return &Document{
		Title: slug,
		Slug:  slug,
		Kind:  Post,
		Date:  date,
		Tags:  tags,
		Path:  slug + ".text",
	}
}

func testPage(slug, permalink string) *Document {
	return &Document{
		Title:     slug,
		Slug:      slug,
		Kind:      Page,
		Permalink: permalink,
		Path:      slug + ".text",
	}
}

func TestListAllOrdersPostsByDateDescending(t *testing.T) {
	c, err := NewCollection([]*Document{
		testPost("swift-enums", day(2015, 1, 6)),
		testPost("swift-pattern-matching", day(2015, 9, 29)),
		testPost("swift-generics", day(2014, 12, 24)),
	})
	require.NoError(t, err)

	all := c.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "swift-pattern-matching", all[0].Slug)
	assert.Equal(t, "swift-enums", all[1].Slug)
	assert.Equal(t, "swift-generics", all[2].Slug)

	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Date.After(all[i-1].Date),
			"dates must be non-increasing: %v before %v", all[i-1].Date, all[i].Date)
	}
}

func TestPagesComeAfterPosts(t *testing.T) {
	c, err := NewCollection([]*Document{
		testPage("about", "/about/"),
		testPost("swift-enums", day(2015, 1, 6)),
		testPage("projects", "/projects/"),
	})
	require.NoError(t, err)

	assert.Len(t, c.Posts(), 1)
	assert.Len(t, c.Pages(), 2)
	assert.Equal(t, "swift-enums", c.ListAll()[0].Slug)
}

func TestDuplicateSlugIsCollisionError(t *testing.T) {
	a := testPage("about", "/about/")
	a.Path = "writing/about.text"
	b := testPage("about", "/about/")
	b.Path = "writing/old/about.text"

	_, err := NewCollection([]*Document{a, b})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCollision)

	var collErr *CollisionError
	require.ErrorAs(t, err, &collErr)
	assert.Equal(t, "about", collErr.Slug)
	assert.Equal(t, "writing/about.text", collErr.FirstPath)
	assert.Equal(t, "writing/old/about.text", collErr.SecondPath)
}

func TestDuplicateSlugAcrossKindsIsCollisionError(t *testing.T) {
	_, err := NewCollection([]*Document{
		testPost("about", day(2015, 1, 6)),
		testPage("about", "/about/"),
	})
	assert.ErrorIs(t, err, ErrCollision)
}

func TestBySlug(t *testing.T) {
	c, err := NewCollection([]*Document{
		testPost("swift-enums", day(2015, 1, 6)),
	})
	require.NoError(t, err)

	d, ok := c.BySlug("swift-enums")
	require.True(t, ok)
	assert.Equal(t, "swift-enums", d.Slug)

	_, ok = c.BySlug("swift-sequences")
	assert.False(t, ok)
}

func TestByTagReturnsExactlyTheTaggedDocuments(t *testing.T) {
	c, err := NewCollection([]*Document{
		testPost("swift-enums", day(2015, 1, 6), "swift"),
		testPost("swift-generics", day(2014, 12, 24), "swift", "generics"),
		testPost("go-interfaces", day(2015, 3, 1), "go"),
		testPage("about", "/about/"),
	})
	require.NoError(t, err)

	swift := c.ByTag("swift")
	require.Len(t, swift, 2)
	for _, d := range swift {
		assert.True(t, d.HasTag("swift"))
	}
	assert.Equal(t, "swift-enums", swift[0].Slug, "tag results keep collection order")

	assert.Len(t, c.ByTag("generics"), 1)
	assert.Empty(t, c.ByTag("rust"))
	assert.NotNil(t, c.ByTag("rust"))
}

func TestTagsOrderedByFrequencyThenRecency(t *testing.T) {
	c, err := NewCollection([]*Document{
		testPost("a", day(2015, 1, 1), "swift"),
		testPost("b", day(2015, 2, 1), "swift", "patterns"),
		testPost("c", day(2015, 3, 1), "swift", "generics"),
		testPost("d", day(2015, 4, 1), "generics"),
	})
	require.NoError(t, err)

	tags := c.Tags()
	require.Len(t, tags, 3)
	assert.Equal(t, Tag("swift"), tags[0])
	assert.Equal(t, Tag("generics"), tags[1], "newer of the two-doc tags comes first")
	assert.Equal(t, Tag("patterns"), tags[2])
}

func TestFrequentTags(t *testing.T) {
	c, err := NewCollection([]*Document{
		testPost("a", day(2015, 1, 1), "swift"),
		testPost("b", day(2015, 2, 1), "swift"),
		testPost("c", day(2015, 3, 1), "patterns"),
	})
	require.NoError(t, err)

	assert.Equal(t, []Tag{"swift"}, c.FrequentTags(5, 2))
	assert.Empty(t, c.FrequentTags(5, 4))
}

func TestEmptyCollection(t *testing.T) {
	c, err := NewCollection(nil)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.ListAll())
	assert.Empty(t, c.Tags())
}

func TestTagID(t *testing.T) {
	assert.Equal(t, "type_systems", Tag("type systems").ID())
	assert.Equal(t, "swift", Tag("swift").ID())
}

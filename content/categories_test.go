package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesCountsIgnoreCase(t *testing.T) {
	posts := fixturePosts()
	got := Categories(posts)

	assert.Equal(t, []CategoryCount{
		{Name: "Fighting", Count: 1},
		{Name: "Science", Count: 1},
		{Name: "fitness", Count: 2},
		{Name: "Engineering", Count: 1},
	}, got)

	for _, c := range got {
		n := 0
		for _, p := range posts {
			if strings.EqualFold(p.Category, c.Name) {
				n++
			}
		}
		assert.Equal(t, n, c.Count, c.Name)
		assert.Len(t, InCategory(posts, c.Name, SortDate), c.Count)
	}
}

func TestCategoriesEmpty(t *testing.T) {
	assert.Empty(t, Categories(nil))
}

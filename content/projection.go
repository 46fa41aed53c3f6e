package content

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// SortKey selects the ordering of a projection.
type SortKey string

const (
	SortDate     SortKey = "date"
	SortTitle    SortKey = "title"
	SortCategory SortKey = "category"
	SortReadTime SortKey = "readTime"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// ParseSortKey maps a user supplied key to a SortKey. The empty string means SortDate.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortDate, nil
	case SortDate, SortTitle, SortCategory, SortReadTime:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

var readTimePrefix = regexp.MustCompile(`^\s*([+-]?\d+)`)

// ReadTimeMinutes extracts the leading integer of a read time such as
// "15 min read". ok is false when the string does not start with a number.
func ReadTimeMinutes(readTime string) (minutes int, ok bool) {
	m := readTimePrefix.FindStringSubmatch(readTime)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// readTimeRank orders unparsable read times after every parsable one.
func readTimeRank(readTime string) int {
	if n, ok := ReadTimeMinutes(readTime); ok {
		return n
	}
	return math.MaxInt
}

// Matches reports whether query occurs, ignoring case, in the title, the
// excerpt or any tag. The empty query matches everything.
func Matches(p Post, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Excerpt), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// less returns the strict ordering for key, or nil when key imposes none.
func less(key SortKey) func(a, b *Post) bool {
	switch key {
	case SortDate:
		return func(a, b *Post) bool { return a.Date.After(b.Date) }
	case SortTitle:
		return func(a, b *Post) bool { return a.Title < b.Title }
	case SortCategory:
		return func(a, b *Post) bool { return a.Category < b.Category }
	case SortReadTime:
		return func(a, b *Post) bool { return readTimeRank(a.ReadTime) < readTimeRank(b.ReadTime) }
	}
	return nil
}

func sortStable(posts []Post, key SortKey) {
	lessFn := less(key)
	if lessFn == nil {
		return
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return lessFn(&posts[i], &posts[j])
	})
}

// Project filters posts by query and orders the result by key. Posts with
// equal keys keep their collection order. The input slice is not modified.
func Project(posts []Post, query string, key SortKey) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if Matches(p, query) {
			out = append(out, p.clone())
		}
	}
	sortStable(out, key)
	return out
}

// InCategory returns the posts whose category equals category ignoring case,
// ordered by key. SortCategory leaves collection order untouched since every
// post in the result shares the category. An unknown category yields an empty
// slice.
func InCategory(posts []Post, category string, key SortKey) []Post {
	out := make([]Post, 0)
	for _, p := range posts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p.clone())
		}
	}
	if key != SortCategory {
		sortStable(out, key)
	}
	return out
}

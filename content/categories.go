package content

import "strings"

// CategoryCount is a distinct category label and the number of posts filed under it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Categories groups posts by category ignoring case. Each group is labelled
// with the spelling it first appears with, and groups keep first-appearance order.
func Categories(posts []Post) []CategoryCount {
	out := make([]CategoryCount, 0)
	index := make(map[string]int)
	for _, p := range posts {
		key := strings.ToLower(p.Category)
		if i, ok := index[key]; ok {
			out[i].Count++
			continue
		}
		index[key] = len(out)
		out = append(out, CategoryCount{Name: p.Category, Count: 1})
	}
	return out
}

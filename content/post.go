// Package content holds the read-only post collection behind the page views
// and the projections derived from it.
package content

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Post is a single blog article.
type Post struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Excerpt  string    `yaml:"excerpt" json:"excerpt"`
	Content  string    `yaml:"content" json:"content"`
	Date     time.Time `yaml:"date" json:"date"`
	Author   string    `yaml:"author" json:"author"`
	Category string    `yaml:"category" json:"category"`
	ReadTime string    `yaml:"readTime" json:"readTime"`
	Tags     []string  `yaml:"tags" json:"tags"`
	ImageURL string    `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Validate reports a missing required field. Only the image is optional.
func (p Post) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Excerpt, validation.Required),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.Date, validation.Required),
		validation.Field(&p.Author, validation.Required),
		validation.Field(&p.Category, validation.Required),
		validation.Field(&p.ReadTime, validation.Required),
		validation.Field(&p.Tags, validation.Required, validation.Each(validation.Required)),
	)
}

func (p Post) clone() Post {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

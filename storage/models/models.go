package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Post struct {
	Id       string    `json:"id"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Author   string    `json:"author"`
	Category string    `json:"category"`
	ReadTime string    `json:"readTime"`
	Tags     []string  `json:"tags"`
	ImageUrl string    `json:"imageUrl,omitempty"`
}

// Validate checks the fields a client must supply when creating a post.
func (p *Post) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Excerpt, validation.Required),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.Author, validation.Required),
		validation.Field(&p.Category, validation.Required),
		validation.Field(&p.ReadTime, validation.Required),
	)
}

// Normalize fills the defaults applied to every newly created post.
func (p *Post) Normalize(now time.Time) {
	if p.Date.IsZero() {
		p.Date = now.UTC()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

package models

import "time"

// BlogStatus is the publication state of a post.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

func (s BlogStatus) Valid() bool {
	return s == BlogDraft || s == BlogPublished
}

// BlogPost is an article on the site. Content is the rich HTML payload
// produced by the external editor and is opaque here.
type BlogPost struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug"`
	Excerpt     string     `json:"excerpt,omitempty" db:"excerpt"`
	Content     string     `json:"content" db:"content"`
	CoverImage  string     `json:"coverImage,omitempty" db:"cover_image"`
	Author      string     `json:"author" db:"author"`
	Status      BlogStatus `json:"status" db:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// BlogPostInput is the validated payload for creating or updating a
// post. PublishedAt is never part of the input: it is stamped by the
// service on the first draft to published transition and untouched
// afterwards.
type BlogPostInput struct {
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Excerpt    string     `json:"excerpt"`
	Content    string     `json:"content"`
	CoverImage string     `json:"coverImage"`
	Author     string     `json:"author"`
	Status     BlogStatus `json:"status"`
}

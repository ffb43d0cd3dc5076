package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published article. The body holds rich content (Markdown or
// raw HTML) rendered on the public post page.
type Post struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Summary   string     `json:"summary"`
	Body      string     `json:"body"`
	CategoryID *uuid.UUID `json:"category_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Category is the populated snapshot of the referenced category.
	// Nil when the reference was cleared by a category deletion, or on
	// read paths that do not populate.
	Category *Category `json:"category,omitempty"`
}

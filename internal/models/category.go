package models

import "errors"

// Category groups articles. The id is the slug derived from the title at
// creation time; articles reference it via their categoryId.
type Category struct {
	ID          string `json:"id"          db:"id"`
	Title       string `json:"title"       db:"title"`
	Description string `json:"description" db:"description"`
}

// CategoryCreateRequest is the payload for category creation.
type CategoryCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks required fields.
func (r *CategoryCreateRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

// NewCategory builds a Category from a create request, deriving the id from
// the title.
func (r *CategoryCreateRequest) NewCategory() *Category {
	return &Category{
		ID:          Slugify(r.Title),
		Title:       r.Title,
		Description: r.Description,
	}
}

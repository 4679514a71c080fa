package models

import "errors"

// Tag is a free-form label shared by many articles. The id is the slug derived
// from the title at creation time.
type Tag struct {
	ID          string `json:"id"          db:"id"`
	Title       string `json:"title"       db:"title"`
	Description string `json:"description" db:"description"`
}

// TagCreateRequest is the payload for explicit tag creation.
type TagCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks required fields.
func (r *TagCreateRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// NewTag builds a Tag from a create request, deriving the id from the title.
// Description defaults to the empty string when omitted.
func (r *TagCreateRequest) NewTag() *Tag {
	return &Tag{
		ID:          Slugify(r.Title),
		Title:       r.Title,
		Description: r.Description,
	}
}

// DedupeTags returns tags with duplicate ids removed, preserving the order of
// first occurrence. An article's tag set never holds the same tag twice.
func DedupeTags(tags []Tag) []Tag {
	seen := make(map[string]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}

package models

import (
	"errors"
	"fmt"
)

// Article is a short markdown document belonging to one category and carrying
// zero or more tags. The id is assigned by the store and immutable.
type Article struct {
	ID          int64  `json:"id"          db:"id"`
	Title       string `json:"title"       db:"title"`
	Description string `json:"description" db:"description"`
	Body        string `json:"body"        db:"body"`
	CategoryID  string `json:"categoryId"  db:"category_id"`
	Tags        []Tag  `json:"tags"`
}

// ArticleWriteRequest is the payload shared by article create and update.
// Tag descriptors are trusted to carry ids consistent with their titles; the
// tag upsert protocol inserts them verbatim without re-deriving the slug.
type ArticleWriteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	CategoryID  string `json:"categoryId"`
	Tags        []Tag  `json:"tags"`
}

// Validate checks required fields. All four scalar fields and the tags list
// must be present; an empty tags list is valid, a missing one is not.
func (r *ArticleWriteRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	if r.Body == "" {
		return errors.New("body is required")
	}
	if r.CategoryID == "" {
		return errors.New("categoryId is required")
	}
	if r.Tags == nil {
		return errors.New("tags is required")
	}
	for i, t := range r.Tags {
		if t.ID == "" {
			return fmt.Errorf("tags[%d].id is required", i)
		}
		if t.Title == "" {
			return fmt.Errorf("tags[%d].title is required", i)
		}
	}
	return nil
}

// NewArticle builds an Article from a write request. The tag set is deduped
// by id; the store assigns the id on insert.
func (r *ArticleWriteRequest) NewArticle() *Article {
	return &Article{
		Title:       r.Title,
		Description: r.Description,
		Body:        r.Body,
		CategoryID:  r.CategoryID,
		Tags:        DedupeTags(r.Tags),
	}
}

// Pagination defaults for article listing.
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// ArticleListFilter holds filter and pagination params for article listing.
// A zero CategoryID or empty TagIDs means no restriction on that axis. An
// article matches TagIDs when its tag set intersects the given ids.
type ArticleListFilter struct {
	CategoryID string
	TagIDs     []string
	Page       int
	Limit      int
}

// Offset returns the number of rows to skip for the current page.
func (f ArticleListFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = DefaultPage
	}
	return (page - 1) * f.Take()
}

// Take returns the page size, falling back to the default.
func (f ArticleListFilter) Take() int {
	if f.Limit <= 0 {
		return DefaultLimit
	}
	return f.Limit
}

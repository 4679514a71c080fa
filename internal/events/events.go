// Package events publishes article lifecycle events to a Redis stream so
// downstream consumers (search indexers, cache invalidators) can react to
// content changes without polling the API.
package events

import (
	"time"

	"github.com/google/uuid"
)

// StreamName is the Redis stream for article events.
const StreamName = "article-events"

// EventType identifies the kind of article event.
type EventType string

const (
	// ArticleCreated indicates a new article was created.
	ArticleCreated EventType = "ARTICLE_CREATED"
	// ArticleUpdated indicates an existing article was modified.
	ArticleUpdated EventType = "ARTICLE_UPDATED"
	// ArticleDeleted indicates an article was deleted.
	ArticleDeleted EventType = "ARTICLE_DELETED"
)

// ArticleEvent is the envelope for all article events.
type ArticleEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	EventType  EventType `json:"event_type"`
	ArticleID  int64     `json:"article_id"`
	Title      string    `json:"title"`
	CategoryID string    `json:"category_id"`
	TagIDs     []string  `json:"tag_ids,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

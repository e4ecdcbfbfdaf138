package tracking

import (
	"net/http"

	"github.com/matst80/slask-listing/pkg/types"
)

const (
	EventSession uint16 = iota
	EventQuery
	EventOwnerToggle
	EventCategoryToggle
	EventCategoryClear
	EventSort
	EventReset
)

// Tracking receives the user actions of a listing session. A nil Tracking
// is valid everywhere and means tracking is disabled.
type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackQuery(sessionId string, query string, resultLen int)
	TrackOwnerToggle(sessionId string, id types.UserId)
	TrackCategoryToggle(sessionId string, id types.CategoryId)
	TrackCategoryClear(sessionId string)
	TrackSort(sessionId string, column types.SortColumn, reversed bool)
	TrackReset(sessionId string)
	Close() error
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	EventId   string `json:"event_id,omitempty"`
	Event     uint16 `json:"event"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

type QueryEvent struct {
	*BaseEvent
	Query     string `json:"query"`
	ResultLen int    `json:"results"`
}

type ToggleEvent struct {
	*BaseEvent
	Id uint `json:"id"`
}

type SortEvent struct {
	*BaseEvent
	Column   string `json:"column"`
	Reversed bool   `json:"reversed"`
}

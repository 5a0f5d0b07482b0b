package service

import (
	"context"
	"time"
)

// ResultRecordedEvent is emitted after a result has been stored.
type ResultRecordedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ResultID   int64     `json:"result_id"`
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username"`
	X          int       `json:"x"`
	Y          float64   `json:"y"`
	R          int       `json:"r"`
	Hit        bool      `json:"result"`
	RecordedAt time.Time `json:"recorded_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishResultRecorded announces a newly stored result.
	PublishResultRecorded(ctx context.Context, event *ResultRecordedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

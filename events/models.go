package events

import (
	"time"
)

// EventType 이벤트 타입을 정의하는 열거형
type EventType string

const (
	ReviewSubmitted EventType = "review.submitted"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// GetType 이벤트 타입을 반환
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// ReviewSubmittedEvent 리뷰가 저장된 직후 발행되는 이벤트
type ReviewSubmittedEvent struct {
	BaseEvent
	Rating     int    `json:"rating"`
	Review     string `json:"review"`
	CreatedAt  string `json:"created_at"`
	AISummary  string `json:"ai_summary"`
	AIActions  string `json:"ai_actions"`
	HasSummary bool   `json:"has_summary"`
}

// NewReviewSubmittedEvent 는 저장된 리뷰 정보로 이벤트를 만든다.
func NewReviewSubmittedEvent(id string, rating int, review, createdAt, summary, actions string) ReviewSubmittedEvent {
	return ReviewSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        id,
			Type:      ReviewSubmitted,
			Timestamp: time.Now().UTC(),
			Source:    "api",
			Version:   "1.0",
		},
		Rating:     rating,
		Review:     review,
		CreatedAt:  createdAt,
		AISummary:  summary,
		AIActions:  actions,
		HasSummary: summary != "" || actions != "",
	}
}

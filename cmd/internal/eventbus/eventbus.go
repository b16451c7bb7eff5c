package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Publisher는 이벤트 발행의 추상화입니다.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NewJSONEvent는 payload를 JSON으로 인코딩하여 Event를 구성합니다.
// id가 빈 문자열이면 UUID를 생성합니다.
func NewJSONEvent(id, eventType string, payload any) (Event, error) {
	if id == "" {
		id = uuid.NewString()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("payload marshal 실패: %w", err)
	}
	return Event{
		ID:      id,
		Type:    eventType,
		Payload: b,
	}, nil
}

// DecodeJSON은 Event.Payload를 제네릭 타입으로 언마샬합니다.
func DecodeJSON[T any](evt Event) (T, error) {
	var out T
	if err := json.Unmarshal(evt.Payload, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("payload unmarshal 실패: %w", err)
	}
	return out, nil
}

// NopPublisher는 브로커가 설정되지 않았을 때 사용하는 구현체입니다.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, topic string, event Event) error { return nil }
func (NopPublisher) Close() {}

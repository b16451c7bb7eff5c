package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimestampLayout 은 리뷰 생성 시각의 저장 포맷이다. (UTC, 타임존 접미사 없음)
// 기존 submissions.json 파일과 호환되도록 마이크로초까지 기록한다.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// ReviewRecord 는 접수된 리뷰 1건이다. 생성 후 수정/삭제하지 않는다.
// Collection: reviews
type ReviewRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Rating    int                `bson:"rating" json:"rating"`
	Review    string             `bson:"review" json:"review"`
	Timestamp string             `bson:"timestamp" json:"timestamp"`
	UserReply string             `bson:"user_reply" json:"user_reply"`
	AISummary string             `bson:"ai_summary" json:"ai_summary"`
	AIActions string             `bson:"ai_actions" json:"ai_actions"`
}

// FormatTimestamp 는 t 를 UTC 로 바꿔 TimestampLayout 으로 렌더링한다.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// CreatedAt 은 Timestamp 를 파싱한다. 타임존이 붙은 RFC3339 형식도 허용한다.
func (r ReviewRecord) CreatedAt() (time.Time, bool) {
	for _, layout := range []string{TimestampLayout, "2006-01-02T15:04:05", time.RFC3339Nano} {
		if t, err := time.Parse(layout, r.Timestamp); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

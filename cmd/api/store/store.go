// Package store 는 리뷰 레코드의 추가 전용 저장소를 제공한다.
// Load 는 항상 전체 컬렉션을, Append 는 마지막에 한 건을 추가한다.
package store

import (
	"context"

	"review-desk/models"
)

// Store 는 삽입 순서를 보존하는 추가 전용 리뷰 저장소다.
type Store interface {
	// Load 는 전체 레코드를 삽입 순서대로 반환한다.
	// 저장소가 없거나 손상된 경우는 에러가 아니라 빈 컬렉션이다.
	Load(ctx context.Context) ([]models.ReviewRecord, error)
	Append(ctx context.Context, record models.ReviewRecord) error
}

// Pinger 는 헬스 체크를 지원하는 저장소가 구현한다.
type Pinger interface {
	Ping(ctx context.Context) error
}

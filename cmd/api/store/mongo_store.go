package store

import (
	"context"

	"review-desk/cmd/internal/logger"
	"review-desk/models"
)

// ReviewRepository 는 MongoStore 가 사용하는 영속 계층이다. (repositories.ReviewRepository)
type ReviewRepository interface {
	Insert(ctx context.Context, rec models.ReviewRecord) error
	FindAll(ctx context.Context) ([]models.ReviewRecord, error)
	Ping(ctx context.Context) error
}

// MongoStore 는 리뷰 컬렉션을 Store 계약에 맞춘다.
// 조회 실패는 빈 컬렉션으로 취급한다.
type MongoStore struct {
	repo ReviewRepository
}

func NewMongoStore(repo ReviewRepository) *MongoStore {
	return &MongoStore{repo: repo}
}

func (s *MongoStore) Load(ctx context.Context) ([]models.ReviewRecord, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.WarnWithFields("review collection unreadable, treating as empty", logger.Fields{
			"error": err.Error(),
		})
		return []models.ReviewRecord{}, nil
	}
	return records, nil
}

func (s *MongoStore) Append(ctx context.Context, record models.ReviewRecord) error {
	return s.repo.Insert(ctx, record)
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

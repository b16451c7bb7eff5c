package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"review-desk/db"
	"review-desk/models"
)

type ReviewRepository struct {
	database *mongo.Database
	col      *mongo.Collection
}

func NewReviewRepository(database *mongo.Database) *ReviewRepository {
	return &ReviewRepository{database: database, col: database.Collection(db.CollectionReviews)}
}

// Insert 는 레코드를 추가한다. _id 는 드라이버가 부여한다.
func (r *ReviewRepository) Insert(ctx context.Context, rec models.ReviewRecord) error {
	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// FindAll 은 전체 리뷰를 삽입 순서(_id 오름차순)로 반환한다.
func (r *ReviewRepository) FindAll(ctx context.Context) ([]models.ReviewRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.ReviewRecord{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return out, nil
}

func (r *ReviewRepository) Ping(ctx context.Context) error {
	return db.Ping(ctx, r.database)
}

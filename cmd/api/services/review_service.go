package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"review-desk/cmd/api/extractor"
	"review-desk/cmd/api/llm"
	"review-desk/cmd/api/metrics"
	"review-desk/cmd/api/prompts"
	"review-desk/cmd/api/store"
	"review-desk/cmd/internal/eventbus"
	"review-desk/cmd/internal/logger"
	"review-desk/events"
	"review-desk/models"
)

const (
	DefaultUserReply   = "Thank you for your review. We hope to serve you better in the future."
	NoGroupReviews     = "(No reviews for this group.)"
	GroupSummaryFailed = "(Unable to summarize.)"

	MinRating = 1
	MaxRating = 5

	persistTimeout = 10 * time.Second
)

var (
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")
	ErrEmptyReview   = errors.New("review must not be empty")
)

// ValidationError 는 외부 호출 전에 거절된 제출을 나타낸다. 핸들러는 400 으로 응답한다.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

type SubmitResult struct {
	UserReply string
}

// ReviewServiceOptions 는 선택적 협력자를 담는다. 비어 있으면 기본값을 쓴다.
type ReviewServiceOptions struct {
	Publisher eventbus.Publisher
	Topic     string
	Now       func() time.Time
}

// ReviewService 는 리뷰 접수 파이프라인이다.
// 답변 생성과 요약 생성은 서로 독립적이고, 검증 오류 외의 실패는 모두 기본값으로 대체된다.
type ReviewService struct {
	generator llm.Generator
	store     store.Store
	publisher eventbus.Publisher
	topic     string
	now       func() time.Time
}

func NewReviewService(generator llm.Generator, st store.Store, opts ReviewServiceOptions) *ReviewService {
	s := &ReviewService{
		generator: generator,
		store:     st,
		publisher: opts.Publisher,
		topic:     opts.Topic,
		now:       opts.Now,
	}
	if s.publisher == nil {
		s.publisher = eventbus.NopPublisher{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ValidateSubmission 은 별점 범위와 리뷰 본문을 검사한다.
func ValidateSubmission(rating int, review string) error {
	if rating < MinRating || rating > MaxRating {
		return &ValidationError{Err: ErrInvalidRating}
	}
	if strings.TrimSpace(review) == "" {
		return &ValidationError{Err: ErrEmptyReview}
	}
	return nil
}

// Submit 은 리뷰를 검증하고 답변/요약을 생성해 저장한 뒤 사용자 답변을 반환한다.
func (s *ReviewService) Submit(ctx context.Context, rating int, review string) (SubmitResult, error) {
	if err := ValidateSubmission(rating, review); err != nil {
		return SubmitResult{}, err
	}
	createdAt := models.FormatTimestamp(s.now())

	userReply := s.generate(ctx, "reply", prompts.BuildReplyPrompt(rating, review))
	if userReply == "" {
		userReply = DefaultUserReply
	}

	summary := s.summarize(ctx, review)

	rec := models.ReviewRecord{
		Rating:    rating,
		Review:    review,
		Timestamp: createdAt,
		UserReply: userReply,
		AISummary: summary.Summary,
		AIActions: summary.RecommendedActions,
	}

	// 답변이 이미 만들어진 제출은 클라이언트가 끊겨도 저장한다.
	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	persisted := true
	if err := s.store.Append(persistCtx, rec); err != nil {
		persisted = false
		logger.ErrorWithFields("failed to persist review", logger.Fields{
			"rating":    rating,
			"timestamp": createdAt,
			"error":     err.Error(),
		})
	}
	metrics.ObserveSubmission(rating, persisted)
	if persisted {
		s.publishSubmitted(persistCtx, rec)
	}

	return SubmitResult{UserReply: userReply}, nil
}

func (s *ReviewService) summarize(ctx context.Context, review string) extractor.ExtractedSummary {
	raw := s.generate(ctx, "admin_summary", prompts.BuildAdminSummaryPrompt(review))
	if raw == "" {
		return extractor.ExtractedSummary{}
	}
	summary := extractor.ExtractSummary(raw)
	if summary.IsEmpty() {
		metrics.ObserveExtraction(metrics.OutcomeParseFailed)
		logger.WarnWithFields("admin summary not parseable", logger.Fields{
			"response": logger.Snippet(raw, 300),
		})
		return summary
	}
	metrics.ObserveExtraction(metrics.OutcomeParsed)
	return summary
}

// SummarizeGroup 은 같은 별점 리뷰 묶음의 공통 테마와 조치를 요약한다.
func (s *ReviewService) SummarizeGroup(ctx context.Context, rating float64, reviews []string) string {
	if len(reviews) == 0 {
		return NoGroupReviews
	}
	answer := s.generate(ctx, "group_summary", prompts.BuildGroupSummaryPrompt(rating, reviews))
	if answer == "" {
		return GroupSummaryFailed
	}
	return answer
}

// List 는 저장된 리뷰 전체를 삽입 순서대로 반환한다.
func (s *ReviewService) List(ctx context.Context) ([]models.ReviewRecord, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	if records == nil {
		records = []models.ReviewRecord{}
	}
	return records, nil
}

func (s *ReviewService) generate(ctx context.Context, kind, prompt string) string {
	start := time.Now()
	text := strings.TrimSpace(s.generator.Generate(ctx, prompt))
	outcome := metrics.OutcomeOK
	if text == "" {
		outcome = metrics.OutcomeEmpty
	}
	metrics.ObserveGeneration(kind, outcome, time.Since(start))
	return text
}

func (s *ReviewService) publishSubmitted(ctx context.Context, rec models.ReviewRecord) {
	id := uuid.NewString()
	payload := events.NewReviewSubmittedEvent(id, rec.Rating, rec.Review, rec.Timestamp, rec.AISummary, rec.AIActions)
	evt, err := eventbus.NewJSONEvent(id, string(events.ReviewSubmitted), payload)
	if err != nil {
		logger.Log.Errorf("failed to build review event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, s.topic, evt); err != nil {
		logger.ErrorWithFields("failed to publish review event", logger.Fields{
			"event_id": evt.ID,
			"topic":    s.topic,
			"error":    err.Error(),
		})
	}
}

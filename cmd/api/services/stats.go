package services

import (
	"context"
	"math"
	"strconv"
)

// Stats 는 관리자 대시보드용 집계다.
type Stats struct {
	Total         int            `json:"total"`
	AverageRating float64        `json:"average_rating"`
	RatingCounts  map[string]int `json:"rating_counts"`
	ByDay         map[string]int `json:"by_day"`
}

// Stats 는 저장된 리뷰 전체로 평균 별점, 별점별 건수, 일자별 건수를 계산한다.
func (s *ReviewService) Stats(ctx context.Context) (Stats, error) {
	records, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	out := Stats{
		Total:        len(records),
		RatingCounts: map[string]int{},
		ByDay:        map[string]int{},
	}
	for r := MinRating; r <= MaxRating; r++ {
		out.RatingCounts[strconv.Itoa(r)] = 0
	}
	if len(records) == 0 {
		return out, nil
	}

	sum := 0
	for _, rec := range records {
		sum += rec.Rating
		out.RatingCounts[strconv.Itoa(rec.Rating)]++
		if t, ok := rec.CreatedAt(); ok {
			out.ByDay[t.Format("2006-01-02")]++
		}
	}
	out.AverageRating = math.Round(float64(sum)/float64(len(records))*100) / 100
	return out, nil
}

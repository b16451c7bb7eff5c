package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid_request"`
}

// StatusResponseDTO 는 루트와 헬스 체크가 공유하는 상태 응답이다.
type StatusResponseDTO struct {
	Status  string `json:"status" example:"running"`
	Message string `json:"message,omitempty" example:"Review desk API is up"`
	Storage string `json:"storage,omitempty" example:"file"`
	Error   string `json:"error,omitempty"`
}

// StatsDTO 는 대시보드 집계 응답이다.
type StatsDTO struct {
	Total         int            `json:"total" example:"12"`
	AverageRating float64        `json:"average_rating" example:"3.75"`
	RatingCounts  map[string]int `json:"rating_counts"`
	ByDay         map[string]int `json:"by_day"`
}

package dto

// SubmitReviewRequestDTO 는 /submit_review 요청 본문이다.
type SubmitReviewRequestDTO struct {
	Rating int    `json:"rating" example:"5"`
	Review string `json:"review" example:"Great service, loved it!"`
}

// SubmitReviewResponseDTO 는 제출 성공 시 사용자 답변을 돌려준다.
type SubmitReviewResponseDTO struct {
	Success   bool   `json:"success" example:"true"`
	UserReply string `json:"user_reply" example:"Thank you! We hope to serve you better in the future!"`
}

// ReviewRecordDTO 는 /submissions 응답의 원소 하나다.
type ReviewRecordDTO struct {
	Rating    int    `json:"rating" example:"4"`
	Review    string `json:"review" example:"Nice place"`
	Timestamp string `json:"timestamp" example:"2025-06-01T12:00:00.000000"`
	UserReply string `json:"user_reply"`
	AISummary string `json:"ai_summary"`
	AIActions string `json:"ai_actions"`
}

// StarSummaryRequestDTO 는 같은 별점 리뷰 묶음의 요약 요청이다.
type StarSummaryRequestDTO struct {
	Reviews []string `json:"reviews"`
	Rating  float64  `json:"rating" example:"3"`
}

type StarSummaryResponseDTO struct {
	GroupAction string `json:"group_action"`
}

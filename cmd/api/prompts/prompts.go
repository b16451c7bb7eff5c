// Package prompts 는 Gemini 에 보내는 지시문을 만든다. 모든 함수는 순수 함수다.
package prompts

import (
	"fmt"
	"strconv"
	"strings"
)

// SignOff 는 사용자 답변의 마지막 문장으로 항상 요구하는 문구다.
const SignOff = "We hope to serve you better in the future!"

const replyTemplate = `
The following is a customer review for a business. Write a short, polite reply from the business.

Instructions:
- If the review is positive, thank the customer and highlight something they enjoyed.
- If the review is mixed, thank them, mention the positive, and politely address any concerns.
- If the review is negative, apologize and express willingness to improve.
- Always sign off with: "%s"

Review: "%s" (User gave %d star(s))

Reply:
`

const adminSummaryTemplate = `Given this customer feedback: "%s"
1. Write a one-sentence summary of the feedback.
2. Suggest a recommended action for the business to improve or follow up.

Format your response in this JSON:
{
    "summary": "<summary sentence>",
    "recommended_actions": "<single main suggestion>"
}
`

// BuildReplyPrompt 는 고객에게 보낼 답변 프롬프트를 만든다.
// 긍정/부정 판단은 모델에게 맡긴다.
func BuildReplyPrompt(rating int, review string) string {
	return fmt.Sprintf(replyTemplate, SignOff, review, rating)
}

// BuildAdminSummaryPrompt 는 관리자용 한 줄 요약과 권장 조치를 JSON 으로 요청한다.
func BuildAdminSummaryPrompt(review string) string {
	return fmt.Sprintf(adminSummaryTemplate, review)
}

// BuildGroupSummaryPrompt 는 같은 별점의 리뷰 묶음에 대한 공통 테마 요약을 요청한다.
// reviews 가 비어 있으면 호출하는 쪽에서 먼저 걸러야 한다.
func BuildGroupSummaryPrompt(rating float64, reviews []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "These are customer reviews with a rating of %s star(s):\n", FormatRating(rating))
	for _, r := range reviews {
		sb.WriteString("- ")
		sb.WriteString(r)
		sb.WriteString("\n")
	}
	sb.WriteString("Summarize the most common themes in these reviews, ")
	sb.WriteString("and suggest the main business action to address this group. ")
	sb.WriteString("List 2-3 main customer sentiments, and end with one concrete step for the business.")
	return sb.String()
}

// FormatRating 은 5 -> "5", 4.5 -> "4.5" 처럼 불필요한 소수점 없이 렌더링한다.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

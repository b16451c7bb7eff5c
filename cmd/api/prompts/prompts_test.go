package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReplyPrompt(t *testing.T) {
	p := BuildReplyPrompt(2, "The soup was cold")

	assert.Contains(t, p, `Review: "The soup was cold" (User gave 2 star(s))`)
	assert.Contains(t, p, "If the review is positive")
	assert.Contains(t, p, "If the review is mixed")
	assert.Contains(t, p, "If the review is negative, apologize")
	assert.Contains(t, p, `Always sign off with: "We hope to serve you better in the future!"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(p), "Reply:"))
}

func TestBuildAdminSummaryPrompt(t *testing.T) {
	p := BuildAdminSummaryPrompt("Loved the staff")

	assert.Contains(t, p, `Given this customer feedback: "Loved the staff"`)
	assert.Contains(t, p, "one-sentence summary")
	assert.Contains(t, p, `"summary": "<summary sentence>"`)
	assert.Contains(t, p, `"recommended_actions": "<single main suggestion>"`)
}

func TestBuildGroupSummaryPrompt(t *testing.T) {
	p := BuildGroupSummaryPrompt(3, []string{"Too slow", "Nice decor"})

	assert.True(t, strings.HasPrefix(p, "These are customer reviews with a rating of 3 star(s):\n- Too slow\n- Nice decor\n"))
	assert.Contains(t, p, "List 2-3 main customer sentiments")
	assert.True(t, strings.HasSuffix(p, "end with one concrete step for the business."))
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "5", FormatRating(5))
	assert.Equal(t, "4.5", FormatRating(4.5))
}

func TestStrategies(t *testing.T) {
	strategies := Strategies()
	assert.Len(t, strategies, 3)

	names := make([]string, 0, len(strategies))
	for _, s := range strategies {
		names = append(names, s.Name)
		p := s.Build("Great tacos")
		assert.Contains(t, p, "Great tacos", s.Name)
		assert.Contains(t, p, "predicted_stars", s.Name)
	}
	assert.Equal(t, []string{"Direct Classification (Baseline)", "Step-by-Step Hidden CoT", "Few-Shot Calibration"}, names)
}

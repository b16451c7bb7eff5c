package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"review-desk/cmd/api/extractor"
	"review-desk/cmd/api/llm"
	"review-desk/cmd/api/prompts"
	"review-desk/cmd/internal/logger"
)

// Prediction 은 모델 응답 하나를 해석한 결과다.
type Prediction struct {
	Stars       int
	Explanation string
	ValidJSON   bool
}

// ParsePrediction 은 응답에서 predicted_stars/explanation 을 읽는다.
// 별점이 1..5 정수로 해석되지 않으면 Stars 는 0 이다.
func ParsePrediction(raw string) Prediction {
	var obj struct {
		PredictedStars any `json:"predicted_stars"`
		Explanation    any `json:"explanation"`
	}
	if !extractor.ExtractObject(raw, &obj) {
		return Prediction{}
	}
	p := Prediction{ValidJSON: true}
	switch v := obj.PredictedStars.(type) {
	case float64:
		if v == math.Trunc(v) {
			p.Stars = int(v)
		}
	case string:
		p.Stars, _ = strconv.Atoi(strings.TrimSpace(v))
	}
	if p.Stars < 1 || p.Stars > 5 {
		p.Stars = 0
	}
	if s, ok := obj.Explanation.(string); ok {
		p.Explanation = s
	}
	return p
}

type Result struct {
	Strategy   string
	TrueStars  int
	Prediction Prediction
}

// StrategyReport 는 전략 하나의 집계다.
type StrategyReport struct {
	Name      string
	Total     int
	Correct   int
	ValidJSON int
}

func (r StrategyReport) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

func (r StrategyReport) ValidRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.ValidJSON) / float64(r.Total)
}

// Evaluator 는 호출 간격을 따로 두지 않는다. 간격은 Generator 의 Limiter 가 정한다.
type Evaluator struct {
	Generator  llm.Generator
	Strategies []prompts.Strategy
}

// Run 은 모든 샘플에 모든 전략을 돌리고 전략 순서대로 집계를 반환한다.
func (e *Evaluator) Run(ctx context.Context, samples []Sample) ([]StrategyReport, []Result, error) {
	reports := make([]StrategyReport, len(e.Strategies))
	for i, s := range e.Strategies {
		reports[i].Name = s.Name
	}

	var results []Result
	for idx, sample := range samples {
		for i, strategy := range e.Strategies {
			if err := ctx.Err(); err != nil {
				return reports, results, err
			}
			raw := e.Generator.Generate(ctx, strategy.Build(sample.Text))
			pred := ParsePrediction(raw)

			reports[i].Total++
			if pred.ValidJSON {
				reports[i].ValidJSON++
			}
			if pred.Stars == sample.Stars {
				reports[i].Correct++
			}
			results = append(results, Result{Strategy: strategy.Name, TrueStars: sample.Stars, Prediction: pred})

			logger.DebugWithFields("rating prediction", logger.Fields{
				"review_index": idx,
				"strategy":     strategy.Name,
				"true_stars":   sample.Stars,
				"predicted":    pred.Stars,
				"valid_json":   pred.ValidJSON,
			})
		}
	}
	return reports, results, nil
}

// WriteReport 는 전략별 정확도와 JSON 유효 비율을 표로 출력한다.
func WriteReport(w io.Writer, reports []StrategyReport) {
	fmt.Fprintf(w, "%-36s %8s %8s %10s\n", "strategy", "samples", "accuracy", "json_valid")
	for _, r := range reports {
		fmt.Fprintf(w, "%-36s %8d %7.1f%% %9.1f%%\n", r.Name, r.Total, r.Accuracy()*100, r.ValidRate()*100)
	}
}

// WriteResults 는 리뷰별 예측을 한 줄씩 출력한다.
func WriteResults(w io.Writer, results []Result) {
	for _, r := range results {
		pred := "-"
		if r.Prediction.Stars > 0 {
			pred = strconv.Itoa(r.Prediction.Stars)
		}
		fmt.Fprintf(w, "[%s] true=%d predicted=%s %s\n", r.Strategy, r.TrueStars, pred, logger.Snippet(r.Prediction.Explanation, 120))
	}
}

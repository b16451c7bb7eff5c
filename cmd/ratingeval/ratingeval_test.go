package main

import (
	"context"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-desk/cmd/api/prompts"
)

const sampleCSV = `business_id,stars,text
a,5,"Loved it, would return"
b,,"missing stars"
c,3,
d,7,"out of range"
e,2.5,"half star"
f,1,"Awful, cold food"
g,4.0,"Pretty good"
`

func TestLoadSamples_FiltersIncompleteRows(t *testing.T) {
	samples, err := LoadSamples(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []Sample{
		{Text: "Loved it, would return", Stars: 5},
		{Text: "Awful, cold food", Stars: 1},
		{Text: "Pretty good", Stars: 4},
	}, samples)
}

func TestLoadSamples_MissingColumns(t *testing.T) {
	_, err := LoadSamples(strings.NewReader("id,body\n1,hi\n"))
	assert.Error(t, err)
}

func TestSampleN_Deterministic(t *testing.T) {
	var all []Sample
	for i := 1; i <= 50; i++ {
		all = append(all, Sample{Text: strings.Repeat("x", i), Stars: i%5 + 1})
	}

	first := SampleN(all, 10, 42)
	second := SampleN(all, 10, 42)
	other := SampleN(all, 10, 7)

	require.Len(t, first, 10)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, SampleN(all, 500, 42), 50)
	assert.Len(t, all, 50)
}

func TestParsePrediction(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want Prediction
	}{
		{
			name: "plain json",
			raw:  `{"predicted_stars": 4, "explanation": "Mostly positive."}`,
			want: Prediction{Stars: 4, Explanation: "Mostly positive.", ValidJSON: true},
		},
		{
			name: "fenced with prose",
			raw:  "Sure!\n```json\n{\"predicted_stars\": \"2\", \"explanation\": \"Complaints.\"}\n```",
			want: Prediction{Stars: 2, Explanation: "Complaints.", ValidJSON: true},
		},
		{
			name: "single quotes and trailing comma",
			raw:  `{'predicted_stars': 5, 'explanation': 'Great',}`,
			want: Prediction{Stars: 5, Explanation: "Great", ValidJSON: true},
		},
		{
			name: "out of range",
			raw:  `{"predicted_stars": 9}`,
			want: Prediction{ValidJSON: true},
		},
		{
			name: "not json",
			raw:  "I think four stars",
			want: Prediction{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, ParsePrediction(testCase.raw))
		})
	}
}

type scriptedGenerator struct {
	answers []string
	calls   int
}

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string) string {
	a := g.answers[g.calls%len(g.answers)]
	g.calls++
	return a
}

func TestEvaluatorRun(t *testing.T) {
	gen := &scriptedGenerator{answers: []string{
		`{"predicted_stars": 5}`,
		`garbage`,
		`{"predicted_stars": 1}`,
	}}
	eval := &Evaluator{Generator: gen, Strategies: prompts.Strategies()}

	reports, results, err := eval.Run(context.Background(), []Sample{
		{Text: "great", Stars: 5},
		{Text: "bad", Stars: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, gen.calls)
	assert.Len(t, results, 6)
	require.Len(t, reports, 3)

	assert.Equal(t, "Direct Classification (Baseline)", reports[0].Name)
	assert.Equal(t, 2, reports[0].Total)
	// 호출 순서: (great: 5, garbage, 1), (bad: 5, garbage, 1)
	assert.Equal(t, 1, reports[0].Correct)
	assert.Equal(t, 1.0, reports[0].ValidRate())
	assert.Equal(t, 0.0, reports[1].ValidRate())
	assert.Equal(t, 0.5, reports[2].Accuracy())
}

func TestEvaluatorRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	eval := &Evaluator{Generator: &scriptedGenerator{answers: []string{"{}"}}, Strategies: prompts.Strategies()}

	_, results, err := eval.Run(ctx, []Sample{{Text: "x", Stars: 3}})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestWriteReport(t *testing.T) {
	var sb strings.Builder
	WriteReport(&sb, []StrategyReport{{Name: "Few-Shot Calibration", Total: 4, Correct: 3, ValidJSON: 4}})

	out := sb.String()
	assert.Contains(t, out, "Few-Shot Calibration")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "100.0%")
}

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("ratingeval", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg, err := parseFlags(fs, []string{"-n", "5", "-seed", "7", "-rpm", "0", "-max-calls", "30"})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Samples)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 0, cfg.PerMinute)
	assert.Equal(t, 30, cfg.MaxCalls)
	assert.Equal(t, "data/yelp.csv", cfg.DataPath)

	_, err = parseFlags(flag.NewFlagSet("x", flag.ContinueOnError), []string{"-n", "0"})
	assert.Error(t, err)
}

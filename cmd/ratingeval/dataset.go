package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Sample 은 정답 별점이 붙은 리뷰 한 건이다.
type Sample struct {
	Text  string
	Stars int
}

// LoadSamples 는 text, stars 열을 가진 CSV 를 읽는다.
// 두 값 중 하나라도 비었거나 stars 가 1..5 의 정수가 아닌 행은 버린다.
func LoadSamples(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	textCol, starsCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "text":
			textCol = i
		case "stars":
			starsCol = i
		}
	}
	if textCol < 0 || starsCol < 0 {
		return nil, errors.New("csv must have text and stars columns")
	}

	var out []Sample
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if textCol >= len(row) || starsCol >= len(row) {
			continue
		}
		text := row[textCol]
		if strings.TrimSpace(text) == "" {
			continue
		}
		stars, ok := parseStars(row[starsCol])
		if !ok {
			continue
		}
		out = append(out, Sample{Text: text, Stars: stars})
	}
	return out, nil
}

func parseStars(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f != math.Trunc(f) || f < 1 || f > 5 {
		return 0, false
	}
	return int(f), true
}

// SampleN 은 고정 seed 로 n 건을 무작위 추출한다. 같은 seed 와 입력이면 결과도 같다.
func SampleN(samples []Sample, n int, seed uint64) []Sample {
	shuffled := append([]Sample(nil), samples...)
	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < 0 || n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

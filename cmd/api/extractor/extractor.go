// Package extractor 는 LLM 이 생성한 자유 형식 텍스트에서 JSON 객체를 찾아 구조체로 옮긴다.
// 입력은 신뢰할 수 없는 모델 출력이므로 실패는 에러가 아니라 빈 결과로 표현한다.
package extractor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ExtractedSummary 는 관리자용 요약 프롬프트 응답에서 뽑아낸 값이다.
type ExtractedSummary struct {
	Summary            string `json:"summary"`
	RecommendedActions string `json:"recommended_actions"`
}

// IsEmpty 는 두 필드가 모두 비었는지 반환한다.
func (s ExtractedSummary) IsEmpty() bool {
	return s.Summary == "" && s.RecommendedActions == ""
}

var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

// Locate 는 raw 에서 첫 '{' 부터 마지막 '}' 까지의 부분 문자열을 반환한다.
func Locate(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < 0 || start >= end {
		return "", false
	}
	return raw[start : end+1], true
}

// cleanup 은 모델이 자주 내놓는 JSON 변형(작은따옴표, 닫는 괄호 앞 쉼표)을 한 번 보정한다.
func cleanup(s string) string {
	s = strings.ReplaceAll(s, "'", `"`)
	return trailingComma.ReplaceAllString(s, "$1")
}

// ExtractObject 는 raw 에 포함된 JSON 객체를 out 으로 디코딩한다.
// 엄격한 파싱이 실패하면 cleanup 후 한 번만 다시 시도한다.
func ExtractObject(raw string, out any) bool {
	candidate, ok := Locate(raw)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(candidate), out); err == nil {
		return true
	}
	return json.Unmarshal([]byte(cleanup(candidate)), out) == nil
}

// ExtractSummary 는 summary / recommended_actions 키를 읽는다.
// 키가 없거나 null 이면 빈 문자열, 파싱이 끝내 실패하면 두 필드 모두 빈 값이다.
func ExtractSummary(raw string) ExtractedSummary {
	var obj map[string]any
	if !ExtractObject(raw, &obj) {
		return ExtractedSummary{}
	}
	return ExtractedSummary{
		Summary:            textValue(obj["summary"]),
		RecommendedActions: textValue(obj["recommended_actions"]),
	}
}

func textValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64, bool:
		return fmt.Sprint(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := textValue(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

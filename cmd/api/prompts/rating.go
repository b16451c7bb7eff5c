package prompts

import "fmt"

// Strategy 는 별점 예측 실험에 쓰는 프롬프트 전략 하나다.
type Strategy struct {
	Name  string
	Build func(review string) string
}

const fewShotExamples = `Review: "Terrible experience, food was cold and the service rude."
{
  "predicted_stars": 1,
  "explanation": "The review is very negative about food and service."
}
Review: "Decent lunch, nothing special but quick service."
{
  "predicted_stars": 3,
  "explanation": "The review is mixed with some positive and average comments."
}
Review: "Absolutely loved the desserts and our waiter was wonderful!"
{
  "predicted_stars": 5,
  "explanation": "Very positive review about both food and service."
}
`

func directClassification(review string) string {
	return fmt.Sprintf(`Given the Yelp review below, predict how many stars (1-5) the reviewer gave.
Respond only with JSON as follows:
{
  "predicted_stars": <number>,
  "explanation": "<brief reason>"
}
Review:
%s`, review)
}

func hiddenChainOfThought(review string) string {
	return fmt.Sprintf(`Consider the following Yelp review. Think step by step about the reviewer's overall tone, the details they mention, their satisfaction, and any positive or negative points. Decide the most likely star rating (1-5).
Then, respond only with JSON like this (do not show your reasoning):
{
  "predicted_stars": <number>,
  "explanation": "<why you chose this rating>"
}
Review:
%s`, review)
}

func fewShotCalibration(review string) string {
	return fmt.Sprintf(`Here are examples of Yelp reviews and their ratings:
%s
Now, given this review, respond with JSON just like the above examples:
Review: %s`, fewShotExamples, review)
}

// Strategies 는 평가 순서대로 정렬된 별점 예측 전략 목록을 반환한다.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "Direct Classification (Baseline)", Build: directClassification},
		{Name: "Step-by-Step Hidden CoT", Build: hiddenChainOfThought},
		{Name: "Few-Shot Calibration", Build: fewShotCalibration},
	}
}

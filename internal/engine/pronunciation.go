package engine

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"english_edu_backend/internal/model"
)

const maxReportedMistakes = 3

// nonWord 清掉除字母、数字和撇号以外的字符
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}']+`)

// normalizeWords 小写化并去标点后切分成词序列
func normalizeWords(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}

// wordsMatch 同位置的两个词：完全相等或互为子串都算读对
func wordsMatch(expected, actual string) bool {
	if expected == actual {
		return true
	}
	return strings.Contains(expected, actual) || strings.Contains(actual, expected)
}

// ScorePronunciation 对照原文给口语转写打分。transcript 和 confidence
// 来自语音识别方（confidence 取值 0~1，越界会被钳制）。函数是全函数：
// 任何输入都产出结果，空原文的准确率按 0 计。
func ScorePronunciation(originalText, spokenText string, confidence float64) model.ScoreResult {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	original := normalizeWords(originalText)
	spoken := normalizeWords(spokenText)

	matched := 0
	var mistakes []model.Mistake
	for i, expected := range original {
		actual := ""
		if i < len(spoken) {
			actual = spoken[i]
		}
		if actual != "" && wordsMatch(expected, actual) {
			matched++
			continue
		}
		if len(mistakes) < maxReportedMistakes {
			mistakes = append(mistakes, model.Mistake{
				Position:   i,
				Expected:   expected,
				Actual:     actual,
				Suggestion: fmt.Sprintf("对照标准读音多练几遍 %q", expected),
			})
		}
	}

	accuracy := 0.0
	if len(original) > 0 {
		accuracy = round1(100 * float64(matched) / float64(len(original)))
	}

	overall := round1(accuracy + confidence*20)
	if overall > 100 {
		overall = 100
	}

	return model.ScoreResult{
		OverallScore: overall,
		SubScores: map[string]float64{
			model.SubScoreAccuracy:      accuracy,
			model.SubScoreFluency:       math.Round(confidence * 100),
			model.SubScorePronunciation: math.Round(overall * 0.9),
		},
		Feedback: pronunciationFeedback(overall),
		Mistakes: mistakes,
	}
}

func pronunciationFeedback(score float64) string {
	switch {
	case score >= 90:
		return "发音非常标准，继续保持！"
	case score >= 80:
		return "发音很好，个别单词还可以更准确。"
	case score >= 70:
		return "整体不错，注意标出的单词并放慢语速。"
	case score >= 60:
		return "基本能听懂，建议逐句跟读原文。"
	default:
		return "还需要多加练习，先从短句慢速跟读开始。"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

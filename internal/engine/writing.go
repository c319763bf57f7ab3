package engine

import (
	"regexp"
	"strings"

	"english_edu_backend/internal/model"
)

const maxSuggestions = 3

// 缺撇号的常见缩写
var missingApostrophe = regexp.MustCompile(`(?i)\b(dont|cant|wont|isnt|arent|wasnt|werent|doesnt|didnt|havent|hasnt|couldnt|shouldnt|wouldnt|im|ive|youre|theyre)\b`)

// 应大写而未大写的人称代词 I。撇号相邻的 i（i'm、i've）不在此计，
// 免得和句首小写规则对同一处重复扣分
var lowercaseI = regexp.MustCompile(`(?:^|[^'\p{L}\p{N}])i(?:[^'\p{L}\p{N}]|$)`)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

var punctuationMark = regexp.MustCompile(`[.,!?;:]`)

// ScoreWriting 按评分标准逐项给一篇作文打分。rubric 为空时用默认五维标准；
// wordLimit 为 0 表示不限字数；keywords 为空表示不考察要点覆盖。
// 启发式规则给的是近似分，确定性强于精确性。
func ScoreWriting(content string, rubric []model.RubricCriterion, wordLimit int, keywords []string) model.ScoreResult {
	if len(rubric) == 0 {
		rubric = model.DefaultWritingRubric()
	}

	words := strings.Fields(content)
	sentences := splitSentences(content)
	paragraphs := splitParagraphs(content)

	var total, maxTotal float64
	subScores := make(map[string]float64, len(rubric))
	var suggestions []string

	for _, criterion := range rubric {
		var score float64
		switch criterion.Key {
		case model.RubricContent:
			score = contentScore(criterion.MaxScore, content, len(words), wordLimit, keywords)
		case model.RubricOrganization:
			score = organizationScore(criterion.MaxScore, len(paragraphs))
		case model.RubricGrammar:
			score = grammarScore(criterion.MaxScore, content, sentences)
		case model.RubricVocabulary:
			score = vocabularyScore(criterion.MaxScore, words)
		case model.RubricMechanics:
			score = mechanicsScore(criterion.MaxScore, content, len(sentences))
		default:
			// 未知维度不给分也不计入总分母
			continue
		}

		score = round1(score)
		subScores[string(criterion.Key)] = score
		total += score
		maxTotal += criterion.MaxScore

		if score < criterion.MaxScore*0.7 && len(suggestions) < maxSuggestions {
			suggestions = append(suggestions, writingSuggestion(criterion.Key))
		}
	}

	percent := 0.0
	if maxTotal > 0 {
		percent = total / maxTotal * 100
	}

	return model.ScoreResult{
		OverallScore: round1(total),
		SubScores:    subScores,
		Feedback:     writingFeedback(percent),
		Suggestions:  suggestions,
	}
}

// contentScore 基础分按字数达标比例缩放（无字数要求给八成底分），
// 另按要点词覆盖率给最多 20% 的加分；没有要点词时加分拉满
func contentScore(max float64, content string, wordCount, wordLimit int, keywords []string) float64 {
	lengthRatio := 1.0
	if wordLimit > 0 {
		lengthRatio = float64(wordCount) / float64(wordLimit)
		if lengthRatio > 1 {
			lengthRatio = 1
		}
	}

	keywordRatio := 1.0
	if len(keywords) > 0 {
		lower := strings.ToLower(content)
		hit := 0
		for _, kw := range keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				hit++
			}
		}
		keywordRatio = float64(hit) / float64(len(keywords))
	}

	return max*0.8*lengthRatio + max*0.2*keywordRatio
}

func organizationScore(max float64, paragraphCount int) float64 {
	switch {
	case paragraphCount >= 3:
		return max * 0.9
	case paragraphCount == 2:
		return max * 0.7
	default:
		return max * 0.5
	}
}

// grammarScore 按每句错误率扣分，下限为满分的四成
func grammarScore(max float64, content string, sentences []string) float64 {
	errors := len(missingApostrophe.FindAllString(content, -1))
	errors += len(lowercaseI.FindAllString(content, -1))
	for _, s := range sentences {
		if startsLowercase(s) {
			errors++
		}
	}

	sentenceCount := len(sentences)
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	scale := 1 - 0.15*float64(errors)/float64(sentenceCount)
	if scale < 0.4 {
		scale = 0.4
	}
	return max * scale
}

func vocabularyScore(max float64, words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[strings.ToLower(strings.Trim(w, ".,!?;:\"'"))] = true
	}
	return max * float64(len(unique)) / float64(len(words))
}

func mechanicsScore(max float64, content string, sentenceCount int) float64 {
	if sentenceCount == 0 {
		sentenceCount = 1
	}
	ratio := float64(len(punctuationMark.FindAllString(content, -1))) / float64(sentenceCount)
	if ratio > 1 {
		ratio = 1
	}
	return max * ratio
}

func splitSentences(content string) []string {
	var sentences []string
	for _, s := range sentenceSplit.Split(content, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, strings.TrimSpace(s))
		}
	}
	return sentences
}

func splitParagraphs(content string) []string {
	var paragraphs []string
	for _, p := range strings.Split(content, "\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func startsLowercase(sentence string) bool {
	for _, r := range sentence {
		if r >= 'a' && r <= 'z' {
			return true
		}
		if r >= 'A' && r <= 'Z' {
			return false
		}
		// 跳过引号等前导符号
	}
	return false
}

func writingSuggestion(key model.RubricKey) string {
	switch key {
	case model.RubricContent:
		return "内容再充实一些，尽量覆盖题目给出的要点词。"
	case model.RubricOrganization:
		return "把文章分成至少三段，段落之间加上过渡句。"
	case model.RubricGrammar:
		return "注意缩写单词的撇号和句首、人称代词 I 的大写。"
	case model.RubricVocabulary:
		return "尝试替换重复用词，使用更丰富的表达。"
	case model.RubricMechanics:
		return "检查标点符号，确保每句话以句号、问号或感叹号收尾。"
	default:
		return "多读范文，对照修改。"
	}
}

func writingFeedback(percent float64) string {
	switch {
	case percent >= 90:
		return "写得非常出色，内容和语言都很成熟！"
	case percent >= 80:
		return "整体很好，个别细节再打磨会更佳。"
	case percent >= 70:
		return "达到了基本要求，按建议逐项改进。"
	case percent >= 60:
		return "及格水平，结构和语法还有提升空间。"
	default:
		return "还需多加练习，建议从列提纲和分段写起。"
	}
}

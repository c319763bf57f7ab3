package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"english_edu_backend/internal/model"
)

const sampleEssay = `My favorite season is autumn. The weather turns cool, and the leaves change color.
Every year my family travels to the countryside. We walk in the forest, and we take many photos together.
I believe autumn teaches us that change can be beautiful. It reminds me to enjoy every moment.`

func TestScoreWritingDefaultsAndRange(t *testing.T) {
	result := ScoreWriting(sampleEssay, nil, 0, nil)

	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
	assert.Len(t, result.SubScores, 5)
	for _, criterion := range model.DefaultWritingRubric() {
		score, ok := result.SubScores[string(criterion.Key)]
		require.True(t, ok, criterion.Key)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, criterion.MaxScore)
	}
	assert.LessOrEqual(t, len(result.Suggestions), maxSuggestions)
	assert.NotEmpty(t, result.Feedback)
}

func TestScoreWritingContentCriterion(t *testing.T) {
	rubric := []model.RubricCriterion{{Key: model.RubricContent, MaxScore: 30}}

	// 5 词 / 限 10 词，两个要点词命中一个
	result := ScoreWriting("one two three four five", rubric, 10, []string{"two", "six"})

	// 30×0.8×0.5 + 30×0.2×0.5
	assert.InDelta(t, 15.0, result.SubScores[string(model.RubricContent)], 0.001)
}

func TestScoreWritingContentWithoutLimit(t *testing.T) {
	rubric := []model.RubricCriterion{{Key: model.RubricContent, MaxScore: 30}}

	result := ScoreWriting("a short answer", rubric, 0, nil)

	// 无字数要求给八成底分，无要点词加分拉满
	assert.InDelta(t, 30.0, result.SubScores[string(model.RubricContent)], 0.001)
}

func TestScoreWritingOrganizationByParagraphs(t *testing.T) {
	rubric := []model.RubricCriterion{{Key: model.RubricOrganization, MaxScore: 20}}

	one := ScoreWriting("Single paragraph only.", rubric, 0, nil)
	two := ScoreWriting("First paragraph.\nSecond paragraph.", rubric, 0, nil)
	three := ScoreWriting("One.\nTwo.\nThree.", rubric, 0, nil)

	assert.InDelta(t, 10.0, one.SubScores[string(model.RubricOrganization)], 0.001)
	assert.InDelta(t, 14.0, two.SubScores[string(model.RubricOrganization)], 0.001)
	assert.InDelta(t, 18.0, three.SubScores[string(model.RubricOrganization)], 0.001)
}

func TestScoreWritingGrammarPenalizesErrors(t *testing.T) {
	rubric := []model.RubricCriterion{{Key: model.RubricGrammar, MaxScore: 20}}

	clean := ScoreWriting("I like tea. He does not agree.", rubric, 0, nil)
	sloppy := ScoreWriting("i dont like tea. he cant agree. im sure.", rubric, 0, nil)

	assert.Greater(t, clean.SubScores[string(model.RubricGrammar)],
		sloppy.SubScores[string(model.RubricGrammar)])
	// 扣分下限为满分的四成
	assert.GreaterOrEqual(t, sloppy.SubScores[string(model.RubricGrammar)], 8.0)
}

func TestScoreWritingGrammarCountsContractionOnce(t *testing.T) {
	rubric := []model.RubricCriterion{{Key: model.RubricGrammar, MaxScore: 20}}

	// 句首的 i'm 只按句首小写算一处错误，不再被人称代词规则重复扣
	result := ScoreWriting("i'm ready to start. Everyone agreed.", rubric, 0, nil)
	// 1 错 / 2 句：20×(1-0.15×0.5)
	assert.InDelta(t, 18.5, result.SubScores[string(model.RubricGrammar)], 0.001)

	// 句中独立的小写 i 仍然计错
	standalone := ScoreWriting("We said i should go. Everyone agreed.", rubric, 0, nil)
	assert.InDelta(t, 18.5, standalone.SubScores[string(model.RubricGrammar)], 0.001)
}

func TestScoreWritingVocabularyUniqueRatio(t *testing.T) {
	rubric := []model.RubricCriterion{{Key: model.RubricVocabulary, MaxScore: 15}}

	repetitive := ScoreWriting("go go go go", rubric, 0, nil)
	varied := ScoreWriting("each word differs completely here", rubric, 0, nil)

	assert.InDelta(t, 3.8, repetitive.SubScores[string(model.RubricVocabulary)], 0.05)
	assert.InDelta(t, 15.0, varied.SubScores[string(model.RubricVocabulary)], 0.001)
}

func TestScoreWritingSuggestionsForWeakCriteria(t *testing.T) {
	// 单段、无标点、重复用词的劣质文本应触发建议，但不超过 3 条
	result := ScoreWriting("word word word word word", nil, 200, nil)

	require.NotEmpty(t, result.Suggestions)
	assert.LessOrEqual(t, len(result.Suggestions), maxSuggestions)
}

func TestScoreWritingEmptyContent(t *testing.T) {
	result := ScoreWriting("", nil, 100, []string{"topic"})

	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
	assert.NotEmpty(t, result.Feedback)
}

func TestScoreWritingDeterministic(t *testing.T) {
	first := ScoreWriting(sampleEssay, nil, 150, []string{"autumn", "family"})
	second := ScoreWriting(sampleEssay, nil, 150, []string{"autumn", "family"})
	assert.Equal(t, first, second)

	// 更长更达标的文本内容分不应低于被截短的版本
	truncated := ScoreWriting(sampleEssay[:len(sampleEssay)/3], nil, 150, []string{"autumn", "family"})
	assert.GreaterOrEqual(t,
		first.SubScores[string(model.RubricContent)],
		truncated.SubScores[string(model.RubricContent)])
}

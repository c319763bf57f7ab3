package model

// SubScore 名称常量（口语）
const (
	SubScoreAccuracy      = "accuracy"
	SubScoreFluency       = "fluency"
	SubScorePronunciation = "pronunciation"
)

// RubricKey 写作评分维度
type RubricKey string

const (
	RubricContent      RubricKey = "content"
	RubricOrganization RubricKey = "organization"
	RubricGrammar      RubricKey = "grammar"
	RubricVocabulary   RubricKey = "vocabulary"
	RubricMechanics    RubricKey = "mechanics"
)

// RubricCriterion 写作评分标准中的一项
type RubricCriterion struct {
	Key      RubricKey `json:"key"`
	MaxScore float64   `json:"maxScore"`
}

// DefaultWritingRubric 默认写作评分标准，五个维度合计 100 分
func DefaultWritingRubric() []RubricCriterion {
	return []RubricCriterion{
		{Key: RubricContent, MaxScore: 30},
		{Key: RubricOrganization, MaxScore: 20},
		{Key: RubricGrammar, MaxScore: 20},
		{Key: RubricVocabulary, MaxScore: 15},
		{Key: RubricMechanics, MaxScore: 15},
	}
}

// Mistake 逐词对比中发现的发音错误
type Mistake struct {
	Position   int    `json:"position"`
	Expected   string `json:"expected"`
	Actual     string `json:"actual"`
	Suggestion string `json:"suggestion"`
}

// ScoreResult 口语/写作的一次评分结果，仅派生不落库
type ScoreResult struct {
	OverallScore float64            `json:"overallScore"` // 0~100
	SubScores    map[string]float64 `json:"subScores"`
	Feedback     string             `json:"feedback"`
	Mistakes     []Mistake          `json:"mistakes,omitempty"`    // 最多 3 条
	Suggestions  []string           `json:"suggestions,omitempty"` // 最多 3 条
}

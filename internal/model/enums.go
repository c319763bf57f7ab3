package model

// CEFRLevel 欧洲语言共同参考框架等级（A1~C2）
type CEFRLevel string

const (
	LevelA1 CEFRLevel = "A1"
	LevelA2 CEFRLevel = "A2"
	LevelB1 CEFRLevel = "B1"
	LevelB2 CEFRLevel = "B2"
	LevelC1 CEFRLevel = "C1"
	LevelC2 CEFRLevel = "C2"
)

// CEFRLevels 按从低到高排列的全部等级
var CEFRLevels = []CEFRLevel{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

func (l CEFRLevel) Valid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// Index 返回等级序号（A1=0 … C2=5），非法等级返回 -1
func (l CEFRLevel) Index() int {
	for i, v := range CEFRLevels {
		if v == l {
			return i
		}
	}
	return -1
}

// Next 返回紧邻的下一个等级；C2 没有下一级
func (l CEFRLevel) Next() (CEFRLevel, bool) {
	idx := l.Index()
	if idx < 0 || idx >= len(CEFRLevels)-1 {
		return "", false
	}
	return CEFRLevels[idx+1], true
}

// SkillModule 技能模块
type SkillModule string

const (
	ModuleReading     SkillModule = "reading"
	ModuleListening   SkillModule = "listening"
	ModuleSpeaking    SkillModule = "speaking"
	ModuleWriting     SkillModule = "writing"
	ModuleTranslation SkillModule = "translation"
)

// AssessedModules 参与等级评估的四个核心技能，顺序固定（用于并列时的确定性取舍）
var AssessedModules = []SkillModule{ModuleReading, ModuleListening, ModuleSpeaking, ModuleWriting}

func (m SkillModule) Valid() bool {
	switch m {
	case ModuleReading, ModuleListening, ModuleSpeaking, ModuleWriting, ModuleTranslation:
		return true
	}
	return false
}

// Assessed 判断该模块是否计入四维能力评估（translation 只计入总量统计）
func (m SkillModule) Assessed() bool {
	for _, v := range AssessedModules {
		if v == m {
			return true
		}
	}
	return false
}

// ReviewOutcome 单词复习反馈
type ReviewOutcome string

const (
	OutcomeUnknown  ReviewOutcome = "unknown"
	OutcomeFamiliar ReviewOutcome = "familiar"
	OutcomeKnown    ReviewOutcome = "known"
)

func (o ReviewOutcome) Valid() bool {
	switch o {
	case OutcomeUnknown, OutcomeFamiliar, OutcomeKnown:
		return true
	}
	return false
}

// TrendDirection 近期成绩走势
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

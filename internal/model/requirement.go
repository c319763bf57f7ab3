package model

import "fmt"

// LevelRequirement 某等级某模块的晋级门槛
type LevelRequirement struct {
	Accuracy    float64 `mapstructure:"accuracy" json:"accuracy"`         // 0~100
	MinAttempts int     `mapstructure:"min_attempts" json:"minAttempts"` // >= 0
}

// LevelRequirementTable 等级 × 模块 → 门槛。配置加载时构建并校验，之后只读
type LevelRequirementTable map[CEFRLevel]map[SkillModule]LevelRequirement

// Lookup 查询门槛，未配置的组合返回 false
func (t LevelRequirementTable) Lookup(level CEFRLevel, module SkillModule) (LevelRequirement, bool) {
	row, ok := t[level]
	if !ok {
		return LevelRequirement{}, false
	}
	req, ok := row[module]
	return req, ok
}

// Validate 校验表的完整性与单调性：每个核心模块在 A1→C2 上
// 准确率门槛和最少练习次数都必须单调不减
func (t LevelRequirementTable) Validate() error {
	for _, module := range AssessedModules {
		prev := LevelRequirement{Accuracy: -1, MinAttempts: -1}
		for _, level := range CEFRLevels {
			req, ok := t.Lookup(level, module)
			if !ok {
				return fmt.Errorf("level requirement table: missing %s/%s", level, module)
			}
			if req.Accuracy < 0 || req.Accuracy > 100 {
				return fmt.Errorf("level requirement table: %s/%s accuracy %.1f out of range", level, module, req.Accuracy)
			}
			if req.MinAttempts < 0 {
				return fmt.Errorf("level requirement table: %s/%s min_attempts %d negative", level, module, req.MinAttempts)
			}
			if req.Accuracy < prev.Accuracy || req.MinAttempts < prev.MinAttempts {
				return fmt.Errorf("level requirement table: %s/%s threshold lower than previous level", level, module)
			}
			prev = req
		}
	}
	return nil
}

// DefaultLevelRequirements 内置门槛表，配置文件可整体覆盖
func DefaultLevelRequirements() LevelRequirementTable {
	base := map[CEFRLevel]LevelRequirement{
		LevelA1: {Accuracy: 50, MinAttempts: 5},
		LevelA2: {Accuracy: 60, MinAttempts: 10},
		LevelB1: {Accuracy: 70, MinAttempts: 15},
		LevelB2: {Accuracy: 80, MinAttempts: 25},
		LevelC1: {Accuracy: 85, MinAttempts: 40},
		LevelC2: {Accuracy: 90, MinAttempts: 60},
	}

	table := make(LevelRequirementTable, len(CEFRLevels))
	for level, req := range base {
		row := make(map[SkillModule]LevelRequirement, len(AssessedModules))
		for _, module := range AssessedModules {
			row[module] = req
		}
		table[level] = row
	}
	return table
}

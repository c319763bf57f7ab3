package engine

import (
	"time"

	"english_edu_backend/internal/model"
)

// Decide 把四个模块的评估合并成总体评估与晋级判定。
// 调用方按 model.AssessedModules 的顺序填充四个元素。
// 总体等级取短板：学习者的水平只能按最弱的技能算。
func Decide(assessments []model.ModuleAssessment, now time.Time) model.ProficiencyAssessment {
	overall := assessments[0].CurrentLevel
	canUpgrade := true
	var progressSum float64

	weakest, strongest := 0, 0
	for i, a := range assessments {
		if a.CurrentLevel.Index() < overall.Index() {
			overall = a.CurrentLevel
		}
		progress := a.NextLevelRequirement.CurrentProgress
		progressSum += progress
		if progress < 100 {
			canUpgrade = false
		}

		if weakerThan(a, assessments[weakest]) {
			weakest = i
		}
		// 最强者并列时保留靠后的模块，与最弱者的取舍方向相反
		if !weakerThan(a, assessments[strongest]) {
			strongest = i
		}
	}

	upgrade := model.LevelUpgrade{
		CanUpgrade:      canUpgrade,
		OverallProgress: progressSum / float64(len(assessments)),
	}
	if next, ok := overall.Next(); ok {
		upgrade.NextLevel = &next
	} else {
		// 已是 C2，无级可升
		upgrade.CanUpgrade = false
	}

	return model.ProficiencyAssessment{
		OverallLevel:    overall,
		Modules:         assessments,
		LevelUpgrade:    upgrade,
		WeakestModule:   assessments[weakest].Module,
		StrongestModule: assessments[strongest].Module,
		GeneratedAt:     now,
	}
}

// weakerThan 先比进度，再比原始准确率；都相同则不算更弱（保留枚举顺序靠前者）
func weakerThan(a, b model.ModuleAssessment) bool {
	if a.NextLevelRequirement.CurrentProgress != b.NextLevelRequirement.CurrentProgress {
		return a.NextLevelRequirement.CurrentProgress < b.NextLevelRequirement.CurrentProgress
	}
	return a.Accuracy < b.Accuracy
}

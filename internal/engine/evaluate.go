package engine

import (
	"english_edu_backend/internal/model"
)

// trendSampleSize 走势判定取最近 N 条与再往前 N 条比较
const trendSampleSize = 3

// trendDelta 平均分相差超过该值才视为上升/下降
const trendDelta = 2.0

// Evaluate 把某模块的窗口统计对照门槛表映射为该模块的评估结果。
// history 是该模块带成绩记录的准确率序列，按时间从新到旧排列（用于走势判定）。
func Evaluate(module model.SkillModule, agg AggregateResult, history []float64, table model.LevelRequirementTable) model.ModuleAssessment {
	assessment := model.ModuleAssessment{
		Module:          module,
		CurrentLevel:    model.LevelA1, // 学习者始终有保底等级
		Accuracy:        agg.AverageAccuracy,
		TotalAttempts:   agg.TotalAttempts,
		CorrectAttempts: agg.CorrectAttempts,
		RecentTrend:     Trend(history),
	}

	// 从 A1 向上逐级判定，首个不达标的等级终止扫描
	for _, level := range model.CEFRLevels {
		req, ok := table.Lookup(level, module)
		if !ok {
			break
		}
		if agg.AverageAccuracy < req.Accuracy || agg.TotalAttempts < req.MinAttempts {
			break
		}
		assessment.CurrentLevel = level
	}

	next, hasNext := assessment.CurrentLevel.Next()
	if !hasNext {
		// C2 封顶：没有下一级，进度视为 100
		assessment.NextLevelRequirement = model.NextLevelRequirement{CurrentProgress: 100}
		return assessment
	}

	req, ok := table.Lookup(next, module)
	if !ok {
		assessment.NextLevelRequirement = model.NextLevelRequirement{CurrentProgress: 100}
		return assessment
	}

	target := req.Accuracy
	minAttempts := req.MinAttempts
	assessment.NextLevelRequirement = model.NextLevelRequirement{
		TargetAccuracy:  &target,
		MinimumAttempts: &minAttempts,
		CurrentProgress: progressTowards(agg.AverageAccuracy, agg.TotalAttempts, req),
	}
	return assessment
}

// progressTowards 取准确率和练习量两个维度中较落后的一项作为进度瓶颈
func progressTowards(accuracy float64, attempts int, req model.LevelRequirement) float64 {
	accuracyRatio := 1.0
	if req.Accuracy > 0 {
		accuracyRatio = accuracy / req.Accuracy
	}
	attemptRatio := 1.0
	if req.MinAttempts > 0 {
		attemptRatio = float64(attempts) / float64(req.MinAttempts)
	}

	ratio := accuracyRatio
	if attemptRatio < ratio {
		ratio = attemptRatio
	}
	if ratio < 0 {
		ratio = 0
	}
	progress := ratio * 100
	if progress > 100 {
		progress = 100
	}
	return progress
}

// Trend 比较最近 3 条成绩与再往前 3 条的平均分。样本不足 6 条一律视为平稳。
// accuracies 按时间从新到旧排列。
func Trend(accuracies []float64) model.TrendDirection {
	if len(accuracies) < trendSampleSize*2 {
		return model.TrendStable
	}

	recent := mean(accuracies[:trendSampleSize])
	previous := mean(accuracies[trendSampleSize : trendSampleSize*2])

	switch diff := recent - previous; {
	case diff > trendDelta:
		return model.TrendUp
	case diff < -trendDelta:
		return model.TrendDown
	default:
		return model.TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

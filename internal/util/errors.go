package util

import "errors"

var (
	ErrLearnerNotFound = errors.New("学习者不存在")
	ErrWordNotFound    = errors.New("生词不存在")
	ErrWordExists      = errors.New("该单词已在生词本中")
	ErrInvalidModule   = errors.New("无效的技能模块")
	ErrInvalidOutcome  = errors.New("无效的复习结果")
	ErrInvalidAccuracy = errors.New("准确率必须在 0 到 100 之间")
	ErrInvalidTimeSpan = errors.New("练习时长不能为负数")
)

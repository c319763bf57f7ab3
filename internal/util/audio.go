package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// AudioInfo 存储录音信息
type AudioInfo struct {
	Duration float64 `json:"duration"` // 录音时长（秒）
	Format   string  `json:"format"`
	Size     int64   `json:"size"`
}

// GetAudioInfo 使用ffmpeg-go库探测口语录音的时长等信息
func GetAudioInfo(audioPath string) (*AudioInfo, error) {
	fileInfo, err := os.Stat(audioPath)
	if err != nil {
		return nil, fmt.Errorf("录音文件不存在: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(audioPath)
	if err != nil {
		return nil, fmt.Errorf("获取录音信息失败: %v", err)
	}

	var result struct {
		Format struct {
			Duration string `json:"duration"`
			Size     string `json:"size"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}

	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("解析录音信息失败: %v", err)
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		duration = 0
	}

	size, err := strconv.ParseInt(result.Format.Size, 10, 64)
	if err != nil {
		size = fileInfo.Size()
	}

	return &AudioInfo{
		Duration: duration,
		Format:   result.Format.Format,
		Size:     size,
	}, nil
}

package util

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// ValidateMimeType 深度校验文件 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "audio/", "application/octet-stream"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsAudio 检测是否为音频（浏览器录音的 webm 容器会被识别成 video/webm）
func IsAudio(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeAudio) || mimeType == "video/webm"
}

package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 音频上传相关常量
const (
	MimeAudio       = "audio/"
	MimeVideo       = "video/" // 浏览器录音常见 webm 容器会被识别成 video/webm
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedAudioExtensions = []string{".mp3", ".wav", ".ogg", ".webm", ".m4a", ".aac"}

	// 单个口语录音上限 20MB
	MaxAudioUploadBytes int64 = 20 << 20
)

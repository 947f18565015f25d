package _const

import "time"

// 时间相关常量
const (
	// 识别服务相关时间常量
	OracleCallTimeout   = 10 * time.Second       // 单次识别调用超时时间
	OracleRetryCount    = 2                      // 识别失败重试次数
	OracleRetryInterval = 300 * time.Millisecond // 识别重试间隔

	// 视频采样相关常量
	MinFramesPerDigit = 3                // 每个数字停留期内最少采样帧数
	FfmpegWaitTimeout = 60 * time.Second // ffmpeg 解码最长等待时间

	// 拟人打字相关时间常量
	MinKeystrokeDelayMs   = 10.0  // 单次按键最小间隔（毫秒）
	TypoNoticeMinPauseMs  = 200.0 // 发现打错后的最短反应停顿（毫秒）
	TypoNoticeMaxPauseMs  = 500.0 // 发现打错后的最长反应停顿（毫秒）
	CorrectionMinPauseMs  = 100.0 // 退格后补打正确字符前的最短停顿（毫秒）
	CorrectionMaxPauseMs  = 200.0 // 退格后补打正确字符前的最长停顿（毫秒）
	CharsPerWord          = 5.0   // WPM换算标准：每词5个字符
	MsPerMinute           = 60000.0
)

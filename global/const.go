package global

const (
	// 视频采样相关默认常量
	DefaultSamplingFps               = 5     // 默认抽帧帧率
	DefaultBlankLuminanceThreshold   = 250   // 空白判定亮度阈值（>=该值视为背景亮像素）
	DefaultBlankPixelFraction        = 0.999 // 空白判定亮像素占比
	DefaultContentLuminanceThreshold = 200   // 内容判定亮度阈值（<该值视为字形暗像素）
	DefaultContentRowFraction        = 0.005 // 行内暗像素占比阈值
	DefaultEdgeMarginFraction        = 0.10  // 上下边缘安全边距占比
)

const (
	// 拟人打字相关默认常量
	DefaultAverageWPM              = 70.0   // 默认平均打字速度（WPM）
	DefaultWpmStdDev               = 17.5   // WPM标准差
	DefaultTypoRate                = 0.01   // 打错概率
	DefaultTypoCorrectionRate      = 0.96   // 打错后修正概率
	DefaultWordBoundaryPauseMs     = 300.0  // 词边界停顿基准（毫秒）
	DefaultSentenceBoundaryPauseMs = 800.0  // 句边界停顿基准（毫秒）
	DefaultLongPauseChance         = 0.05   // 随机长停顿概率
	DefaultLongPauseMaxMs          = 2000.0 // 随机长停顿上限（毫秒）
)

const (
	// 识别服务相关常量
	DefaultVisionServiceHost = "127.0.0.1" // 识别服务主机地址
	DefaultVisionServicePort = 1224        // 识别服务端口号
	DefaultOracleConcurrency = 4           // 识别并发上限
)

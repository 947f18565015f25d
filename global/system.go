package global

import "fmt"

// VideoConfig 视频帧可见性判定配置
type VideoConfig struct {
	SamplingFps               int     `json:"sampling_fps" yaml:"sampling_fps"`
	BlankLuminanceThreshold   int     `json:"blank_luminance_threshold" yaml:"blank_luminance_threshold"`
	BlankPixelFraction        float64 `json:"blank_pixel_fraction" yaml:"blank_pixel_fraction"`
	ContentLuminanceThreshold int     `json:"content_luminance_threshold" yaml:"content_luminance_threshold"`
	ContentRowFraction        float64 `json:"content_row_fraction" yaml:"content_row_fraction"`
	EdgeMarginFraction        float64 `json:"edge_margin_fraction" yaml:"edge_margin_fraction"`
}

// TypingConfig 拟人打字配置
type TypingConfig struct {
	AverageWPM              float64 `json:"average_wpm" yaml:"average_wpm"`
	WpmStdDev               float64 `json:"wpm_std_dev" yaml:"wpm_std_dev"`
	TypoRate                float64 `json:"typo_rate" yaml:"typo_rate"`
	TypoCorrectionRate      float64 `json:"typo_correction_rate" yaml:"typo_correction_rate"`
	WordBoundaryPauseMs     float64 `json:"word_boundary_pause_ms" yaml:"word_boundary_pause_ms"`
	SentenceBoundaryPauseMs float64 `json:"sentence_boundary_pause_ms" yaml:"sentence_boundary_pause_ms"`
	LongPauseChance         float64 `json:"long_pause_chance" yaml:"long_pause_chance"`
	LongPauseMaxMs          float64 `json:"long_pause_max_ms" yaml:"long_pause_max_ms"`
}

// OracleConfig 数字识别服务配置
type OracleConfig struct {
	Provider    string `json:"provider" yaml:"provider"` // vision / tesseract
	VisionURL   string `json:"vision_url" yaml:"vision_url"`
	Concurrency int    `json:"concurrency" yaml:"concurrency"`
}

// Config 机器人总配置
type Config struct {
	ServerPort int          `json:"server_port" yaml:"server_port"`
	Video      VideoConfig  `json:"video" yaml:"video"`
	Typing     TypingConfig `json:"typing" yaml:"typing"`
	Oracle     OracleConfig `json:"oracle" yaml:"oracle"`
}

var BotConfig Config

// DefaultConfig 返回带默认值的配置
func DefaultConfig() Config {
	return Config{
		ServerPort: 8080,
		Video: VideoConfig{
			SamplingFps:               DefaultSamplingFps,
			BlankLuminanceThreshold:   DefaultBlankLuminanceThreshold,
			BlankPixelFraction:        DefaultBlankPixelFraction,
			ContentLuminanceThreshold: DefaultContentLuminanceThreshold,
			ContentRowFraction:        DefaultContentRowFraction,
			EdgeMarginFraction:        DefaultEdgeMarginFraction,
		},
		Typing: TypingConfig{
			AverageWPM:              DefaultAverageWPM,
			WpmStdDev:               DefaultWpmStdDev,
			TypoRate:                DefaultTypoRate,
			TypoCorrectionRate:      DefaultTypoCorrectionRate,
			WordBoundaryPauseMs:     DefaultWordBoundaryPauseMs,
			SentenceBoundaryPauseMs: DefaultSentenceBoundaryPauseMs,
			LongPauseChance:         DefaultLongPauseChance,
			LongPauseMaxMs:          DefaultLongPauseMaxMs,
		},
		Oracle: OracleConfig{
			Provider:    "vision",
			VisionURL:   fmt.Sprintf("http://%s:%d/api/ocr", DefaultVisionServiceHost, DefaultVisionServicePort),
			Concurrency: DefaultOracleConcurrency,
		},
	}
}

// Validate 校验配置合法性（非法配置在处理开始前直接失败）
func (c *Config) Validate() error {
	if c.Video.SamplingFps <= 0 {
		return fmt.Errorf("sampling_fps 必须为正数: %d", c.Video.SamplingFps)
	}
	if c.Video.EdgeMarginFraction <= 0 || c.Video.EdgeMarginFraction >= 0.5 {
		return fmt.Errorf("edge_margin_fraction 必须在 (0, 0.5) 区间内: %v", c.Video.EdgeMarginFraction)
	}
	if c.Video.BlankPixelFraction <= 0 || c.Video.BlankPixelFraction > 1 {
		return fmt.Errorf("blank_pixel_fraction 必须在 (0, 1] 区间内: %v", c.Video.BlankPixelFraction)
	}
	return c.Typing.Validate()
}

// Validate 校验打字配置（负数概率等非法值不允许进入状态机）
func (t *TypingConfig) Validate() error {
	if t.AverageWPM <= 0 {
		return fmt.Errorf("average_wpm 必须为正数: %v", t.AverageWPM)
	}
	if t.WpmStdDev < 0 {
		return fmt.Errorf("wpm_std_dev 不能为负数: %v", t.WpmStdDev)
	}
	if t.TypoRate < 0 || t.TypoRate > 1 {
		return fmt.Errorf("typo_rate 必须在 [0, 1] 区间内: %v", t.TypoRate)
	}
	if t.TypoCorrectionRate < 0 || t.TypoCorrectionRate > 1 {
		return fmt.Errorf("typo_correction_rate 必须在 [0, 1] 区间内: %v", t.TypoCorrectionRate)
	}
	if t.LongPauseChance < 0 || t.LongPauseChance > 1 {
		return fmt.Errorf("long_pause_chance 必须在 [0, 1] 区间内: %v", t.LongPauseChance)
	}
	if t.WordBoundaryPauseMs < 0 || t.SentenceBoundaryPauseMs < 0 || t.LongPauseMaxMs < 0 {
		return fmt.Errorf("停顿时间配置不能为负数")
	}
	return nil
}

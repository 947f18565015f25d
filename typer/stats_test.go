package typer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Events)
	assert.Equal(t, 0.0, s.TotalMs)
}

func TestSummarizeCounts(t *testing.T) {
	events := []KeystrokeEvent{
		{Char: 'h', DelayBefore: 100 * time.Millisecond, Kind: EventNormal},
		{Char: 'u', DelayBefore: 200 * time.Millisecond, Kind: EventTypoChar},
		{DelayBefore: 300 * time.Millisecond, Kind: EventBackspace},
		{Char: 'i', DelayBefore: 200 * time.Millisecond, Kind: EventCorrection},
	}

	s := Summarize(events)
	assert.Equal(t, 4, s.Events)
	assert.Equal(t, 1, s.Typos)
	assert.Equal(t, 1, s.Corrections)
	assert.InDelta(t, 800.0, s.TotalMs, 1e-9)
	assert.InDelta(t, 200.0, s.MeanIKIMs, 1e-9)
	assert.InDelta(t, 200.0, s.MedianIKIMs, 1e-9) // 偶数个取中间两值均值

	// 净输入2字符（打错+退格相抵，修正补回），800ms -> 0.4词/每分钟30
	assert.InDelta(t, 30.0, s.EffectiveWPM, 1e-9)
}

// 固定间隔事件流的有效WPM接近配置目标
func TestSummarizeEffectiveWPMMatchesConfig(t *testing.T) {
	cfg := steadyTypingCfg() // 70WPM固定间隔
	s := newTestScheduler(t, cfg, 8)

	summary := Summarize(s.Rehearse("abcdefghijklmnopqrst"))
	assert.InDelta(t, cfg.AverageWPM, summary.EffectiveWPM, 1.0)
}

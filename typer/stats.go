package typer

import (
	"sort"

	_const "survey_bot/internal/const"
)

// CadenceSummary 击键节奏统计
// 把生成的事件流对准真人节奏区间的快速体检
type CadenceSummary struct {
	Events       int
	Typos        int
	Corrections  int
	MeanIKIMs    float64
	MedianIKIMs  float64
	EffectiveWPM float64 // 按净输入字符数换算
	TotalMs      float64
}

// Summarize 统计一段击键事件流的节奏指标
func Summarize(events []KeystrokeEvent) CadenceSummary {
	s := CadenceSummary{Events: len(events)}
	if len(events) == 0 {
		return s
	}

	intervals := make([]float64, 0, len(events))
	chars := 0
	for _, ev := range events {
		ms := float64(ev.DelayBefore.Microseconds()) / 1000.0
		intervals = append(intervals, ms)
		s.TotalMs += ms
		switch ev.Kind {
		case EventTypoChar:
			s.Typos++
			chars++
		case EventCorrection:
			s.Corrections++
			chars++
		case EventBackspace:
			chars--
		case EventNormal:
			chars++
		}
	}

	var sum float64
	for _, v := range intervals {
		sum += v
	}
	s.MeanIKIMs = sum / float64(len(intervals))

	sorted := append([]float64(nil), intervals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		s.MedianIKIMs = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		s.MedianIKIMs = sorted[mid]
	}

	if s.TotalMs > 0 && chars > 0 {
		minutes := s.TotalMs / _const.MsPerMinute
		s.EffectiveWPM = float64(chars) / _const.CharsPerWord / minutes
	}
	return s
}

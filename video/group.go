package video

import (
	"fmt"
	"math"
)

// FrameGroup 连续完整可见帧构成的分组，对应一次数字上屏
type FrameGroup struct {
	StartIndex     int        // 组内首帧的原始帧序号
	EndIndex       int        // 组内末帧的原始帧序号
	Members        int        // 组内帧数
	Representative Classified // 最居中的代表帧
}

// Group 扫描分类结果，切分完整可见帧分组并选出代表帧
// 新组在「前一帧不是完整可见（或序列开头）」的完整可见帧处开始，
// 在下一个非完整可见帧（或序列结尾）处结束。
// 相邻两组之间必然隔着非完整可见帧，保证屏幕上先后出现的相同数字不会被并组。
// 注意：空白帧在进入本函数前已被过滤，组边界同时依据原始帧序号的断档判定，
// 隔着空白帧的两段完整可见帧不会因为切片里相邻而被并组。
func Group(classified []Classified) []FrameGroup {
	var groups []FrameGroup
	var current []Classified

	flush := func() {
		if len(current) == 0 {
			return
		}
		groups = append(groups, FrameGroup{
			StartIndex:     current[0].Frame.Index,
			EndIndex:       current[len(current)-1].Frame.Index,
			Members:        len(current),
			Representative: pickRepresentative(current),
		})
		current = nil
	}

	for _, c := range classified {
		if c.Label != LabelFullyVisible {
			flush()
			continue
		}
		if len(current) > 0 && c.Frame.Index != current[len(current)-1].Frame.Index+1 {
			// 原始帧序号断档，说明中间隔着被过滤掉的帧
			flush()
		}
		current = append(current, c)
	}
	flush()

	fmt.Printf("帧分组完成: %d个完整可见分组\n", len(groups))
	return groups
}

// pickRepresentative 选取组内上下边距差最小（垂直最居中）的帧
// 得分相同取帧序最早的一帧
func pickRepresentative(members []Classified) Classified {
	best := members[0]
	bestScore := math.Abs(best.TopMargin - best.BottomMargin)
	for _, c := range members[1:] {
		score := math.Abs(c.TopMargin - c.BottomMargin)
		if score < bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// Representatives 提取各组代表帧（保持时间顺序）
func Representatives(groups []FrameGroup) []Frame {
	reps := make([]Frame, 0, len(groups))
	for _, g := range groups {
		reps = append(reps, g.Representative.Frame)
	}
	return reps
}

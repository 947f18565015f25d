package video

import (
	"fmt"
	"sync"

	"survey_bot/global"
)

// IsBlank 判定帧是否为空白帧
// 亮像素（亮度>=空白阈值）占比达到配置下限即认为与背景不可区分
func IsBlank(f Frame, cfg global.VideoConfig) bool {
	total := f.Width * f.Height
	if total == 0 {
		return true
	}
	bright := 0
	for _, p := range f.Pix {
		if int(p) >= cfg.BlankLuminanceThreshold {
			bright++
		}
	}
	return float64(bright)/float64(total) >= cfg.BlankPixelFraction
}

// FilterBlank 过滤空白帧（保持原有顺序）
// 全部为空白帧时返回 ErrBlankVideo
func FilterBlank(frames []Frame, cfg global.VideoConfig) ([]Frame, error) {
	kept := make([]Frame, 0, len(frames))
	for _, f := range frames {
		if !IsBlank(f, cfg) {
			kept = append(kept, f)
		}
	}
	if len(frames) > 0 && len(kept) == 0 {
		return nil, ErrBlankVideo
	}
	fmt.Printf("空白帧过滤完成: %d帧 -> %d帧\n", len(frames), len(kept))
	return kept, nil
}

// ContentBounds 计算字形内容的垂直包围盒
// 某行暗像素（亮度<内容阈值）占比达到行阈值即视为内容行；无内容行时 ok 为 false
func ContentBounds(f Frame, cfg global.VideoConfig) (box BoundingBox, ok bool) {
	yMin := f.Height
	yMax := -1
	for y := 0; y < f.Height; y++ {
		dark := 0
		row := f.Pix[y*f.Width : (y+1)*f.Width]
		for _, p := range row {
			if int(p) < cfg.ContentLuminanceThreshold {
				dark++
			}
		}
		if float64(dark)/float64(f.Width) >= cfg.ContentRowFraction {
			if y < yMin {
				yMin = y
			}
			yMax = y
		}
	}
	if yMax < 0 {
		return BoundingBox{}, false
	}
	return BoundingBox{YMin: yMin, YMax: yMax}, true
}

// Classify 对单帧做可见性分类
// 纯函数：相同的像素缓冲与配置必然得到相同的标签
func Classify(f Frame, cfg global.VideoConfig) Classified {
	if IsBlank(f, cfg) {
		return Classified{Frame: f, Label: LabelBlank, TopMargin: 1.0, BottomMargin: 1.0}
	}
	box, ok := ContentBounds(f, cfg)
	if !ok {
		// 非空白但找不到内容行，按空白处理
		return Classified{Frame: f, Label: LabelBlank, TopMargin: 1.0, BottomMargin: 1.0}
	}

	topMargin := float64(box.YMin) / float64(f.Height)
	bottomMargin := float64(f.Height-1-box.YMax) / float64(f.Height)
	threshold := cfg.EdgeMarginFraction

	var label VisibilityLabel
	switch {
	case topMargin >= threshold && bottomMargin >= threshold:
		label = LabelFullyVisible
	case topMargin < threshold && bottomMargin >= threshold:
		// 字形贴顶边，正在滚出
		label = LabelPartialBottom
	default:
		// 字形贴底边正在进入；上下同时贴边的歧义帧也保守归入此类，
		// 绝不放进 FullyVisible
		label = LabelPartialTop
	}

	return Classified{
		Frame:        f,
		Label:        label,
		Box:          box,
		TopMargin:    topMargin,
		BottomMargin: bottomMargin,
	}
}

// ClassifyAll 并发分类整个帧序列
// 各帧之间无共享状态，可并行计算；结果按帧序写回，不依赖完成顺序
func ClassifyAll(frames []Frame, cfg global.VideoConfig) []Classified {
	results := make([]Classified, len(frames))
	var wg sync.WaitGroup
	for i := range frames {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Classify(frames[i], cfg)
		}(i)
	}
	wg.Wait()
	return results
}

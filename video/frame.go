package video

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"time"
)

// Frame 单帧灰度图像
// 由采样器产出后不再修改，Pix 为按行排列的灰度像素（每像素一个字节）
type Frame struct {
	Index     int           // 帧在序列中的位置
	Timestamp time.Duration // 相对视频起点的时间
	Width     int
	Height    int
	Pix       []byte
}

// At 返回 (x, y) 处的灰度值
func (f Frame) At(x, y int) byte {
	return f.Pix[y*f.Width+x]
}

// EncodePNG 将帧编码为PNG字节，供识别服务与调试落盘使用
func (f Frame) EncodePNG() ([]byte, error) {
	img := &image.Gray{
		Pix:    f.Pix,
		Stride: f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("帧编码PNG失败: %v", err)
	}
	return buf.Bytes(), nil
}

// BoundingBox 帧内字形内容的垂直包围盒（含 YMin 与 YMax 两行）
type BoundingBox struct {
	YMin int
	YMax int
}

// VisibilityLabel 帧可见性分类
type VisibilityLabel int

const (
	LabelBlank         VisibilityLabel = iota // 空白帧
	LabelPartialTop                           // 字形贴底边（正在进入）
	LabelPartialBottom                        // 字形贴顶边（正在退出）
	LabelFullyVisible                         // 完整可见
)

// String 分类名称
func (l VisibilityLabel) String() string {
	switch l {
	case LabelBlank:
		return "Blank"
	case LabelPartialTop:
		return "PartialTop"
	case LabelPartialBottom:
		return "PartialBottom"
	case LabelFullyVisible:
		return "FullyVisible"
	default:
		return fmt.Sprintf("VisibilityLabel(%d)", int(l))
	}
}

// Classified 帧与其分类结果
type Classified struct {
	Frame        Frame
	Label        VisibilityLabel
	Box          BoundingBox
	TopMargin    float64 // 顶部边距占高度比例
	BottomMargin float64 // 底部边距占高度比例
}

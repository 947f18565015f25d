package video

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/vova616/screenshot"

	"survey_bot/util"
)

// LiveRegionCapture 屏幕区域实时采样
// 针对在浏览器窗口内直接播放、无法拿到视频文件的校验场景：
// 对固定屏幕区域按帧率连续截图，产出与文件解码一致的灰度帧序列
type LiveRegionCapture struct {
	Region image.Rectangle // 视频在屏幕上的位置
	Fps    int             // 采样帧率
}

// Capture 采样 durationSeconds 秒的屏幕帧
func (c *LiveRegionCapture) Capture(ctx context.Context, durationSeconds float64) ([]Frame, error) {
	if c.Fps <= 0 {
		return nil, fmt.Errorf("采样帧率非法: %d", c.Fps)
	}
	total := int(durationSeconds * float64(c.Fps))
	if total <= 0 {
		return nil, fmt.Errorf("采样时长非法: %.2f秒", durationSeconds)
	}

	fmt.Printf("开始屏幕区域采样: %v, fps=%d, 共%d帧\n", c.Region, c.Fps, total)
	interval := time.Second / time.Duration(c.Fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	frames := make([]Frame, 0, total)
	for i := 0; i < total; i++ {
		img, err := screenshot.CaptureRect(c.Region)
		if err != nil {
			return nil, fmt.Errorf("第%d帧屏幕截取失败: %v", i+1, err)
		}
		gray := util.GrayFromImage(img)
		frames = append(frames, Frame{
			Index:     i,
			Timestamp: time.Duration(i) * interval,
			Width:     gray.Rect.Dx(),
			Height:    gray.Rect.Dy(),
			Pix:       gray.Pix,
		})

		if i == total-1 {
			break
		}
		select {
		case <-ctx.Done():
			// 取消发生在帧边界，已采帧序列仍然可用
			fmt.Printf("屏幕采样被取消: 已采%d帧\n", len(frames))
			return frames, ctx.Err()
		case <-ticker.C:
		}
	}
	return frames, nil
}

package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"survey_bot/global"
	_const "survey_bot/internal/const"
)

// ErrInsufficientSampleRate 采样率不足：每个数字停留期内采不够帧数
var ErrInsufficientSampleRate = errors.New("采样率不足: 每个数字停留期内采样帧数低于下限")

// ErrBlankVideo 整段视频全部为空白帧
var ErrBlankVideo = errors.New("视频内容为空: 所有帧均为空白")

// CheckSampleRate 校验采样率约束
// showSeconds 为单个数字已知的停留时长（秒），要求 fps*showSeconds 不低于最少帧数
func CheckSampleRate(fps int, showSeconds float64) error {
	if showSeconds <= 0 {
		return nil // 停留时长未知时跳过校验
	}
	if float64(fps)*showSeconds < _const.MinFramesPerDigit {
		return fmt.Errorf("%w: fps=%d, show=%.2fs, 需要至少%d帧",
			ErrInsufficientSampleRate, fps, showSeconds, _const.MinFramesPerDigit)
	}
	return nil
}

// EnsureFfmpeg 检查 ffmpeg 是否可用
func EnsureFfmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("未找到 ffmpeg，请先安装并加入 PATH: %v", err)
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return fmt.Errorf("未找到 ffprobe，请先安装并加入 PATH: %v", err)
	}
	return nil
}

// Sample 将视频字节流按固定帧率解码为灰度帧序列
// showSeconds 为单个数字的已知停留时长（秒），用于采样率校验；未知时传0
// 解码会话作用域受限：临时文件在成功或失败时都会被释放
func Sample(ctx context.Context, data []byte, showSeconds float64, cfg global.VideoConfig) ([]Frame, error) {
	if err := CheckSampleRate(cfg.SamplingFps, showSeconds); err != nil {
		return nil, err
	}
	if err := EnsureFfmpeg(); err != nil {
		return nil, err
	}

	// 落盘到临时文件供 ffmpeg 读取
	tempDir, err := os.MkdirTemp("", "video-solve-")
	if err != nil {
		return nil, fmt.Errorf("创建临时目录失败: %v", err)
	}
	defer os.RemoveAll(tempDir)

	videoPath := path.Join(tempDir, uuid.New().String()+".bin")
	if err = os.WriteFile(videoPath, data, 0644); err != nil {
		return nil, fmt.Errorf("写入临时视频文件失败: %v", err)
	}

	// 先用 ffprobe 获取画面尺寸
	width, height, err := probeDimensions(ctx, videoPath)
	if err != nil {
		return nil, err
	}

	// 再用 ffmpeg 解码为原始灰度帧流
	decodeCtx, cancel := context.WithTimeout(ctx, _const.FfmpegWaitTimeout)
	defer cancel()

	cmd := exec.CommandContext(decodeCtx, "ffmpeg",
		"-i", videoPath,
		"-vf", fmt.Sprintf("fps=%d,format=gray", cfg.SamplingFps),
		"-f", "rawvideo", "-pix_fmt", "gray",
		"pipe:1",
	)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err = cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg 解码失败: %v", err)
	}

	frames, err := splitRawFrames(stdout.Bytes(), width, height, cfg.SamplingFps)
	if err != nil {
		return nil, err
	}
	fmt.Printf("视频解码完成: %dx%d, fps=%d, 共%d帧\n", width, height, cfg.SamplingFps, len(frames))
	return frames, nil
}

// probeDimensions 通过 ffprobe 读取视频画面宽高
func probeDimensions(ctx context.Context, videoPath string) (int, int, error) {
	probeCtx, cancel := context.WithTimeout(ctx, _const.FfmpegWaitTimeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, "ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=s=x:p=0",
		videoPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe 获取视频尺寸失败: %v", err)
	}
	dims := strings.Split(strings.TrimSpace(string(out)), "x")
	if len(dims) < 2 {
		return 0, 0, fmt.Errorf("ffprobe 输出格式异常: %q", string(out))
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil {
		return 0, 0, fmt.Errorf("解析视频宽度失败: %v", err)
	}
	height, err := strconv.Atoi(dims[1])
	if err != nil {
		return 0, 0, fmt.Errorf("解析视频高度失败: %v", err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("视频尺寸非法: %dx%d", width, height)
	}
	return width, height, nil
}

// splitRawFrames 将原始灰度字节流按帧尺寸切分
func splitRawFrames(raw []byte, width, height, fps int) ([]Frame, error) {
	frameSize := width * height
	if frameSize <= 0 {
		return nil, fmt.Errorf("帧尺寸非法: %dx%d", width, height)
	}
	count := len(raw) / frameSize
	if count == 0 {
		return nil, fmt.Errorf("解码输出为空: 原始数据%d字节不足一帧(%d字节)", len(raw), frameSize)
	}

	frames := make([]Frame, 0, count)
	interval := time.Second / time.Duration(fps)
	for i := 0; i < count; i++ {
		// 每帧持有独立缓冲，切分后原始缓冲即可释放
		pix := make([]byte, frameSize)
		copy(pix, raw[i*frameSize:(i+1)*frameSize])
		frames = append(frames, Frame{
			Index:     i,
			Timestamp: time.Duration(i) * interval,
			Width:     width,
			Height:    height,
			Pix:       pix,
		})
	}
	return frames, nil
}

package oracle

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"regexp"
	"time"

	"golang.org/x/image/draw"

	"survey_bot/model/request"
	"survey_bot/video"
)

var digitRegexp = regexp.MustCompile(`\d`)

// VisionOracle 基于HTTP视觉识别服务的数字识别器
// 帧图像编码为PNG后以Base64 JSON方式提交，响应中提取单个数字
type VisionOracle struct {
	URL     string
	Client  *http.Client
	MaxEdge int // 提交前的最长边限制（0表示不缩放）
}

// NewVisionOracle 创建识别服务客户端
func NewVisionOracle(url string) *VisionOracle {
	return &VisionOracle{
		URL:     url,
		Client:  &http.Client{Timeout: 15 * time.Second},
		MaxEdge: 256,
	}
}

// ReadDigit 识别单帧中的数字
func (o *VisionOracle) ReadDigit(ctx context.Context, frame video.Frame) (rune, error) {
	pngData, err := o.encodeFrame(frame)
	if err != nil {
		return 0, &PermanentError{Err: err}
	}

	// 构造请求体
	jsonData, err := json.Marshal(request.VisionRequest{
		Base64: base64.StdEncoding.EncodeToString(pngData),
		Options: map[string]interface{}{
			"data": map[string]interface{}{
				"format": "text",
			},
		},
	})
	if err != nil {
		return 0, &PermanentError{Err: fmt.Errorf("JSON编码失败: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, &PermanentError{Err: fmt.Errorf("构造请求失败: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		// 网络错误与超时都可重试
		return 0, &TransientError{Err: fmt.Errorf("发送请求失败: %v", err)}
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &TransientError{Err: fmt.Errorf("读取响应失败: %v", err)}
	}

	var result request.VisionResponse
	if err = json.Unmarshal(responseData, &result); err != nil {
		return 0, &TransientError{Err: fmt.Errorf("解析响应JSON失败: %v", err)}
	}

	switch result.Code {
	case request.VisionCodeOK:
		match := digitRegexp.FindString(result.Data)
		if match == "" {
			return 0, &PermanentError{Err: fmt.Errorf("响应中不含数字: %q", result.Data)}
		}
		return rune(match[0]), nil
	case request.VisionCodeNoText:
		// 图片中无文本，重试也不会有结果
		return 0, &PermanentError{Err: fmt.Errorf("图片中无文本")}
	default:
		return 0, &TransientError{Err: fmt.Errorf("识别失败，code: %d, message: %s", result.Code, result.Message)}
	}
}

// encodeFrame 编码帧为PNG，超过最长边限制时先等比缩小
func (o *VisionOracle) encodeFrame(frame video.Frame) ([]byte, error) {
	if o.MaxEdge <= 0 || (frame.Width <= o.MaxEdge && frame.Height <= o.MaxEdge) {
		return frame.EncodePNG()
	}

	src := &image.Gray{
		Pix:    frame.Pix,
		Stride: frame.Width,
		Rect:   image.Rect(0, 0, frame.Width, frame.Height),
	}
	scale := float64(o.MaxEdge) / float64(frame.Width)
	if frame.Height > frame.Width {
		scale = float64(o.MaxEdge) / float64(frame.Height)
	}
	dst := image.NewGray(image.Rect(0, 0,
		int(float64(frame.Width)*scale), int(float64(frame.Height)*scale)))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Rect, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("缩放帧编码PNG失败: %v", err)
	}
	return buf.Bytes(), nil
}

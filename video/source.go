package video

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SourceMeta 视频源元信息
type SourceMeta struct {
	Width           int
	Height          int
	NominalFps      float64
	DurationSeconds float64
	ShowSeconds     float64 // 单个数字的停留时长（秒），未知时为0
}

// VideoSource 视频源：返回原始视频字节与元信息
// 核心只消费字节与元信息，不关心来源
type VideoSource interface {
	Fetch(ctx context.Context) ([]byte, SourceMeta, error)
}

// HTTPVideoSource 从URL下载注意力校验视频
type HTTPVideoSource struct {
	URL    string
	Meta   SourceMeta
	Client *http.Client
}

// NewHTTPVideoSource 创建HTTP视频源
func NewHTTPVideoSource(url string, meta SourceMeta) *HTTPVideoSource {
	return &HTTPVideoSource{
		URL:  url,
		Meta: meta,
		Client: &http.Client{Timeout: 30 * time.Second, Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}},
	}
}

// Fetch 下载视频字节
func (s *HTTPVideoSource) Fetch(ctx context.Context) ([]byte, SourceMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, SourceMeta{}, fmt.Errorf("构造视频下载请求失败: %v", err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, SourceMeta{}, fmt.Errorf("下载视频失败: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, SourceMeta{}, fmt.Errorf("下载视频失败: 状态码%d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, SourceMeta{}, fmt.Errorf("读取视频响应失败: %v", err)
	}
	fmt.Printf("视频下载完成: %s, %d字节\n", s.URL, len(data))
	return data, s.Meta, nil
}

// BytesVideoSource 内存视频源（测试与离线文件场景）
type BytesVideoSource struct {
	Data []byte
	Meta SourceMeta
}

// Fetch 直接返回内存中的字节
func (s *BytesVideoSource) Fetch(ctx context.Context) ([]byte, SourceMeta, error) {
	return s.Data, s.Meta, nil
}

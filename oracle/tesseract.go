package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"survey_bot/video"
)

// TesseractOracle 本地 Tesseract 数字识别器
// 不依赖外部识别服务的离线兜底方案；按单字符模式识别，白名单限定 0-9
type TesseractOracle struct {
	clientFactory func() *gosseract.Client
}

// NewTesseractOracle 创建本地识别器
func NewTesseractOracle() *TesseractOracle {
	return &TesseractOracle{clientFactory: gosseract.NewClient}
}

// ReadDigit 识别单帧中的数字
func (o *TesseractOracle) ReadDigit(ctx context.Context, frame video.Frame) (rune, error) {
	select {
	case <-ctx.Done():
		return 0, &TransientError{Err: ctx.Err()}
	default:
	}

	pngData, err := frame.EncodePNG()
	if err != nil {
		return 0, &PermanentError{Err: err}
	}

	c := o.clientFactory()
	defer c.Close()

	if err = c.SetImageFromBytes(pngData); err != nil {
		return 0, &PermanentError{Err: fmt.Errorf("设置识别图像失败: %v", err)}
	}
	if err = c.SetWhitelist("0123456789"); err != nil {
		return 0, &PermanentError{Err: fmt.Errorf("设置识别白名单失败: %v", err)}
	}
	if err = c.SetPageSegMode(gosseract.PSM_SINGLE_CHAR); err != nil {
		return 0, &PermanentError{Err: fmt.Errorf("设置单字符模式失败: %v", err)}
	}

	text, err := c.Text()
	if err != nil {
		return 0, &TransientError{Err: fmt.Errorf("识别文本失败: %v", err)}
	}
	text = strings.TrimSpace(text)
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return r, nil
		}
	}
	return 0, &PermanentError{Err: fmt.Errorf("未识别到数字: %q", text)}
}

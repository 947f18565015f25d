package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	_const "survey_bot/internal/const"
	"survey_bot/video"
)

// Unknown 未能识别时的占位字符
const Unknown = '?'

// DigitOracle 单字形识别器：输入一帧图像，输出 0-9 中的一个字符
// 识别失败时返回 TransientError（可重试）或 PermanentError（不重试）
type DigitOracle interface {
	ReadDigit(ctx context.Context, frame video.Frame) (rune, error)
}

// TransientError 暂时性识别失败，可以重试
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return fmt.Sprintf("暂时性识别失败: %v", e.Err) }
func (e *TransientError) Unwrap() error { return e.Err }

// PermanentError 永久性识别失败，不再重试
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return fmt.Sprintf("永久性识别失败: %v", e.Err) }
func (e *PermanentError) Unwrap() error { return e.Err }

// IsTransient 判断错误是否可重试
// 未归类的错误（包括超时）按可重试处理
func IsTransient(err error) bool {
	var pe *PermanentError
	return !errors.As(err, &pe)
}

// ReadWithRetry 带超时与有限重试的识别调用
// 暂时性失败最多重试 _const.OracleRetryCount 次；
// 永久性失败立即降级；重试耗尽后同样降级，返回 Unknown 且 ok 为 false
func ReadWithRetry(ctx context.Context, o DigitOracle, frame video.Frame) (digit rune, ok bool) {
	attempts := 1 + _const.OracleRetryCount
	for attempt := 1; attempt <= attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, _const.OracleCallTimeout)
		d, err := o.ReadDigit(callCtx, frame)
		cancel()

		if err == nil {
			return d, true
		}
		if !IsTransient(err) {
			fmt.Printf("帧%d识别永久失败，记为未知: %v\n", frame.Index, err)
			return Unknown, false
		}
		fmt.Printf("帧%d第%d次识别失败: %v\n", frame.Index, attempt, err)
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return Unknown, false
			case <-time.After(_const.OracleRetryInterval):
			}
		}
	}
	fmt.Printf("帧%d重试耗尽，记为未知\n", frame.Index)
	return Unknown, false
}

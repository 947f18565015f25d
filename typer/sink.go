package typer

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/go-vgo/robotgo"
)

// RobotgoSink 面向当前聚焦输入框的系统级按键接收端
// 每个事件只触发一次按键；绝不走剪贴板粘贴路径
type RobotgoSink struct {
	clipboardBefore string
	guardActive     bool
}

// NewRobotgoSink 创建系统按键接收端
// 创建时快照剪贴板内容，用于事后证明整个会话没有碰过剪贴板
func NewRobotgoSink() *RobotgoSink {
	s := &RobotgoSink{}
	if content, err := clipboard.ReadAll(); err == nil {
		s.clipboardBefore = content
		s.guardActive = true
	}
	return s
}

// PressKey 送出单个按键事件
func (s *RobotgoSink) PressKey(ctx context.Context, ev KeystrokeEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if ev.Kind == EventBackspace {
		return robotgo.KeyTap("backspace")
	}

	switch ev.Char {
	case ' ':
		return robotgo.KeyTap("space")
	case '\n':
		return robotgo.KeyTap("enter")
	case '\t':
		return robotgo.KeyTap("tab")
	default:
		// 单字符逐个输入，避免批量写入特征
		robotgo.TypeStr(string(ev.Char))
		return nil
	}
}

// VerifyClipboardUntouched 校验会话期间剪贴板未被改动
// 剪贴板变化意味着某处走了粘贴路径，违反单键事件契约
func (s *RobotgoSink) VerifyClipboardUntouched() error {
	if !s.guardActive {
		return nil
	}
	content, err := clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("读取剪贴板失败: %v", err)
	}
	if content != s.clipboardBefore {
		return fmt.Errorf("剪贴板内容在打字会话期间发生变化")
	}
	return nil
}

package typer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"survey_bot/model/request"
)

// CDPSink 通过 DevTools WebSocket 向浏览器页面派发按键事件
// 每个击键事件对应一对 keyDown/keyUp，逐个派发并等待协议应答，
// 从不调用任何整段赋值或粘贴类接口
type CDPSink struct {
	conn      *websocket.Conn
	sessionID string
	nextID    int
	mu        sync.Mutex
}

// DialCDP 连接浏览器的 DevTools WebSocket 端点
// sessionID 为目标页面的 CDP 会话标识，可为空
func DialCDP(ctx context.Context, wsURL, sessionID string) (*CDPSink, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("连接DevTools失败: %v", err)
	}
	fmt.Printf("DevTools连接成功: %s\n", wsURL)
	return &CDPSink{conn: conn, sessionID: sessionID, nextID: 1}, nil
}

// PressKey 送出单个按键事件（keyDown + keyUp）
func (s *CDPSink) PressKey(ctx context.Context, ev KeystrokeEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, text := cdpKeyFor(ev)
	if err := s.dispatch(ctx, "keyDown", key, text); err != nil {
		return err
	}
	return s.dispatch(ctx, "keyUp", key, "")
}

// dispatch 发送一条 Input.dispatchKeyEvent 命令并等待应答
func (s *CDPSink) dispatch(ctx context.Context, eventType, key, text string) error {
	id := s.nextID
	s.nextID++

	cmd := request.CDPCommand{
		ID:     id,
		Method: "Input.dispatchKeyEvent",
		Params: request.KeyEventParams{
			Type: eventType,
			Key:  key,
			Text: text,
		},
		SessionID: s.sessionID,
	}

	deadline := time.Now().Add(10 * time.Second)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = s.conn.SetWriteDeadline(deadline)
	if err := s.conn.WriteJSON(&cmd); err != nil {
		return fmt.Errorf("发送按键命令失败: %v", err)
	}

	// 等待本条命令的应答，忽略中途到达的事件通知
	_ = s.conn.SetReadDeadline(deadline)
	for {
		var resp request.CDPResponse
		if err := s.conn.ReadJSON(&resp); err != nil {
			return fmt.Errorf("读取按键应答失败: %v", err)
		}
		if resp.ID == 0 {
			continue
		}
		if resp.ID != id {
			continue
		}
		if resp.Error != nil {
			return fmt.Errorf("按键命令被拒绝: %d %s", resp.Error.Code, resp.Error.Message)
		}
		return nil
	}
}

// Close 关闭 DevTools 连接
func (s *CDPSink) Close() error {
	return s.conn.Close()
}

// cdpKeyFor 将击键事件映射为CDP按键名与文本
func cdpKeyFor(ev KeystrokeEvent) (key, text string) {
	if ev.Kind == EventBackspace {
		return "Backspace", ""
	}
	switch ev.Char {
	case '\n':
		return "Enter", ""
	case '\t':
		return "Tab", ""
	default:
		s := string(ev.Char)
		return s, s
	}
}

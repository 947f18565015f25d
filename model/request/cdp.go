package request

// CDPCommand represents a command sent over the DevTools WebSocket
type CDPCommand struct {
	ID        int            `json:"id"`
	Method    string         `json:"method"`
	Params    KeyEventParams `json:"params"`
	SessionID string         `json:"sessionId,omitempty"`
}

// KeyEventParams Input.dispatchKeyEvent 参数
type KeyEventParams struct {
	Type string `json:"type"` // keyDown / keyUp
	Key  string `json:"key"`
	Text string `json:"text,omitempty"`
}

// CDPResponse represents a command response from the DevTools WebSocket
type CDPResponse struct {
	ID    int       `json:"id"`
	Error *CDPError `json:"error,omitempty"`
}

// CDPError represents a protocol-level error
type CDPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

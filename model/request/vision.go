package request

// VisionRequest 识别服务请求结构
type VisionRequest struct {
	Base64  string                 `json:"base64"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// VisionResponse 识别服务响应结构
type VisionResponse struct {
	Code    int     `json:"code"`
	Data    string  `json:"data"`    // 识别出的原始文本
	Message string  `json:"message"` // 响应消息
	Time    float64 `json:"time,omitempty"`
}

// 识别服务响应码
const (
	VisionCodeOK     = 100 // 识别成功
	VisionCodeNoText = 101 // 图片中无文本
)

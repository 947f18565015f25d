package quick

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"survey_bot/global"
	"survey_bot/oracle"
	"survey_bot/solver"
	"survey_bot/typer"
	"survey_bot/video"
)

// SolveRequest HTTP API求解请求结构
type SolveRequest struct {
	URL            string  `json:"url"`
	SequenceLength int     `json:"sequence_length"`
	LoopCount      int     `json:"loop_count"`
	ShowSeconds    float64 `json:"show_seconds"`
}

// TypeRequest HTTP API打字请求结构
type TypeRequest struct {
	Text string `json:"text"`
}

// APIResponse HTTP API响应结构
type APIResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Result   string `json:"result,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Server 机器人本地控制API
type Server struct {
	cfg global.Config
}

// NewServer 创建控制API
func NewServer(cfg global.Config) *Server {
	return &Server{cfg: cfg}
}

// Run 启动HTTP控制服务
func (s *Server) Run(port int) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.POST("/solve", s.handleSolve)
	r.POST("/type", s.handleType)
	r.GET("/status", s.handleStatus)

	fmt.Printf("控制API已启动: 端口%d\n", port)
	fmt.Println("API端点:")
	fmt.Println("  POST /solve   - 求解滚动数字视频")
	fmt.Println("  POST /type    - 拟人输入文本")
	fmt.Println("  GET  /status  - 检查状态")
	return r.Run(fmt.Sprintf(":%d", port))
}

// handleSolve 求解滚动数字视频
func (s *Server) handleSolve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "请求格式错误"})
		return
	}

	start := time.Now()
	src := video.NewHTTPVideoSource(req.URL, video.SourceMeta{ShowSeconds: req.ShowSeconds})
	seq, err := solver.SolveVideo(c.Request.Context(), src, s.cfg.Video, s.buildOracle(), solver.Options{
		SequenceLength: req.SequenceLength,
		LoopCount:      req.LoopCount,
		Concurrency:    s.cfg.Oracle.Concurrency,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success:  seq.FailedPositions() == 0,
		Message:  fmt.Sprintf("失败位置%d个", seq.FailedPositions()),
		Result:   seq.Digits,
		Duration: time.Since(start).String(),
	})
}

// handleType 拟人输入文本到当前聚焦的输入框
func (s *Server) handleType(c *gin.Context) {
	var req TypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "请求格式错误"})
		return
	}

	scheduler, err := typer.NewScheduler(s.cfg.Typing, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: err.Error()})
		return
	}

	start := time.Now()
	sink := typer.NewRobotgoSink()
	if err = scheduler.Type(c.Request.Context(), req.Text, sink); err != nil {
		c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Message: err.Error()})
		return
	}
	if err = sink.VerifyClipboardUntouched(); err != nil {
		c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success:  true,
		Message:  "输入完成",
		Duration: time.Since(start).String(),
	})
}

// handleStatus 检查状态
func (s *Server) handleStatus(c *gin.Context) {
	status := gin.H{
		"oracle_provider": s.cfg.Oracle.Provider,
		"ffmpeg_ready":    video.EnsureFfmpeg() == nil,
	}
	c.JSON(http.StatusOK, status)
}

// buildOracle 按配置选择识别器
func (s *Server) buildOracle() oracle.DigitOracle {
	if s.cfg.Oracle.Provider == "tesseract" {
		return oracle.NewTesseractOracle()
	}
	return oracle.NewVisionOracle(s.cfg.Oracle.VisionURL)
}

package oracle

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey_bot/model/request"
)

// visionServer 起一个返回固定应答的识别服务
func visionServer(t *testing.T, resp request.VisionResponse, gotReq *request.VisionRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if gotReq != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(gotReq))
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestVisionOracleReadDigit(t *testing.T) {
	var got request.VisionRequest
	srv := visionServer(t, request.VisionResponse{
		Code: request.VisionCodeOK,
		Data: "识别结果: 7",
	}, &got)
	defer srv.Close()

	o := NewVisionOracle(srv.URL)
	digit, err := o.ReadDigit(context.Background(), testFrame())
	require.NoError(t, err)
	assert.Equal(t, '7', digit)

	// 提交的是合法Base64图像数据
	_, err = base64.StdEncoding.DecodeString(got.Base64)
	assert.NoError(t, err)
	assert.NotEmpty(t, got.Base64)
}

// 成功应答但不含数字视为永久失败
func TestVisionOracleNoDigitInText(t *testing.T) {
	srv := visionServer(t, request.VisionResponse{
		Code: request.VisionCodeOK,
		Data: "abc",
	}, nil)
	defer srv.Close()

	o := NewVisionOracle(srv.URL)
	_, err := o.ReadDigit(context.Background(), testFrame())
	require.Error(t, err)
	assert.False(t, IsTransient(err))
}

// 图片无文本属于永久失败，不该重试
func TestVisionOracleNoText(t *testing.T) {
	srv := visionServer(t, request.VisionResponse{Code: request.VisionCodeNoText}, nil)
	defer srv.Close()

	o := NewVisionOracle(srv.URL)
	_, err := o.ReadDigit(context.Background(), testFrame())
	require.Error(t, err)
	assert.False(t, IsTransient(err))
}

// 服务端报错属于暂时失败，可重试
func TestVisionOracleServiceError(t *testing.T) {
	srv := visionServer(t, request.VisionResponse{Code: 500, Message: "内部错误"}, nil)
	defer srv.Close()

	o := NewVisionOracle(srv.URL)
	_, err := o.ReadDigit(context.Background(), testFrame())
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

// 网络不可达属于暂时失败
func TestVisionOracleNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 立即关闭，制造连接失败

	o := NewVisionOracle(srv.URL)
	_, err := o.ReadDigit(context.Background(), testFrame())
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

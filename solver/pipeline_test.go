package solver

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey_bot/global"
	"survey_bot/video"
)

// syntheticVideo 构造一段滚动数字视频的帧序列
// 每个数字：空白 -> 进入(贴底) -> 完整可见x3 -> 退出(贴顶) -> 空白，
// 同时记下每个帧序号对应的真实数字，供识别替身查表
type syntheticVideo struct {
	frames []video.Frame
	truth  map[int]rune
	next   int
}

func (v *syntheticVideo) addFrame(glyphTop, glyphBottom int, digit rune) {
	const width, height = 20, 100
	pix := make([]byte, width*height)
	for i := range pix {
		pix[i] = 255
	}
	for y := glyphTop; y <= glyphBottom; y++ {
		for x := 0; x < width; x++ {
			pix[y*width+x] = 0
		}
	}
	f := video.Frame{Index: v.next, Width: width, Height: height, Pix: pix}
	if digit != 0 {
		v.truth[f.Index] = digit
	}
	v.frames = append(v.frames, f)
	v.next++
}

func (v *syntheticVideo) addBlank() {
	const width, height = 20, 100
	pix := make([]byte, width*height)
	for i := range pix {
		pix[i] = 255
	}
	v.frames = append(v.frames, video.Frame{Index: v.next, Width: width, Height: height, Pix: pix})
	v.next++
}

func (v *syntheticVideo) addDigit(digit rune) {
	v.addBlank()
	v.addFrame(70, 99, digit) // 进入
	v.addFrame(25, 55, digit)
	v.addFrame(35, 65, digit) // 最居中
	v.addFrame(12, 42, digit)
	v.addFrame(0, 30, digit) // 退出
	v.addBlank()
}

// perfectOracle 永远读对的识别替身
type perfectOracle struct {
	mu    sync.Mutex
	truth map[int]rune
}

func (o *perfectOracle) ReadDigit(ctx context.Context, frame video.Frame) (rune, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.truth[frame.Index], nil
}

// 端到端：已知4位序列循环2次的合成视频，经完整流水线还原出原序列
func TestSolveFramesEndToEnd(t *testing.T) {
	v := &syntheticVideo{truth: map[int]rune{}}
	for loop := 0; loop < 2; loop++ {
		for _, d := range "6880" {
			v.addDigit(d)
		}
	}

	cfg := global.DefaultConfig().Video
	seq, err := SolveFrames(context.Background(), v.frames, cfg, &perfectOracle{truth: v.truth}, Options{
		LoopCount: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "6880", seq.Digits)
	assert.Equal(t, 4, seq.Length)
	assert.Equal(t, 2, seq.LoopCount)
	assert.Equal(t, 0, seq.FailedPositions())
	for _, p := range seq.Positions {
		assert.Equal(t, 1.0, p.Confidence)
	}
}

// 全空白视频在进入识别前就失败
func TestSolveFramesBlankVideo(t *testing.T) {
	v := &syntheticVideo{truth: map[int]rune{}}
	for i := 0; i < 10; i++ {
		v.addBlank()
	}

	cfg := global.DefaultConfig().Video
	_, err := SolveFrames(context.Background(), v.frames, cfg, &perfectOracle{truth: v.truth}, Options{LoopCount: 2})
	require.ErrorIs(t, err, video.ErrBlankVideo)
}

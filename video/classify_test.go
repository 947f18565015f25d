package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey_bot/global"
)

// makeGlyphFrame 构造白底黑字的测试帧：[glyphTop, glyphBottom] 行为全黑
func makeGlyphFrame(index, width, height, glyphTop, glyphBottom int) Frame {
	pix := make([]byte, width*height)
	for i := range pix {
		pix[i] = 255
	}
	for y := glyphTop; y <= glyphBottom; y++ {
		for x := 0; x < width; x++ {
			pix[y*width+x] = 0
		}
	}
	return Frame{Index: index, Width: width, Height: height, Pix: pix}
}

// makeBlankFrame 构造纯白测试帧
func makeBlankFrame(index, width, height int) Frame {
	pix := make([]byte, width*height)
	for i := range pix {
		pix[i] = 255
	}
	return Frame{Index: index, Width: width, Height: height, Pix: pix}
}

func testVideoConfig() global.VideoConfig {
	return global.DefaultConfig().Video
}

func TestIsBlank(t *testing.T) {
	cfg := testVideoConfig()

	assert.True(t, IsBlank(makeBlankFrame(0, 20, 100), cfg))
	assert.False(t, IsBlank(makeGlyphFrame(0, 20, 100, 40, 60), cfg))
}

func TestFilterBlankAllBlank(t *testing.T) {
	cfg := testVideoConfig()
	frames := []Frame{
		makeBlankFrame(0, 20, 100),
		makeBlankFrame(1, 20, 100),
	}

	_, err := FilterBlank(frames, cfg)
	require.ErrorIs(t, err, ErrBlankVideo)
}

func TestFilterBlankKeepsOrder(t *testing.T) {
	cfg := testVideoConfig()
	frames := []Frame{
		makeBlankFrame(0, 20, 100),
		makeGlyphFrame(1, 20, 100, 40, 60),
		makeBlankFrame(2, 20, 100),
		makeGlyphFrame(3, 20, 100, 30, 50),
	}

	kept, err := FilterBlank(frames, cfg)
	require.NoError(t, err)
	require.Len(t, kept, 2)
	assert.Equal(t, 1, kept[0].Index)
	assert.Equal(t, 3, kept[1].Index)
}

// 边距双双达标的帧必须分类为完整可见，绝不会是Partial
func TestFullyVisibleWhenMarginsAdequate(t *testing.T) {
	cfg := testVideoConfig() // edge_margin_fraction = 0.10, height 100 -> 边距下限10行

	cases := []struct {
		name     string
		top, bot int // 字形首末行
	}{
		{"居中", 40, 60},
		{"恰好达标", 10, 89},
		{"偏上", 15, 40},
		{"偏下", 55, 85},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := makeGlyphFrame(0, 20, 100, tc.top, tc.bot)
			got := Classify(f, cfg)
			assert.Equal(t, LabelFullyVisible, got.Label)
		})
	}
}

func TestPartialClassification(t *testing.T) {
	cfg := testVideoConfig()

	// 贴底边：正在进入
	entering := Classify(makeGlyphFrame(0, 20, 100, 60, 99), cfg)
	assert.Equal(t, LabelPartialTop, entering.Label)

	// 贴顶边：正在退出
	exiting := Classify(makeGlyphFrame(0, 20, 100, 0, 40), cfg)
	assert.Equal(t, LabelPartialBottom, exiting.Label)
}

// 上下同时贴边的歧义帧保守归入PartialTop，绝不进FullyVisible
func TestSpanningGlyphTreatedAsPartialTop(t *testing.T) {
	cfg := testVideoConfig()

	spanning := Classify(makeGlyphFrame(0, 20, 100, 0, 99), cfg)
	assert.Equal(t, LabelPartialTop, spanning.Label)
}

// 相同的像素缓冲与配置必然得到相同的标签
func TestClassifyDeterministic(t *testing.T) {
	cfg := testVideoConfig()
	f := makeGlyphFrame(0, 20, 100, 8, 92)

	first := Classify(f, cfg)
	for i := 0; i < 50; i++ {
		again := Classify(f, cfg)
		assert.Equal(t, first.Label, again.Label)
		assert.Equal(t, first.Box, again.Box)
	}
}

func TestContentBounds(t *testing.T) {
	cfg := testVideoConfig()
	f := makeGlyphFrame(0, 20, 100, 33, 66)

	box, ok := ContentBounds(f, cfg)
	require.True(t, ok)
	assert.Equal(t, 33, box.YMin)
	assert.Equal(t, 66, box.YMax)

	_, ok = ContentBounds(makeBlankFrame(0, 20, 100), cfg)
	assert.False(t, ok)
}

func TestClassifyAllMatchesSequential(t *testing.T) {
	cfg := testVideoConfig()
	frames := []Frame{
		makeGlyphFrame(0, 20, 100, 60, 99),
		makeGlyphFrame(1, 20, 100, 40, 60),
		makeGlyphFrame(2, 20, 100, 0, 40),
	}

	results := ClassifyAll(frames, cfg)
	require.Len(t, results, 3)
	for i, f := range frames {
		assert.Equal(t, Classify(f, cfg).Label, results[i].Label)
	}
}

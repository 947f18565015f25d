package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDigitShow 模拟一个数字的上屏过程：进入 -> 完整可见若干帧 -> 退出
// 返回分类后的帧序列，nextIndex 用于延续原始帧序号
func buildDigitShow(nextIndex *int, fullFrames int) []Classified {
	cfg := testVideoConfig()
	var out []Classified

	appendFrame := func(top, bottom int) {
		f := makeGlyphFrame(*nextIndex, 20, 100, top, bottom)
		*nextIndex++
		out = append(out, Classify(f, cfg))
	}

	appendFrame(70, 99) // 贴底边进入
	for i := 0; i < fullFrames; i++ {
		appendFrame(30+i*5, 60+i*5) // 完整可见，逐帧上移
	}
	appendFrame(0, 30) // 贴顶边退出
	return out
}

// 数字之间隔着空白帧的"6880"场景必须产出恰好4个分组，
// 相邻的两个8不会因为视觉相同而被并组
func TestGroupSeparatesAdjacentIdenticalDigits(t *testing.T) {
	nextIndex := 0
	var classified []Classified
	for digit := 0; digit < 4; digit++ {
		classified = append(classified, buildDigitShow(&nextIndex, 3)...)
		nextIndex += 2 // 数字之间的空白帧已被过滤，只留下序号断档
	}

	groups := Group(classified)
	assert.Len(t, groups, 4)
}

// 空白帧被过滤后仅靠序号断档也要能切开两段完整可见帧
func TestGroupSplitsOnIndexGap(t *testing.T) {
	cfg := testVideoConfig()
	classified := []Classified{
		Classify(makeGlyphFrame(0, 20, 100, 40, 60), cfg),
		Classify(makeGlyphFrame(1, 20, 100, 40, 60), cfg),
		// 帧2、3为空白已被过滤
		Classify(makeGlyphFrame(4, 20, 100, 40, 60), cfg),
		Classify(makeGlyphFrame(5, 20, 100, 40, 60), cfg),
	}

	groups := Group(classified)
	require.Len(t, groups, 2)
	assert.Equal(t, 0, groups[0].StartIndex)
	assert.Equal(t, 1, groups[0].EndIndex)
	assert.Equal(t, 4, groups[1].StartIndex)
	assert.Equal(t, 5, groups[1].EndIndex)
}

// 代表帧取上下边距差最小（垂直最居中）的一帧
func TestRepresentativeIsMostCentered(t *testing.T) {
	cfg := testVideoConfig()
	classified := []Classified{
		Classify(makeGlyphFrame(0, 20, 100, 15, 45), cfg), // 偏上
		Classify(makeGlyphFrame(1, 20, 100, 35, 65), cfg), // 居中
		Classify(makeGlyphFrame(2, 20, 100, 55, 85), cfg), // 偏下
	}

	groups := Group(classified)
	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Representative.Frame.Index)
}

// 居中得分相同时取帧序最早的一帧
func TestRepresentativeTieBreaksEarliest(t *testing.T) {
	cfg := testVideoConfig()
	classified := []Classified{
		Classify(makeGlyphFrame(0, 20, 100, 35, 65), cfg),
		Classify(makeGlyphFrame(1, 20, 100, 35, 65), cfg), // 同样居中
	}

	groups := Group(classified)
	require.Len(t, groups, 1)
	assert.Equal(t, 0, groups[0].Representative.Frame.Index)
}

func TestGroupEmptyInput(t *testing.T) {
	assert.Empty(t, Group(nil))
}

func TestRepresentatives(t *testing.T) {
	cfg := testVideoConfig()
	classified := []Classified{
		Classify(makeGlyphFrame(0, 20, 100, 40, 60), cfg),
		Classify(makeGlyphFrame(1, 20, 100, 0, 30), cfg), // 退出帧切断分组
		Classify(makeGlyphFrame(3, 20, 100, 40, 60), cfg),
	}

	reps := Representatives(Group(classified))
	require.Len(t, reps, 2)
	assert.Equal(t, 0, reps[0].Index)
	assert.Equal(t, 3, reps[1].Index)
}

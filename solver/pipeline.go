package solver

import (
	"context"
	"fmt"

	"survey_bot/global"
	"survey_bot/oracle"
	"survey_bot/video"
)

// SolveFrames 对已采样的帧序列执行完整求解流程
// 空白过滤 -> 可见性分类 -> 帧分组 -> 序列组装
// 分组必须等待全序列分类完成（分组依赖时间顺序）
func SolveFrames(ctx context.Context, frames []video.Frame, cfg global.VideoConfig, o oracle.DigitOracle, opts Options) (*Sequence, error) {
	kept, err := video.FilterBlank(frames, cfg)
	if err != nil {
		return nil, err
	}

	classified := video.ClassifyAll(kept, cfg)
	groups := video.Group(classified)
	reps := video.Representatives(groups)

	return Assemble(ctx, reps, o, opts)
}

// SolveVideo 从视频源到数字序列的端到端求解
func SolveVideo(ctx context.Context, src video.VideoSource, cfg global.VideoConfig, o oracle.DigitOracle, opts Options) (*Sequence, error) {
	data, meta, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	frames, err := video.Sample(ctx, data, meta.ShowSeconds, cfg)
	if err != nil {
		return nil, err
	}

	seq, err := SolveFrames(ctx, frames, cfg, o, opts)
	if err != nil {
		return nil, err
	}
	fmt.Printf("视频求解完成: %q\n", seq.Digits)
	return seq, nil
}

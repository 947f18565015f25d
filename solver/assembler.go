package solver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"survey_bot/global"
	"survey_bot/oracle"
	"survey_bot/video"
)

// ErrMalformedSequence 分组数无法按期望序列长度整除
var ErrMalformedSequence = errors.New("分组数与期望序列长度不匹配")

// AmbiguousDigitError 某个位置的投票结果无严格多数
type AmbiguousDigitError struct {
	Position   int
	Candidates []rune
}

func (e *AmbiguousDigitError) Error() string {
	return fmt.Sprintf("位置%d识别结果歧义, 候选: %q", e.Position, string(e.Candidates))
}

// Options 序列组装选项
type Options struct {
	SequenceLength int // 期望序列长度；为0时按 LoopCount 推断
	LoopCount      int // 视频循环次数；为0时按 SequenceLength 推断
	Concurrency    int // 识别调用并发上限；<=0 时取配置默认值
}

// PositionResult 单个位置的裁决结果
type PositionResult struct {
	Position   int
	Digit      rune         // 裁决出的数字；失败时为 oracle.Unknown
	Confidence float64      // 得票占比
	Votes      map[rune]int // 各读数的票数（诊断用）
	Err        error        // 该位置的 AmbiguousDigitError（如有）
}

// Sequence 组装完成的数字序列
type Sequence struct {
	ID        string // 本次求解的会话标识
	Digits    string // 逐位结果，失败位置为 '?'
	Length    int
	LoopCount int
	Positions []PositionResult
}

// FailedPositions 返回裁决失败的位置数
func (s *Sequence) FailedPositions() int {
	n := 0
	for _, p := range s.Positions {
		if p.Err != nil {
			n++
		}
	}
	return n
}

// Assemble 将代表帧序列组装为数字序列
// 每个代表帧通过识别器读出一个数字，按(循环,位置)归位后逐位多数投票。
// 识别调用以有限并发执行，结果按索引合并，与完成顺序无关。
func Assemble(ctx context.Context, reps []video.Frame, o oracle.DigitOracle, opts Options) (*Sequence, error) {
	length, loops, err := resolveShape(len(reps), opts)
	if err != nil {
		return nil, err
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = global.DefaultOracleConcurrency
	}

	fmt.Printf("开始序列组装: %d帧 = %d位 x %d循环, 并发%d\n", len(reps), length, loops, concurrency)

	// 有限并发读取所有代表帧，结果写入按帧序预分配的槽位
	type reading struct {
		digit rune
		known bool
	}
	readings := make([]reading, len(reps))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i := range reps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			d, ok := oracle.ReadWithRetry(ctx, o, reps[i])
			readings[i] = reading{digit: d, known: ok}
		}(i)
	}
	wg.Wait()

	// 逐位置统计各循环的读数并取严格多数
	seq := &Sequence{
		ID:        uuid.New().String(),
		Length:    length,
		LoopCount: loops,
		Positions: make([]PositionResult, length),
	}
	digits := make([]rune, length)
	for pos := 0; pos < length; pos++ {
		votes := make(map[rune]int)
		effective := 0
		for loop := 0; loop < loops; loop++ {
			r := readings[loop*length+pos]
			if !r.known {
				// 未知读数不参与投票，该位置有效循环数随之减少
				continue
			}
			votes[r.digit]++
			effective++
		}

		result := PositionResult{Position: pos, Digit: oracle.Unknown, Votes: votes}
		if winner, count, strict := pluralityVote(votes); strict {
			result.Digit = winner
			result.Confidence = float64(count) / float64(effective)
		} else {
			// 平票或全部未知：仅该位置失败，不影响其余位置
			result.Err = &AmbiguousDigitError{Position: pos, Candidates: tiedCandidates(votes)}
			fmt.Printf("位置%d裁决失败: %v\n", pos, result.Err)
		}
		seq.Positions[pos] = result
		digits[pos] = result.Digit
	}
	seq.Digits = string(digits)

	fmt.Printf("序列组装完成: %q (失败位置%d个)\n", seq.Digits, seq.FailedPositions())
	return seq, nil
}

// resolveShape 推断序列长度与循环次数
func resolveShape(groupCount int, opts Options) (length, loops int, err error) {
	if groupCount == 0 {
		return 0, 0, fmt.Errorf("%w: 没有可用的代表帧", ErrMalformedSequence)
	}
	switch {
	case opts.SequenceLength > 0:
		if groupCount%opts.SequenceLength != 0 {
			return 0, 0, fmt.Errorf("%w: %d个分组不能被长度%d整除",
				ErrMalformedSequence, groupCount, opts.SequenceLength)
		}
		return opts.SequenceLength, groupCount / opts.SequenceLength, nil
	case opts.LoopCount > 0:
		if groupCount%opts.LoopCount != 0 {
			return 0, 0, fmt.Errorf("%w: %d个分组不能被循环数%d整除",
				ErrMalformedSequence, groupCount, opts.LoopCount)
		}
		return groupCount / opts.LoopCount, opts.LoopCount, nil
	default:
		return 0, 0, fmt.Errorf("%w: 序列长度与循环次数至少需要提供一个", ErrMalformedSequence)
	}
}

// pluralityVote 取严格多数：得票最高且无并列
func pluralityVote(votes map[rune]int) (winner rune, count int, strict bool) {
	best := 0
	ties := 0
	for d, c := range votes {
		if c > best {
			best = c
			winner = d
			ties = 1
		} else if c == best {
			ties++
		}
	}
	if best == 0 || ties > 1 {
		return 0, 0, false
	}
	return winner, best, true
}

// tiedCandidates 返回得票最高的并列候选（升序，便于稳定输出）
func tiedCandidates(votes map[rune]int) []rune {
	best := 0
	for _, c := range votes {
		if c > best {
			best = c
		}
	}
	var out []rune
	for d, c := range votes {
		if c == best && best > 0 {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

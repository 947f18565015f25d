package typer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"survey_bot/global"
	_const "survey_bot/internal/const"
)

// EventKind 击键事件类型
type EventKind int

const (
	EventNormal     EventKind = iota // 正常输入一个字符
	EventTypoChar                    // 打错的字符
	EventBackspace                   // 退格删除打错的字符
	EventCorrection                  // 补打正确字符
)

// String 事件类型名称
func (k EventKind) String() string {
	switch k {
	case EventNormal:
		return "Normal"
	case EventTypoChar:
		return "TypoChar"
	case EventBackspace:
		return "Backspace"
	case EventCorrection:
		return "Correction"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// KeystrokeEvent 单次击键事件
// 每个事件只对应一次按键动作：Normal/Correction 恰好插入一个字符，
// Backspace 删除一个字符，绝不出现一次事件写入多个字符的情况
type KeystrokeEvent struct {
	Char        rune          // 按下的字符；Backspace 事件为0
	DelayBefore time.Duration // 事件前的等待时间
	Kind        EventKind
}

// KeyEventSink 击键事件接收端
// 每次调用只接受一个原子按键事件；接口契约明确排除任何
// 「整段赋值」或剪贴板式批量写入操作
type KeyEventSink interface {
	PressKey(ctx context.Context, ev KeystrokeEvent) error
}

// Scheduler 拟人打字调度器
// 顺序状态机：Idle -> 逐字符的输入/停顿状态 -> Done；
// 所有随机量都来自注入的随机源，便于测试复现
type Scheduler struct {
	cfg       global.TypingConfig
	rng       *rand.Rand
	sessionID string
}

// NewScheduler 创建打字调度器
// rng 为空时使用时间种子；非法配置直接拒绝
func NewScheduler(cfg global.TypingConfig, rng *rand.Rand) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("打字配置非法: %v", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scheduler{cfg: cfg, rng: rng, sessionID: uuid.New().String()}, nil
}

// Type 将目标文本逐字符打入接收端
// 严格串行：每个事件等待真实墙钟延迟后送出，送达后才调度下一个延迟。
// 取消只发生在字符边界与等待点，不会留下损坏的中间状态。
func (s *Scheduler) Type(ctx context.Context, text string, sink KeyEventSink) error {
	if text == "" {
		// 空目标是无操作，不算错误
		fmt.Println("打字目标为空，跳过")
		return nil
	}

	fmt.Printf("开始拟人打字: 会话%s, %d字符, 目标%.0fWPM\n", s.sessionID, len([]rune(text)), s.cfg.AverageWPM)
	var prev rune
	for _, c := range text {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		events := s.planChar(prev, c)
		for _, ev := range events {
			if err := waitDelay(ctx, ev.DelayBefore); err != nil {
				return err
			}
			if err := sink.PressKey(ctx, ev); err != nil {
				return fmt.Errorf("按键事件送出失败: %w", err)
			}
			if ev.Kind != EventBackspace {
				prev = ev.Char
			}
		}
	}
	fmt.Printf("拟人打字完成: 会话%s\n", s.sessionID)
	return nil
}

// Rehearse 只生成完整击键事件序列而不送出（预演）
// 用于离线检查节奏与测试
func (s *Scheduler) Rehearse(text string) []KeystrokeEvent {
	var events []KeystrokeEvent
	var prev rune
	for _, c := range text {
		planned := s.planChar(prev, c)
		events = append(events, planned...)
		for _, ev := range planned {
			if ev.Kind != EventBackspace {
				prev = ev.Char
			}
		}
	}
	return events
}

// planChar 为一个目标字符规划击键事件
// 1. 采样基础间隔
// 2. 依据上一个已送出字符追加词/句边界停顿（句停顿优先于词停顿）
// 3. 独立掷打错：命中且有相邻键时产生 打错->反应停顿->退格->短停顿->补打 子序列
// 4. 独立掷随机长停顿
func (s *Scheduler) planChar(prev, c rune) []KeystrokeEvent {
	delayMs := SampleIKI(s.rng, s.cfg.AverageWPM, s.cfg.WpmStdDev)

	if _const.SentenceEndings[prev] {
		delayMs += s.cfg.SentenceBoundaryPauseMs * (0.5 + s.rng.Float64())
	} else if _const.WordBoundaries[prev] {
		delayMs += s.cfg.WordBoundaryPauseMs * (0.3 + s.rng.Float64()*0.7)
	}

	if s.rng.Float64() < s.cfg.LongPauseChance {
		delayMs += s.rng.Float64() * s.cfg.LongPauseMaxMs
	}
	if delayMs < _const.MinKeystrokeDelayMs {
		delayMs = _const.MinKeystrokeDelayMs
	}

	if s.rng.Float64() < s.cfg.TypoRate {
		if wrong, ok := NearbyKey(s.rng, c); ok {
			events := []KeystrokeEvent{
				{Char: wrong, DelayBefore: msDuration(delayMs), Kind: EventTypoChar},
			}
			if s.rng.Float64() < s.cfg.TypoCorrectionRate {
				noticeMs := _const.TypoNoticeMinPauseMs +
					s.rng.Float64()*(_const.TypoNoticeMaxPauseMs-_const.TypoNoticeMinPauseMs)
				correctMs := _const.CorrectionMinPauseMs +
					s.rng.Float64()*(_const.CorrectionMaxPauseMs-_const.CorrectionMinPauseMs)
				events = append(events,
					KeystrokeEvent{DelayBefore: msDuration(noticeMs), Kind: EventBackspace},
					KeystrokeEvent{Char: c, DelayBefore: msDuration(correctMs), Kind: EventCorrection},
				)
			}
			// 未修正的打错保留在文本里，正是真人偶尔会留下的痕迹
			return events
		}
		// 无相邻键映射的字符直接跳过打错注入
	}

	return []KeystrokeEvent{{Char: c, DelayBefore: msDuration(delayMs), Kind: EventNormal}}
}

// waitDelay 等待指定延迟，支持取消
func waitDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

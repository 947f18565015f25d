package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"time"

	"survey_bot/global"
	"survey_bot/oracle"
	"survey_bot/solver"
	"survey_bot/typer"
	"survey_bot/util"
	"survey_bot/video"
)

var (
	mode        = flag.String("mode", "solve", "运行模式: solve, type, rehearse, capture")
	videoURL    = flag.String("url", "", "滚动数字视频URL")
	seqLen      = flag.Int("len", 0, "期望序列长度（与 -loops 至少提供一个）")
	loops       = flag.Int("loops", 0, "视频循环次数")
	showSeconds = flag.Float64("show", 0, "单个数字停留时长（秒），用于采样率校验")
	text        = flag.String("text", "", "要输入的文本")
	provider    = flag.String("oracle", "vision", "识别方式: vision, tesseract")
	region      = flag.String("region", "", "屏幕采样区域 x1,y1,x2,y2（capture模式）")
	capSeconds  = flag.Float64("seconds", 10, "屏幕采样时长（秒）")
	dump        = flag.Bool("dump", false, "落盘代表帧PNG供人工核对")
)

func main() {
	flag.Parse()
	fmt.Println("=== 滚动数字求解工具 ===")

	cfg := global.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("默认配置非法: %v", err)
	}

	switch *mode {
	case "solve":
		runSolve(cfg)
	case "type":
		runType(cfg)
	case "rehearse":
		runRehearse(cfg)
	case "capture":
		runCapture(cfg)
	default:
		fmt.Printf("未知模式: %s\n", *mode)
		flag.Usage()
	}
}

// runSolve 下载并求解滚动数字视频
func runSolve(cfg global.Config) {
	if *videoURL == "" {
		log.Fatal("solve模式需要 -url 参数")
	}

	src := video.NewHTTPVideoSource(*videoURL, video.SourceMeta{ShowSeconds: *showSeconds})
	seq, err := solver.SolveVideo(context.Background(), src, cfg.Video, buildOracle(cfg), solver.Options{
		SequenceLength: *seqLen,
		LoopCount:      *loops,
		Concurrency:    cfg.Oracle.Concurrency,
	})
	if err != nil {
		log.Fatalf("求解失败: %v", err)
	}

	fmt.Printf("识别结果: %s\n", seq.Digits)
	for _, p := range seq.Positions {
		if p.Err != nil {
			fmt.Printf("  位置%d: 失败 (%v)\n", p.Position, p.Err)
		} else {
			fmt.Printf("  位置%d: %c (置信度%.2f)\n", p.Position, p.Digit, p.Confidence)
		}
	}
}

// runType 拟人输入文本到当前聚焦的输入框
func runType(cfg global.Config) {
	if *text == "" {
		log.Fatal("type模式需要 -text 参数")
	}

	scheduler, err := typer.NewScheduler(cfg.Typing, nil)
	if err != nil {
		log.Fatalf("创建调度器失败: %v", err)
	}

	fmt.Println("3秒后开始输入，请把焦点放到目标输入框...")
	time.Sleep(3 * time.Second)
	sink := typer.NewRobotgoSink()
	if err = scheduler.Type(context.Background(), *text, sink); err != nil {
		log.Fatalf("输入失败: %v", err)
	}
	if err = sink.VerifyClipboardUntouched(); err != nil {
		log.Fatalf("剪贴板校验失败: %v", err)
	}
	fmt.Println("输入完成，剪贴板未被触碰")
}

// runRehearse 只生成击键序列并打印节奏统计，不实际输入
func runRehearse(cfg global.Config) {
	if *text == "" {
		log.Fatal("rehearse模式需要 -text 参数")
	}

	scheduler, err := typer.NewScheduler(cfg.Typing, nil)
	if err != nil {
		log.Fatalf("创建调度器失败: %v", err)
	}

	events := scheduler.Rehearse(*text)
	summary := typer.Summarize(events)
	fmt.Printf("事件数: %d (打错%d次, 修正%d次)\n", summary.Events, summary.Typos, summary.Corrections)
	fmt.Printf("间隔中位数: %.0fms, 均值: %.0fms\n", summary.MedianIKIMs, summary.MeanIKIMs)
	fmt.Printf("有效速度: %.1f WPM, 总时长: %.1f秒\n", summary.EffectiveWPM, summary.TotalMs/1000)
}

// runCapture 对屏幕区域实时采样并求解
func runCapture(cfg global.Config) {
	var x1, y1, x2, y2 int
	if _, err := fmt.Sscanf(*region, "%d,%d,%d,%d", &x1, &y1, &x2, &y2); err != nil {
		log.Fatalf("capture模式需要 -region x1,y1,x2,y2 参数: %v", err)
	}

	capture := &video.LiveRegionCapture{
		Region: image.Rect(x1, y1, x2, y2),
		Fps:    cfg.Video.SamplingFps,
	}
	frames, err := capture.Capture(context.Background(), *capSeconds)
	if err != nil {
		log.Fatalf("屏幕采样失败: %v", err)
	}

	seq, err := solver.SolveFrames(context.Background(), frames, cfg.Video, buildOracle(cfg), solver.Options{
		SequenceLength: *seqLen,
		LoopCount:      *loops,
		Concurrency:    cfg.Oracle.Concurrency,
	})
	if err != nil {
		log.Fatalf("求解失败: %v", err)
	}
	fmt.Printf("识别结果: %s\n", seq.Digits)

	if *dump {
		dumpFrames(frames)
	}
}

// dumpFrames 落盘帧图像供人工核对
func dumpFrames(frames []video.Frame) {
	for _, f := range frames {
		data, err := f.EncodePNG()
		if err != nil {
			fmt.Printf("帧%d编码失败: %v\n", f.Index, err)
			continue
		}
		path, err := util.SaveTempPNG(data)
		if err != nil {
			fmt.Printf("帧%d保存失败: %v\n", f.Index, err)
			continue
		}
		fmt.Printf("帧%d -> %s\n", f.Index, path)
	}
}

// buildOracle 按参数选择识别器
func buildOracle(cfg global.Config) oracle.DigitOracle {
	if *provider == "tesseract" {
		return oracle.NewTesseractOracle()
	}
	return oracle.NewVisionOracle(cfg.Oracle.VisionURL)
}

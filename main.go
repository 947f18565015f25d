package main

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"survey_bot/global"
	"survey_bot/quick"
)

//go:embed config.yaml
var File embed.FS

// loadConfig 加载配置（优先嵌入文件，其次外部文件）
func loadConfig() error {
	global.BotConfig = global.DefaultConfig()

	var configData []byte
	var err error
	if configData, err = File.ReadFile("config.yaml"); err != nil {
		fmt.Printf("无法从嵌入文件加载配置: %v\n", err)
		if configData, err = os.ReadFile("config.yaml"); err != nil {
			return fmt.Errorf("无法从外部文件加载配置: %v", err)
		}
		fmt.Println("从外部文件加载配置成功")
	} else {
		fmt.Println("从嵌入文件加载配置成功")
	}

	if err = yaml.Unmarshal(configData, &global.BotConfig); err != nil {
		return fmt.Errorf("解析配置文件失败: %v", err)
	}
	return global.BotConfig.Validate()
}

func main() {
	if err := loadConfig(); err != nil {
		fmt.Printf("配置加载失败: %v\n", err)
		fmt.Println("程序将退出，请确保配置文件存在且合法")
		return
	}
	fmt.Printf("配置加载成功 - fps: %d, WPM: %.0f, 识别: %s\n",
		global.BotConfig.Video.SamplingFps,
		global.BotConfig.Typing.AverageWPM,
		global.BotConfig.Oracle.Provider)

	// 启动本地控制API
	server := quick.NewServer(global.BotConfig)
	if err := server.Run(global.BotConfig.ServerPort); err != nil {
		fmt.Printf("控制API启动失败: %v\n", err)
	}
}

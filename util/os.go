package util

import (
	"errors"
	"os"
	"path"

	"github.com/google/uuid"
)

// SaveTempPNG 将PNG字节写入临时文件并返回路径（调试落盘用）
func SaveTempPNG(data []byte) (string, error) {
	filePath := path.Join(os.TempDir(), uuid.New().String()+".png")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", errors.New("保存图片文件失败:" + err.Error())
	}
	return filePath, nil
}

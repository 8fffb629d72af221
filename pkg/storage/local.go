// Package storage 负责将解码后的图片落盘
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"foodgram/internal/config"

	sf "github.com/bwmarrin/snowflake"
)

var node *sf.Node

// Init 初始化雪花算法节点，生成的ID用作文件名
// startTime格式: 2006-01-02, machineID取值0-1023
func Init(startTime string, machineID int64) error {
	st, err := time.Parse("2006-01-02", startTime)
	if err != nil {
		return fmt.Errorf("解析雪花起始时间失败: %v", err)
	}
	sf.Epoch = st.UnixNano() / 1000000

	node, err = sf.NewNode(machineID)
	if err != nil {
		return fmt.Errorf("创建雪花节点失败: %v", err)
	}
	return nil
}

// SaveImage 将图片字节写入本地存储，返回可访问的URL路径
func SaveImage(data []byte, ext string) (string, error) {
	if node == nil {
		return "", fmt.Errorf("雪花节点未初始化")
	}

	cfg := config.GlobalConfig.Image
	if cfg.MaxSize > 0 && int64(len(data)) > cfg.MaxSize {
		return "", fmt.Errorf("图片大小超过限制: %d字节", cfg.MaxSize)
	}

	if err := os.MkdirAll(cfg.UploadPath, 0o755); err != nil {
		return "", fmt.Errorf("创建图片目录失败: %v", err)
	}

	filename := fmt.Sprintf("%s.%s", node.Generate().String(), ext)
	fullPath := filepath.Join(cfg.UploadPath, filename)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("写入图片文件失败: %v", err)
	}

	return cfg.URLPrefix + "/" + filename, nil
}

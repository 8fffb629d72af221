// Package imagecodec 解析内嵌在JSON中的base64图片数据
package imagecodec

import (
	"encoding/base64"
	"errors"
	"strings"
)

// 数据URI格式: data:image/<ext>;base64,<payload>
const (
	dataURIPrefix    = "data:image/"
	base64Separator  = ";base64,"
	maxExtensionSize = 10
)

var (
	// ErrInvalidDataURI 数据URI格式错误
	ErrInvalidDataURI = errors.New("无效的图片数据URI")
	// ErrInvalidPayload base64载荷解码失败
	ErrInvalidPayload = errors.New("图片base64解码失败")
)

// IsDataURI 判断字符串是否为图片数据URI
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}

// Decode 解析图片数据URI，返回解码后的字节和扩展名
// 与存储后端无关的纯函数
func Decode(s string) ([]byte, string, error) {
	if !IsDataURI(s) {
		return nil, "", ErrInvalidDataURI
	}

	head, payload, found := strings.Cut(s, base64Separator)
	if !found || payload == "" {
		return nil, "", ErrInvalidDataURI
	}

	ext := strings.TrimPrefix(head, dataURIPrefix)
	if ext == "" || len(ext) > maxExtensionSize || strings.ContainsAny(ext, "/\\.") {
		return nil, "", ErrInvalidDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrInvalidPayload
	}

	return data, ext, nil
}

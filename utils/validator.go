package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 校验标签->错误信息模板
var msgMap = map[string]string{
	"required": "不能为空",
	"min":      "不能小于%v",
	"max":      "不能大于%v",
	"email":    "必须是有效的邮箱地址",
	"numeric":  "只接受数字",
	"hexcolor": "必须是有效的HEX颜色值",
	"oneof":    "必须是[%v]中的一个",
}

// FormatValidationErrors 将binding错误转换为按字段分组的错误映射
func FormatValidationErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"non_field": "参数格式错误"}
	}

	fields := make(map[string]string, len(verrs))
	for _, ferr := range verrs {
		msg := msgMap[ferr.Tag()]
		if msg == "" {
			msg = "校验失败"
		}
		if ferr.Param() != "" && strings.Contains(msg, "%v") {
			msg = fmt.Sprintf(msg, ferr.Param())
		}
		fields[strings.ToLower(ferr.Field())] = msg
	}
	return fields
}

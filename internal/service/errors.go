package service

// ValidationError 校验错误，携带出错字段以便客户端按字段展示
type ValidationError struct {
	Field   string
	Message string
}

// Error 实现error接口
func (e *ValidationError) Error() string {
	return e.Message
}

// Fields 转换为字段->消息映射
func (e *ValidationError) Fields() map[string]string {
	return map[string]string{e.Field: e.Message}
}

// NotFoundError 资源不存在
type NotFoundError struct {
	Message string
}

// Error 实现error接口
func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError 唯一性冲突
type ConflictError struct {
	Message string
}

// Error 实现error接口
func (e *ConflictError) Error() string {
	return e.Message
}

// ForbiddenError 没有操作权限
type ForbiddenError struct {
	Message string
}

// Error 实现error接口
func (e *ForbiddenError) Error() string {
	return e.Message
}

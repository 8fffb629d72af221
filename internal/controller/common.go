package controller

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/middleware"
	"foodgram/internal/service"
	"foodgram/pkg/response"
	"foodgram/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// getUserIDFromContext 从上下文中获取用户ID
func getUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		return 0, errors.New("用户未登录")
	}
	return userID, nil
}

// parseIDParam 解析路径中的ID参数
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的ID", err)
		return 0, false
	}
	return uint(id), true
}

// handleBindError 处理参数绑定错误，校验错误按字段返回
func handleBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		response.ErrorWithFields(c, http.StatusBadRequest, "参数错误", utils.FormatValidationErrors(err))
		return
	}
	response.BadRequest(c, "参数错误", err)
}

// handleServiceError 将服务层错误映射为HTTP响应
func handleServiceError(c *gin.Context, err error, fallbackMsg string) {
	var (
		validationErr *service.ValidationError
		notFoundErr   *service.NotFoundError
		conflictErr   *service.ConflictError
		forbiddenErr  *service.ForbiddenError
	)

	switch {
	case errors.As(err, &validationErr):
		response.ErrorWithFields(c, http.StatusBadRequest, validationErr.Message, validationErr.Fields())
	case errors.As(err, &notFoundErr):
		response.NotFound(c, notFoundErr.Message, nil)
	case errors.As(err, &conflictErr):
		response.Conflict(c, conflictErr.Message, nil)
	case errors.As(err, &forbiddenErr):
		response.Forbidden(c, forbiddenErr.Message, nil)
	default:
		response.InternalServerError(c, fallbackMsg, err)
	}
}

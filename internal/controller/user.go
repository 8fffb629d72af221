package controller

import (
	"strconv"

	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/middleware"
	"foodgram/internal/service"
	"foodgram/pkg/auth"
	"foodgram/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserApi 用户API控制器
type UserApi struct {
	logger              *zap.SugaredLogger
	userService         *service.UserService
	subscriptionService *service.SubscriptionService
}

// NewUserApi 创建用户API控制器
func NewUserApi() *UserApi {
	return &UserApi{
		logger:              logger.GetSugaredLogger(),
		userService:         service.NewUserService(),
		subscriptionService: service.NewSubscriptionService(),
	}
}

// Register 用户注册
func (api *UserApi) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	user, tokenPair, err := api.userService.Register(&req)
	if err != nil {
		api.logger.Errorf("用户注册失败: %v", err)
		handleServiceError(c, err, "注册失败")
		return
	}

	response.Created(c, "注册成功", gin.H{
		"user":  api.userService.GenerateUserResponse(user, 0),
		"token": tokenPair,
	})
}

// Login 用户登录
func (api *UserApi) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	if !verifyCaptcha(req.CaptchaID, req.Captcha) {
		response.BadRequest(c, "验证码错误", nil)
		return
	}

	user, tokenPair, err := api.userService.Login(&req, c.ClientIP())
	if err != nil {
		handleServiceError(c, err, "登录失败")
		return
	}

	response.Success(c, "登录成功", gin.H{
		"user":  api.userService.GenerateUserResponse(user, 0),
		"token": tokenPair,
	})
}

// RefreshToken 刷新访问令牌
func (api *UserApi) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	tokenPair, err := auth.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		response.Unauthorized(c, "刷新令牌无效", err)
		return
	}

	response.Success(c, "刷新成功", gin.H{"token": tokenPair})
}

// Logout 登出，将令牌加入黑名单
func (api *UserApi) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	if req.AccessToken != "" {
		if err := auth.RevokeToken(req.AccessToken); err != nil {
			api.logger.Warnf("吊销访问令牌失败: %v", err)
		}
	}
	if err := auth.RevokeToken(req.RefreshToken); err != nil {
		api.logger.Warnf("吊销刷新令牌失败: %v", err)
	}

	response.Success(c, "登出成功", nil)
}

// GetCurrentUser 获取当前登录用户信息
func (api *UserApi) GetCurrentUser(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}

	user, err := api.userService.GetByID(userID)
	if err != nil {
		handleServiceError(c, err, "获取用户信息失败")
		return
	}

	response.Success(c, "获取成功", gin.H{
		"user": api.userService.GenerateUserResponse(user, userID),
	})
}

// ChangePassword 修改密码
func (api *UserApi) ChangePassword(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	if err := api.userService.ChangePassword(userID, &req); err != nil {
		handleServiceError(c, err, "修改密码失败")
		return
	}

	response.Success(c, "修改成功", nil)
}

// GetByID 获取用户公开信息
func (api *UserApi) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// 匿名访问时is_subscribed恒为false
	currentUserID, _ := middleware.GetUserID(c)

	user, err := api.userService.GetByID(id)
	if err != nil {
		handleServiceError(c, err, "获取用户信息失败")
		return
	}

	response.Success(c, "获取成功", gin.H{
		"user": api.userService.GenerateUserResponse(user, currentUserID),
	})
}

// List 获取用户列表
func (api *UserApi) List(c *gin.Context) {
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)
		return
	}

	currentUserID, _ := middleware.GetUserID(c)

	result, err := api.userService.List(&req, currentUserID)
	if err != nil {
		api.logger.Errorf("获取用户列表失败: %v", err)
		handleServiceError(c, err, "获取用户列表失败")
		return
	}

	response.SuccessPage(c, "获取成功", result.List, req.Page, req.PageSize, result.Total)
}

// Subscribe 订阅作者
func (api *UserApi) Subscribe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}

	authorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)
		return
	}

	result, err := api.subscriptionService.Subscribe(userID, authorID, parseRecipesLimit(req.RecipesLimit))
	if err != nil {
		handleServiceError(c, err, "订阅失败")
		return
	}

	response.Created(c, "订阅成功", gin.H{"author": result})
}

// Unsubscribe 取消订阅
func (api *UserApi) Unsubscribe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}

	authorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := api.subscriptionService.Unsubscribe(userID, authorID); err != nil {
		handleServiceError(c, err, "取消订阅失败")
		return
	}

	response.NoContent(c)
}

// Subscriptions 获取订阅的作者列表
func (api *UserApi) Subscriptions(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}

	var req dto.SubscriptionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)
		return
	}

	result, err := api.subscriptionService.List(userID, &req, parseRecipesLimit(req.RecipesLimit))
	if err != nil {
		api.logger.Errorf("获取订阅列表失败: %v", err)
		handleServiceError(c, err, "获取订阅列表失败")
		return
	}

	response.SuccessPage(c, "获取成功", result.List, req.Page, req.PageSize, result.Total)
}

// parseRecipesLimit 解析recipes_limit参数，未提供时返回-1表示不限制
// 非数字输入已被绑定校验拦截
func parseRecipesLimit(s string) int {
	if s == "" {
		return -1
	}
	limit, err := strconv.Atoi(s)
	if err != nil || limit < 0 {
		return -1
	}
	return limit
}

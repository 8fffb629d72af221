package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"foodgram/internal/database"
	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/model"
	"foodgram/pkg/auth"
	"foodgram/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	userService     *UserService
	userServiceOnce sync.Once
)

// UserService 用户服务
type UserService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewUserService 创建用户服务实例
func NewUserService() *UserService {
	userServiceOnce.Do(func() {
		userService = &UserService{
			db:     database.GetDB(),
			logger: logger.GetSugaredLogger(),
		}
	})
	return userService
}

// Register 用户注册
func (s *UserService) Register(req *dto.RegisterRequest) (*model.User, *auth.TokenPair, error) {
	// 检查用户名是否已存在
	var count int64
	if err := s.db.Model(&model.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, &ConflictError{Message: "用户名已存在"}
	}

	// 检查邮箱是否已存在
	if err := s.db.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, &ConflictError{Message: "邮箱已存在"}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Username:    req.Username,
		Password:    hashedPassword,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        "user",
		Status:      1, // 1 表示启用
		LastLoginAt: time.Now(),
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, nil, err
	}

	tokenPair, err := auth.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}

	return user, tokenPair, nil
}

// Login 用户登录
func (s *UserService) Login(req *dto.LoginRequest, ip string) (*model.User, *auth.TokenPair, error) {
	var user model.User
	query := s.db.Where("status = ?", 1) // 只查询状态正常的用户

	// 判断登录方式（用户名或邮箱）
	if strings.Contains(req.Username, "@") {
		query = query.Where("email = ?", req.Username)
	} else {
		query = query.Where("username = ?", req.Username)
	}

	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Message: "用户不存在"}
		}
		return nil, nil, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, nil, &ValidationError{Field: "password", Message: "密码错误"}
	}

	// 记录登录时间和IP
	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"last_login_at": time.Now(),
		"last_login_ip": ip,
	}).Error; err != nil {
		s.logger.Warnf("更新登录信息失败: %v", err)
	}

	tokenPair, err := auth.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}

	return &user, tokenPair, nil
}

// GetByID 根据ID获取用户
func (s *UserService) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "用户不存在"}
		}
		return nil, err
	}
	return &user, nil
}

// ChangePassword 修改密码
func (s *UserService) ChangePassword(id uint, req *dto.ChangePasswordRequest) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.Password, req.OldPassword) {
		return &ValidationError{Field: "old_password", Message: "旧密码错误"}
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.db.Model(user).Update("password", hashedPassword).Error
}

// List 获取用户列表
func (s *UserService) List(req *dto.UserListRequest, currentUserID uint) (*dto.UserListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := s.db.Model(&model.User{}).Where("status = ?", 1)
	if req.Keyword != "" {
		query = query.Where("username LIKE ? OR email LIKE ?", "%"+req.Keyword+"%", "%"+req.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var users []model.User
	if err := query.Order("id").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&users).Error; err != nil {
		return nil, err
	}

	resp := &dto.UserListResponse{
		Total: total,
		List:  make([]dto.UserResponse, 0, len(users)),
	}
	for i := range users {
		resp.List = append(resp.List, *s.GenerateUserResponse(&users[i], currentUserID))
	}
	return resp, nil
}

// IsSubscribed 判断currentUserID是否订阅了authorID
func (s *UserService) IsSubscribed(currentUserID, authorID uint) bool {
	if currentUserID == 0 || currentUserID == authorID {
		return false
	}
	var count int64
	s.db.Model(&model.Subscribe{}).
		Where("user_id = ? AND author_id = ?", currentUserID, authorID).
		Count(&count)
	return count > 0
}

// GenerateUserResponse 生成用户响应DTO，is_subscribed相对当前用户计算
func (s *UserService) GenerateUserResponse(user *model.User, currentUserID uint) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Avatar:       user.Avatar,
		Role:         user.Role,
		IsSubscribed: s.IsSubscribed(currentUserID, user.ID),
		CreatedAt:    user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

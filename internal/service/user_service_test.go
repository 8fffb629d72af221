package service

import (
	"testing"

	"foodgram/internal/dto"
	"foodgram/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegisterAndLogin(t *testing.T) {
	svc := NewUserService()

	req := &dto.RegisterRequest{
		Username:  "reg_user",
		Password:  "secret123",
		Email:     "reg_user@test.local",
		FirstName: "Reg",
		LastName:  "User",
	}

	user, tokenPair, err := svc.Register(req)
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)
	assert.NotEmpty(t, tokenPair.AccessToken)
	assert.NotEmpty(t, tokenPair.RefreshToken)
	// 密码落库前已哈希
	assert.True(t, utils.CheckPassword(user.Password, "secret123"))

	// 用户名冲突
	dup := *req
	dup.Email = "other@test.local"
	_, _, err = svc.Register(&dup)
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)

	// 用户名登录
	_, _, err = svc.Login(&dto.LoginRequest{Username: "reg_user", Password: "secret123"}, "127.0.0.1")
	require.NoError(t, err)

	// 邮箱登录
	_, _, err = svc.Login(&dto.LoginRequest{Username: "reg_user@test.local", Password: "secret123"}, "127.0.0.1")
	require.NoError(t, err)

	// 密码错误
	_, _, err = svc.Login(&dto.LoginRequest{Username: "reg_user", Password: "wrong"}, "127.0.0.1")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// 用户不存在
	_, _, err = svc.Login(&dto.LoginRequest{Username: "ghost_user", Password: "secret123"}, "127.0.0.1")
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestUserIsSubscribedFlag(t *testing.T) {
	svc := NewUserService()
	user := createTestUser(t, "flag_user")
	author := createTestUser(t, "flag_author")

	resp := svc.GenerateUserResponse(author, user.ID)
	assert.False(t, resp.IsSubscribed)

	_, err := NewSubscriptionService().Subscribe(user.ID, author.ID, -1)
	require.NoError(t, err)

	resp = svc.GenerateUserResponse(author, user.ID)
	assert.True(t, resp.IsSubscribed)

	// 匿名和本人视角恒为false
	assert.False(t, svc.GenerateUserResponse(author, 0).IsSubscribed)
	assert.False(t, svc.GenerateUserResponse(author, author.ID).IsSubscribed)
}

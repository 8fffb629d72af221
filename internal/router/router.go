package router

import (
	"foodgram/internal/config"
	"foodgram/internal/controller"
	"foodgram/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup 设置API路由
func Setup(r *gin.Engine) {
	cfg := config.GetConfig()

	// 未注册的方法返回405而不是404
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.Cors.AllowOrigins,
		AllowMethods:     cfg.App.Cors.AllowMethods,
		AllowHeaders:     cfg.App.Cors.AllowHeaders,
		ExposeHeaders:    cfg.App.Cors.ExposedHeaders,
		AllowCredentials: cfg.App.Cors.AllowCredentials,
	}))

	// 静态文件服务，前端访问本地上传的食谱图片
	if cfg.Image.UploadPath != "" {
		r.Static(cfg.Image.URLPrefix, cfg.Image.UploadPath)
	}

	api := r.Group("/api")

	setupSystemRoutes(api)
	setupUserRoutes(api)
	setupTagRoutes(api)
	setupIngredientRoutes(api)
	setupRecipeRoutes(api)
}

// setupSystemRoutes 设置系统相关路由
func setupSystemRoutes(api *gin.RouterGroup) {
	systemApi := controller.NewSystemApi()

	// 验证码
	api.GET("/captcha", systemApi.CreateCaptcha)
}

// setupUserRoutes 设置用户相关路由
func setupUserRoutes(api *gin.RouterGroup) {
	userApi := controller.NewUserApi()

	// 公开路由
	userRoutes := api.Group("/users")
	{
		// 注册
		userRoutes.POST("/register", userApi.Register)
		// 登录
		userRoutes.POST("/login", userApi.Login)
	}

	// 获取用户公开信息，登录后is_subscribed相对当前用户计算
	api.GET("/users/:id", middleware.OptionalAuth(), userApi.GetByID)

	// 需要刷新令牌的路由
	refreshRoutes := api.Group("/users", middleware.RefreshAuth())
	{
		// 刷新令牌
		refreshRoutes.POST("/refresh", userApi.RefreshToken)
		// 登出
		refreshRoutes.POST("/logout", userApi.Logout)
	}

	// 需要认证的路由
	authUserRoutes := api.Group("/users", middleware.JWTAuth())
	{
		// 当前用户信息
		authUserRoutes.GET("/me", userApi.GetCurrentUser)
		// 修改密码
		authUserRoutes.POST("/change-password", userApi.ChangePassword)
		// 订阅作者
		authUserRoutes.POST("/:id/subscribe", userApi.Subscribe)
		// 取消订阅
		authUserRoutes.DELETE("/:id/subscribe", userApi.Unsubscribe)
		// 订阅的作者列表
		authUserRoutes.GET("/subscriptions", userApi.Subscriptions)
	}

	// 需要管理员权限的路由
	adminUserRoutes := api.Group("/users", middleware.AdminAuth())
	{
		// 用户列表
		adminUserRoutes.GET("", userApi.List)
	}
}

// setupTagRoutes 设置标签相关路由
func setupTagRoutes(api *gin.RouterGroup) {
	tagApi := controller.NewTagApi()

	// 公开路由
	tagRoutes := api.Group("/tags")
	{
		// 标签列表
		tagRoutes.GET("", tagApi.List)
		// 标签详情
		tagRoutes.GET("/:id", tagApi.GetByID)
	}

	// 标签目录由管理员维护
	adminTagRoutes := api.Group("/tags", middleware.AdminAuth())
	{
		// 创建标签
		adminTagRoutes.POST("", tagApi.Create)
		// 更新标签
		adminTagRoutes.PUT("/:id", tagApi.Update)
		// 删除标签
		adminTagRoutes.DELETE("/:id", tagApi.Delete)
	}
}

// setupIngredientRoutes 设置食材相关路由
func setupIngredientRoutes(api *gin.RouterGroup) {
	ingredientApi := controller.NewIngredientApi()

	ingredientRoutes := api.Group("/ingredients")
	{
		// 食材列表，支持name前缀搜索
		ingredientRoutes.GET("", ingredientApi.List)
		// 食材详情
		ingredientRoutes.GET("/:id", ingredientApi.GetByID)
	}
}

// setupRecipeRoutes 设置食谱相关路由
func setupRecipeRoutes(api *gin.RouterGroup) {
	recipeApi := controller.NewRecipeApi()

	// 公开路由，登录后收藏和购物车标志相对当前用户计算
	recipeRoutes := api.Group("/recipes", middleware.OptionalAuth())
	{
		// 食谱列表
		recipeRoutes.GET("", recipeApi.List)
		// 食谱详情
		recipeRoutes.GET("/:id", recipeApi.GetByID)
	}

	// 需要认证的路由
	authRecipeRoutes := api.Group("/recipes", middleware.JWTAuth())
	{
		// 创建食谱
		authRecipeRoutes.POST("", recipeApi.Create)
		// 更新食谱，PUT与PATCH语义相同
		authRecipeRoutes.PUT("/:id", recipeApi.Update)
		authRecipeRoutes.PATCH("/:id", recipeApi.Update)
		// 删除食谱
		authRecipeRoutes.DELETE("/:id", recipeApi.Delete)
		// 收藏
		authRecipeRoutes.POST("/:id/favorite", recipeApi.AddFavorite)
		authRecipeRoutes.DELETE("/:id/favorite", recipeApi.RemoveFavorite)
		// 购物车
		authRecipeRoutes.POST("/:id/shopping_cart", recipeApi.AddToCart)
		authRecipeRoutes.DELETE("/:id/shopping_cart", recipeApi.RemoveFromCart)
		// 下载购物清单
		authRecipeRoutes.GET("/download_shopping_cart", recipeApi.DownloadShoppingCart)
	}
}

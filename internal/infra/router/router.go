/*
 * @Description: 应用路由注册
 * @Author: 安知鱼
 * @Date: 2026-02-12 17:30:46
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/internal/app/middleware"
	auth_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/auth"
	comment_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/comment"
	content_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/content"
	lock_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/lock"
	version_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/version"
	workflow_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/workflow"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler     *auth_handler.Handler
	contentHandler  *content_handler.Handler
	versionHandler  *version_handler.Handler
	workflowHandler *workflow_handler.Handler
	commentHandler  *comment_handler.Handler
	lockHandler     *lock_handler.Handler
	mw              *middleware.Middleware
}

// NewRouter 是 Router 的构造函数。
func NewRouter(
	authHandler *auth_handler.Handler,
	contentHandler *content_handler.Handler,
	versionHandler *version_handler.Handler,
	workflowHandler *workflow_handler.Handler,
	commentHandler *comment_handler.Handler,
	lockHandler *lock_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		contentHandler:  contentHandler,
		versionHandler:  versionHandler,
		workflowHandler: workflowHandler,
		commentHandler:  commentHandler,
		lockHandler:     lockHandler,
		mw:              mw,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
// 这是在 main.go 中将被调用的唯一入口点。
func (r *Router) Setup(engine *gin.Engine) {
	apiGroup := engine.Group("/api")
	apiGroup.Use(NoCacheMiddleware())

	r.registerAuthRoutes(apiGroup)
	r.registerPublicRoutes(apiGroup)
	r.registerContentRoutes(apiGroup)
	r.registerVersionRoutes(apiGroup)
	r.registerWorkflowRoutes(apiGroup)
	r.registerCommentRoutes(apiGroup)
	r.registerLockRoutes(apiGroup)
	r.registerAdminRoutes(apiGroup)
}

// registerAuthRoutes 登录与令牌刷新，登录接口带暴力破解限流
func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	api.POST("/login", middleware.LoginRateLimit(), r.authHandler.Login)
	api.POST("/token/refresh", r.authHandler.RefreshToken)
}

// registerPublicRoutes 匿名可访问的已发布内容读取
func (r *Router) registerPublicRoutes(api *gin.RouterGroup) {
	public := api.Group("/public")
	{
		public.GET("/contents/:id", r.contentHandler.GetPublished)
	}
}

// registerContentRoutes 内容实体的增删改查
func (r *Router) registerContentRoutes(api *gin.RouterGroup) {
	contents := api.Group("/contents", r.mw.JWTAuth())
	{
		contents.POST("", r.contentHandler.Create)
		contents.GET("", r.contentHandler.List)
		contents.GET("/:id", r.contentHandler.Get)
		contents.PUT("/:id/draft", r.contentHandler.UpdateDraft)
		contents.DELETE("/:id", r.contentHandler.Delete)
	}
}

// registerVersionRoutes 版本历史、对比与回滚
func (r *Router) registerVersionRoutes(api *gin.RouterGroup) {
	contents := api.Group("/contents", r.mw.JWTAuth())
	{
		contents.GET("/:id/versions", r.versionHandler.History)
		contents.GET("/:id/versions/compare", r.versionHandler.Compare)
		contents.GET("/:id/versions/:version", r.versionHandler.GetVersion)
		contents.POST("/:id/versions/:version/revert", r.versionHandler.Revert)
	}
}

// registerWorkflowRoutes 工作流转换与发布指针操作
func (r *Router) registerWorkflowRoutes(api *gin.RouterGroup) {
	versions := api.Group("/versions", r.mw.JWTAuth())
	{
		versions.POST("/:id/transition", r.workflowHandler.Transition)
		versions.GET("/:id/transitions", r.workflowHandler.AvailableTransitions)
		versions.POST("/:id/publish", r.workflowHandler.Publish)
	}

	contents := api.Group("/contents", r.mw.JWTAuth())
	{
		contents.POST("/:id/unpublish", r.workflowHandler.Unpublish)
		contents.POST("/:id/versions/:version/make-live", r.workflowHandler.MakeVersionLive)
	}
}

// registerCommentRoutes 版本上的编辑评论
func (r *Router) registerCommentRoutes(api *gin.RouterGroup) {
	versions := api.Group("/versions", r.mw.JWTAuth())
	{
		versions.POST("/:id/comments", r.commentHandler.Create)
		versions.GET("/:id/comments", r.commentHandler.List)
	}

	comments := api.Group("/comments", r.mw.JWTAuth())
	{
		comments.POST("/:id/resolve", r.commentHandler.Resolve)
		comments.POST("/:id/reopen", r.commentHandler.Reopen)
	}
}

// registerLockRoutes 编辑锁的获取、心跳、释放与查询
func (r *Router) registerLockRoutes(api *gin.RouterGroup) {
	contents := api.Group("/contents", r.mw.JWTAuth())
	{
		contents.POST("/:id/lock", r.lockHandler.Acquire)
		contents.POST("/:id/lock/force", r.lockHandler.ForceAcquire)
		contents.POST("/:id/lock/heartbeat", r.lockHandler.Heartbeat)
		contents.DELETE("/:id/lock", r.lockHandler.Release)
		contents.GET("/:id/lock", r.lockHandler.GetInfo)
	}
}

// registerAdminRoutes 工作流定义管理，需要工作流管理权限
func (r *Router) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", r.mw.JWTAuth(), r.mw.PermissionRequired(model.PermissionManageWorkflow))
	{
		admin.GET("/workflows", r.workflowHandler.ListDefinitions)
		admin.GET("/workflows/effective", r.workflowHandler.GetDefinition)
		admin.PUT("/workflows", r.workflowHandler.SaveDefinition)
		admin.DELETE("/workflows/:type", r.workflowHandler.DeleteDefinition)
	}
}

/*
 * @Description: 应用组装与启动
 * @Author: 安知鱼
 * @Date: 2026-02-12 19:10:42
 */
// anheyu-flow/cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/internal/app/bootstrap"
	"github.com/anzhiyu-c/anheyu-flow/internal/app/listener"
	"github.com/anzhiyu-c/anheyu-flow/internal/app/middleware"
	"github.com/anzhiyu-c/anheyu-flow/internal/app/task"
	"github.com/anzhiyu-c/anheyu-flow/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/anheyu-flow/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/anheyu-flow/internal/infra/router"
	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/version"
	"github.com/anzhiyu-c/anheyu-flow/pkg/config"
	auth_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/auth"
	comment_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/comment"
	content_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/content"
	lock_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/lock"
	version_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/version"
	workflow_handler "github.com/anzhiyu-c/anheyu-flow/pkg/handler/workflow"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	auth_service "github.com/anzhiyu-c/anheyu-flow/pkg/service/auth"
	comment_service "github.com/anzhiyu-c/anheyu-flow/pkg/service/comment"
	content_service "github.com/anzhiyu-c/anheyu-flow/pkg/service/content"
	lock_service "github.com/anzhiyu-c/anheyu-flow/pkg/service/lock"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/notification"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/utility"
	version_service "github.com/anzhiyu-c/anheyu-flow/pkg/service/version"
	workflow_service "github.com/anzhiyu-c/anheyu-flow/pkg/service/workflow"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg       *config.Config
	engine    *gin.Engine
	scheduler *task.Scheduler
	eventBus  *event.EventBus
	sqlDB     *sql.DB
}

func (a *App) PrintBanner() {
	banner := `

       █████╗ ███╗   ██╗███████╗██╗  ██╗██╗██╗   ██╗██╗   ██╗
      ██╔══██╗████╗  ██║╚══███╔╝██║  ██║██║╚██╗ ██╔╝██║   ██║
      ███████║██╔██╗ ██║  ███╔╝ ███████║██║ ╚████╔╝ ██║   ██║
      ██╔══██║██║╚██╗██║ ███╔╝  ██╔══██║██║  ╚██╔╝  ██║   ██║
      ██║  ██║██║ ╚████║███████╗██║  ██║██║   ██║   ╚██████╔╝
      ╚═╝  ╚═╝╚═╝  ╚═══╝╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝    ╚═════╝

`
	log.Println(banner)
	log.Println("--------------------------------------------------------")
	log.Printf(" Anheyu Flow - Version: %s", version.GetVersionString())
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	eventBus := event.NewEventBus()

	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, cleanup, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}

	// --- Phase 3: 初始化数据仓库层 ---
	userRepo := ent_impl.NewEntUserRepository(entClient)
	userGroupRepo := ent_impl.NewEntUserGroupRepository(entClient)
	contentRepo := ent_impl.NewContentRepo(entClient)
	versionRepo := ent_impl.NewVersionRepo(entClient)
	transitionRepo := ent_impl.NewTransitionRepo(entClient)
	commentRepo := ent_impl.NewCommentRepo(entClient)
	lockRepo := ent_impl.NewLockRepo(entClient)
	workflowDefRepo := ent_impl.NewWorkflowDefinitionRepo(entClient)
	txManager := ent_impl.NewEntTransactionManager(entClient)

	// --- Phase 4: 初始化业务逻辑层 ---
	// 使用智能缓存工厂，自动选择 Redis 或内存缓存
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	// 锁的过期判定阈值 = 心跳周期 × 过期倍数
	heartbeatInterval := cfg.GetDuration(config.KeyLockHeartbeatInterval, 15*time.Second)
	staleMultiplier := cfg.GetInt(config.KeyLockStaleMultiplier)
	if staleMultiplier < 2 {
		staleMultiplier = 3
	}
	lockStaleAfter := heartbeatInterval * time.Duration(staleMultiplier)
	reminderAfter := cfg.GetDuration(config.KeyCommentReminderAfter, 72*time.Hour)

	tokenSvc := auth_service.NewTokenService(userRepo, cfg)
	policySvc := workflow_service.NewPolicyService(workflowDefRepo, cacheSvc)
	workflowSvc := workflow_service.NewService(txManager, versionRepo, contentRepo, policySvc, eventBus)
	lockSvc := lock_service.NewService(lockRepo, eventBus, lockStaleAfter)
	versionSvc := version_service.NewService(txManager, versionRepo, transitionRepo, contentRepo, lockRepo, policySvc, lockStaleAfter)
	commentSvc := comment_service.NewService(commentRepo, versionRepo, userRepo, eventBus)
	contentSvc := content_service.NewService(txManager, contentRepo, versionRepo, policySvc, lockSvc)
	notifySvc := notification.NewService()

	// 事件监听：把工作流/评论/锁事件翻译成通知
	_ = listener.NewWorkflowEventListener(eventBus, notifySvc)

	// --- Phase 5: 初始化应用引导程序 ---
	bootstrapper := bootstrap.NewBootstrapper(userRepo, userGroupRepo, policySvc)
	if err := bootstrapper.InitializeDatabase(); err != nil {
		return nil, cleanup, fmt.Errorf("数据库初始化失败: %w", err)
	}

	// --- Phase 6: 初始化表现层 (Handlers) ---
	mw := middleware.NewMiddleware(tokenSvc)
	authHandler := auth_handler.NewHandler(tokenSvc)
	contentHandler := content_handler.NewHandler(contentSvc)
	versionHandler := version_handler.NewHandler(versionSvc)
	workflowHandler := workflow_handler.NewHandler(workflowSvc, policySvc)
	commentHandler := comment_handler.NewHandler(commentSvc)
	lockHandler := lock_handler.NewHandler(lockSvc)

	// --- Phase 7: 初始化路由 ---
	appRouter := router.NewRouter(
		authHandler,
		contentHandler,
		versionHandler,
		workflowHandler,
		commentHandler,
		lockHandler,
		mw,
	)

	// --- Phase 8: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	err = engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	if err != nil {
		return nil, cleanup, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	appRouter.Setup(engine)

	// --- Phase 9: 初始化定时任务 ---
	scheduler := task.NewScheduler(lockRepo, commentRepo, notifySvc, lockStaleAfter, reminderAfter)

	app := &App{
		cfg:       cfg,
		engine:    engine,
		scheduler: scheduler,
		eventBus:  eventBus,
		sqlDB:     sqlDB,
	}
	return app, cleanup, nil
}

func (a *App) Run() error {
	a.scheduler.RegisterJobs()
	a.scheduler.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
	if a.eventBus != nil {
		a.eventBus.Shutdown()
	}
}

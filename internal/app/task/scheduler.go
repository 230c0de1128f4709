/*
 * @Description: 定时任务调度器
 * @Author: 安知鱼
 * @Date: 2026-02-12 18:22:51
 */
package task

import (
	"log/slog"
	"os"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/notification"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	// 在这里注入所有任务可能需要的依赖
	lockRepo      repository.LockRepository
	commentRepo   repository.CommentRepository
	notifySvc     notification.Service
	lockStale     time.Duration
	reminderAfter time.Duration
}

// NewScheduler 是 Scheduler 的构造函数。
func NewScheduler(
	lockRepo repository.LockRepository,
	commentRepo repository.CommentRepository,
	notifySvc notification.Service,
	lockStale time.Duration,
	reminderAfter time.Duration,
) *Scheduler {
	// 1. 创建一个 slog.Logger 实例，并为其添加一个固定的 "system":"cron" 属性。
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	// 2. 创建一个新的 cron 调度器实例，并将新的 logger 传递给装饰器。
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron:          c,
		logger:        logger,
		lockRepo:      lockRepo,
		commentRepo:   commentRepo,
		notifySvc:     notifySvc,
		lockStale:     lockStale,
		reminderAfter: reminderAfter,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	// --- 任务1: 回收心跳早已停止的编辑锁记录 ---
	lockCleanupJob := NewStaleLockCleanupJob(s.lockRepo, s.lockStale)
	_, err := s.cron.AddJob("0 */10 * * * *", lockCleanupJob)
	if err != nil {
		s.logger.Error("Failed to add 'StaleLockCleanupJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'StaleLockCleanupJob'", "schedule", "every 10 minutes")

	// --- 任务2: 提醒超期未解决的编辑评论 ---
	reminderJob := NewUnresolvedCommentReminderJob(s.commentRepo, s.notifySvc, s.reminderAfter)
	_, err = s.cron.AddJob("0 0 9 * * *", reminderJob)
	if err != nil {
		s.logger.Error("Failed to add 'UnresolvedCommentReminderJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'UnresolvedCommentReminderJob'", "schedule", "every day at 9:00:00 AM")

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 优雅地停止 cron 调度器。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}

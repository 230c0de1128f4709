/*
 * @Description: 过期编辑锁清扫任务
 * @Author: 安知鱼
 * @Date: 2026-02-12 18:04:27
 */
// internal/app/task/job_stale_lock_cleanup.go
package task

import (
	"context"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
)

// StaleLockCleanupJob 批量删除心跳早已停止的编辑锁记录。
// 过期锁在读取时即被视为可抢占，这个任务只负责回收垃圾行，
// 不影响锁语义的正确性。
type StaleLockCleanupJob struct {
	lockRepo   repository.LockRepository
	staleAfter time.Duration
}

// NewStaleLockCleanupJob 是任务的构造函数
func NewStaleLockCleanupJob(lockRepo repository.LockRepository, staleAfter time.Duration) *StaleLockCleanupJob {
	return &StaleLockCleanupJob{
		lockRepo:   lockRepo,
		staleAfter: staleAfter,
	}
}

// Run 方法执行清扫逻辑。
func (j *StaleLockCleanupJob) Run() {
	ctx := context.Background()

	// 保留一倍过期窗口的余量，避免和正在进行的原子抢占竞争
	before := time.Now().Add(-2 * j.staleAfter)
	deleted, err := j.lockRepo.DeleteStale(ctx, before)
	if err != nil {
		log.Printf("错误: 任务 '%s' 清理过期编辑锁失败: %v", j.Name(), err)
		return
	}
	if deleted > 0 {
		log.Printf("[StaleLockCleanupJob] 已清理 %d 条过期编辑锁记录", deleted)
	}
}

// Name 方法返回任务的可读名称。
func (j *StaleLockCleanupJob) Name() string {
	return "StaleLockCleanupJob"
}

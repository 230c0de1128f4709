/*
 * @Description: 未解决评论提醒任务
 * @Author: 安知鱼
 * @Date: 2026-02-12 18:15:09
 */
// internal/app/task/job_comment_reminder.go
package task

import (
	"context"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/notification"
)

// UnresolvedCommentReminderJob 找出创建超过提醒窗口仍未解决的编辑评论，
// 逐条投递提醒通知。
type UnresolvedCommentReminderJob struct {
	commentRepo   repository.CommentRepository
	notifySvc     notification.Service
	reminderAfter time.Duration
}

// NewUnresolvedCommentReminderJob 是任务的构造函数
func NewUnresolvedCommentReminderJob(
	commentRepo repository.CommentRepository,
	notifySvc notification.Service,
	reminderAfter time.Duration,
) *UnresolvedCommentReminderJob {
	return &UnresolvedCommentReminderJob{
		commentRepo:   commentRepo,
		notifySvc:     notifySvc,
		reminderAfter: reminderAfter,
	}
}

// Run 方法执行提醒逻辑。
func (j *UnresolvedCommentReminderJob) Run() {
	ctx := context.Background()

	before := time.Now().Add(-j.reminderAfter)
	stale, err := j.commentRepo.ListStaleUnresolved(ctx, before)
	if err != nil {
		log.Printf("错误: 任务 '%s' 查询超期未解决评论失败: %v", j.Name(), err)
		return
	}
	if len(stale) == 0 {
		return
	}

	log.Printf("[UnresolvedCommentReminderJob] 发现 %d 条超期未解决评论", len(stale))
	for _, comment := range stale {
		j.notifySvc.NotifyStaleComment(comment)
	}
}

// Name 方法返回任务的可读名称。
func (j *UnresolvedCommentReminderJob) Name() string {
	return "UnresolvedCommentReminderJob"
}

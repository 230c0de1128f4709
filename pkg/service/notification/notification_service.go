/*
 * @Description: 编辑协作通知服务
 * @Author: 安知鱼
 * @Date: 2026-02-12 10:18:44
 */
package notification

import (
	"log"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// Service 定义了编辑协作事件的通知出口。
// 当前实现只做结构化日志投递，邮件/站内信等外部渠道由部署方自行接入。
type Service interface {
	// NotifyTransition 工作流状态变更通知
	NotifyTransition(ev *model.TransitionEvent)

	// NotifyCommentCreated 新编辑评论通知
	NotifyCommentCreated(ev *model.CommentEvent)

	// NotifyCommentResolved 评论被解决通知
	NotifyCommentResolved(ev *model.CommentEvent)

	// NotifyMention 评论 @提及 通知
	NotifyMention(ev *model.MentionEvent)

	// NotifyLockReclaimed 编辑锁被抢占通知，提醒被顶掉的持有者放弃本地会话
	NotifyLockReclaimed(ev *model.LockReclaimedEvent)

	// NotifyStaleComment 长期未解决评论的提醒（由定时任务触发）
	NotifyStaleComment(comment *model.EditorialComment)
}

type notificationService struct{}

// NewService 创建通知服务
func NewService() Service {
	return &notificationService{}
}

func (s *notificationService) NotifyTransition(ev *model.TransitionEvent) {
	from := "(初始)"
	if ev.FromStatus != nil {
		from = *ev.FromStatus
	}
	log.Printf("[Notification] 工作流变更: 内容 %s(%s) 版本v%d 由 %q 进入 %q, 操作者: %s",
		ev.ContentID, ev.ContentType, ev.Version, from, ev.ToStatus, ev.ActorNickname)
}

func (s *notificationService) NotifyCommentCreated(ev *model.CommentEvent) {
	log.Printf("[Notification] 新编辑评论: 版本 %s 收到 %s 的 %s 评论: %s",
		ev.VersionID, ev.AuthorNickname, ev.Type, ev.Excerpt)
}

func (s *notificationService) NotifyCommentResolved(ev *model.CommentEvent) {
	log.Printf("[Notification] 评论已解决: 版本 %s 的评论 %s 被 %s 标记为已解决",
		ev.VersionID, ev.CommentID, ev.AuthorNickname)
}

func (s *notificationService) NotifyMention(ev *model.MentionEvent) {
	log.Printf("[Notification] 评论提及: %s 在版本 %s 的评论中提及了 @%s",
		ev.AuthorNickname, ev.VersionID, ev.MentionedUsername)
}

func (s *notificationService) NotifyLockReclaimed(ev *model.LockReclaimedEvent) {
	reason := "强制抢占"
	if ev.WasStale {
		reason = "心跳超时"
	}
	log.Printf("[Notification] 编辑锁易主: 内容 %s 的编辑锁因%s被 %s 接管 (原持有者ID: %d)",
		ev.ContentID, reason, ev.NewHolderNickname, ev.PreviousHolderID)
}

func (s *notificationService) NotifyStaleComment(comment *model.EditorialComment) {
	log.Printf("[Notification] 评论超期未解决: 评论 %s (%s, 作者: %s) 创建于 %s, 请相关人员及时处理",
		comment.ID, comment.Type, comment.AuthorNickname, comment.CreatedAt.Format("2006-01-02 15:04:05"))
}

/*
 * @Description: 事件主题常量
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:26:40
 */
package constant

import "github.com/anzhiyu-c/anheyu-flow/internal/pkg/event"

// EventTopic 事件主题类型
type EventTopic = event.Topic

// 导出事件主题常量，供外部使用
const (
	// EventWorkflowTransitioned 工作流状态转换事件
	EventWorkflowTransitioned EventTopic = event.WorkflowTransitioned
	// 编辑评论事件
	EventCommentCreated   EventTopic = event.CommentCreated
	EventCommentResolved  EventTopic = event.CommentResolved
	EventCommentMentioned EventTopic = event.CommentMentioned
	// EventLockReclaimed 编辑锁被抢占事件
	EventLockReclaimed EventTopic = event.LockReclaimed
)

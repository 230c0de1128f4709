/*
 * @Description: 统一监听编辑协作事件，并分发到通知服务。
 * @Author: 安知鱼
 * @Date: 2026-02-12 10:40:17
 */
package listener

import (
	"log"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/notification"
)

// WorkflowEventListener 订阅工作流、评论与编辑锁事件，
// 把主流程里异步发出的事件翻译成通知投递。
type WorkflowEventListener struct {
	notifySvc notification.Service
}

// NewWorkflowEventListener 是 WorkflowEventListener 的构造函数。
// 它订阅所有编辑协作相关的事件主题，是通知链路的唯一入口。
func NewWorkflowEventListener(
	eventBus *event.EventBus,
	notifySvc notification.Service,
) *WorkflowEventListener {
	listener := &WorkflowEventListener{
		notifySvc: notifySvc,
	}
	eventBus.Subscribe(event.WorkflowTransitioned, listener.handleTransition)
	eventBus.Subscribe(event.CommentCreated, listener.handleCommentCreated)
	eventBus.Subscribe(event.CommentResolved, listener.handleCommentResolved)
	eventBus.Subscribe(event.CommentMentioned, listener.handleMention)
	eventBus.Subscribe(event.LockReclaimed, listener.handleLockReclaimed)
	return listener
}

func (l *WorkflowEventListener) handleTransition(payload interface{}) {
	ev, ok := payload.(*model.TransitionEvent)
	if !ok {
		log.Printf("[WorkflowEventListener] 错误：WorkflowTransitioned 事件负载类型不正确")
		return
	}
	l.notifySvc.NotifyTransition(ev)
}

func (l *WorkflowEventListener) handleCommentCreated(payload interface{}) {
	ev, ok := payload.(*model.CommentEvent)
	if !ok {
		log.Printf("[WorkflowEventListener] 错误：CommentCreated 事件负载类型不正确")
		return
	}
	l.notifySvc.NotifyCommentCreated(ev)
}

func (l *WorkflowEventListener) handleCommentResolved(payload interface{}) {
	ev, ok := payload.(*model.CommentEvent)
	if !ok {
		log.Printf("[WorkflowEventListener] 错误：CommentResolved 事件负载类型不正确")
		return
	}
	l.notifySvc.NotifyCommentResolved(ev)
}

func (l *WorkflowEventListener) handleMention(payload interface{}) {
	ev, ok := payload.(*model.MentionEvent)
	if !ok {
		log.Printf("[WorkflowEventListener] 错误：CommentMentioned 事件负载类型不正确")
		return
	}
	l.notifySvc.NotifyMention(ev)
}

func (l *WorkflowEventListener) handleLockReclaimed(payload interface{}) {
	ev, ok := payload.(*model.LockReclaimedEvent)
	if !ok {
		log.Printf("[WorkflowEventListener] 错误：LockReclaimed 事件负载类型不正确")
		return
	}
	l.notifySvc.NotifyLockReclaimed(ev)
}

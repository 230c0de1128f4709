/*
 * @Description: 工作流转换记录领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:24:09
 */
package model

import "time"

// WorkflowTransition 是工作流历史中的一条边，只追加，从不更新或删除。
// FromStatus 为 nil 表示版本创建边；同一版本的记录按提交顺序构成链：
// 每条记录的 FromStatus 等于前一条的 ToStatus。
type WorkflowTransition struct {
	ID            string    `json:"id"`
	VersionID     string    `json:"version_id"`
	FromStatus    *string   `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	ActorID       uint      `json:"actor_id"`
	ActorNickname string    `json:"actor_nickname"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateTransitionParams 追加转换记录的参数
type CreateTransitionParams struct {
	VersionDBID   uint
	FromStatus    *string
	ToStatus      string
	ActorID       uint
	ActorNickname string
	Comment       string
}

// TransitionOption 是某一状态下，某组角色可以执行的一个转换选项。
type TransitionOption struct {
	To    string   `json:"to"`
	Roles []string `json:"roles"`
}

// AvailableTransitionsResponse 可用转换查询响应
type AvailableTransitionsResponse struct {
	CurrentStatus string             `json:"current_status"`
	Options       []TransitionOption `json:"options"`
}

// TransitionEvent 是发布到事件总线的工作流转换事件载荷。
type TransitionEvent struct {
	ContentID     string  `json:"content_id"`
	ContentType   string  `json:"content_type"`
	VersionID     string  `json:"version_id"`
	Version       int     `json:"version"`
	FromStatus    *string `json:"from_status"`
	ToStatus      string  `json:"to_status"`
	ActorNickname string  `json:"actor_nickname"`
	Comment       string  `json:"comment"`
}

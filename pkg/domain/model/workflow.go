/*
 * @Description: 工作流定义领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:44:18
 */
package model

import "time"

// WorkflowEdge 是一条合法的 (from, to) 转换边，以及允许执行它的角色集合。
type WorkflowEdge struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Roles []string `json:"roles"`
}

// WorkflowDefinition 以数据的形式声明一种内容类型的状态机：
// 状态集合、合法转换边、发布角色。边集合完全可按内容类型替换，
// 引擎不对边做任何硬编码假设。
// ContentType 为空字符串表示默认定义，未单独配置的内容类型回退到它。
type WorkflowDefinition struct {
	ID             string         `json:"id"`
	ContentType    string         `json:"content_type"`
	Name           string         `json:"name"`
	States         []string       `json:"states"`
	InitialState   string         `json:"initial_state"`
	PublishedState string         `json:"published_state"`
	Edges          []WorkflowEdge `json:"edges"`
	PublishRoles   []string       `json:"publish_roles"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// SaveWorkflowDefinitionParams 创建/更新工作流定义的参数
type SaveWorkflowDefinitionParams struct {
	ContentType    string
	Name           string
	States         []string
	InitialState   string
	PublishedState string
	Edges          []WorkflowEdge
	PublishRoles   []string
}

// DefaultWorkflowDefinition 返回内置的默认编辑流程：
// draft → review → copydesk → approved → published，
// review/copydesk 可打回 rejected，rejected 可重新提交 review，
// published 可退回 draft 继续编辑。
func DefaultWorkflowDefinition() *WorkflowDefinition {
	return &WorkflowDefinition{
		ContentType:    "",
		Name:           "默认编辑流程",
		States:         []string{"draft", "review", "copydesk", "approved", "published", "rejected"},
		InitialState:   "draft",
		PublishedState: "published",
		Edges: []WorkflowEdge{
			{From: "draft", To: "review", Roles: []string{RoleWriter, RoleEditor, RoleChief}},
			{From: "review", To: "copydesk", Roles: []string{RoleEditor, RoleChief}},
			{From: "review", To: "rejected", Roles: []string{RoleEditor, RoleChief}},
			{From: "copydesk", To: "approved", Roles: []string{RoleCopyDesk, RoleChief}},
			{From: "copydesk", To: "rejected", Roles: []string{RoleCopyDesk, RoleChief}},
			{From: "rejected", To: "review", Roles: []string{RoleWriter, RoleEditor, RoleChief}},
			{From: "approved", To: "published", Roles: []string{RoleChief}},
			{From: "published", To: "draft", Roles: []string{RoleEditor, RoleChief}},
		},
		PublishRoles: []string{RoleChief},
	}
}

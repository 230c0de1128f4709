/*
 * @Description: 内容版本快照领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:18:30
 */
package model

import "time"

// ContentBlock 是结构化正文中的一个内容块。
// 块ID在一个版本的生命周期内保持稳定，版本对比按块ID对齐。
type ContentBlock struct {
	ID   string `json:"id"`
	Type string `json:"type"` // paragraph / heading / image / quote ...
	Text string `json:"text"`
}

// ContentVersion 是一个不可变的、带编号的内容快照。
// 版本号从1开始，按实体稠密递增；快照一旦脱离 draft 状态即不再修改，
// 后续编辑会派生新的版本。
type ContentVersion struct {
	ID             string               `json:"id"`
	ContentID      string               `json:"content_id"`
	Version        int                  `json:"version"`
	Title          string               `json:"title"`
	ContentMd      string               `json:"content_md,omitempty"`
	ContentHTML    string               `json:"content_html,omitempty"`
	Blocks         []ContentBlock       `json:"blocks,omitempty"`
	Summary        string               `json:"summary"`
	Keywords       string               `json:"keywords"`
	WordCount      int                  `json:"word_count"`
	Status         string               `json:"status"`
	IsActive       bool                 `json:"is_active"`
	EditorID       uint                 `json:"editor_id"`
	EditorNickname string               `json:"editor_nickname"`
	ChangeNote     string               `json:"change_note"`
	CreatedAt      time.Time            `json:"created_at"`
	Transitions    []WorkflowTransition `json:"transitions,omitempty"`
}

// VersionSnapshot 是创建/更新版本时提交的内容快照字段集合。
type VersionSnapshot struct {
	Title     string
	ContentMd string
	Blocks    []ContentBlock
	Summary   string
	Keywords  string
}

// CreateVersionParams 创建版本快照的参数
type CreateVersionParams struct {
	ContentDBID    uint
	Version        int
	Title          string
	ContentMd      string
	ContentHTML    string
	Blocks         []ContentBlock
	Summary        string
	Keywords       string
	WordCount      int
	Status         string
	EditorID       uint
	EditorNickname string
	ChangeNote     string
}

// UpdateSnapshotParams 原地更新草稿版本快照的参数。
// 仅允许作用于仍处于初始(draft)状态的版本。
type UpdateSnapshotParams struct {
	Title          string
	ContentMd      string
	ContentHTML    string
	Blocks         []ContentBlock
	Summary        string
	Keywords       string
	WordCount      int
	EditorID       uint
	EditorNickname string
	ChangeNote     string
}

// VersionListItem 版本历史列表项（不含完整内容）
type VersionListItem struct {
	ID             string               `json:"id"`
	Version        int                  `json:"version"`
	Title          string               `json:"title"`
	Status         string               `json:"status"`
	IsActive       bool                 `json:"is_active"`
	WordCount      int                  `json:"word_count"`
	EditorNickname string               `json:"editor_nickname"`
	ChangeNote     string               `json:"change_note"`
	CreatedAt      time.Time            `json:"created_at"`
	Transitions    []WorkflowTransition `json:"transitions"`
}

// VersionHistoryResponse 版本历史响应，最新版本在前
type VersionHistoryResponse struct {
	List     []VersionListItem `json:"list"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

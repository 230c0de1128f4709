/*
 * @Description: 编辑评论领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:30:52
 */
package model

import "time"

// 评论类型常量
const (
	CommentTypeGeneral         = "general"          // 普通备注
	CommentTypeRevisionRequest = "revision_request" // 返工要求
	CommentTypeApproval        = "approval"         // 审校意见
)

// IsValidCommentType 判断评论类型是否合法。
func IsValidCommentType(t string) bool {
	switch t {
	case CommentTypeGeneral, CommentTypeRevisionRequest, CommentTypeApproval:
		return true
	}
	return false
}

// EditorialComment 是附着在某个版本上的编辑讨论。
// 本子系统只修改其解决状态，评论正文创建后不再编辑。
type EditorialComment struct {
	ID              string     `json:"id"`
	VersionID       string     `json:"version_id"`
	AuthorID        uint       `json:"author_id"`
	AuthorNickname  string     `json:"author_nickname"`
	Content         string     `json:"content"`
	ContentHTML     string     `json:"content_html"`
	BlockID         *string    `json:"block_id"`
	Type            string     `json:"type"`
	ResolvedByID    *uint      `json:"resolved_by_id"`
	ResolvedByName  string     `json:"resolved_by_name,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

// IsResolved 判断评论是否已解决。
func (c *EditorialComment) IsResolved() bool {
	return c.ResolvedAt != nil
}

// CreateCommentParams 创建编辑评论的参数
type CreateCommentParams struct {
	VersionDBID    uint
	AuthorID       uint
	AuthorNickname string
	Content        string
	ContentHTML    string
	BlockID        *string
	Type           string
}

// CommentListResponse 评论列表响应，最新评论在前
type CommentListResponse struct {
	List            []*EditorialComment `json:"list"`
	Total           int64               `json:"total"`
	UnresolvedCount int                 `json:"unresolved_count"`
}

// CommentEvent 是发布到事件总线的评论事件载荷。
type CommentEvent struct {
	CommentID      string `json:"comment_id"`
	VersionID      string `json:"version_id"`
	AuthorNickname string `json:"author_nickname"`
	Type           string `json:"type"`
	Excerpt        string `json:"excerpt"`
}

// MentionEvent 是评论中 @提及 某个用户时发布的事件载荷，每个被提及者一条。
type MentionEvent struct {
	CommentID         string `json:"comment_id"`
	VersionID         string `json:"version_id"`
	AuthorNickname    string `json:"author_nickname"`
	MentionedUsername string `json:"mentioned_username"`
}

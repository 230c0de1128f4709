/*
 * @Description: 可版本化内容实体领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:10:45
 */
package model

import "time"

// 支持的内容类型。Version/Transition/Comment 均以 (content_type, content_id) 归属，
// 新类型通过在此登记并配置对应的工作流定义接入，而不是开放式动态类型。
const (
	ContentTypePost   = "post"
	ContentTypePage   = "page"
	ContentTypeRecipe = "recipe"
)

// IsValidContentType 判断内容类型是否已登记。
func IsValidContentType(t string) bool {
	switch t {
	case ContentTypePost, ContentTypePage, ContentTypeRecipe:
		return true
	}
	return false
}

// Content 是可版本化的内容实体。
// ActiveVersionID 指向当前对外发布的版本（nil 表示从未发布过），
// DraftVersionID 指向编辑正在加工的版本；二者可以同时指向不同版本
// （旧版本保持发布，编辑在新草稿上继续工作）。
// WorkflowStatus 是草稿版本状态的冗余镜像，用于列表过滤。
type Content struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Title           string     `json:"title"`
	WorkflowStatus  string     `json:"workflow_status"`
	ActiveVersionID *string    `json:"active_version_id"`
	DraftVersionID  *string    `json:"draft_version_id"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PublishedAt     *time.Time `json:"published_at"`
}

// CreateContentParams 创建内容实体的参数
type CreateContentParams struct {
	Type      string
	Title     string
	CreatorID uint
}

// ContentListResponse 内容列表响应
type ContentListResponse struct {
	List     []*Content `json:"list"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

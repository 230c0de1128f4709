/*
 * @Description: 版本对比结果领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:49:33
 */
package model

// 块级变更类型
const (
	BlockChangeAdded    = "added"
	BlockChangeRemoved  = "removed"
	BlockChangeModified = "modified"
)

// FieldChange 描述一个标量字段在两个版本之间的变化。
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// BlockChange 描述结构化正文中一个内容块的增删改。
type BlockChange struct {
	Type     string        `json:"type"` // added / removed / modified
	BlockID  string        `json:"block_id"`
	OldBlock *ContentBlock `json:"old_block,omitempty"`
	NewBlock *ContentBlock `json:"new_block,omitempty"`
}

// VersionDiff 是两个版本快照的结构化差异。
// 对比 (A,B) 与 (B,A) 得到的结果互为逆：字段的新旧值互换，
// added 与 removed 互换，modified 的新旧块互换。
type VersionDiff struct {
	BaseVersion   int           `json:"base_version"`
	TargetVersion int           `json:"target_version"`
	Fields        []FieldChange `json:"fields"`
	Blocks        []BlockChange `json:"blocks"`
}

/*
 * @Description: 版本快照的结构化对比
 * @Author: 安知鱼
 * @Date: 2026-02-10 18:02:44
 */
package version

import "github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"

// ComputeDiff 计算 base→target 的结构化差异。
// 标量字段逐个比较，只收录发生变化的；内容块按块ID对齐：
// 只在 base 中出现的是 removed，只在 target 中出现的是 added，
// 两边都有但内容不同的是 modified。
// 交换 base 和 target 会得到互逆的结果。
func ComputeDiff(base, target *model.ContentVersion) *model.VersionDiff {
	diff := &model.VersionDiff{
		BaseVersion:   base.Version,
		TargetVersion: target.Version,
		Fields:        make([]model.FieldChange, 0),
		Blocks:        make([]model.BlockChange, 0),
	}

	appendFieldChange(diff, "title", base.Title, target.Title)
	appendFieldChange(diff, "summary", base.Summary, target.Summary)
	appendFieldChange(diff, "keywords", base.Keywords, target.Keywords)
	appendFieldChange(diff, "content_md", base.ContentMd, target.ContentMd)

	targetByID := make(map[string]*model.ContentBlock, len(target.Blocks))
	for i := range target.Blocks {
		targetByID[target.Blocks[i].ID] = &target.Blocks[i]
	}
	baseByID := make(map[string]*model.ContentBlock, len(base.Blocks))
	for i := range base.Blocks {
		baseByID[base.Blocks[i].ID] = &base.Blocks[i]
	}

	// 按 base 的块顺序收录 removed 与 modified
	for i := range base.Blocks {
		old := &base.Blocks[i]
		fresh, ok := targetByID[old.ID]
		if !ok {
			diff.Blocks = append(diff.Blocks, model.BlockChange{
				Type:     model.BlockChangeRemoved,
				BlockID:  old.ID,
				OldBlock: old,
			})
			continue
		}
		if old.Type != fresh.Type || old.Text != fresh.Text {
			diff.Blocks = append(diff.Blocks, model.BlockChange{
				Type:     model.BlockChangeModified,
				BlockID:  old.ID,
				OldBlock: old,
				NewBlock: fresh,
			})
		}
	}

	// 按 target 的块顺序收录 added
	for i := range target.Blocks {
		fresh := &target.Blocks[i]
		if _, ok := baseByID[fresh.ID]; !ok {
			diff.Blocks = append(diff.Blocks, model.BlockChange{
				Type:     model.BlockChangeAdded,
				BlockID:  fresh.ID,
				NewBlock: fresh,
			})
		}
	}

	return diff
}

func appendFieldChange(diff *model.VersionDiff, field, old, fresh string) {
	if old == fresh {
		return
	}
	diff.Fields = append(diff.Fields, model.FieldChange{
		Field: field,
		Old:   old,
		New:   fresh,
	})
}

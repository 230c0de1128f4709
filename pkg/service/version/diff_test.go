package version

import (
	"testing"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

func snapshotV1() *model.ContentVersion {
	return &model.ContentVersion{
		Version:   1,
		Title:     "春季刊首语",
		Summary:   "一篇关于春天的文章",
		Keywords:  "春天,随笔",
		ContentMd: "# 春\n\n万物生长。",
		Blocks: []model.ContentBlock{
			{ID: "b1", Type: "heading", Text: "春"},
			{ID: "b2", Type: "paragraph", Text: "万物生长。"},
			{ID: "b3", Type: "quote", Text: "草长莺飞二月天。"},
		},
	}
}

func snapshotV2() *model.ContentVersion {
	return &model.ContentVersion{
		Version:   2,
		Title:     "春季刊首语（修订）",
		Summary:   "一篇关于春天的文章",
		Keywords:  "春天,随笔",
		ContentMd: "# 春\n\n万物复苏。",
		Blocks: []model.ContentBlock{
			{ID: "b1", Type: "heading", Text: "春"},
			{ID: "b2", Type: "paragraph", Text: "万物复苏。"},
			{ID: "b4", Type: "image", Text: "spring.jpg"},
		},
	}
}

func TestComputeDiff_NoChanges(t *testing.T) {
	diff := ComputeDiff(snapshotV1(), snapshotV1())
	if len(diff.Fields) != 0 {
		t.Fatalf("相同快照期望没有字段变更，得到: %+v", diff.Fields)
	}
	if len(diff.Blocks) != 0 {
		t.Fatalf("相同快照期望没有块变更，得到: %+v", diff.Blocks)
	}
}

func TestComputeDiff_FieldAndBlockChanges(t *testing.T) {
	base, target := snapshotV1(), snapshotV2()
	diff := ComputeDiff(base, target)

	if diff.BaseVersion != 1 || diff.TargetVersion != 2 {
		t.Fatalf("版本号不正确: base=%d target=%d", diff.BaseVersion, diff.TargetVersion)
	}

	// summary 和 keywords 没变，只应收录 title 和 content_md
	changedFields := map[string]model.FieldChange{}
	for _, fc := range diff.Fields {
		changedFields[fc.Field] = fc
	}
	if len(changedFields) != 2 {
		t.Fatalf("期望2个字段变更，得到: %v", changedFields)
	}
	if fc := changedFields["title"]; fc.Old != "春季刊首语" || fc.New != "春季刊首语（修订）" {
		t.Fatalf("title 变更不正确: %+v", fc)
	}
	if _, ok := changedFields["content_md"]; !ok {
		t.Fatalf("缺少 content_md 变更: %v", changedFields)
	}

	// b2 修改、b3 删除、b4 新增，b1 不变
	changes := map[string]model.BlockChange{}
	for _, bc := range diff.Blocks {
		changes[bc.BlockID] = bc
	}
	if len(changes) != 3 {
		t.Fatalf("期望3个块变更，得到: %v", changes)
	}
	if bc := changes["b2"]; bc.Type != model.BlockChangeModified || bc.OldBlock == nil || bc.NewBlock == nil {
		t.Fatalf("b2 期望 modified: %+v", bc)
	}
	if bc := changes["b3"]; bc.Type != model.BlockChangeRemoved || bc.OldBlock == nil || bc.NewBlock != nil {
		t.Fatalf("b3 期望 removed: %+v", bc)
	}
	if bc := changes["b4"]; bc.Type != model.BlockChangeAdded || bc.NewBlock == nil || bc.OldBlock != nil {
		t.Fatalf("b4 期望 added: %+v", bc)
	}
}

func TestComputeDiff_Inverse(t *testing.T) {
	forward := ComputeDiff(snapshotV1(), snapshotV2())
	backward := ComputeDiff(snapshotV2(), snapshotV1())

	if len(forward.Fields) != len(backward.Fields) || len(forward.Blocks) != len(backward.Blocks) {
		t.Fatalf("正反对比的变更数量应一致: forward=%d/%d backward=%d/%d",
			len(forward.Fields), len(forward.Blocks), len(backward.Fields), len(backward.Blocks))
	}

	// 字段变更的新旧值互换
	backFields := map[string]model.FieldChange{}
	for _, fc := range backward.Fields {
		backFields[fc.Field] = fc
	}
	for _, fc := range forward.Fields {
		back, ok := backFields[fc.Field]
		if !ok {
			t.Fatalf("反向对比缺少字段 %s", fc.Field)
		}
		if back.Old != fc.New || back.New != fc.Old {
			t.Fatalf("字段 %s 的新旧值未互换: forward=%+v backward=%+v", fc.Field, fc, back)
		}
	}

	// added 与 removed 互换，modified 两边都出现
	count := func(diff *model.VersionDiff, typ string) int {
		n := 0
		for _, bc := range diff.Blocks {
			if bc.Type == typ {
				n++
			}
		}
		return n
	}
	if count(forward, model.BlockChangeAdded) != count(backward, model.BlockChangeRemoved) {
		t.Fatal("forward 的 added 应等于 backward 的 removed")
	}
	if count(forward, model.BlockChangeRemoved) != count(backward, model.BlockChangeAdded) {
		t.Fatal("forward 的 removed 应等于 backward 的 added")
	}
	if count(forward, model.BlockChangeModified) != count(backward, model.BlockChangeModified) {
		t.Fatal("modified 数量正反应一致")
	}
}

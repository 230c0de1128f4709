package comment

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeCommentRepo 是 CommentRepository 的内存实现
type fakeCommentRepo struct {
	mu       sync.Mutex
	nextID   uint
	comments map[uint]*model.EditorialComment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1, comments: make(map[uint]*model.EditorialComment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, params *model.CreateCommentParams) (*model.EditorialComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dbID := r.nextID
	r.nextID++
	publicID, err := idgen.GeneratePublicID(dbID, idgen.EntityTypeEditorialComment)
	if err != nil {
		return nil, err
	}
	versionPublicID, err := idgen.GeneratePublicID(params.VersionDBID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, err
	}
	comment := &model.EditorialComment{
		ID:             publicID,
		VersionID:      versionPublicID,
		AuthorID:       params.AuthorID,
		AuthorNickname: params.AuthorNickname,
		Content:        params.Content,
		ContentHTML:    params.ContentHTML,
		BlockID:        params.BlockID,
		Type:           params.Type,
		CreatedAt:      time.Now(),
	}
	r.comments[dbID] = comment
	return comment, nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, dbID uint) (*model.EditorialComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[dbID]
	if !ok {
		return nil, fmt.Errorf("%w: 评论不存在", constant.ErrNotFound)
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) ListByVersion(_ context.Context, _ uint) ([]*model.EditorialComment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*model.EditorialComment, 0, len(r.comments))
	for _, c := range r.comments {
		list = append(list, c)
	}
	return list, int64(len(list)), nil
}

func (r *fakeCommentRepo) CountUnresolvedByVersion(_ context.Context, _ uint) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, c := range r.comments {
		if !c.IsResolved() {
			count++
		}
	}
	return count, nil
}

func (r *fakeCommentRepo) UpdateResolution(_ context.Context, dbID uint, resolvedBy *uint, resolvedByName string, resolvedAt *time.Time) (*model.EditorialComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[dbID]
	if !ok {
		return nil, fmt.Errorf("%w: 评论不存在", constant.ErrNotFound)
	}
	comment.ResolvedByID = resolvedBy
	comment.ResolvedByName = resolvedByName
	comment.ResolvedAt = resolvedAt
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) ListStaleUnresolved(_ context.Context, before time.Time) ([]*model.EditorialComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stale := make([]*model.EditorialComment, 0)
	for _, c := range r.comments {
		if !c.IsResolved() && c.CreatedAt.Before(before) {
			stale = append(stale, c)
		}
	}
	return stale, nil
}

func (r *fakeCommentRepo) DeleteByVersionIDs(_ context.Context, _ []uint) error {
	return nil
}

// fakeVersionRepo 只支撑评论服务需要的读路径
type fakeVersionRepo struct {
	versions map[uint]*model.ContentVersion
}

func (r *fakeVersionRepo) GetByID(_ context.Context, dbID uint) (*model.ContentVersion, error) {
	version, ok := r.versions[dbID]
	if !ok {
		return nil, fmt.Errorf("%w: 版本不存在", constant.ErrNotFound)
	}
	return version, nil
}

func (r *fakeVersionRepo) Create(_ context.Context, _ *model.CreateVersionParams) (*model.ContentVersion, error) {
	return nil, errors.New("未实现")
}

func (r *fakeVersionRepo) GetByContentAndVersion(_ context.Context, _ uint, _ int) (*model.ContentVersion, error) {
	return nil, errors.New("未实现")
}

func (r *fakeVersionRepo) GetLatestVersionNo(_ context.Context, _ uint) (int, error) { return 0, nil }

func (r *fakeVersionRepo) ListByContent(_ context.Context, _ uint, _, _ int) ([]model.VersionListItem, int64, error) {
	return nil, 0, nil
}

func (r *fakeVersionRepo) UpdateStatusFrom(_ context.Context, _ uint, _, _ string) (bool, error) {
	return false, nil
}

func (r *fakeVersionRepo) UpdateSnapshot(_ context.Context, _ uint, _ string, _ *model.UpdateSnapshotParams) (*model.ContentVersion, error) {
	return nil, errors.New("未实现")
}

func (r *fakeVersionRepo) SetActive(_ context.Context, _ uint, _ bool) error { return nil }

func (r *fakeVersionRepo) ClearActiveByContent(_ context.Context, _ uint) (int, error) {
	return 0, nil
}

func (r *fakeVersionRepo) GetActiveByContent(_ context.Context, _ uint) (*model.ContentVersion, error) {
	return nil, nil
}

func (r *fakeVersionRepo) CountByContent(_ context.Context, _ uint) (int, error) { return 0, nil }

func (r *fakeVersionRepo) ListIDsByContent(_ context.Context, _ uint) ([]uint, error) {
	return nil, nil
}

func (r *fakeVersionRepo) DeleteByContent(_ context.Context, _ uint) error { return nil }

// fakeUserRepo 按用户名存放已注册用户
type fakeUserRepo struct {
	users map[string]*model.User
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, _ uint) (*model.User, error) {
	return nil, errors.New("未实现")
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	return user, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uint, _ time.Time) error { return nil }

func (r *fakeUserRepo) CountAll(_ context.Context) (int, error) { return len(r.users), nil }

const testVersionDBID = 10

type commentTestEnv struct {
	svc         Service
	commentRepo *fakeCommentRepo
	bus         *event.EventBus
	versionID   string
}

func newCommentTestEnv(t *testing.T) *commentTestEnv {
	t.Helper()
	versionID, err := idgen.GeneratePublicID(testVersionDBID, idgen.EntityTypeContentVersion)
	if err != nil {
		t.Fatalf("生成版本公共ID失败: %v", err)
	}
	contentID, err := idgen.GeneratePublicID(1, idgen.EntityTypeContent)
	if err != nil {
		t.Fatalf("生成内容公共ID失败: %v", err)
	}

	versionRepo := &fakeVersionRepo{versions: map[uint]*model.ContentVersion{
		testVersionDBID: {
			ID:        versionID,
			ContentID: contentID,
			Version:   3,
			Title:     "秋季专题",
			Status:    "review",
			Blocks: []model.ContentBlock{
				{ID: "b1", Type: "heading", Text: "秋"},
				{ID: "b2", Type: "paragraph", Text: "落叶知秋。"},
			},
		},
	}}
	userRepo := &fakeUserRepo{users: map[string]*model.User{
		"alice": {ID: 1, Username: "alice", Nickname: "爱丽丝"},
		"bob":   {ID: 2, Username: "bob", Nickname: "鲍勃"},
	}}

	commentRepo := newFakeCommentRepo()
	bus := event.NewEventBus()
	return &commentTestEnv{
		svc:         NewService(commentRepo, versionRepo, userRepo, bus),
		commentRepo: commentRepo,
		bus:         bus,
		versionID:   versionID,
	}
}

func TestCreate_Validation(t *testing.T) {
	env := newCommentTestEnv(t)
	defer env.bus.Shutdown()
	ctx := context.Background()
	author := &model.User{ID: 1, Username: "alice", Nickname: "爱丽丝"}

	// 空内容
	_, err := env.svc.Create(ctx, env.versionID, author, "", nil, "")
	if !errors.Is(err, constant.ErrBadRequest) {
		t.Fatalf("空内容期望 ErrBadRequest，得到: %v", err)
	}

	// 未知评论类型
	_, err = env.svc.Create(ctx, env.versionID, author, "写得不错", nil, "praise")
	if !errors.Is(err, constant.ErrBadRequest) {
		t.Fatalf("未知类型期望 ErrBadRequest，得到: %v", err)
	}

	// 类型缺省为 general
	created, err := env.svc.Create(ctx, env.versionID, author, "写得不错", nil, "")
	if err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}
	if created.Type != model.CommentTypeGeneral {
		t.Fatalf("期望缺省类型 general，得到: %s", created.Type)
	}
	if created.ContentHTML == "" {
		t.Fatal("评论应渲染出 HTML")
	}
}

func TestCreate_BlockAnchor(t *testing.T) {
	env := newCommentTestEnv(t)
	defer env.bus.Shutdown()
	ctx := context.Background()
	author := &model.User{ID: 1, Username: "alice", Nickname: "爱丽丝"}

	// 锚定不存在的块
	missing := "b9"
	_, err := env.svc.Create(ctx, env.versionID, author, "这段有问题", &missing, model.CommentTypeRevisionRequest)
	if !errors.Is(err, constant.ErrBadRequest) {
		t.Fatalf("不存在的块期望 ErrBadRequest，得到: %v", err)
	}

	// 锚定真实存在的块
	blockID := "b2"
	created, err := env.svc.Create(ctx, env.versionID, author, "这段有问题", &blockID, model.CommentTypeRevisionRequest)
	if err != nil {
		t.Fatalf("创建块级评论失败: %v", err)
	}
	if created.BlockID == nil || *created.BlockID != blockID {
		t.Fatalf("块锚点不正确: %+v", created.BlockID)
	}
}

func TestCreate_Mentions(t *testing.T) {
	env := newCommentTestEnv(t)
	ctx := context.Background()
	author := &model.User{ID: 1, Username: "alice", Nickname: "爱丽丝"}

	var mu sync.Mutex
	var mentions []*model.MentionEvent
	env.bus.Subscribe(event.CommentMentioned, func(payload interface{}) {
		mu.Lock()
		defer mu.Unlock()
		mentions = append(mentions, payload.(*model.MentionEvent))
	})

	// bob 重复提及只发一条；alice 自提及不发；ghost 不是注册用户不发
	_, err := env.svc.Create(ctx, env.versionID, author,
		"@bob 看一下这段，@bob @alice @ghost", nil, "")
	if err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}

	env.bus.Shutdown()
	mu.Lock()
	defer mu.Unlock()
	if len(mentions) != 1 {
		t.Fatalf("期望1条提及事件，得到: %d", len(mentions))
	}
	if mentions[0].MentionedUsername != "bob" {
		t.Fatalf("期望提及 bob，得到: %s", mentions[0].MentionedUsername)
	}
	if mentions[0].AuthorNickname != "爱丽丝" {
		t.Fatalf("提及事件作者不正确: %+v", mentions[0])
	}
}

func TestResolve_Authorization(t *testing.T) {
	env := newCommentTestEnv(t)
	defer env.bus.Shutdown()
	ctx := context.Background()
	author := &model.User{ID: 1, Username: "alice", Nickname: "爱丽丝"}
	stranger := &model.User{ID: 2, Username: "bob", Nickname: "鲍勃"}
	var chiefPerms model.Boolset
	chiefPerms.Set(model.PermissionResolveComment, true)
	chief := &model.User{ID: 3, Nickname: "主编", UserGroup: model.UserGroup{Permissions: chiefPerms}}

	created, err := env.svc.Create(ctx, env.versionID, author, "标题需要再斟酌", nil, "")
	if err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}

	// 既非作者也无权限
	_, err = env.svc.Resolve(ctx, created.ID, stranger)
	if !errors.Is(err, constant.ErrForbidden) {
		t.Fatalf("期望 ErrForbidden，得到: %v", err)
	}

	// 持有解决权限的用户可以解决
	resolved, err := env.svc.Resolve(ctx, created.ID, chief)
	if err != nil {
		t.Fatalf("解决评论失败: %v", err)
	}
	if !resolved.IsResolved() || resolved.ResolvedByName != "主编" {
		t.Fatalf("解决状态不正确: %+v", resolved)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	env := newCommentTestEnv(t)
	defer env.bus.Shutdown()
	ctx := context.Background()
	author := &model.User{ID: 1, Username: "alice", Nickname: "爱丽丝"}
	var perms model.Boolset
	perms.Set(model.PermissionResolveComment, true)
	other := &model.User{ID: 3, Nickname: "主编", UserGroup: model.UserGroup{Permissions: perms}}

	created, err := env.svc.Create(ctx, env.versionID, author, "结尾略仓促", nil, "")
	if err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}

	// 作者本人解决自己的评论
	first, err := env.svc.Resolve(ctx, created.ID, author)
	if err != nil {
		t.Fatalf("解决评论失败: %v", err)
	}
	if first.ResolvedByID == nil || *first.ResolvedByID != author.ID {
		t.Fatalf("解决者应是作者: %+v", first.ResolvedByID)
	}

	// 重复解决幂等成功，并把解决者和时间刷新为本次操作
	second, err := env.svc.Resolve(ctx, created.ID, other)
	if err != nil {
		t.Fatalf("重复解决应幂等成功: %v", err)
	}
	if !second.IsResolved() {
		t.Fatal("评论应保持已解决")
	}
	if second.ResolvedByID == nil || *second.ResolvedByID != other.ID || second.ResolvedByName != "主编" {
		t.Fatalf("重复解决应刷新解决者: %+v", second)
	}
	if second.ResolvedAt == nil || second.ResolvedAt.Before(*first.ResolvedAt) {
		t.Fatalf("重复解决应刷新解决时间: first=%v second=%v", first.ResolvedAt, second.ResolvedAt)
	}
}

func TestReopen(t *testing.T) {
	env := newCommentTestEnv(t)
	defer env.bus.Shutdown()
	ctx := context.Background()
	author := &model.User{ID: 1, Username: "alice", Nickname: "爱丽丝"}

	created, err := env.svc.Create(ctx, env.versionID, author, "数据来源待确认", nil, "")
	if err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}

	// 未解决的评论重开是幂等空操作
	reopened, err := env.svc.Reopen(ctx, created.ID, author)
	if err != nil {
		t.Fatalf("重开未解决评论应幂等成功: %v", err)
	}
	if reopened.IsResolved() {
		t.Fatal("评论不应变为已解决")
	}

	if _, err := env.svc.Resolve(ctx, created.ID, author); err != nil {
		t.Fatalf("解决评论失败: %v", err)
	}
	reopened, err = env.svc.Reopen(ctx, created.ID, author)
	if err != nil {
		t.Fatalf("重开评论失败: %v", err)
	}
	if reopened.IsResolved() || reopened.ResolvedByID != nil || reopened.ResolvedByName != "" {
		t.Fatalf("重开后解决信息应清空: %+v", reopened)
	}
}

func TestList_UnresolvedCount(t *testing.T) {
	env := newCommentTestEnv(t)
	defer env.bus.Shutdown()
	ctx := context.Background()
	author := &model.User{ID: 1, Username: "alice", Nickname: "爱丽丝"}

	first, err := env.svc.Create(ctx, env.versionID, author, "第一条", nil, "")
	if err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}
	if _, err := env.svc.Create(ctx, env.versionID, author, "第二条", nil, ""); err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}
	if _, err := env.svc.Resolve(ctx, first.ID, author); err != nil {
		t.Fatalf("解决评论失败: %v", err)
	}

	resp, err := env.svc.List(ctx, env.versionID)
	if err != nil {
		t.Fatalf("获取评论列表失败: %v", err)
	}
	if resp.Total != 2 || resp.UnresolvedCount != 1 {
		t.Fatalf("期望 total=2 unresolved=1，得到: total=%d unresolved=%d", resp.Total, resp.UnresolvedCount)
	}
}

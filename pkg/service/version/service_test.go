package version

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/utility"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/workflow"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// versionStore 是版本服务测试的共享内存状态，各仓储假实现都落在它上面。
type versionStore struct {
	mu          sync.Mutex
	nextID      uint
	versions    map[uint]*model.ContentVersion
	contentOf   map[uint]uint // 版本dbID → 内容dbID
	contents    map[uint]*model.Content
	transitions []model.WorkflowTransition
	locks       map[uint]*model.EditLock
}

type storeVersions struct{ s *versionStore }

func (r *storeVersions) Create(_ context.Context, params *model.CreateVersionParams) (*model.ContentVersion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	dbID := r.s.nextID
	r.s.nextID++
	publicID, err := idgen.GeneratePublicID(dbID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, err
	}
	contentPublicID, err := idgen.GeneratePublicID(params.ContentDBID, idgen.EntityTypeContent)
	if err != nil {
		return nil, err
	}
	created := &model.ContentVersion{
		ID:             publicID,
		ContentID:      contentPublicID,
		Version:        params.Version,
		Title:          params.Title,
		ContentMd:      params.ContentMd,
		ContentHTML:    params.ContentHTML,
		Blocks:         params.Blocks,
		Summary:        params.Summary,
		Keywords:       params.Keywords,
		WordCount:      params.WordCount,
		Status:         params.Status,
		EditorID:       params.EditorID,
		EditorNickname: params.EditorNickname,
		ChangeNote:     params.ChangeNote,
		CreatedAt:      time.Now(),
	}
	r.s.versions[dbID] = created
	r.s.contentOf[dbID] = params.ContentDBID
	copied := *created
	return &copied, nil
}

func (r *storeVersions) GetByID(_ context.Context, dbID uint) (*model.ContentVersion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	version, ok := r.s.versions[dbID]
	if !ok {
		return nil, fmt.Errorf("%w: 版本不存在", constant.ErrNotFound)
	}
	copied := *version
	return &copied, nil
}

func (r *storeVersions) GetByContentAndVersion(_ context.Context, contentDBID uint, versionNo int) (*model.ContentVersion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for dbID, version := range r.s.versions {
		if r.s.contentOf[dbID] == contentDBID && version.Version == versionNo {
			copied := *version
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: 版本v%d不存在", constant.ErrNotFound, versionNo)
}

func (r *storeVersions) GetLatestVersionNo(_ context.Context, contentDBID uint) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	latest := 0
	for dbID, version := range r.s.versions {
		if r.s.contentOf[dbID] == contentDBID && version.Version > latest {
			latest = version.Version
		}
	}
	return latest, nil
}

func (r *storeVersions) ListByContent(_ context.Context, contentDBID uint, _, _ int) ([]model.VersionListItem, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items := make([]model.VersionListItem, 0)
	for dbID, version := range r.s.versions {
		if r.s.contentOf[dbID] == contentDBID {
			items = append(items, model.VersionListItem{
				ID:       version.ID,
				Version:  version.Version,
				Title:    version.Title,
				Status:   version.Status,
				IsActive: version.IsActive,
			})
		}
	}
	return items, int64(len(items)), nil
}

func (r *storeVersions) UpdateStatusFrom(_ context.Context, dbID uint, fromStatus, toStatus string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	version, ok := r.s.versions[dbID]
	if !ok || version.Status != fromStatus {
		return false, nil
	}
	version.Status = toStatus
	return true, nil
}

func (r *storeVersions) UpdateSnapshot(_ context.Context, _ uint, _ string, _ *model.UpdateSnapshotParams) (*model.ContentVersion, error) {
	return nil, errors.New("未实现")
}

func (r *storeVersions) SetActive(_ context.Context, dbID uint, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if version, ok := r.s.versions[dbID]; ok {
		version.IsActive = active
	}
	return nil
}

func (r *storeVersions) ClearActiveByContent(_ context.Context, contentDBID uint) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for dbID, version := range r.s.versions {
		if r.s.contentOf[dbID] == contentDBID && version.IsActive {
			version.IsActive = false
			count++
		}
	}
	return count, nil
}

func (r *storeVersions) GetActiveByContent(_ context.Context, contentDBID uint) (*model.ContentVersion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for dbID, version := range r.s.versions {
		if r.s.contentOf[dbID] == contentDBID && version.IsActive {
			copied := *version
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *storeVersions) CountByContent(_ context.Context, contentDBID uint) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for dbID := range r.s.versions {
		if r.s.contentOf[dbID] == contentDBID {
			count++
		}
	}
	return count, nil
}

func (r *storeVersions) ListIDsByContent(_ context.Context, _ uint) ([]uint, error) { return nil, nil }

func (r *storeVersions) DeleteByContent(_ context.Context, _ uint) error { return nil }

type storeContents struct{ s *versionStore }

func (r *storeContents) Create(_ context.Context, _ *model.CreateContentParams) (*model.Content, error) {
	return nil, errors.New("未实现")
}

func (r *storeContents) GetByID(_ context.Context, dbID uint) (*model.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	content, ok := r.s.contents[dbID]
	if !ok {
		return nil, fmt.Errorf("%w: 内容不存在", constant.ErrNotFound)
	}
	copied := *content
	return &copied, nil
}

func (r *storeContents) UpdateWorkflowStatus(_ context.Context, dbID uint, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if content, ok := r.s.contents[dbID]; ok {
		content.WorkflowStatus = status
	}
	return nil
}

func (r *storeContents) UpdateTitle(_ context.Context, dbID uint, title string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if content, ok := r.s.contents[dbID]; ok {
		content.Title = title
	}
	return nil
}

func (r *storeContents) SetActiveVersion(_ context.Context, _ uint, _ *uint, _ *time.Time) error {
	return nil
}

func (r *storeContents) SetDraftVersion(_ context.Context, dbID uint, versionDBID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	content, ok := r.s.contents[dbID]
	if !ok {
		return fmt.Errorf("%w: 内容不存在", constant.ErrNotFound)
	}
	publicID, err := idgen.GeneratePublicID(versionDBID, idgen.EntityTypeContentVersion)
	if err != nil {
		return err
	}
	content.DraftVersionID = &publicID
	return nil
}

func (r *storeContents) List(_ context.Context, _ string, _, _ int) ([]*model.Content, int64, error) {
	return nil, 0, nil
}

func (r *storeContents) Delete(_ context.Context, _ uint) error { return nil }

type storeTransitions struct{ s *versionStore }

func (r *storeTransitions) Create(_ context.Context, params *model.CreateTransitionParams) (*model.WorkflowTransition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	versionPublicID, err := idgen.GeneratePublicID(params.VersionDBID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, err
	}
	transition := model.WorkflowTransition{
		VersionID:     versionPublicID,
		FromStatus:    params.FromStatus,
		ToStatus:      params.ToStatus,
		ActorID:       params.ActorID,
		ActorNickname: params.ActorNickname,
		Comment:       params.Comment,
		CreatedAt:     time.Now(),
	}
	r.s.transitions = append(r.s.transitions, transition)
	return &transition, nil
}

func (r *storeTransitions) ListByVersion(_ context.Context, versionDBID uint) ([]model.WorkflowTransition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	publicID, err := idgen.GeneratePublicID(versionDBID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, err
	}
	matched := make([]model.WorkflowTransition, 0)
	for _, transition := range r.s.transitions {
		if transition.VersionID == publicID {
			matched = append(matched, transition)
		}
	}
	return matched, nil
}

func (r *storeTransitions) ListByVersionIDs(_ context.Context, versionDBIDs []uint) (map[uint][]model.WorkflowTransition, error) {
	result := make(map[uint][]model.WorkflowTransition, len(versionDBIDs))
	for _, dbID := range versionDBIDs {
		transitions, err := r.ListByVersion(context.Background(), dbID)
		if err != nil {
			return nil, err
		}
		result[dbID] = transitions
	}
	return result, nil
}

func (r *storeTransitions) GetLastByVersion(_ context.Context, _ uint) (*model.WorkflowTransition, error) {
	return nil, nil
}

func (r *storeTransitions) DeleteByVersionIDs(_ context.Context, _ []uint) error { return nil }

type storeLocks struct{ s *versionStore }

func (r *storeLocks) TryCreate(_ context.Context, _ *model.AcquireLockParams, _ time.Time) (bool, error) {
	return false, errors.New("未实现")
}

func (r *storeLocks) GetByContent(_ context.Context, contentDBID uint) (*model.EditLock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	lock, ok := r.s.locks[contentDBID]
	if !ok {
		return nil, nil
	}
	copied := *lock
	return &copied, nil
}

func (r *storeLocks) RefreshHeartbeat(_ context.Context, _, _ uint, _ time.Time) (bool, error) {
	return false, nil
}

func (r *storeLocks) StealIfStale(_ context.Context, _ uint, _ *model.AcquireLockParams, _, _ time.Time) (bool, error) {
	return false, nil
}

func (r *storeLocks) Steal(_ context.Context, _ uint, _ *model.AcquireLockParams, _ time.Time) (bool, error) {
	return false, nil
}

func (r *storeLocks) Delete(_ context.Context, _, _ uint) (bool, error) { return false, nil }

func (r *storeLocks) DeleteByContent(_ context.Context, _ uint) error { return nil }

func (r *storeLocks) DeleteStale(_ context.Context, _ time.Time) (int, error) { return 0, nil }

// nilDefinitionRepo 库中没有任何定义，策略服务回退到内置默认流程
type nilDefinitionRepo struct{}

func (r *nilDefinitionRepo) GetByContentType(_ context.Context, _ string) (*model.WorkflowDefinition, error) {
	return nil, nil
}

func (r *nilDefinitionRepo) FindAll(_ context.Context) ([]*model.WorkflowDefinition, error) {
	return nil, nil
}

func (r *nilDefinitionRepo) Save(_ context.Context, _ *model.SaveWorkflowDefinitionParams) (*model.WorkflowDefinition, error) {
	return nil, errors.New("未实现")
}

func (r *nilDefinitionRepo) Delete(_ context.Context, _ string) error { return nil }

type versionTxManager struct{ repos repository.Repositories }

func (m *versionTxManager) Do(_ context.Context, fn func(repos repository.Repositories) error) error {
	return fn(m.repos)
}

const (
	revertContentDBID = 1
	revertVersionDBID = 10
	revertStaleAfter  = 45 * time.Second
)

type versionTestEnv struct {
	svc       Service
	store     *versionStore
	contentID string
	versionID string
}

// newVersionTestEnv 预置一个已发布的内容：v1 处于 published 且为活动版本
func newVersionTestEnv(t *testing.T) *versionTestEnv {
	t.Helper()
	contentID, err := idgen.GeneratePublicID(revertContentDBID, idgen.EntityTypeContent)
	if err != nil {
		t.Fatalf("生成内容公共ID失败: %v", err)
	}
	versionID, err := idgen.GeneratePublicID(revertVersionDBID, idgen.EntityTypeContentVersion)
	if err != nil {
		t.Fatalf("生成版本公共ID失败: %v", err)
	}

	store := &versionStore{
		nextID: revertVersionDBID + 1,
		versions: map[uint]*model.ContentVersion{
			revertVersionDBID: {
				ID:        versionID,
				ContentID: contentID,
				Version:   1,
				Title:     "城市漫步指南",
				ContentMd: "# 城市漫步\n\n从老城区出发。",
				Blocks: []model.ContentBlock{
					{ID: "b1", Type: "heading", Text: "城市漫步"},
					{ID: "b2", Type: "paragraph", Text: "从老城区出发。"},
				},
				WordCount: 12,
				Status:    "published",
				IsActive:  true,
			},
		},
		contentOf: map[uint]uint{revertVersionDBID: revertContentDBID},
		contents: map[uint]*model.Content{
			revertContentDBID: {
				ID:              contentID,
				Type:            model.ContentTypePost,
				Title:           "城市漫步指南",
				WorkflowStatus:  "published",
				ActiveVersionID: &versionID,
				DraftVersionID:  &versionID,
			},
		},
		locks: make(map[uint]*model.EditLock),
	}

	versions := &storeVersions{s: store}
	contents := &storeContents{s: store}
	transitions := &storeTransitions{s: store}
	locks := &storeLocks{s: store}
	txManager := &versionTxManager{repos: repository.Repositories{
		Content:    contents,
		Version:    versions,
		Transition: transitions,
		Lock:       locks,
	}}
	policySvc := workflow.NewPolicyService(&nilDefinitionRepo{}, utility.NewMemoryCacheService())

	return &versionTestEnv{
		svc:       NewService(txManager, versions, transitions, contents, locks, policySvc, revertStaleAfter),
		store:     store,
		contentID: contentID,
		versionID: versionID,
	}
}

func TestRevertTo(t *testing.T) {
	env := newVersionTestEnv(t)
	ctx := context.Background()
	editor := &model.User{ID: 2, Nickname: "编辑"}
	sourceBefore := *env.store.versions[revertVersionDBID]

	created, err := env.svc.RevertTo(ctx, env.contentID, 1, editor)
	if err != nil {
		t.Fatalf("回滚派生失败: %v", err)
	}

	// 新版本号递增、内容复制自源版本、状态回到初始状态、不是活动版本
	if created.Version != 2 {
		t.Fatalf("期望派生出v2，得到: v%d", created.Version)
	}
	if created.Status != "draft" || created.IsActive {
		t.Fatalf("派生版本应是非活动的草稿: status=%s active=%v", created.Status, created.IsActive)
	}
	if created.Title != sourceBefore.Title || created.ContentMd != sourceBefore.ContentMd {
		t.Fatalf("派生版本的内容应复制自源版本: %+v", created)
	}
	if len(created.Blocks) != len(sourceBefore.Blocks) {
		t.Fatalf("派生版本的内容块不完整: %d", len(created.Blocks))
	}
	if created.EditorID != editor.ID || created.ChangeNote == "" {
		t.Fatalf("派生版本应记录执行者和回滚备注: %+v", created)
	}

	// 源版本保持活动且逐字段不变
	sourceAfter := env.store.versions[revertVersionDBID]
	if !sourceAfter.IsActive {
		t.Fatal("源版本应保持活动")
	}
	if sourceAfter.Status != sourceBefore.Status || sourceAfter.ContentMd != sourceBefore.ContentMd ||
		sourceAfter.Title != sourceBefore.Title || sourceAfter.Version != sourceBefore.Version {
		t.Fatalf("源版本不应被修改: before=%+v after=%+v", sourceBefore, *sourceAfter)
	}

	// 新版本的创建边进账本：FromStatus 为空，ToStatus 为初始状态
	if len(env.store.transitions) != 1 {
		t.Fatalf("期望1条账本记录，得到: %d", len(env.store.transitions))
	}
	ledger := env.store.transitions[0]
	if ledger.VersionID != created.ID || ledger.FromStatus != nil || ledger.ToStatus != "draft" {
		t.Fatalf("创建边记录不正确: %+v", ledger)
	}

	// 内容实体的草稿指针和镜像字段被新草稿接管
	content := env.store.contents[revertContentDBID]
	if content.DraftVersionID == nil || *content.DraftVersionID != created.ID {
		t.Fatalf("草稿指针应指向新版本: %+v", content.DraftVersionID)
	}
	if content.WorkflowStatus != "draft" {
		t.Fatalf("内容状态镜像应回到初始状态: %s", content.WorkflowStatus)
	}
}

func TestRevertTo_VersionNotFound(t *testing.T) {
	env := newVersionTestEnv(t)
	editor := &model.User{ID: 2, Nickname: "编辑"}

	_, err := env.svc.RevertTo(context.Background(), env.contentID, 9, editor)
	if !errors.Is(err, constant.ErrNotFound) {
		t.Fatalf("不存在的版本期望 ErrNotFound，得到: %v", err)
	}
	if len(env.store.transitions) != 0 {
		t.Fatal("失败的回滚不应写入账本")
	}
}

func TestRevertTo_LockHeldByOther(t *testing.T) {
	env := newVersionTestEnv(t)
	ctx := context.Background()
	editor := &model.User{ID: 2, Nickname: "编辑"}

	// 他人持有心跳新鲜的锁时不允许回滚派生
	env.store.locks[revertContentDBID] = &model.EditLock{
		HolderID:        3,
		HolderNickname:  "鲍勃",
		AcquiredAt:      time.Now(),
		LastHeartbeatAt: time.Now(),
	}
	_, err := env.svc.RevertTo(ctx, env.contentID, 1, editor)
	if !errors.Is(err, constant.ErrLockConflict) {
		t.Fatalf("期望 ErrLockConflict，得到: %v", err)
	}

	// 锁过期后不再挡路
	env.store.locks[revertContentDBID].LastHeartbeatAt = time.Now().Add(-2 * revertStaleAfter)
	created, err := env.svc.RevertTo(ctx, env.contentID, 1, editor)
	if err != nil {
		t.Fatalf("过期锁不应阻止回滚: %v", err)
	}
	if created.Version != 2 {
		t.Fatalf("期望派生出v2，得到: v%d", created.Version)
	}
}

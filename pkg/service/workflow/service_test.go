package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

// workflowStore 是工作流服务测试的共享内存状态，
// 三个仓储假实现都落在它上面，模拟同一数据库。
type workflowStore struct {
	mu          sync.Mutex
	versions    map[uint]*model.ContentVersion
	contentOf   map[uint]uint // 版本dbID → 内容dbID
	contents    map[uint]*model.Content
	transitions []model.WorkflowTransition

	// failUpdates 大于0时，UpdateStatusFrom 先空转指定次数，
	// 模拟条件写入因并发修改而不命中任何行。
	failUpdates int
}

type fakeVersions struct{ s *workflowStore }

func (r *fakeVersions) Create(_ context.Context, _ *model.CreateVersionParams) (*model.ContentVersion, error) {
	return nil, errors.New("未实现")
}

func (r *fakeVersions) GetByID(_ context.Context, dbID uint) (*model.ContentVersion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	version, ok := r.s.versions[dbID]
	if !ok {
		return nil, fmt.Errorf("%w: 版本不存在", constant.ErrNotFound)
	}
	copied := *version
	return &copied, nil
}

func (r *fakeVersions) GetByContentAndVersion(_ context.Context, contentDBID uint, versionNo int) (*model.ContentVersion, error) {
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

func (r *fakeVersions) GetLatestVersionNo(_ context.Context, _ uint) (int, error) { return 0, nil }

func (r *fakeVersions) ListByContent(_ context.Context, _ uint, _, _ int) ([]model.VersionListItem, int64, error) {
	return nil, 0, nil
}

func (r *fakeVersions) UpdateStatusFrom(_ context.Context, dbID uint, fromStatus, toStatus string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUpdates > 0 {
		r.s.failUpdates--
		return false, nil
	}
	version, ok := r.s.versions[dbID]
	if !ok || version.Status != fromStatus {
		return false, nil
	}
	version.Status = toStatus
	return true, nil
}

func (r *fakeVersions) UpdateSnapshot(_ context.Context, _ uint, _ string, _ *model.UpdateSnapshotParams) (*model.ContentVersion, error) {
	return nil, errors.New("未实现")
}

func (r *fakeVersions) SetActive(_ context.Context, dbID uint, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if version, ok := r.s.versions[dbID]; ok {
		version.IsActive = active
	}
	return nil
}

func (r *fakeVersions) ClearActiveByContent(_ context.Context, contentDBID uint) (int, error) {
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

func (r *fakeVersions) GetActiveByContent(_ context.Context, contentDBID uint) (*model.ContentVersion, error) {
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

func (r *fakeVersions) CountByContent(_ context.Context, _ uint) (int, error) { return 0, nil }

func (r *fakeVersions) ListIDsByContent(_ context.Context, _ uint) ([]uint, error) { return nil, nil }

func (r *fakeVersions) DeleteByContent(_ context.Context, _ uint) error { return nil }

type fakeContents struct{ s *workflowStore }

func (r *fakeContents) Create(_ context.Context, _ *model.CreateContentParams) (*model.Content, error) {
	return nil, errors.New("未实现")
}

func (r *fakeContents) GetByID(_ context.Context, dbID uint) (*model.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	content, ok := r.s.contents[dbID]
	if !ok {
		return nil, fmt.Errorf("%w: 内容不存在", constant.ErrNotFound)
	}
	copied := *content
	return &copied, nil
}

func (r *fakeContents) UpdateWorkflowStatus(_ context.Context, dbID uint, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if content, ok := r.s.contents[dbID]; ok {
		content.WorkflowStatus = status
	}
	return nil
}

func (r *fakeContents) UpdateTitle(_ context.Context, _ uint, _ string) error { return nil }

func (r *fakeContents) SetActiveVersion(_ context.Context, dbID uint, versionDBID *uint, publishedAt *time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	content, ok := r.s.contents[dbID]
	if !ok {
		return fmt.Errorf("%w: 内容不存在", constant.ErrNotFound)
	}
	if versionDBID == nil {
		content.ActiveVersionID = nil
		content.PublishedAt = nil
		return nil
	}
	publicID, err := idgen.GeneratePublicID(*versionDBID, idgen.EntityTypeContentVersion)
	if err != nil {
		return err
	}
	content.ActiveVersionID = &publicID
	content.PublishedAt = publishedAt
	return nil
}

func (r *fakeContents) SetDraftVersion(_ context.Context, _ uint, _ uint) error { return nil }

func (r *fakeContents) List(_ context.Context, _ string, _, _ int) ([]*model.Content, int64, error) {
	return nil, 0, nil
}

func (r *fakeContents) Delete(_ context.Context, _ uint) error { return nil }

type fakeTransitions struct{ s *workflowStore }

func (r *fakeTransitions) Create(_ context.Context, params *model.CreateTransitionParams) (*model.WorkflowTransition, error) {
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

func (r *fakeTransitions) ListByVersion(_ context.Context, _ uint) ([]model.WorkflowTransition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]model.WorkflowTransition(nil), r.s.transitions...), nil
}

func (r *fakeTransitions) ListByVersionIDs(_ context.Context, _ []uint) (map[uint][]model.WorkflowTransition, error) {
	return nil, nil
}

func (r *fakeTransitions) GetLastByVersion(_ context.Context, _ uint) (*model.WorkflowTransition, error) {
	return nil, nil
}

func (r *fakeTransitions) DeleteByVersionIDs(_ context.Context, _ []uint) error { return nil }

// fakeTxManager 直接执行业务函数，不做真正的事务包裹
type fakeTxManager struct{ repos repository.Repositories }

func (m *fakeTxManager) Do(_ context.Context, fn func(repos repository.Repositories) error) error {
	return fn(m.repos)
}

const (
	testContentDBID  = 1
	testVersionDBID  = 10
	testVersion2DBID = 11
)

type workflowTestEnv struct {
	svc       Service
	store     *workflowStore
	bus       *event.EventBus
	contentID string
	versionID string
}

func newWorkflowTestEnv(t *testing.T, versionStatus string) *workflowTestEnv {
	t.Helper()
	contentID, err := idgen.GeneratePublicID(testContentDBID, idgen.EntityTypeContent)
	if err != nil {
		t.Fatalf("生成内容公共ID失败: %v", err)
	}
	versionID, err := idgen.GeneratePublicID(testVersionDBID, idgen.EntityTypeContentVersion)
	if err != nil {
		t.Fatalf("生成版本公共ID失败: %v", err)
	}

	store := &workflowStore{
		versions: map[uint]*model.ContentVersion{
			testVersionDBID: {
				ID:        versionID,
				ContentID: contentID,
				Version:   1,
				Title:     "城市漫步指南",
				Status:    versionStatus,
			},
		},
		contentOf: map[uint]uint{testVersionDBID: testContentDBID},
		contents: map[uint]*model.Content{
			testContentDBID: {
				ID:             contentID,
				Type:           model.ContentTypePost,
				Title:          "城市漫步指南",
				WorkflowStatus: versionStatus,
				DraftVersionID: &versionID,
			},
		},
	}

	versions := &fakeVersions{s: store}
	contents := &fakeContents{s: store}
	txManager := &fakeTxManager{repos: repository.Repositories{
		Content:    contents,
		Version:    versions,
		Transition: &fakeTransitions{s: store},
	}}

	bus := event.NewEventBus()
	policySvc := newTestPolicyService(newFakeDefinitionRepo())
	return &workflowTestEnv{
		svc:       NewService(txManager, versions, contents, policySvc, bus),
		store:     store,
		bus:       bus,
		contentID: contentID,
		versionID: versionID,
	}
}

func roleUser(id uint, nickname string, roles ...string) *model.User {
	return &model.User{
		ID:       id,
		Nickname: nickname,
		UserGroup: model.UserGroup{
			Roles: roles,
		},
	}
}

func TestTransition_HappyPath(t *testing.T) {
	env := newWorkflowTestEnv(t, "draft")
	ctx := context.Background()
	writer := roleUser(1, "撰稿人", model.RoleWriter)

	var mu sync.Mutex
	var events []*model.TransitionEvent
	env.bus.Subscribe(event.WorkflowTransitioned, func(payload interface{}) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, payload.(*model.TransitionEvent))
	})

	updated, err := env.svc.Transition(ctx, env.versionID, "review", writer, "初稿完成，请审")
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if updated.Status != "review" {
		t.Fatalf("期望状态 review，得到: %s", updated.Status)
	}

	// 账本追加了一条 draft→review 记录
	if len(env.store.transitions) != 1 {
		t.Fatalf("期望1条账本记录，得到: %d", len(env.store.transitions))
	}
	ledger := env.store.transitions[0]
	if ledger.FromStatus == nil || *ledger.FromStatus != "draft" || ledger.ToStatus != "review" {
		t.Fatalf("账本记录不正确: %+v", ledger)
	}
	if ledger.Comment != "初稿完成，请审" {
		t.Fatalf("账本备注不正确: %s", ledger.Comment)
	}

	// 该版本是内容的草稿版本，状态镜像同步更新
	if env.store.contents[testContentDBID].WorkflowStatus != "review" {
		t.Fatalf("内容状态镜像未同步: %s", env.store.contents[testContentDBID].WorkflowStatus)
	}

	env.bus.Shutdown()
	mu.Lock()
	defer mu.Unlock()
	if len(events) != 1 {
		t.Fatalf("期望1条转换事件，得到: %d", len(events))
	}
	if events[0].ToStatus != "review" || events[0].ContentType != model.ContentTypePost {
		t.Fatalf("转换事件载荷不正确: %+v", events[0])
	}
}

func TestTransition_IllegalEdge(t *testing.T) {
	env := newWorkflowTestEnv(t, "draft")
	defer env.bus.Shutdown()
	chief := roleUser(1, "主编", model.RoleChief)

	_, err := env.svc.Transition(context.Background(), env.versionID, "published", chief, "")
	if !errors.Is(err, constant.ErrIllegalTransition) {
		t.Fatalf("不存在的边期望 ErrIllegalTransition，得到: %v", err)
	}
	if len(env.store.transitions) != 0 {
		t.Fatal("失败的转换不应写入账本")
	}
}

func TestTransition_RoleNotAllowed(t *testing.T) {
	env := newWorkflowTestEnv(t, "review")
	defer env.bus.Shutdown()
	writer := roleUser(1, "撰稿人", model.RoleWriter)

	// 边存在但角色不符，对调用方来说这条转换不可走
	_, err := env.svc.Transition(context.Background(), env.versionID, "copydesk", writer, "")
	if !errors.Is(err, constant.ErrIllegalTransition) {
		t.Fatalf("角色不符期望 ErrIllegalTransition，得到: %v", err)
	}
	if env.store.versions[testVersionDBID].Status != "review" {
		t.Fatal("失败的转换不应改变版本状态")
	}
}

func TestTransition_SameStatus(t *testing.T) {
	env := newWorkflowTestEnv(t, "review")
	defer env.bus.Shutdown()
	editor := roleUser(1, "编辑", model.RoleEditor)

	// 定义不允许自环边，同状态转换必然不可走
	_, err := env.svc.Transition(context.Background(), env.versionID, "review", editor, "")
	if !errors.Is(err, constant.ErrIllegalTransition) {
		t.Fatalf("同状态转换期望 ErrIllegalTransition，得到: %v", err)
	}
}

func TestTransition_Publish(t *testing.T) {
	env := newWorkflowTestEnv(t, "approved")
	defer env.bus.Shutdown()
	ctx := context.Background()
	chief := roleUser(1, "主编", model.RoleChief)

	// 预置一个旧的发布版本，发布新版本时它应被取代
	oldVersionID, err := idgen.GeneratePublicID(testVersion2DBID, idgen.EntityTypeContentVersion)
	if err != nil {
		t.Fatalf("生成版本公共ID失败: %v", err)
	}
	env.store.versions[testVersion2DBID] = &model.ContentVersion{
		ID:        oldVersionID,
		ContentID: env.contentID,
		Version:   0,
		Status:    "published",
		IsActive:  true,
	}
	env.store.contentOf[testVersion2DBID] = testContentDBID

	updated, err := env.svc.Transition(ctx, env.versionID, "published", chief, "终审通过")
	if err != nil {
		t.Fatalf("发布失败: %v", err)
	}
	if updated.Status != "published" || !updated.IsActive {
		t.Fatalf("发布后版本状态不正确: status=%s active=%v", updated.Status, updated.IsActive)
	}

	// 恰好一个活动版本
	if env.store.versions[testVersion2DBID].IsActive {
		t.Fatal("旧发布版本应被取代")
	}
	content := env.store.contents[testContentDBID]
	if content.ActiveVersionID == nil || *content.ActiveVersionID != env.versionID {
		t.Fatalf("发布指针不正确: %+v", content.ActiveVersionID)
	}
	if content.PublishedAt == nil {
		t.Fatal("发布时间应被记录")
	}
}

func TestTransition_PublishRoleRequired(t *testing.T) {
	env := newWorkflowTestEnv(t, "approved")
	defer env.bus.Shutdown()
	// 默认流程 approved→published 的边只对主编开放
	copydesk := roleUser(1, "校对", model.RoleCopyDesk)

	_, err := env.svc.Transition(context.Background(), env.versionID, "published", copydesk, "")
	if !errors.Is(err, constant.ErrIllegalTransition) {
		t.Fatalf("期望 ErrIllegalTransition，得到: %v", err)
	}
}

func TestTransition_RetryOnConflict(t *testing.T) {
	env := newWorkflowTestEnv(t, "draft")
	defer env.bus.Shutdown()
	writer := roleUser(1, "撰稿人", model.RoleWriter)

	// 第一次条件写入不命中，重试一次后成功
	env.store.failUpdates = 1
	updated, err := env.svc.Transition(context.Background(), env.versionID, "review", writer, "")
	if err != nil {
		t.Fatalf("重试后应成功: %v", err)
	}
	if updated.Status != "review" {
		t.Fatalf("期望状态 review，得到: %s", updated.Status)
	}
}

func TestTransition_ConflictAfterRetry(t *testing.T) {
	env := newWorkflowTestEnv(t, "draft")
	defer env.bus.Shutdown()
	writer := roleUser(1, "撰稿人", model.RoleWriter)

	// 重试也不命中，按真实冲突上报
	env.store.failUpdates = 2
	_, err := env.svc.Transition(context.Background(), env.versionID, "review", writer, "")
	if !errors.Is(err, constant.ErrConflict) {
		t.Fatalf("期望 ErrConflict，得到: %v", err)
	}
}

func TestUnpublish(t *testing.T) {
	env := newWorkflowTestEnv(t, "published")
	defer env.bus.Shutdown()
	ctx := context.Background()
	chief := roleUser(1, "主编", model.RoleChief)
	writer := roleUser(2, "撰稿人", model.RoleWriter)

	env.store.versions[testVersionDBID].IsActive = true
	env.store.contents[testContentDBID].ActiveVersionID = &env.versionID

	// 不满足发布角色的用户不能撤下发布
	err := env.svc.Unpublish(ctx, env.contentID, writer)
	if !errors.Is(err, constant.ErrForbidden) {
		t.Fatalf("期望 ErrForbidden，得到: %v", err)
	}

	if err := env.svc.Unpublish(ctx, env.contentID, chief); err != nil {
		t.Fatalf("撤下发布失败: %v", err)
	}
	if env.store.contents[testContentDBID].ActiveVersionID != nil {
		t.Fatal("发布指针应被清空")
	}
	if env.store.versions[testVersionDBID].IsActive {
		t.Fatal("版本的活动标记应被清除")
	}

	// 撤下在被撤版本的账本上留痕，版本状态本身不变
	if len(env.store.transitions) != 1 {
		t.Fatalf("撤下发布应写1条账本记录，得到: %d", len(env.store.transitions))
	}
	ledger := env.store.transitions[0]
	if ledger.VersionID != env.versionID {
		t.Fatalf("账本记录应落在被撤版本上: %+v", ledger)
	}
	if ledger.FromStatus == nil || *ledger.FromStatus != "published" || ledger.ToStatus != "published" {
		t.Fatalf("撤下记录的状态不正确: %+v", ledger)
	}
	if ledger.ActorNickname != "主编" || ledger.Comment == "" {
		t.Fatalf("撤下记录应带执行者和自动备注: %+v", ledger)
	}

	// 没有发布版本时幂等成功，不再追加账本记录
	if err := env.svc.Unpublish(ctx, env.contentID, chief); err != nil {
		t.Fatalf("重复撤下应幂等成功: %v", err)
	}
	if len(env.store.transitions) != 1 {
		t.Fatalf("幂等撤下不应追加账本记录，得到: %d 条", len(env.store.transitions))
	}
}

func TestMakeVersionLive(t *testing.T) {
	env := newWorkflowTestEnv(t, "published")
	defer env.bus.Shutdown()
	ctx := context.Background()
	chief := roleUser(1, "主编", model.RoleChief)

	// v1(dbID=10) 是历史发布版本；v2(dbID=11) 当前活动
	v2ID, err := idgen.GeneratePublicID(testVersion2DBID, idgen.EntityTypeContentVersion)
	if err != nil {
		t.Fatalf("生成版本公共ID失败: %v", err)
	}
	env.store.versions[testVersion2DBID] = &model.ContentVersion{
		ID:        v2ID,
		ContentID: env.contentID,
		Version:   2,
		Status:    "published",
		IsActive:  true,
	}
	env.store.contentOf[testVersion2DBID] = testContentDBID
	env.store.contents[testContentDBID].ActiveVersionID = &v2ID

	restored, err := env.svc.MakeVersionLive(ctx, env.contentID, 1, chief)
	if err != nil {
		t.Fatalf("切换发布版本失败: %v", err)
	}
	if restored.Version != 1 || !restored.IsActive {
		t.Fatalf("切换结果不正确: %+v", restored)
	}
	if env.store.versions[testVersion2DBID].IsActive {
		t.Fatal("原活动版本的标记应被清除")
	}
	content := env.store.contents[testContentDBID]
	if content.ActiveVersionID == nil || *content.ActiveVersionID != env.versionID {
		t.Fatalf("发布指针不正确: %+v", content.ActiveVersionID)
	}

	// 切换进账本：落在目标版本上，FromStatus 取原活动版本的状态
	if len(env.store.transitions) != 1 {
		t.Fatalf("切换发布版本应写1条账本记录，得到: %d", len(env.store.transitions))
	}
	ledger := env.store.transitions[0]
	if ledger.VersionID != env.versionID {
		t.Fatalf("账本记录应落在目标版本上: %+v", ledger)
	}
	if ledger.FromStatus == nil || *ledger.FromStatus != "published" || ledger.ToStatus != "published" {
		t.Fatalf("切换记录的状态不正确: %+v", ledger)
	}
	if ledger.Comment == "" {
		t.Fatal("切换记录应带自动生成的备注")
	}

	// 幂等：目标已是活动版本，不再追加账本记录
	again, err := env.svc.MakeVersionLive(ctx, env.contentID, 1, chief)
	if err != nil {
		t.Fatalf("重复切换应幂等成功: %v", err)
	}
	if again.Version != 1 {
		t.Fatalf("幂等结果不正确: %+v", again)
	}
	if len(env.store.transitions) != 1 {
		t.Fatalf("幂等切换不应追加账本记录，得到: %d 条", len(env.store.transitions))
	}
}

func TestPublishVersion(t *testing.T) {
	env := newWorkflowTestEnv(t, "approved")
	defer env.bus.Shutdown()
	ctx := context.Background()
	chief := roleUser(1, "主编", model.RoleChief)

	published, err := env.svc.PublishVersion(ctx, env.versionID, chief, "终审通过")
	if err != nil {
		t.Fatalf("发布失败: %v", err)
	}
	if published.Status != "published" || !published.IsActive {
		t.Fatalf("发布后版本状态不正确: status=%s active=%v", published.Status, published.IsActive)
	}

	// 复用完整的转换路径：账本记录 approved→published
	if len(env.store.transitions) != 1 {
		t.Fatalf("期望1条账本记录，得到: %d", len(env.store.transitions))
	}
	ledger := env.store.transitions[0]
	if ledger.FromStatus == nil || *ledger.FromStatus != "approved" || ledger.ToStatus != "published" {
		t.Fatalf("账本记录不正确: %+v", ledger)
	}
	if ledger.Comment != "终审通过" {
		t.Fatalf("账本备注不正确: %s", ledger.Comment)
	}
	content := env.store.contents[testContentDBID]
	if content.ActiveVersionID == nil || *content.ActiveVersionID != env.versionID {
		t.Fatalf("发布指针不正确: %+v", content.ActiveVersionID)
	}
}

func TestPublishVersion_RequiresPrePublishStatus(t *testing.T) {
	env := newWorkflowTestEnv(t, "draft")
	defer env.bus.Shutdown()
	chief := roleUser(1, "主编", model.RoleChief)

	// draft 没有直达 published 的边
	_, err := env.svc.PublishVersion(context.Background(), env.versionID, chief, "")
	if !errors.Is(err, constant.ErrIllegalTransition) {
		t.Fatalf("期望 ErrIllegalTransition，得到: %v", err)
	}
	if len(env.store.transitions) != 0 {
		t.Fatal("失败的发布不应写入账本")
	}
	if env.store.versions[testVersionDBID].Status != "draft" {
		t.Fatal("失败的发布不应改变版本状态")
	}
}

func TestMakeVersionLive_RequiresPublishedStatus(t *testing.T) {
	env := newWorkflowTestEnv(t, "review")
	defer env.bus.Shutdown()
	chief := roleUser(1, "主编", model.RoleChief)

	_, err := env.svc.MakeVersionLive(context.Background(), env.contentID, 1, chief)
	if !errors.Is(err, constant.ErrIllegalTransition) {
		t.Fatalf("非发布状态的版本期望 ErrIllegalTransition，得到: %v", err)
	}
}

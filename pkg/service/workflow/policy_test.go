package workflow

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/utility"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeDefinitionRepo 是 WorkflowDefinitionRepository 的内存实现，按内容类型存放定义。
type fakeDefinitionRepo struct {
	defs map[string]*model.WorkflowDefinition
}

func newFakeDefinitionRepo() *fakeDefinitionRepo {
	return &fakeDefinitionRepo{defs: make(map[string]*model.WorkflowDefinition)}
}

func (r *fakeDefinitionRepo) GetByContentType(_ context.Context, contentType string) (*model.WorkflowDefinition, error) {
	def, ok := r.defs[contentType]
	if !ok {
		return nil, nil
	}
	return def, nil
}

func (r *fakeDefinitionRepo) FindAll(_ context.Context) ([]*model.WorkflowDefinition, error) {
	all := make([]*model.WorkflowDefinition, 0, len(r.defs))
	for _, def := range r.defs {
		all = append(all, def)
	}
	return all, nil
}

func (r *fakeDefinitionRepo) Save(_ context.Context, params *model.SaveWorkflowDefinitionParams) (*model.WorkflowDefinition, error) {
	def := &model.WorkflowDefinition{
		ContentType:    params.ContentType,
		Name:           params.Name,
		States:         params.States,
		InitialState:   params.InitialState,
		PublishedState: params.PublishedState,
		Edges:          params.Edges,
		PublishRoles:   params.PublishRoles,
	}
	r.defs[params.ContentType] = def
	return def, nil
}

func (r *fakeDefinitionRepo) Delete(_ context.Context, contentType string) error {
	delete(r.defs, contentType)
	return nil
}

func newTestPolicyService(repo *fakeDefinitionRepo) PolicyService {
	return NewPolicyService(repo, utility.NewMemoryCacheService())
}

func TestValidateDefinition(t *testing.T) {
	base := func() *model.WorkflowDefinition {
		return model.DefaultWorkflowDefinition()
	}

	tests := []struct {
		name    string
		mutate  func(def *model.WorkflowDefinition)
		wantErr bool
	}{
		{
			name:    "内置默认定义合法",
			mutate:  func(def *model.WorkflowDefinition) {},
			wantErr: false,
		},
		{
			name:    "名称为空",
			mutate:  func(def *model.WorkflowDefinition) { def.Name = "" },
			wantErr: true,
		},
		{
			name:    "状态集合为空",
			mutate:  func(def *model.WorkflowDefinition) { def.States = nil },
			wantErr: true,
		},
		{
			name:    "状态名为空",
			mutate:  func(def *model.WorkflowDefinition) { def.States = append(def.States, "") },
			wantErr: true,
		},
		{
			name:    "状态重复声明",
			mutate:  func(def *model.WorkflowDefinition) { def.States = append(def.States, "draft") },
			wantErr: true,
		},
		{
			name:    "初始状态未声明",
			mutate:  func(def *model.WorkflowDefinition) { def.InitialState = "limbo" },
			wantErr: true,
		},
		{
			name:    "发布状态未声明",
			mutate:  func(def *model.WorkflowDefinition) { def.PublishedState = "live" },
			wantErr: true,
		},
		{
			name: "转换边引用未声明的源状态",
			mutate: func(def *model.WorkflowDefinition) {
				def.Edges = append(def.Edges, model.WorkflowEdge{From: "limbo", To: "draft", Roles: []string{model.RoleChief}})
			},
			wantErr: true,
		},
		{
			name: "转换边引用未声明的目标状态",
			mutate: func(def *model.WorkflowDefinition) {
				def.Edges = append(def.Edges, model.WorkflowEdge{From: "draft", To: "limbo", Roles: []string{model.RoleChief}})
			},
			wantErr: true,
		},
		{
			name: "自环转换边",
			mutate: func(def *model.WorkflowDefinition) {
				def.Edges = append(def.Edges, model.WorkflowEdge{From: "draft", To: "draft", Roles: []string{model.RoleChief}})
			},
			wantErr: true,
		},
		{
			name: "转换边未声明角色",
			mutate: func(def *model.WorkflowDefinition) {
				def.Edges = append(def.Edges, model.WorkflowEdge{From: "draft", To: "rejected"})
			},
			wantErr: true,
		},
	}

	svc := newTestPolicyService(newFakeDefinitionRepo())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := base()
			tt.mutate(def)
			err := svc.ValidateDefinition(def)
			if tt.wantErr {
				if !errors.Is(err, constant.ErrWorkflowInvalid) {
					t.Fatalf("期望 ErrWorkflowInvalid，得到: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("期望校验通过，得到: %v", err)
			}
		})
	}
}

func TestResolveDefinition_FallbackChain(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDefinitionRepo()

	defaultDef := model.DefaultWorkflowDefinition()
	defaultDef.Name = "库中默认流程"
	repo.defs[""] = defaultDef

	postDef := model.DefaultWorkflowDefinition()
	postDef.ContentType = model.ContentTypePost
	postDef.Name = "文章专属流程"
	repo.defs[model.ContentTypePost] = postDef

	svc := newTestPolicyService(repo)

	// 有专属定义的类型取专属定义
	got, err := svc.ResolveDefinition(ctx, model.ContentTypePost)
	if err != nil {
		t.Fatalf("ResolveDefinition 失败: %v", err)
	}
	if got.Name != "文章专属流程" {
		t.Fatalf("期望专属定义，得到: %s", got.Name)
	}

	// 没有专属定义的类型回退到默认定义
	got, err = svc.ResolveDefinition(ctx, model.ContentTypePage)
	if err != nil {
		t.Fatalf("ResolveDefinition 失败: %v", err)
	}
	if got.Name != "库中默认流程" {
		t.Fatalf("期望回退到库中默认定义，得到: %s", got.Name)
	}

	// 库中什么都没有时回退到内置默认流程
	svc = newTestPolicyService(newFakeDefinitionRepo())
	got, err = svc.ResolveDefinition(ctx, model.ContentTypeRecipe)
	if err != nil {
		t.Fatalf("ResolveDefinition 失败: %v", err)
	}
	builtin := model.DefaultWorkflowDefinition()
	if got.Name != builtin.Name || got.InitialState != builtin.InitialState {
		t.Fatalf("期望内置默认流程，得到: %+v", got)
	}
}

func TestResolveDefinition_Cache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDefinitionRepo()
	postDef := model.DefaultWorkflowDefinition()
	postDef.ContentType = model.ContentTypePost
	postDef.Name = "第一版"
	repo.defs[model.ContentTypePost] = postDef

	svc := newTestPolicyService(repo)
	if _, err := svc.ResolveDefinition(ctx, model.ContentTypePost); err != nil {
		t.Fatalf("ResolveDefinition 失败: %v", err)
	}

	// 绕开服务直接改库，缓存未失效时应继续返回旧值
	repo.defs[model.ContentTypePost].Name = "第二版"
	got, err := svc.ResolveDefinition(ctx, model.ContentTypePost)
	if err != nil {
		t.Fatalf("ResolveDefinition 失败: %v", err)
	}
	if got.Name != "第一版" {
		t.Fatalf("期望命中缓存返回旧定义，得到: %s", got.Name)
	}

	// SaveDefinition 清空缓存后返回新值
	if _, err := svc.SaveDefinition(ctx, &model.SaveWorkflowDefinitionParams{
		ContentType:    model.ContentTypePost,
		Name:           "第三版",
		States:         postDef.States,
		InitialState:   postDef.InitialState,
		PublishedState: postDef.PublishedState,
		Edges:          postDef.Edges,
		PublishRoles:   postDef.PublishRoles,
	}); err != nil {
		t.Fatalf("SaveDefinition 失败: %v", err)
	}
	got, err = svc.ResolveDefinition(ctx, model.ContentTypePost)
	if err != nil {
		t.Fatalf("ResolveDefinition 失败: %v", err)
	}
	if got.Name != "第三版" {
		t.Fatalf("期望保存后缓存失效，得到: %s", got.Name)
	}
}

func TestSaveDefinition_UnknownContentType(t *testing.T) {
	svc := newTestPolicyService(newFakeDefinitionRepo())
	def := model.DefaultWorkflowDefinition()
	_, err := svc.SaveDefinition(context.Background(), &model.SaveWorkflowDefinitionParams{
		ContentType:    "podcast",
		Name:           def.Name,
		States:         def.States,
		InitialState:   def.InitialState,
		PublishedState: def.PublishedState,
		Edges:          def.Edges,
		PublishRoles:   def.PublishRoles,
	})
	if !errors.Is(err, constant.ErrBadRequest) {
		t.Fatalf("期望 ErrBadRequest，得到: %v", err)
	}
}

func TestDeleteDefinition_DefaultProtected(t *testing.T) {
	svc := newTestPolicyService(newFakeDefinitionRepo())
	err := svc.DeleteDefinition(context.Background(), "")
	if !errors.Is(err, constant.ErrBadRequest) {
		t.Fatalf("期望默认定义不可删除，得到: %v", err)
	}
}

func TestAuthorize(t *testing.T) {
	def := model.DefaultWorkflowDefinition()
	svc := newTestPolicyService(newFakeDefinitionRepo())

	tests := []struct {
		name    string
		from    string
		to      string
		roles   []string
		wantErr error
	}{
		{
			name:  "撰稿人提交审校",
			from:  "draft",
			to:    "review",
			roles: []string{model.RoleWriter},
		},
		{
			name:    "撰稿人无权推进审校",
			from:    "review",
			to:      "copydesk",
			roles:   []string{model.RoleWriter},
			wantErr: constant.ErrIllegalTransition,
		},
		{
			name:    "不存在的转换边",
			from:    "draft",
			to:      "published",
			roles:   []string{model.RoleChief},
			wantErr: constant.ErrIllegalTransition,
		},
		{
			name:  "主编发布",
			from:  "approved",
			to:    "published",
			roles: []string{model.RoleChief},
		},
		{
			name:    "编辑无权发布",
			from:    "approved",
			to:      "published",
			roles:   []string{model.RoleEditor},
			wantErr: constant.ErrIllegalTransition,
		},
		{
			name:    "无角色用户一律拒绝",
			from:    "draft",
			to:      "review",
			roles:   nil,
			wantErr: constant.ErrIllegalTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authorize(def, tt.from, tt.to, tt.roles)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("期望 %v，得到: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("期望授权通过，得到: %v", err)
			}
		})
	}
}

func TestPublishRolesOverlay(t *testing.T) {
	// 进入发布状态的边对编辑开放，但 publish_roles 只允许主编
	def := &model.WorkflowDefinition{
		Name:           "测试流程",
		States:         []string{"draft", "published"},
		InitialState:   "draft",
		PublishedState: "published",
		Edges: []model.WorkflowEdge{
			{From: "draft", To: "published", Roles: []string{model.RoleEditor, model.RoleChief}},
		},
		PublishRoles: []string{model.RoleChief},
	}
	svc := newTestPolicyService(newFakeDefinitionRepo())

	if err := svc.Authorize(def, "draft", "published", []string{model.RoleChief}); err != nil {
		t.Fatalf("主编应可发布，得到: %v", err)
	}
	err := svc.Authorize(def, "draft", "published", []string{model.RoleEditor})
	if !errors.Is(err, constant.ErrIllegalTransition) {
		t.Fatalf("编辑满足边角色但不满足发布角色，期望 ErrIllegalTransition，得到: %v", err)
	}

	// AvailableTransitions 与 Authorize 用同一套过滤：编辑看不到这条发布边
	if options := svc.AvailableTransitions(def, "draft", []string{model.RoleEditor}); len(options) != 0 {
		t.Fatalf("编辑不满足发布角色，不应列出发布边，得到: %v", options)
	}
	options := svc.AvailableTransitions(def, "draft", []string{model.RoleChief})
	if len(options) != 1 || options[0].To != "published" {
		t.Fatalf("主编应看到发布边，得到: %v", options)
	}
}

func TestAvailableTransitions(t *testing.T) {
	def := model.DefaultWorkflowDefinition()
	svc := newTestPolicyService(newFakeDefinitionRepo())

	// 编辑在 review 状态有两条出边
	options := svc.AvailableTransitions(def, "review", []string{model.RoleEditor})
	if len(options) != 2 {
		t.Fatalf("期望2个选项，得到: %d", len(options))
	}
	targets := map[string]bool{}
	for _, opt := range options {
		targets[opt.To] = true
	}
	if !targets["copydesk"] || !targets["rejected"] {
		t.Fatalf("期望 copydesk 和 rejected，得到: %v", targets)
	}

	// 撰稿人在 review 状态没有出边
	options = svc.AvailableTransitions(def, "review", []string{model.RoleWriter})
	if len(options) != 0 {
		t.Fatalf("期望0个选项，得到: %d", len(options))
	}

	// roles 为 nil 表示不过滤
	options = svc.AvailableTransitions(def, "review", nil)
	if len(options) != 2 {
		t.Fatalf("期望列出全部出边，得到: %d", len(options))
	}

	// 终态以外的未知状态没有出边
	options = svc.AvailableTransitions(def, "limbo", nil)
	if len(options) != 0 {
		t.Fatalf("未知状态期望0个选项，得到: %d", len(options))
	}
}

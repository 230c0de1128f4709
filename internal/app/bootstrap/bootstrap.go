// internal/app/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/security"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/workflow"
)

// Bootstrapper 负责首次启动时的数据初始化：
// 默认用户组、管理员账号和默认工作流定义。
type Bootstrapper struct {
	userRepo  repository.UserRepository
	groupRepo repository.UserGroupRepository
	policySvc workflow.PolicyService
}

func NewBootstrapper(
	userRepo repository.UserRepository,
	groupRepo repository.UserGroupRepository,
	policySvc workflow.PolicyService,
) *Bootstrapper {
	return &Bootstrapper{
		userRepo:  userRepo,
		groupRepo: groupRepo,
		policySvc: policySvc,
	}
}

// defaultGroup 描述一个内置用户组的种子数据
type defaultGroup struct {
	name        string
	description string
	roles       []string
	permissions []uint
}

var defaultGroups = []defaultGroup{
	{
		name:        "主编组",
		description: "拥有全部编辑角色和管理权限",
		roles:       []string{model.RoleWriter, model.RoleEditor, model.RoleCopyDesk, model.RoleChief},
		permissions: []uint{model.PermissionAdmin, model.PermissionOverrideLock, model.PermissionManageWorkflow, model.PermissionResolveComment},
	},
	{
		name:        "编辑组",
		description: "负责审稿和退改，可解决编辑评论",
		roles:       []string{model.RoleEditor},
		permissions: []uint{model.PermissionResolveComment},
	},
	{
		name:        "校对组",
		description: "负责终校环节",
		roles:       []string{model.RoleCopyDesk},
		permissions: []uint{model.PermissionResolveComment},
	},
	{
		name:        "撰稿组",
		description: "负责撰写草稿和提交送审",
		roles:       []string{model.RoleWriter},
		permissions: nil,
	},
}

// InitializeDatabase 执行全部初始化步骤。
func (b *Bootstrapper) InitializeDatabase() error {
	log.Println("--- 开始执行数据库初始化引导程序 ---")

	ctx := context.Background()

	if err := b.initUserGroups(ctx); err != nil {
		return err
	}
	if err := b.initAdminUser(ctx); err != nil {
		return err
	}
	if err := b.initDefaultWorkflow(ctx); err != nil {
		return err
	}
	b.validateStoredWorkflows(ctx)

	log.Println("--- 数据库初始化引导程序执行完成 ---")
	return nil
}

// initUserGroups 检查并初始化默认用户组。
func (b *Bootstrapper) initUserGroups(ctx context.Context) error {
	log.Println("--- 开始初始化默认用户组 (UserGroup 表) ---")

	for _, groupData := range defaultGroups {
		exists, err := b.groupRepo.FindByName(ctx, groupData.name)
		if err != nil {
			return fmt.Errorf("查询用户组 '%s' 失败: %w", groupData.name, err)
		}
		if exists != nil {
			continue
		}

		var perms model.Boolset
		for _, p := range groupData.permissions {
			perms.Set(p, true)
		}

		_, err = b.groupRepo.Create(ctx, &model.UserGroup{
			Name:        groupData.name,
			Description: groupData.description,
			Roles:       groupData.roles,
			Permissions: perms,
		})
		if err != nil {
			return fmt.Errorf("创建用户组 '%s' 失败: %w", groupData.name, err)
		}
		log.Printf("    - 用户组 '%s' 已创建。", groupData.name)
	}
	return nil
}

// initAdminUser 在用户表为空时创建初始管理员账号。
// 初始密码可用环境变量 ANFLOW_ADMIN_PASSWORD 覆盖。
func (b *Bootstrapper) initAdminUser(ctx context.Context) error {
	count, err := b.userRepo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("查询 User 表记录数量失败: %w", err)
	}
	if count > 0 {
		return nil
	}

	adminGroup, err := b.groupRepo.FindByName(ctx, "主编组")
	if err != nil || adminGroup == nil {
		return fmt.Errorf("获取主编组失败: %w", err)
	}

	password := os.Getenv("ANFLOW_ADMIN_PASSWORD")
	if password == "" {
		password = "anheyu-flow"
		log.Println("⚠️ 未设置 ANFLOW_ADMIN_PASSWORD，初始管理员使用默认密码，请尽快修改。")
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("生成管理员密码哈希失败: %w", err)
	}

	_, err = b.userRepo.Create(ctx, &model.User{
		Username:     "admin",
		PasswordHash: hash,
		Nickname:     "管理员",
		Email:        "admin@localhost",
		UserGroupID:  adminGroup.ID,
		Status:       model.UserStatusActive,
	})
	if err != nil {
		return fmt.Errorf("创建初始管理员失败: %w", err)
	}
	log.Println("--- 初始管理员账号 'admin' 已创建 ---")
	return nil
}

// initDefaultWorkflow 确保数据库中存在默认工作流定义（content_type 为空的行）。
func (b *Bootstrapper) initDefaultWorkflow(ctx context.Context) error {
	defs, err := b.policySvc.ListDefinitions(ctx)
	if err != nil {
		return fmt.Errorf("查询工作流定义失败: %w", err)
	}
	for _, def := range defs {
		if def.ContentType == "" {
			return nil
		}
	}

	builtin := model.DefaultWorkflowDefinition()
	_, err = b.policySvc.SaveDefinition(ctx, &model.SaveWorkflowDefinitionParams{
		ContentType:    builtin.ContentType,
		Name:           builtin.Name,
		States:         builtin.States,
		InitialState:   builtin.InitialState,
		PublishedState: builtin.PublishedState,
		Edges:          builtin.Edges,
		PublishRoles:   builtin.PublishRoles,
	})
	if err != nil {
		return fmt.Errorf("写入默认工作流定义失败: %w", err)
	}
	log.Println("--- 默认工作流定义已写入数据库 ---")
	return nil
}

// validateStoredWorkflows 启动时校验库中全部工作流定义的一致性。
// 校验失败只告警不中断：旧数据可能在代码升级后变得不合法，
// 运行期解析定义时还有内置默认流程兜底。
func (b *Bootstrapper) validateStoredWorkflows(ctx context.Context) {
	defs, err := b.policySvc.ListDefinitions(ctx)
	if err != nil {
		log.Printf("⚠️ 失败: 查询工作流定义失败: %v", err)
		return
	}
	for _, def := range defs {
		if err := b.policySvc.ValidateDefinition(def); err != nil {
			log.Printf("⚠️ 工作流定义 '%s' (类型: %q) 未通过校验: %v", def.Name, def.ContentType, err)
		}
	}
}

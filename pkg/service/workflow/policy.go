/*
 * @Description: 工作流策略服务：定义的加载、校验与授权判断
 * @Author: 安知鱼
 * @Date: 2026-02-10 17:44:35
 */
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/utility"
)

const (
	// 定义缓存键前缀与过期时间
	definitionCachePrefix = "workflow_def:"
	definitionCacheTTL    = 10 * time.Minute
)

// PolicyService 负责工作流定义的读取、管理和规则判断。
// 状态机完全是数据：引擎只通过本服务询问"这条边是否存在、谁能走"，
// 自身不对任何状态名做硬编码假设。
type PolicyService interface {
	// ResolveDefinition 获取内容类型生效的工作流定义：
	// 优先取该类型的专属定义，没有则回退到默认定义（content_type 为空的行），
	// 数据库中也没有默认定义时回退到内置默认流程。
	ResolveDefinition(ctx context.Context, contentType string) (*model.WorkflowDefinition, error)

	// ListDefinitions 获取全部已配置的工作流定义
	ListDefinitions(ctx context.Context) ([]*model.WorkflowDefinition, error)

	// SaveDefinition 创建或覆盖一个内容类型的工作流定义（需要管理权限，由上层校验）
	SaveDefinition(ctx context.Context, params *model.SaveWorkflowDefinitionParams) (*model.WorkflowDefinition, error)

	// DeleteDefinition 删除一个内容类型的专属定义，该类型此后回退到默认定义
	DeleteDefinition(ctx context.Context, contentType string) error

	// ValidateDefinition 校验定义的内部一致性（状态声明、边引用、角色非空）
	ValidateDefinition(def *model.WorkflowDefinition) error

	// AvailableTransitions 列出某状态下全部出边，以及按角色过滤后的出边。
	// 过滤规则与 Authorize 完全一致：列出来的转换就是 Authorize 会放行的转换。
	AvailableTransitions(def *model.WorkflowDefinition, currentStatus string, roles []string) []model.TransitionOption

	// Authorize 判断携带 roles 的用户能否执行 from→to 的转换。
	// 边不存在、角色不符、不满足发布角色时均返回 ErrIllegalTransition：
	// 对调用方来说这条转换都是不可走的。
	Authorize(def *model.WorkflowDefinition, fromStatus, toStatus string, roles []string) error
}

type policyServiceImpl struct {
	defRepo  repository.WorkflowDefinitionRepository
	cacheSvc utility.CacheService
}

// NewPolicyService 创建 PolicyService 实例
func NewPolicyService(
	defRepo repository.WorkflowDefinitionRepository,
	cacheSvc utility.CacheService,
) PolicyService {
	return &policyServiceImpl{
		defRepo:  defRepo,
		cacheSvc: cacheSvc,
	}
}

// ResolveDefinition 获取内容类型生效的工作流定义
func (s *policyServiceImpl) ResolveDefinition(ctx context.Context, contentType string) (*model.WorkflowDefinition, error) {
	// 1. 查缓存
	cacheKey := definitionCachePrefix + contentType
	if cached, err := s.cacheSvc.Get(ctx, cacheKey); err == nil && cached != "" {
		var def model.WorkflowDefinition
		if err := json.Unmarshal([]byte(cached), &def); err == nil {
			return &def, nil
		}
		// 缓存内容损坏，删掉走数据库
		s.cacheSvc.Delete(ctx, cacheKey)
	}

	// 2. 按内容类型查专属定义
	def, err := s.defRepo.GetByContentType(ctx, contentType)
	if err != nil {
		return nil, fmt.Errorf("查询工作流定义失败: %w", err)
	}

	// 3. 回退到默认定义
	if def == nil && contentType != "" {
		def, err = s.defRepo.GetByContentType(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("查询默认工作流定义失败: %w", err)
		}
	}

	// 4. 数据库里什么都没有时，回退到内置默认流程
	if def == nil {
		def = model.DefaultWorkflowDefinition()
	}

	// 5. 写缓存（失败只记日志，不影响主流程）
	if data, err := json.Marshal(def); err == nil {
		if err := s.cacheSvc.Set(ctx, cacheKey, string(data), definitionCacheTTL); err != nil {
			log.Printf("[PolicyService] 写入定义缓存失败: %v", err)
		}
	}

	return def, nil
}

// ListDefinitions 获取全部已配置的工作流定义
func (s *policyServiceImpl) ListDefinitions(ctx context.Context) ([]*model.WorkflowDefinition, error) {
	return s.defRepo.FindAll(ctx)
}

// SaveDefinition 创建或覆盖一个内容类型的工作流定义
func (s *policyServiceImpl) SaveDefinition(ctx context.Context, params *model.SaveWorkflowDefinitionParams) (*model.WorkflowDefinition, error) {
	candidate := &model.WorkflowDefinition{
		ContentType:    params.ContentType,
		Name:           params.Name,
		States:         params.States,
		InitialState:   params.InitialState,
		PublishedState: params.PublishedState,
		Edges:          params.Edges,
		PublishRoles:   params.PublishRoles,
	}
	if err := s.ValidateDefinition(candidate); err != nil {
		return nil, err
	}
	if params.ContentType != "" && !model.IsValidContentType(params.ContentType) {
		return nil, fmt.Errorf("%w: 未登记的内容类型 '%s'", constant.ErrBadRequest, params.ContentType)
	}

	saved, err := s.defRepo.Save(ctx, params)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	log.Printf("[PolicyService] 保存工作流定义: 内容类型=%q, 名称=%s", params.ContentType, params.Name)
	return saved, nil
}

// DeleteDefinition 删除一个内容类型的专属定义
func (s *policyServiceImpl) DeleteDefinition(ctx context.Context, contentType string) error {
	if contentType == "" {
		// 默认定义是所有类型的兜底，不允许删除
		return fmt.Errorf("%w: 默认工作流定义不可删除", constant.ErrBadRequest)
	}
	if err := s.defRepo.Delete(ctx, contentType); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// invalidateCache 在定义变更后清除全部定义缓存。
// 删除某个类型的定义会改变其它类型的回退结果，所以不能只清单键。
func (s *policyServiceImpl) invalidateCache(ctx context.Context) {
	keys, err := s.cacheSvc.Scan(ctx, definitionCachePrefix+"*")
	if err != nil {
		log.Printf("[PolicyService] 扫描定义缓存键失败: %v", err)
		return
	}
	if len(keys) > 0 {
		if err := s.cacheSvc.Delete(ctx, keys...); err != nil {
			log.Printf("[PolicyService] 清除定义缓存失败: %v", err)
		}
	}
}

// ValidateDefinition 校验定义的内部一致性
func (s *policyServiceImpl) ValidateDefinition(def *model.WorkflowDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: 名称不能为空", constant.ErrWorkflowInvalid)
	}
	if len(def.States) == 0 {
		return fmt.Errorf("%w: 状态集合不能为空", constant.ErrWorkflowInvalid)
	}

	declared := make(map[string]bool, len(def.States))
	for _, state := range def.States {
		if state == "" {
			return fmt.Errorf("%w: 状态名不能为空", constant.ErrWorkflowInvalid)
		}
		if declared[state] {
			return fmt.Errorf("%w: 状态 '%s' 重复声明", constant.ErrWorkflowInvalid, state)
		}
		declared[state] = true
	}

	if !declared[def.InitialState] {
		return fmt.Errorf("%w: 初始状态 '%s' 未在状态集合中声明", constant.ErrWorkflowInvalid, def.InitialState)
	}
	if !declared[def.PublishedState] {
		return fmt.Errorf("%w: 发布状态 '%s' 未在状态集合中声明", constant.ErrWorkflowInvalid, def.PublishedState)
	}

	for _, edge := range def.Edges {
		if !declared[edge.From] {
			return fmt.Errorf("%w: 转换边引用了未声明的源状态 '%s'", constant.ErrWorkflowInvalid, edge.From)
		}
		if !declared[edge.To] {
			return fmt.Errorf("%w: 转换边引用了未声明的目标状态 '%s'", constant.ErrWorkflowInvalid, edge.To)
		}
		if edge.From == edge.To {
			return fmt.Errorf("%w: 不允许自环转换边 '%s'", constant.ErrWorkflowInvalid, edge.From)
		}
		if len(edge.Roles) == 0 {
			return fmt.Errorf("%w: 转换边 %s→%s 未声明任何角色", constant.ErrWorkflowInvalid, edge.From, edge.To)
		}
	}

	return nil
}

// AvailableTransitions 列出某状态下按角色过滤后的出边。
// roles 为 nil 表示不过滤（列出全部出边）。
func (s *policyServiceImpl) AvailableTransitions(def *model.WorkflowDefinition, currentStatus string, roles []string) []model.TransitionOption {
	options := make([]model.TransitionOption, 0)
	for _, edge := range def.Edges {
		if edge.From != currentStatus {
			continue
		}
		if roles != nil && !rolesIntersect(edge.Roles, roles) {
			continue
		}
		// 进入发布状态的边还要满足发布角色，与 Authorize 保持一致
		if roles != nil && edge.To == def.PublishedState &&
			len(def.PublishRoles) > 0 && !rolesIntersect(def.PublishRoles, roles) {
			continue
		}
		options = append(options, model.TransitionOption{
			To:    edge.To,
			Roles: edge.Roles,
		})
	}
	return options
}

// Authorize 判断携带 roles 的用户能否执行 from→to 的转换
func (s *policyServiceImpl) Authorize(def *model.WorkflowDefinition, fromStatus, toStatus string, roles []string) error {
	var edge *model.WorkflowEdge
	for i := range def.Edges {
		if def.Edges[i].From == fromStatus && def.Edges[i].To == toStatus {
			edge = &def.Edges[i]
			break
		}
	}
	if edge == nil {
		return fmt.Errorf("%w: %s→%s", constant.ErrIllegalTransition, fromStatus, toStatus)
	}

	if !rolesIntersect(edge.Roles, roles) {
		return fmt.Errorf("%w: 转换 %s→%s 需要角色 %v", constant.ErrIllegalTransition, fromStatus, toStatus, edge.Roles)
	}

	// 进入发布状态还要额外满足发布角色要求
	if toStatus == def.PublishedState && len(def.PublishRoles) > 0 {
		if !rolesIntersect(def.PublishRoles, roles) {
			return fmt.Errorf("%w: 发布需要角色 %v", constant.ErrIllegalTransition, def.PublishRoles)
		}
	}

	return nil
}

// rolesIntersect 判断两个角色集合是否有交集
func rolesIntersect(required, actual []string) bool {
	for _, r := range required {
		for _, a := range actual {
			if r == a {
				return true
			}
		}
	}
	return false
}

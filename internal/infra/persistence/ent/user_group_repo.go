/*
 * @Description: 用户组仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 17:09:48
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"

	"github.com/anzhiyu-c/anheyu-flow/ent"
	"github.com/anzhiyu-c/anheyu-flow/ent/usergroup"
)

// entUserGroupRepository 是 UserGroupRepository 的 Ent 实现
type entUserGroupRepository struct {
	client *ent.Client
}

// NewEntUserGroupRepository 是 entUserGroupRepository 的构造函数
func NewEntUserGroupRepository(client *ent.Client) repository.UserGroupRepository {
	return &entUserGroupRepository{client: client}
}

// GetByID 根据数据库ID获取用户组
func (r *entUserGroupRepository) GetByID(ctx context.Context, dbID uint) (*model.UserGroup, error) {
	entGroup, err := r.client.UserGroup.
		Query().
		Where(
			usergroup.ID(dbID),
			usergroup.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainUserGroup(entGroup), nil
}

// FindByName 根据名称获取用户组，没有时返回 (nil, nil)
func (r *entUserGroupRepository) FindByName(ctx context.Context, name string) (*model.UserGroup, error) {
	entGroup, err := r.client.UserGroup.
		Query().
		Where(
			usergroup.Name(name),
			usergroup.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUserGroup(entGroup), nil
}

// Create 创建用户组
func (r *entUserGroupRepository) Create(ctx context.Context, group *model.UserGroup) (*model.UserGroup, error) {
	created, err := r.client.UserGroup.
		Create().
		SetName(group.Name).
		SetDescription(group.Description).
		SetRoles(group.Roles).
		SetPermissions(group.Permissions).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建用户组失败: %w", err)
	}
	return toDomainUserGroup(created), nil
}

// CountAll 获取用户组总数
func (r *entUserGroupRepository) CountAll(ctx context.Context) (int, error) {
	return r.client.UserGroup.
		Query().
		Where(usergroup.DeletedAtIsNil()).
		Count(ctx)
}

// --- 数据转换辅助函数 ---

func toDomainUserGroup(g *ent.UserGroup) *model.UserGroup {
	if g == nil {
		return nil
	}
	return &model.UserGroup{
		ID:          g.ID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
		Name:        g.Name,
		Description: g.Description,
		Roles:       g.Roles,
		Permissions: g.Permissions,
	}
}

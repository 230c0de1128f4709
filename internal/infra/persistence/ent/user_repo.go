/*
 * @Description: 用户仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 17:04:12
 */
package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"

	"github.com/anzhiyu-c/anheyu-flow/ent"
	"github.com/anzhiyu-c/anheyu-flow/ent/user"
)

// entUserRepository 是 UserRepository 的 Ent 实现
type entUserRepository struct {
	client *ent.Client
}

// NewEntUserRepository 是 entUserRepository 的构造函数
func NewEntUserRepository(client *ent.Client) repository.UserRepository {
	return &entUserRepository{client: client}
}

// GetByID 根据 ID 查找用户，并预加载用户组信息
func (r *entUserRepository) GetByID(ctx context.Context, dbID uint) (*model.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(
			user.ID(dbID),
			user.DeletedAtIsNil(),
		).
		WithUserGroup().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// GetByUsername 按用户名查找用户，并预加载用户组信息，没有时返回 (nil, nil)
func (r *entUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(
			user.Username(username),
			user.DeletedAtIsNil(),
		).
		WithUserGroup().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// Create 创建一个新用户
func (r *entUserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if u.UserGroupID == 0 {
		return nil, errors.New("创建用户时必须提供用户组ID")
	}

	created, err := r.client.User.
		Create().
		SetUsername(u.Username).
		SetPasswordHash(u.PasswordHash).
		SetNickname(u.Nickname).
		SetEmail(u.Email).
		SetStatus(u.Status).
		SetUserGroupID(u.UserGroupID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("用户名或邮箱已存在: %w", constant.ErrConflict)
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return r.GetByID(ctx, created.ID)
}

// UpdateLastLogin 更新最近登录时间
func (r *entUserRepository) UpdateLastLogin(ctx context.Context, dbID uint, at time.Time) error {
	err := r.client.User.
		UpdateOneID(dbID).
		SetLastLoginAt(at).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新最近登录时间失败: %w", err)
	}
	return nil
}

// CountAll 计算用户总数
func (r *entUserRepository) CountAll(ctx context.Context) (int, error) {
	return r.client.User.
		Query().
		Where(user.DeletedAtIsNil()).
		Count(ctx)
}

// --- 数据转换辅助函数 ---

func toDomainUser(u *ent.User) *model.User {
	if u == nil {
		return nil
	}
	domainUser := &model.User{
		ID:           u.ID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Nickname:     u.Nickname,
		Email:        u.Email,
		LastLoginAt:  u.LastLoginAt,
		Status:       u.Status,
	}
	// Edges 是 Ent 用于存储关联模型的地方
	if u.Edges.UserGroup != nil {
		domainUser.UserGroupID = u.Edges.UserGroup.ID
		domainUser.UserGroup = *toDomainUserGroup(u.Edges.UserGroup)
	}
	return domainUser
}

/*
 * @Description: 用户与用户组仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:28:44
 */
package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// UserRepository 定义了用户数据仓库的接口。
type UserRepository interface {
	// GetByID 根据数据库ID获取用户（携带用户组）
	GetByID(ctx context.Context, dbID uint) (*model.User, error)

	// GetByUsername 根据用户名获取用户（携带用户组），没有时返回 (nil, nil)
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Create 创建用户
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// UpdateLastLogin 更新最近登录时间
	UpdateLastLogin(ctx context.Context, dbID uint, at time.Time) error

	// CountAll 获取用户总数（首次启动时判断是否需要初始化管理员）
	CountAll(ctx context.Context) (int, error)
}

// UserGroupRepository 定义了用户组数据仓库的接口。
type UserGroupRepository interface {
	// GetByID 根据数据库ID获取用户组
	GetByID(ctx context.Context, dbID uint) (*model.UserGroup, error)

	// FindByName 根据名称获取用户组，没有时返回 (nil, nil)
	FindByName(ctx context.Context, name string) (*model.UserGroup, error)

	// Create 创建用户组
	Create(ctx context.Context, group *model.UserGroup) (*model.UserGroup, error)

	// CountAll 获取用户组总数
	CountAll(ctx context.Context) (int, error)
}

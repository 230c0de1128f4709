/*
 * @Description: 编辑锁仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:21:47
 */
package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// LockRepository 定义了编辑锁数据仓库的接口。
// 实现必须保证 TryCreate / StealIfStale / RefreshHeartbeat 是单条原子的
// 条件写入（唯一约束 + 条件更新），而不是读后写，否则两个并发获取者
// 可能同时观察到"无锁"并同时插入。
type LockRepository interface {
	// TryCreate 尝试插入锁记录，内容上已存在锁时返回 (false, nil)
	TryCreate(ctx context.Context, params *model.AcquireLockParams, now time.Time) (bool, error)

	// GetByContent 获取内容上的锁记录，没有时返回 (nil, nil)
	GetByContent(ctx context.Context, contentDBID uint) (*model.EditLock, error)

	// RefreshHeartbeat 条件刷新心跳：仅当锁仍由 holderID 持有时生效
	RefreshHeartbeat(ctx context.Context, contentDBID, holderID uint, now time.Time) (bool, error)

	// StealIfStale 条件抢占：仅当现有锁的心跳早于 staleBefore 时，
	// 将锁改写给新的持有者。返回是否抢占成功。
	StealIfStale(ctx context.Context, contentDBID uint, params *model.AcquireLockParams, staleBefore, now time.Time) (bool, error)

	// Steal 无条件改写锁的持有者（特权抢占），锁不存在时返回 (false, nil)
	Steal(ctx context.Context, contentDBID uint, params *model.AcquireLockParams, now time.Time) (bool, error)

	// Delete 仅当锁由 holderID 持有时删除之，返回是否确实删除了记录
	Delete(ctx context.Context, contentDBID, holderID uint) (bool, error)

	// DeleteByContent 无条件删除内容上的锁（内容被删除时调用）
	DeleteByContent(ctx context.Context, contentDBID uint) error

	// DeleteStale 批量删除心跳早于 before 的锁记录，返回删除数量（后台清扫任务用）
	DeleteStale(ctx context.Context, before time.Time) (int, error)
}

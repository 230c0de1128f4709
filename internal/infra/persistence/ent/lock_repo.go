/*
 * @Description: 编辑锁仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:50:33
 */
package ent

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/ent"
	"github.com/anzhiyu-c/anheyu-flow/ent/editlock"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

type lockRepo struct {
	db *ent.Client
}

// NewLockRepo 是 lockRepo 的构造函数。
// 所有写入路径都是单条原子语句：TryCreate 依赖 content_id 唯一约束，
// RefreshHeartbeat / StealIfStale / Delete 依赖条件 UPDATE/DELETE 的
// 受影响行数，任何路径都不做先读后写。
func NewLockRepo(db *ent.Client) repository.LockRepository {
	return &lockRepo{db: db}
}

// toModel 负责将 ent.EditLock 实体转换为领域模型。
func (r *lockRepo) toModel(l *ent.EditLock) *model.EditLock {
	if l == nil {
		return nil
	}

	contentPublicID, err := idgen.GeneratePublicID(l.ContentID, idgen.EntityTypeContent)
	if err != nil {
		log.Printf("[严重错误] 生成内容公共ID失败: dbID=%d, error=%v", l.ContentID, err)
		return nil
	}

	return &model.EditLock{
		ContentID:       contentPublicID,
		HolderID:        l.HolderID,
		HolderNickname:  l.HolderNickname,
		Token:           l.Token,
		AcquiredAt:      l.AcquiredAt,
		LastHeartbeatAt: l.LastHeartbeatAt,
	}
}

// TryCreate 尝试插入锁记录，内容上已存在锁时返回 (false, nil)
func (r *lockRepo) TryCreate(ctx context.Context, params *model.AcquireLockParams, now time.Time) (bool, error) {
	err := r.db.EditLock.Create().
		SetContentID(params.ContentDBID).
		SetHolderID(params.HolderID).
		SetHolderNickname(params.HolderNickname).
		SetToken(params.Token).
		SetAcquiredAt(now).
		SetLastHeartbeatAt(now).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("插入编辑锁失败: %w", err)
	}
	return true, nil
}

// GetByContent 获取内容上的锁记录，没有时返回 (nil, nil)
func (r *lockRepo) GetByContent(ctx context.Context, contentDBID uint) (*model.EditLock, error) {
	entity, err := r.db.EditLock.Query().
		Where(editlock.ContentIDEQ(contentDBID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询编辑锁失败: %w", err)
	}
	return r.toModel(entity), nil
}

// RefreshHeartbeat 条件刷新心跳：仅当锁仍由 holderID 持有时生效
func (r *lockRepo) RefreshHeartbeat(ctx context.Context, contentDBID, holderID uint, now time.Time) (bool, error) {
	affected, err := r.db.EditLock.Update().
		Where(
			editlock.ContentIDEQ(contentDBID),
			editlock.HolderIDEQ(holderID),
		).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("刷新锁心跳失败: %w", err)
	}
	return affected > 0, nil
}

// StealIfStale 条件抢占：仅当现有锁的心跳早于 staleBefore 时改写给新持有者
func (r *lockRepo) StealIfStale(ctx context.Context, contentDBID uint, params *model.AcquireLockParams, staleBefore, now time.Time) (bool, error) {
	affected, err := r.db.EditLock.Update().
		Where(
			editlock.ContentIDEQ(contentDBID),
			editlock.LastHeartbeatAtLT(staleBefore),
		).
		SetHolderID(params.HolderID).
		SetHolderNickname(params.HolderNickname).
		SetToken(params.Token).
		SetAcquiredAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("抢占过期编辑锁失败: %w", err)
	}
	return affected > 0, nil
}

// Steal 无条件改写锁的持有者（特权抢占），锁不存在时返回 (false, nil)
func (r *lockRepo) Steal(ctx context.Context, contentDBID uint, params *model.AcquireLockParams, now time.Time) (bool, error) {
	affected, err := r.db.EditLock.Update().
		Where(editlock.ContentIDEQ(contentDBID)).
		SetHolderID(params.HolderID).
		SetHolderNickname(params.HolderNickname).
		SetToken(params.Token).
		SetAcquiredAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("强制抢占编辑锁失败: %w", err)
	}
	return affected > 0, nil
}

// Delete 仅当锁由 holderID 持有时删除之，返回是否确实删除了记录
func (r *lockRepo) Delete(ctx context.Context, contentDBID, holderID uint) (bool, error) {
	deleted, err := r.db.EditLock.Delete().
		Where(
			editlock.ContentIDEQ(contentDBID),
			editlock.HolderIDEQ(holderID),
		).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("释放编辑锁失败: %w", err)
	}
	return deleted > 0, nil
}

// DeleteByContent 无条件删除内容上的锁（内容被删除时调用）
func (r *lockRepo) DeleteByContent(ctx context.Context, contentDBID uint) error {
	_, err := r.db.EditLock.Delete().
		Where(editlock.ContentIDEQ(contentDBID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除编辑锁失败: %w", err)
	}
	return nil
}

// DeleteStale 批量删除心跳早于 before 的锁记录，返回删除数量
func (r *lockRepo) DeleteStale(ctx context.Context, before time.Time) (int, error) {
	deleted, err := r.db.EditLock.Delete().
		Where(editlock.LastHeartbeatAtLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("清理过期编辑锁失败: %w", err)
	}
	if deleted > 0 {
		log.Printf("[LockRepo] 清理过期编辑锁: %d条", deleted)
	}
	return deleted, nil
}

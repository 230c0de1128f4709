/*
 * @Description: 编辑锁服务：心跳续期的会话级互斥
 * @Author: 安知鱼
 * @Date: 2026-02-10 18:16:53
 */
package lock

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

// Service 定义了编辑锁服务的接口。
// 锁的活性完全由心跳决定：数据库里没有"过期"字段，
// 过期判定在读取时用 now - last_heartbeat_at 与阈值比较得出。
// 所有写路径都落在仓储层的单条原子语句上，没有读后写竞态。
type Service interface {
	// Acquire 获取内容的编辑锁。
	// 无锁时插入；自己已持有时视为续期；他人持有但心跳过期时原子抢占；
	// 他人持有且心跳新鲜时返回 ErrLockConflict（携带持有者信息的提示）。
	Acquire(ctx context.Context, contentPublicID string, actor *model.User) (*model.LockInfo, error)

	// ForceAcquire 无视心跳强制抢占他人持有的锁，需要 PermissionOverrideLock 权限。
	ForceAcquire(ctx context.Context, contentPublicID string, actor *model.User) (*model.LockInfo, error)

	// Heartbeat 刷新自己持有的锁的心跳。锁已不在自己手上（被抢占或被清理）
	// 时返回 ErrNotLockHolder，调用方应停止编辑并重新获取。
	Heartbeat(ctx context.Context, contentPublicID string, actor *model.User) error

	// Release 释放自己持有的锁。幂等：重复释放或锁已易主时返回 false 而非错误。
	Release(ctx context.Context, contentPublicID string, actor *model.User) (bool, error)

	// GetInfo 查询内容的锁状态，IsStale/IsMine/CanEdit 按查询者视角计算。
	GetInfo(ctx context.Context, contentPublicID string, viewer *model.User) (*model.LockInfo, error)

	// HeldByOther 判断内容是否被他人持有未过期的锁（内容编辑前的检查）。
	HeldByOther(ctx context.Context, contentDBID uint, userID uint) (*model.EditLock, error)

	// StaleAfter 返回锁的过期阈值（供展示和外部校验使用）。
	StaleAfter() time.Duration
}

type serviceImpl struct {
	lockRepo   repository.LockRepository
	eventBus   *event.EventBus
	staleAfter time.Duration
	now        func() time.Time
}

// NewService 创建编辑锁服务实例。
// staleAfter 为过期阈值，通常取 心跳周期 × 倍数（见配置 Lock 分区）。
func NewService(lockRepo repository.LockRepository, eventBus *event.EventBus, staleAfter time.Duration) Service {
	return &serviceImpl{
		lockRepo:   lockRepo,
		eventBus:   eventBus,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// StaleAfter 返回锁的过期阈值
func (s *serviceImpl) StaleAfter() time.Duration {
	return s.staleAfter
}

// Acquire 获取内容的编辑锁
func (s *serviceImpl) Acquire(ctx context.Context, contentPublicID string, actor *model.User) (*model.LockInfo, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	now := s.now()
	params := &model.AcquireLockParams{
		ContentDBID:    contentDBID,
		HolderID:       actor.ID,
		HolderNickname: actor.Nickname,
		Token:          uuid.NewString(),
	}

	// 1. 乐观路径：无锁时直接插入（唯一约束保证原子性）
	created, err := s.lockRepo.TryCreate(ctx, params, now)
	if err != nil {
		return nil, err
	}
	if created {
		log.Printf("[LockService] 获取编辑锁: 内容=%s, 持有者=%s", contentPublicID, actor.Nickname)
		return s.ownedInfo(params, now), nil
	}

	// 2. 已有锁：看在谁手上
	existing, err := s.lockRepo.GetByContent(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		// 插入失败后锁又消失了（持有者恰好释放），重试一次插入
		created, err = s.lockRepo.TryCreate(ctx, params, now)
		if err != nil {
			return nil, err
		}
		if created {
			return s.ownedInfo(params, now), nil
		}
		return nil, fmt.Errorf("%w: 编辑锁竞争激烈，请重试", constant.ErrLockConflict)
	}

	// 2a. 自己已持有：视为续期，保留原 token
	if existing.HolderID == actor.ID {
		if _, err := s.lockRepo.RefreshHeartbeat(ctx, contentDBID, actor.ID, now); err != nil {
			return nil, err
		}
		return &model.LockInfo{
			Locked:          true,
			HolderID:        existing.HolderID,
			HolderNickname:  existing.HolderNickname,
			Token:           existing.Token,
			AcquiredAt:      existing.AcquiredAt,
			LastHeartbeatAt: now,
			IsMine:          true,
			CanEdit:         true,
		}, nil
	}

	// 2b. 他人持有且心跳过期：条件抢占
	staleBefore := now.Add(-s.staleAfter)
	if existing.LastHeartbeatAt.Before(staleBefore) {
		stolen, err := s.lockRepo.StealIfStale(ctx, contentDBID, params, staleBefore, now)
		if err != nil {
			return nil, err
		}
		if stolen {
			log.Printf("[LockService] 回收过期编辑锁: 内容=%s, 原持有者=%s, 新持有者=%s",
				contentPublicID, existing.HolderNickname, actor.Nickname)
			s.eventBus.Publish(event.LockReclaimed, &model.LockReclaimedEvent{
				ContentID:         contentPublicID,
				PreviousHolderID:  existing.HolderID,
				NewHolderNickname: actor.Nickname,
				WasStale:          true,
			})
			return s.ownedInfo(params, now), nil
		}
		// 抢占落空说明原持有者的心跳刚刚恢复，按冲突处理
	}

	// 2c. 他人持有且心跳新鲜：冲突
	return nil, fmt.Errorf("%w: '%s'正在编辑该内容", constant.ErrLockConflict, existing.HolderNickname)
}

// ForceAcquire 强制抢占他人持有的锁
func (s *serviceImpl) ForceAcquire(ctx context.Context, contentPublicID string, actor *model.User) (*model.LockInfo, error) {
	if !actor.UserGroup.Permissions.Enabled(model.PermissionOverrideLock) {
		return nil, fmt.Errorf("%w: 没有强制抢占编辑锁的权限", constant.ErrForbidden)
	}

	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	now := s.now()
	params := &model.AcquireLockParams{
		ContentDBID:    contentDBID,
		HolderID:       actor.ID,
		HolderNickname: actor.Nickname,
		Token:          uuid.NewString(),
	}

	existing, err := s.lockRepo.GetByContent(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		// 没有锁可抢，退化为普通插入
		created, err := s.lockRepo.TryCreate(ctx, params, now)
		if err != nil {
			return nil, err
		}
		if !created {
			return nil, fmt.Errorf("%w: 编辑锁竞争激烈，请重试", constant.ErrLockConflict)
		}
		return s.ownedInfo(params, now), nil
	}

	stolen, err := s.lockRepo.Steal(ctx, contentDBID, params, now)
	if err != nil {
		return nil, err
	}
	if !stolen {
		return nil, fmt.Errorf("%w: 编辑锁竞争激烈，请重试", constant.ErrLockConflict)
	}

	if existing.HolderID != actor.ID {
		log.Printf("[LockService] 强制抢占编辑锁: 内容=%s, 原持有者=%s, 新持有者=%s",
			contentPublicID, existing.HolderNickname, actor.Nickname)
		s.eventBus.Publish(event.LockReclaimed, &model.LockReclaimedEvent{
			ContentID:         contentPublicID,
			PreviousHolderID:  existing.HolderID,
			NewHolderNickname: actor.Nickname,
			WasStale:          false,
		})
	}

	return s.ownedInfo(params, now), nil
}

// Heartbeat 刷新自己持有的锁的心跳
func (s *serviceImpl) Heartbeat(ctx context.Context, contentPublicID string, actor *model.User) error {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	refreshed, err := s.lockRepo.RefreshHeartbeat(ctx, contentDBID, actor.ID, s.now())
	if err != nil {
		return err
	}
	if !refreshed {
		return fmt.Errorf("%w: 编辑锁已不在当前用户手上", constant.ErrNotLockHolder)
	}
	return nil
}

// Release 释放自己持有的锁
func (s *serviceImpl) Release(ctx context.Context, contentPublicID string, actor *model.User) (bool, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return false, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	released, err := s.lockRepo.Delete(ctx, contentDBID, actor.ID)
	if err != nil {
		return false, err
	}
	if released {
		log.Printf("[LockService] 释放编辑锁: 内容=%s, 持有者=%s", contentPublicID, actor.Nickname)
	}
	return released, nil
}

// GetInfo 查询内容的锁状态
func (s *serviceImpl) GetInfo(ctx context.Context, contentPublicID string, viewer *model.User) (*model.LockInfo, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	existing, err := s.lockRepo.GetByContent(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &model.LockInfo{Locked: false, CanEdit: true}, nil
	}

	now := s.now()
	isStale := now.Sub(existing.LastHeartbeatAt) >= s.staleAfter
	isMine := viewer != nil && existing.HolderID == viewer.ID

	info := &model.LockInfo{
		Locked:          true,
		HolderID:        existing.HolderID,
		HolderNickname:  existing.HolderNickname,
		AcquiredAt:      existing.AcquiredAt,
		LastHeartbeatAt: existing.LastHeartbeatAt,
		IsStale:         isStale,
		IsMine:          isMine,
		CanEdit:         isMine || isStale,
	}
	if isMine {
		info.Token = existing.Token
	}
	return info, nil
}

// HeldByOther 判断内容是否被他人持有未过期的锁。
// 被持有时返回该锁，否则返回 (nil, nil)。
func (s *serviceImpl) HeldByOther(ctx context.Context, contentDBID uint, userID uint) (*model.EditLock, error) {
	existing, err := s.lockRepo.GetByContent(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.HolderID == userID {
		return nil, nil
	}
	if s.now().Sub(existing.LastHeartbeatAt) >= s.staleAfter {
		return nil, nil
	}
	return existing, nil
}

// ownedInfo 构造刚刚成为持有者后的锁信息
func (s *serviceImpl) ownedInfo(params *model.AcquireLockParams, now time.Time) *model.LockInfo {
	return &model.LockInfo{
		Locked:          true,
		HolderID:        params.HolderID,
		HolderNickname:  params.HolderNickname,
		Token:           params.Token,
		AcquiredAt:      now,
		LastHeartbeatAt: now,
		IsMine:          true,
		CanEdit:         true,
	}
}

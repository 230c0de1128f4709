package lock

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeLockRepo 在内存中复刻仓储层的条件写入语义：
// 所有方法在同一把互斥锁内完成判断和写入，对服务层表现为原子操作。
type fakeLockRepo struct {
	mu    sync.Mutex
	locks map[uint]*model.EditLock
}

func newFakeLockRepo() *fakeLockRepo {
	return &fakeLockRepo{locks: make(map[uint]*model.EditLock)}
}

func (r *fakeLockRepo) TryCreate(_ context.Context, params *model.AcquireLockParams, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.locks[params.ContentDBID]; exists {
		return false, nil
	}
	r.locks[params.ContentDBID] = &model.EditLock{
		HolderID:        params.HolderID,
		HolderNickname:  params.HolderNickname,
		Token:           params.Token,
		AcquiredAt:      now,
		LastHeartbeatAt: now,
	}
	return true, nil
}

func (r *fakeLockRepo) GetByContent(_ context.Context, contentDBID uint) (*model.EditLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[contentDBID]
	if !ok {
		return nil, nil
	}
	copied := *lock
	return &copied, nil
}

func (r *fakeLockRepo) RefreshHeartbeat(_ context.Context, contentDBID, holderID uint, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[contentDBID]
	if !ok || lock.HolderID != holderID {
		return false, nil
	}
	lock.LastHeartbeatAt = now
	return true, nil
}

func (r *fakeLockRepo) StealIfStale(_ context.Context, contentDBID uint, params *model.AcquireLockParams, staleBefore, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[contentDBID]
	if !ok || !lock.LastHeartbeatAt.Before(staleBefore) {
		return false, nil
	}
	r.locks[contentDBID] = &model.EditLock{
		HolderID:        params.HolderID,
		HolderNickname:  params.HolderNickname,
		Token:           params.Token,
		AcquiredAt:      now,
		LastHeartbeatAt: now,
	}
	return true, nil
}

func (r *fakeLockRepo) Steal(_ context.Context, contentDBID uint, params *model.AcquireLockParams, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.locks[contentDBID]; !ok {
		return false, nil
	}
	r.locks[contentDBID] = &model.EditLock{
		HolderID:        params.HolderID,
		HolderNickname:  params.HolderNickname,
		Token:           params.Token,
		AcquiredAt:      now,
		LastHeartbeatAt: now,
	}
	return true, nil
}

func (r *fakeLockRepo) Delete(_ context.Context, contentDBID, holderID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[contentDBID]
	if !ok || lock.HolderID != holderID {
		return false, nil
	}
	delete(r.locks, contentDBID)
	return true, nil
}

func (r *fakeLockRepo) DeleteByContent(_ context.Context, contentDBID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locks, contentDBID)
	return nil
}

func (r *fakeLockRepo) DeleteStale(_ context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for id, lock := range r.locks {
		if lock.LastHeartbeatAt.Before(before) {
			delete(r.locks, id)
			count++
		}
	}
	return count, nil
}

const testStaleAfter = 45 * time.Second

// testClock 可手动拨快的时钟
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLockService(t *testing.T) (Service, *testClock, *event.EventBus) {
	t.Helper()
	clock := &testClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	bus := event.NewEventBus()
	svc := NewService(newFakeLockRepo(), bus, testStaleAfter)
	svc.(*serviceImpl).now = clock.Now
	return svc, clock, bus
}

func newTestUser(id uint, nickname string, permissions ...uint) *model.User {
	var perms model.Boolset
	for _, p := range permissions {
		perms.Set(p, true)
	}
	return &model.User{
		ID:       id,
		Nickname: nickname,
		UserGroup: model.UserGroup{
			Permissions: perms,
		},
	}
}

func testContentID(t *testing.T) string {
	t.Helper()
	id, err := idgen.GeneratePublicID(1, idgen.EntityTypeContent)
	if err != nil {
		t.Fatalf("生成内容公共ID失败: %v", err)
	}
	return id
}

func TestAcquire_MutualExclusion(t *testing.T) {
	svc, _, bus := newTestLockService(t)
	defer bus.Shutdown()
	ctx := context.Background()
	contentID := testContentID(t)
	alice := newTestUser(1, "爱丽丝")
	bob := newTestUser(2, "鲍勃")

	info, err := svc.Acquire(ctx, contentID, alice)
	if err != nil {
		t.Fatalf("首次获取锁失败: %v", err)
	}
	if !info.IsMine || info.Token == "" {
		t.Fatalf("持有者信息不正确: %+v", info)
	}

	_, err = svc.Acquire(ctx, contentID, bob)
	if !errors.Is(err, constant.ErrLockConflict) {
		t.Fatalf("他人持有新鲜锁时期望 ErrLockConflict，得到: %v", err)
	}
}

func TestAcquire_RenewalKeepsToken(t *testing.T) {
	svc, clock, bus := newTestLockService(t)
	defer bus.Shutdown()
	ctx := context.Background()
	contentID := testContentID(t)
	alice := newTestUser(1, "爱丽丝")

	first, err := svc.Acquire(ctx, contentID, alice)
	if err != nil {
		t.Fatalf("首次获取锁失败: %v", err)
	}

	clock.Advance(10 * time.Second)
	second, err := svc.Acquire(ctx, contentID, alice)
	if err != nil {
		t.Fatalf("自己重复获取应视为续期: %v", err)
	}
	if second.Token != first.Token {
		t.Fatalf("续期应保留原 token: first=%s second=%s", first.Token, second.Token)
	}
	if !second.LastHeartbeatAt.After(first.LastHeartbeatAt) {
		t.Fatal("续期应刷新心跳时间")
	}
}

func TestAcquire_StealStale(t *testing.T) {
	svc, clock, bus := newTestLockService(t)
	ctx := context.Background()
	contentID := testContentID(t)
	alice := newTestUser(1, "爱丽丝")
	bob := newTestUser(2, "鲍勃")

	var mu sync.Mutex
	var reclaimed []*model.LockReclaimedEvent
	bus.Subscribe(event.LockReclaimed, func(payload interface{}) {
		mu.Lock()
		defer mu.Unlock()
		reclaimed = append(reclaimed, payload.(*model.LockReclaimedEvent))
	})

	if _, err := svc.Acquire(ctx, contentID, alice); err != nil {
		t.Fatalf("首次获取锁失败: %v", err)
	}

	// 心跳过期后他人可以抢占
	clock.Advance(testStaleAfter + time.Second)
	info, err := svc.Acquire(ctx, contentID, bob)
	if err != nil {
		t.Fatalf("抢占过期锁失败: %v", err)
	}
	if !info.IsMine || info.HolderID != bob.ID {
		t.Fatalf("抢占后持有者不正确: %+v", info)
	}

	// 原持有者的心跳此后失效
	if err := svc.Heartbeat(ctx, contentID, alice); !errors.Is(err, constant.ErrNotLockHolder) {
		t.Fatalf("被抢占后原持有者的心跳期望 ErrNotLockHolder，得到: %v", err)
	}

	bus.Shutdown()
	mu.Lock()
	defer mu.Unlock()
	if len(reclaimed) != 1 {
		t.Fatalf("期望1条抢占事件，得到: %d", len(reclaimed))
	}
	if !reclaimed[0].WasStale || reclaimed[0].PreviousHolderID != alice.ID {
		t.Fatalf("抢占事件载荷不正确: %+v", reclaimed[0])
	}
}

func TestHeartbeat_RefreshKeepsLockAlive(t *testing.T) {
	svc, clock, bus := newTestLockService(t)
	defer bus.Shutdown()
	ctx := context.Background()
	contentID := testContentID(t)
	alice := newTestUser(1, "爱丽丝")
	bob := newTestUser(2, "鲍勃")

	if _, err := svc.Acquire(ctx, contentID, alice); err != nil {
		t.Fatalf("获取锁失败: %v", err)
	}

	// 持续心跳的锁即使超过初始阈值也不会被抢占
	for i := 0; i < 3; i++ {
		clock.Advance(testStaleAfter - time.Second)
		if err := svc.Heartbeat(ctx, contentID, alice); err != nil {
			t.Fatalf("心跳应成功: %v", err)
		}
	}

	_, err := svc.Acquire(ctx, contentID, bob)
	if !errors.Is(err, constant.ErrLockConflict) {
		t.Fatalf("心跳维持的锁不应被抢占，得到: %v", err)
	}
}

func TestHeartbeat_NotHolder(t *testing.T) {
	svc, _, bus := newTestLockService(t)
	defer bus.Shutdown()
	ctx := context.Background()
	contentID := testContentID(t)
	alice := newTestUser(1, "爱丽丝")
	bob := newTestUser(2, "鲍勃")

	// 没有任何锁时心跳也算非持有者
	if err := svc.Heartbeat(ctx, contentID, alice); !errors.Is(err, constant.ErrNotLockHolder) {
		t.Fatalf("无锁心跳期望 ErrNotLockHolder，得到: %v", err)
	}

	if _, err := svc.Acquire(ctx, contentID, alice); err != nil {
		t.Fatalf("获取锁失败: %v", err)
	}

	// 他人心跳不刷新也不成功
	if err := svc.Heartbeat(ctx, contentID, bob); !errors.Is(err, constant.ErrNotLockHolder) {
		t.Fatalf("非持有者心跳期望 ErrNotLockHolder，得到: %v", err)
	}
	if err := svc.Heartbeat(ctx, contentID, alice); err != nil {
		t.Fatalf("持有者心跳应成功: %v", err)
	}
}

func TestRelease_Idempotent(t *testing.T) {
	svc, _, bus := newTestLockService(t)
	defer bus.Shutdown()
	ctx := context.Background()
	contentID := testContentID(t)
	alice := newTestUser(1, "爱丽丝")
	bob := newTestUser(2, "鲍勃")

	if _, err := svc.Acquire(ctx, contentID, alice); err != nil {
		t.Fatalf("获取锁失败: %v", err)
	}

	// 非持有者释放不生效也不报错
	released, err := svc.Release(ctx, contentID, bob)
	if err != nil || released {
		t.Fatalf("非持有者释放期望 (false, nil)，得到: (%v, %v)", released, err)
	}

	released, err = svc.Release(ctx, contentID, alice)
	if err != nil || !released {
		t.Fatalf("持有者释放期望 (true, nil)，得到: (%v, %v)", released, err)
	}

	// 重复释放幂等
	released, err = svc.Release(ctx, contentID, alice)
	if err != nil || released {
		t.Fatalf("重复释放期望 (false, nil)，得到: (%v, %v)", released, err)
	}
}

func TestForceAcquire(t *testing.T) {
	svc, _, bus := newTestLockService(t)
	ctx := context.Background()
	contentID := testContentID(t)
	alice := newTestUser(1, "爱丽丝")
	bob := newTestUser(2, "鲍勃")
	chief := newTestUser(3, "主编", model.PermissionOverrideLock)

	var mu sync.Mutex
	var reclaimed []*model.LockReclaimedEvent
	bus.Subscribe(event.LockReclaimed, func(payload interface{}) {
		mu.Lock()
		defer mu.Unlock()
		reclaimed = append(reclaimed, payload.(*model.LockReclaimedEvent))
	})

	if _, err := svc.Acquire(ctx, contentID, alice); err != nil {
		t.Fatalf("获取锁失败: %v", err)
	}

	// 没有权限的用户不能强制抢占
	_, err := svc.ForceAcquire(ctx, contentID, bob)
	if !errors.Is(err, constant.ErrForbidden) {
		t.Fatalf("期望 ErrForbidden，得到: %v", err)
	}

	// 有权限的用户可以抢占心跳新鲜的锁
	info, err := svc.ForceAcquire(ctx, contentID, chief)
	if err != nil {
		t.Fatalf("强制抢占失败: %v", err)
	}
	if info.HolderID != chief.ID || !info.IsMine {
		t.Fatalf("抢占后持有者不正确: %+v", info)
	}

	bus.Shutdown()
	mu.Lock()
	defer mu.Unlock()
	if len(reclaimed) != 1 {
		t.Fatalf("期望1条抢占事件，得到: %d", len(reclaimed))
	}
	if reclaimed[0].WasStale {
		t.Fatal("强制抢占的事件 WasStale 应为 false")
	}
}

func TestGetInfo_ViewerPerspective(t *testing.T) {
	svc, clock, bus := newTestLockService(t)
	defer bus.Shutdown()
	ctx := context.Background()
	contentID := testContentID(t)
	alice := newTestUser(1, "爱丽丝")
	bob := newTestUser(2, "鲍勃")

	// 无锁时任何人都可以编辑
	info, err := svc.GetInfo(ctx, contentID, bob)
	if err != nil {
		t.Fatalf("查询锁状态失败: %v", err)
	}
	if info.Locked || !info.CanEdit {
		t.Fatalf("无锁状态不正确: %+v", info)
	}

	if _, err := svc.Acquire(ctx, contentID, alice); err != nil {
		t.Fatalf("获取锁失败: %v", err)
	}

	// 持有者视角: token 可见
	info, err = svc.GetInfo(ctx, contentID, alice)
	if err != nil {
		t.Fatalf("查询锁状态失败: %v", err)
	}
	if !info.IsMine || !info.CanEdit || info.Token == "" {
		t.Fatalf("持有者视角不正确: %+v", info)
	}

	// 他人视角: token 不可见，心跳新鲜时不可编辑
	info, err = svc.GetInfo(ctx, contentID, bob)
	if err != nil {
		t.Fatalf("查询锁状态失败: %v", err)
	}
	if info.IsMine || info.CanEdit || info.Token != "" || info.IsStale {
		t.Fatalf("他人视角不正确: %+v", info)
	}

	// 心跳过期后他人可以编辑（锁可被回收）
	clock.Advance(testStaleAfter + time.Second)
	info, err = svc.GetInfo(ctx, contentID, bob)
	if err != nil {
		t.Fatalf("查询锁状态失败: %v", err)
	}
	if !info.IsStale || !info.CanEdit {
		t.Fatalf("过期锁的他人视角不正确: %+v", info)
	}
}

func TestHeldByOther(t *testing.T) {
	svc, clock, bus := newTestLockService(t)
	defer bus.Shutdown()
	ctx := context.Background()
	contentID := testContentID(t)
	alice := newTestUser(1, "爱丽丝")

	if _, err := svc.Acquire(ctx, contentID, alice); err != nil {
		t.Fatalf("获取锁失败: %v", err)
	}

	// 持有者本人不算他人持有
	held, err := svc.HeldByOther(ctx, 1, alice.ID)
	if err != nil || held != nil {
		t.Fatalf("本人持有期望 (nil, nil)，得到: (%+v, %v)", held, err)
	}

	// 他人视角: 新鲜锁算占用
	held, err = svc.HeldByOther(ctx, 1, 2)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if held == nil || held.HolderID != alice.ID {
		t.Fatalf("期望返回爱丽丝的锁，得到: %+v", held)
	}

	// 过期锁不再算占用
	clock.Advance(testStaleAfter + time.Second)
	held, err = svc.HeldByOther(ctx, 1, 2)
	if err != nil || held != nil {
		t.Fatalf("过期锁期望 (nil, nil)，得到: (%+v, %v)", held, err)
	}
}

/*
 * @Description: 编辑锁领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:36:27
 */
package model

import "time"

// EditLock 是一条短生命周期的互斥记录：同一内容实体上至多存在一条。
// 持有者通过心跳维持锁的活性，心跳超时后任何满足条件的人都可以回收。
type EditLock struct {
	ContentID       string    `json:"content_id"`
	HolderID        uint      `json:"holder_id"`
	HolderNickname  string    `json:"holder_nickname"`
	Token           string    `json:"token"` // 本次持锁会话的唯一标识
	AcquiredAt      time.Time `json:"acquired_at"`
	LastHeartbeatAt time.Time `json:"last_heartbeat_at"`
}

// LockInfo 是编辑锁的只读投影。IsStale 在读取时根据墙钟计算，不落库。
// Token 仅对锁的持有者本人返回。
type LockInfo struct {
	Locked          bool      `json:"locked"`
	HolderID        uint      `json:"holder_id,omitempty"`
	HolderNickname  string    `json:"holder_nickname,omitempty"`
	Token           string    `json:"token,omitempty"`
	AcquiredAt      time.Time `json:"acquired_at,omitempty"`
	LastHeartbeatAt time.Time `json:"last_heartbeat_at,omitempty"`
	IsStale         bool      `json:"is_stale"`
	IsMine          bool      `json:"is_mine"`
	CanEdit         bool      `json:"can_edit"`
}

// AcquireLockParams 获取编辑锁的参数
type AcquireLockParams struct {
	ContentDBID    uint
	HolderID       uint
	HolderNickname string
	Token          string
}

// LockReclaimedEvent 是编辑锁被抢占时发布的事件载荷，
// 用于通知被顶掉的持有者其会话已失效。
type LockReclaimedEvent struct {
	ContentID         string `json:"content_id"`
	PreviousHolderID  uint   `json:"previous_holder_id"`
	NewHolderNickname string `json:"new_holder_nickname"`
	WasStale          bool   `json:"was_stale"`
}

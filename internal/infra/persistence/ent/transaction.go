/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-10 17:14:26
 * @LastEditTime: 2026-02-10 17:14:26
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"

	"github.com/anzhiyu-c/anheyu-flow/ent"
)

// entTransactionManager 是基于 Ent 的事务管理器实现。
type entTransactionManager struct {
	entClient *ent.Client
}

// NewEntTransactionManager 是 entTransactionManager 的构造函数。
func NewEntTransactionManager(client *ent.Client) repository.TransactionManager {
	return &entTransactionManager{
		entClient: client,
	}
}

// Do 实现了 TransactionManager 接口。
// 它会开启一个 Ent 事务，并将 Repositories 结构体中定义的所有仓库包裹在这个事务中。
func (tm *entTransactionManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := tm.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("开启 Ent 事务失败: %w", err)
	}

	// 使用 defer 来确保事务的提交或回滚
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	repos := repository.Repositories{
		Content:            NewContentRepo(tx.Client()),
		Version:            NewVersionRepo(tx.Client()),
		Transition:         NewTransitionRepo(tx.Client()),
		Comment:            NewCommentRepo(tx.Client()),
		Lock:               NewLockRepo(tx.Client()),
		WorkflowDefinition: NewWorkflowDefinitionRepo(tx.Client()),
		User:               NewEntUserRepository(tx.Client()),
		UserGroup:          NewEntUserGroupRepository(tx.Client()),
	}

	if err := fn(repos); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("事务执行失败: %w, 回滚事务也失败: %v", err, rerr)
		}
		return err
	}

	return tx.Commit()
}

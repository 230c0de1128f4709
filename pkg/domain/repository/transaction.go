/*
 * @Description: 事务管理器接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:31:27
 */
package repository

import "context"

// Repositories 结构体聚合了所有在单个事务中可能用到的仓储接口。
type Repositories struct {
	Content            ContentRepository
	Version            VersionRepository
	Transition         TransitionRepository
	Comment            CommentRepository
	Lock               LockRepository
	WorkflowDefinition WorkflowDefinitionRepository
	User               UserRepository
	UserGroup          UserGroupRepository
}

// TransactionManager 定义了事务管理器的接口。
// 它的职责是执行一个业务逻辑单元，并确保其中的所有数据库操作都在单个事务中完成。
type TransactionManager interface {
	// Do 方法接收一个函数，该函数会在一个事务中被调用。
	// 它向该函数提供一个包含所有事务性仓储的 Repositories 实例。
	// 如果函数返回错误，事务将回滚；否则，事务将提交。
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

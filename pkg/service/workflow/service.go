/*
 * @Description: 工作流引擎服务：状态转换的执行与发布切换
 * @Author: 安知鱼
 * @Date: 2026-02-10 17:52:18
 */
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

// errTransitionConflict 是事务内部使用的冲突信号：
// 条件更新没有命中任何行，说明版本状态在读取后被并发修改了。
var errTransitionConflict = errors.New("transition conflict")

// Service 定义了工作流引擎的接口。
// 所有写路径都运行在单个数据库事务中：状态更新、账本追加、
// 发布指针切换要么全部生效要么全部回滚。
type Service interface {
	// Transition 将版本推进到目标状态。
	// 状态更新是乐观条件写入，遇到并发冲突自动重试一次
	// （以数据库中的新状态重新校验边和权限）。
	Transition(ctx context.Context, versionPublicID, toStatus string, actor *model.User, comment string) (*model.ContentVersion, error)

	// AvailableTransitions 列出版本当前状态下、按执行者角色过滤后的可用转换
	AvailableTransitions(ctx context.Context, versionPublicID string, actor *model.User) (*model.AvailableTransitionsResponse, error)

	// PublishVersion 将版本发布的便捷封装：要求版本当前处于定义中
	// 能直达发布状态的前置状态（默认流程为 approved），否则返回
	// ErrIllegalTransition；满足时复用 Transition 走完整的发布路径。
	PublishVersion(ctx context.Context, versionPublicID string, actor *model.User, comment string) (*model.ContentVersion, error)

	// Unpublish 撤下内容的当前发布版本。没有发布版本时为幂等空操作。
	// 撤下在被撤版本的账本上追加一条记录，审计链能看到下线动作。
	Unpublish(ctx context.Context, contentPublicID string, actor *model.User) error

	// MakeVersionLive 将历史上发布过的某个版本重新设为当前发布版本。
	// 仅允许作用于处在发布状态的版本；目标版本已是活动版本时幂等成功。
	// 切换在同一事务内追加账本记录：FromStatus 取原活动版本的状态。
	MakeVersionLive(ctx context.Context, contentPublicID string, version int, actor *model.User) (*model.ContentVersion, error)
}

type serviceImpl struct {
	txManager   repository.TransactionManager
	versionRepo repository.VersionRepository
	contentRepo repository.ContentRepository
	policySvc   PolicyService
	eventBus    *event.EventBus
	now         func() time.Time
}

// NewService 创建工作流引擎实例
func NewService(
	txManager repository.TransactionManager,
	versionRepo repository.VersionRepository,
	contentRepo repository.ContentRepository,
	policySvc PolicyService,
	eventBus *event.EventBus,
) Service {
	return &serviceImpl{
		txManager:   txManager,
		versionRepo: versionRepo,
		contentRepo: contentRepo,
		policySvc:   policySvc,
		eventBus:    eventBus,
		now:         time.Now,
	}
}

// Transition 将版本推进到目标状态
func (s *serviceImpl) Transition(ctx context.Context, versionPublicID, toStatus string, actor *model.User, comment string) (*model.ContentVersion, error) {
	versionDBID, err := idgen.MustDecodeAs(versionPublicID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	// 先定位版本所属的内容，拿到生效的工作流定义
	version, err := s.versionRepo.GetByID(ctx, versionDBID)
	if err != nil {
		return nil, err
	}
	contentDBID, err := idgen.MustDecodeAs(version.ContentID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	content, err := s.contentRepo.GetByID(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	def, err := s.policySvc.ResolveDefinition(ctx, content.Type)
	if err != nil {
		return nil, err
	}

	var result *model.ContentVersion
	var firedEvent *model.TransitionEvent

	attempt := func() error {
		return s.txManager.Do(ctx, func(repos repository.Repositories) error {
			// 事务内重新读取，拿到当前真实状态
			fresh, err := repos.Version.GetByID(ctx, versionDBID)
			if err != nil {
				return err
			}
			fromStatus := fresh.Status

			if fromStatus == toStatus {
				// 定义校验不允许自环边，同状态转换必然不可走
				return fmt.Errorf("%w: 版本已处于状态 '%s'", constant.ErrIllegalTransition, toStatus)
			}
			if err := s.policySvc.Authorize(def, fromStatus, toStatus, actor.UserGroup.Roles); err != nil {
				return err
			}

			// 乐观条件写入：状态在读取后被并发修改时不命中任何行
			ok, err := repos.Version.UpdateStatusFrom(ctx, versionDBID, fromStatus, toStatus)
			if err != nil {
				return err
			}
			if !ok {
				return errTransitionConflict
			}

			// 追加账本记录，FromStatus 取本次转换实际离开的状态
			from := fromStatus
			transition, err := repos.Transition.Create(ctx, &model.CreateTransitionParams{
				VersionDBID:   versionDBID,
				FromStatus:    &from,
				ToStatus:      toStatus,
				ActorID:       actor.ID,
				ActorNickname: actor.Nickname,
				Comment:       comment,
			})
			if err != nil {
				return err
			}

			// 同步内容实体上的状态镜像（仅当该版本是当前草稿版本）
			freshContent, err := repos.Content.GetByID(ctx, contentDBID)
			if err != nil {
				return err
			}
			if freshContent.DraftVersionID != nil && *freshContent.DraftVersionID == versionPublicID {
				if err := repos.Content.UpdateWorkflowStatus(ctx, contentDBID, toStatus); err != nil {
					return err
				}
			}

			// 进入发布状态：在同一事务内完成"恰好一个活动版本"的切换
			if toStatus == def.PublishedState {
				if _, err := repos.Version.ClearActiveByContent(ctx, contentDBID); err != nil {
					return err
				}
				if err := repos.Version.SetActive(ctx, versionDBID, true); err != nil {
					return err
				}
				publishedAt := s.now()
				if err := repos.Content.SetActiveVersion(ctx, contentDBID, &versionDBID, &publishedAt); err != nil {
					return err
				}
			}

			updated, err := repos.Version.GetByID(ctx, versionDBID)
			if err != nil {
				return err
			}
			result = updated
			firedEvent = &model.TransitionEvent{
				ContentID:     content.ID,
				ContentType:   content.Type,
				VersionID:     versionPublicID,
				Version:       updated.Version,
				FromStatus:    transition.FromStatus,
				ToStatus:      toStatus,
				ActorNickname: actor.Nickname,
				Comment:       comment,
			}
			return nil
		})
	}

	err = attempt()
	if errors.Is(err, errTransitionConflict) {
		// 以数据库中的新状态重试一次；重试仍冲突视为真实冲突
		log.Printf("[WorkflowService] 转换冲突，重试一次: 版本=%s, 目标=%s", versionPublicID, toStatus)
		err = attempt()
		if errors.Is(err, errTransitionConflict) {
			err = fmt.Errorf("%w: 版本状态被并发修改", constant.ErrConflict)
		}
	}
	if err != nil {
		return nil, err
	}

	// 事务提交后发布事件
	s.eventBus.Publish(event.WorkflowTransitioned, firedEvent)
	log.Printf("[WorkflowService] 转换成功: 内容=%s, 版本v%d, %s→%s, 执行者=%s",
		content.ID, result.Version, derefOr(firedEvent.FromStatus, "-"), toStatus, actor.Nickname)

	return result, nil
}

// AvailableTransitions 列出版本当前状态下可用的转换
func (s *serviceImpl) AvailableTransitions(ctx context.Context, versionPublicID string, actor *model.User) (*model.AvailableTransitionsResponse, error) {
	versionDBID, err := idgen.MustDecodeAs(versionPublicID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	version, err := s.versionRepo.GetByID(ctx, versionDBID)
	if err != nil {
		return nil, err
	}
	contentDBID, err := idgen.MustDecodeAs(version.ContentID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	content, err := s.contentRepo.GetByID(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	def, err := s.policySvc.ResolveDefinition(ctx, content.Type)
	if err != nil {
		return nil, err
	}

	return &model.AvailableTransitionsResponse{
		CurrentStatus: version.Status,
		Options:       s.policySvc.AvailableTransitions(def, version.Status, actor.UserGroup.Roles),
	}, nil
}

// PublishVersion 将版本直接推进到发布状态
func (s *serviceImpl) PublishVersion(ctx context.Context, versionPublicID string, actor *model.User, comment string) (*model.ContentVersion, error) {
	versionDBID, err := idgen.MustDecodeAs(versionPublicID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	version, err := s.versionRepo.GetByID(ctx, versionDBID)
	if err != nil {
		return nil, err
	}
	contentDBID, err := idgen.MustDecodeAs(version.ContentID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	content, err := s.contentRepo.GetByID(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	def, err := s.policySvc.ResolveDefinition(ctx, content.Type)
	if err != nil {
		return nil, err
	}

	// 版本必须处于能直达发布状态的前置状态
	reachable := false
	for _, edge := range def.Edges {
		if edge.From == version.Status && edge.To == def.PublishedState {
			reachable = true
			break
		}
	}
	if !reachable {
		return nil, fmt.Errorf("%w: 版本v%d处于状态'%s'，无法从该状态发布",
			constant.ErrIllegalTransition, version.Version, version.Status)
	}

	return s.Transition(ctx, versionPublicID, def.PublishedState, actor, comment)
}

// Unpublish 撤下内容的当前发布版本
func (s *serviceImpl) Unpublish(ctx context.Context, contentPublicID string, actor *model.User) error {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	content, err := s.contentRepo.GetByID(ctx, contentDBID)
	if err != nil {
		return err
	}
	def, err := s.policySvc.ResolveDefinition(ctx, content.Type)
	if err != nil {
		return err
	}
	if len(def.PublishRoles) > 0 && !rolesIntersect(def.PublishRoles, actor.UserGroup.Roles) {
		return fmt.Errorf("%w: 撤下发布需要角色 %v", constant.ErrForbidden, def.PublishRoles)
	}

	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		fresh, err := repos.Content.GetByID(ctx, contentDBID)
		if err != nil {
			return err
		}
		if fresh.ActiveVersionID == nil {
			// 幂等：没有发布版本时直接成功
			return nil
		}
		active, err := repos.Version.GetActiveByContent(ctx, contentDBID)
		if err != nil {
			return err
		}
		if _, err := repos.Version.ClearActiveByContent(ctx, contentDBID); err != nil {
			return err
		}
		if err := repos.Content.SetActiveVersion(ctx, contentDBID, nil, nil); err != nil {
			return err
		}
		// 在被撤版本的账本上留痕。版本的工作流状态本身不变，
		// FromStatus 与 ToStatus 均为其当前状态，转换链重放不受影响。
		if active != nil {
			activeDBID, err := idgen.MustDecodeAs(active.ID, idgen.EntityTypeContentVersion)
			if err != nil {
				return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
			}
			from := active.Status
			if _, err := repos.Transition.Create(ctx, &model.CreateTransitionParams{
				VersionDBID:   activeDBID,
				FromStatus:    &from,
				ToStatus:      active.Status,
				ActorID:       actor.ID,
				ActorNickname: actor.Nickname,
				Comment:       fmt.Sprintf("撤下发布：版本v%d下线", active.Version),
			}); err != nil {
				return err
			}
		}
		log.Printf("[WorkflowService] 撤下发布: 内容=%s, 执行者=%s", contentPublicID, actor.Nickname)
		return nil
	})
}

// MakeVersionLive 将历史上发布过的某个版本重新设为当前发布版本
func (s *serviceImpl) MakeVersionLive(ctx context.Context, contentPublicID string, version int, actor *model.User) (*model.ContentVersion, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	content, err := s.contentRepo.GetByID(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	def, err := s.policySvc.ResolveDefinition(ctx, content.Type)
	if err != nil {
		return nil, err
	}
	if len(def.PublishRoles) > 0 && !rolesIntersect(def.PublishRoles, actor.UserGroup.Roles) {
		return nil, fmt.Errorf("%w: 切换发布版本需要角色 %v", constant.ErrForbidden, def.PublishRoles)
	}

	var result *model.ContentVersion
	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		target, err := repos.Version.GetByContentAndVersion(ctx, contentDBID, version)
		if err != nil {
			return err
		}
		if target.Status != def.PublishedState {
			return fmt.Errorf("%w: 版本v%d处于状态'%s'，只有发布状态的版本可以被设为活动版本",
				constant.ErrIllegalTransition, version, target.Status)
		}
		if target.IsActive {
			// 幂等：目标已是活动版本
			result = target
			return nil
		}

		targetDBID, err := idgen.MustDecodeAs(target.ID, idgen.EntityTypeContentVersion)
		if err != nil {
			return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
		}

		prevActive, err := repos.Version.GetActiveByContent(ctx, contentDBID)
		if err != nil {
			return err
		}

		if _, err := repos.Version.ClearActiveByContent(ctx, contentDBID); err != nil {
			return err
		}
		if err := repos.Version.SetActive(ctx, targetDBID, true); err != nil {
			return err
		}
		publishedAt := s.now()
		if err := repos.Content.SetActiveVersion(ctx, contentDBID, &targetDBID, &publishedAt); err != nil {
			return err
		}

		// 切换同样要进账本：FromStatus 取原活动版本的状态，备注自动生成
		from := target.Status
		autoComment := fmt.Sprintf("重新上线版本v%d", version)
		if prevActive != nil {
			from = prevActive.Status
			autoComment = fmt.Sprintf("切换发布版本：v%d下线，v%d上线", prevActive.Version, version)
		}
		if _, err := repos.Transition.Create(ctx, &model.CreateTransitionParams{
			VersionDBID:   targetDBID,
			FromStatus:    &from,
			ToStatus:      def.PublishedState,
			ActorID:       actor.ID,
			ActorNickname: actor.Nickname,
			Comment:       autoComment,
		}); err != nil {
			return err
		}

		updated, err := repos.Version.GetByID(ctx, targetDBID)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[WorkflowService] 切换发布版本: 内容=%s, 版本v%d, 执行者=%s",
		contentPublicID, version, actor.Nickname)
	return result, nil
}

// derefOr 返回指针的值，指针为 nil 时返回兜底值
func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

/*
 * @Description: 内容版本服务：版本历史、对比与回滚派生
 * @Author: 安知鱼
 * @Date: 2026-02-10 18:08:21
 */
package version

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/workflow"
)

// Service 定义了内容版本服务的接口
type Service interface {
	// History 分页获取内容的版本历史（含每个版本的转换链），最新版本在前
	History(ctx context.Context, contentPublicID string, page, pageSize int) (*model.VersionHistoryResponse, error)

	// GetVersion 获取指定版本详情（含转换链）
	GetVersion(ctx context.Context, contentPublicID string, version int) (*model.ContentVersion, error)

	// Compare 对比两个版本，返回结构化差异
	Compare(ctx context.Context, contentPublicID string, baseVersion, targetVersion int) (*model.VersionDiff, error)

	// RevertTo 以历史版本的快照派生一个新的草稿版本。
	// 历史版本本身不被修改：回滚是"复制旧内容、开新版本号"。
	RevertTo(ctx context.Context, contentPublicID string, version int, actor *model.User) (*model.ContentVersion, error)
}

type serviceImpl struct {
	txManager      repository.TransactionManager
	versionRepo    repository.VersionRepository
	transitionRepo repository.TransitionRepository
	contentRepo    repository.ContentRepository
	lockRepo       repository.LockRepository
	policySvc      workflow.PolicyService
	lockStaleAfter time.Duration
	now            func() time.Time
}

// NewService 创建版本服务实例
func NewService(
	txManager repository.TransactionManager,
	versionRepo repository.VersionRepository,
	transitionRepo repository.TransitionRepository,
	contentRepo repository.ContentRepository,
	lockRepo repository.LockRepository,
	policySvc workflow.PolicyService,
	lockStaleAfter time.Duration,
) Service {
	return &serviceImpl{
		txManager:      txManager,
		versionRepo:    versionRepo,
		transitionRepo: transitionRepo,
		contentRepo:    contentRepo,
		lockRepo:       lockRepo,
		policySvc:      policySvc,
		lockStaleAfter: lockStaleAfter,
		now:            time.Now,
	}
}

// History 分页获取内容的版本历史
func (s *serviceImpl) History(ctx context.Context, contentPublicID string, page, pageSize int) (*model.VersionHistoryResponse, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	if _, err := s.contentRepo.GetByID(ctx, contentDBID); err != nil {
		return nil, err
	}

	items, total, err := s.versionRepo.ListByContent(ctx, contentDBID, page, pageSize)
	if err != nil {
		return nil, err
	}

	// 批量预加载每个版本的转换链，避免 N+1 查询
	versionDBIDs := make([]uint, 0, len(items))
	for _, item := range items {
		dbID, err := idgen.MustDecodeAs(item.ID, idgen.EntityTypeContentVersion)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
		}
		versionDBIDs = append(versionDBIDs, dbID)
	}
	transitionsByVersion, err := s.transitionRepo.ListByVersionIDs(ctx, versionDBIDs)
	if err != nil {
		return nil, err
	}
	for i := range items {
		transitions := transitionsByVersion[versionDBIDs[i]]
		if transitions == nil {
			transitions = make([]model.WorkflowTransition, 0)
		}
		items[i].Transitions = transitions
	}

	return &model.VersionHistoryResponse{
		List:     items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetVersion 获取指定版本详情
func (s *serviceImpl) GetVersion(ctx context.Context, contentPublicID string, version int) (*model.ContentVersion, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	snapshot, err := s.versionRepo.GetByContentAndVersion(ctx, contentDBID, version)
	if err != nil {
		return nil, err
	}

	versionDBID, err := idgen.MustDecodeAs(snapshot.ID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	transitions, err := s.transitionRepo.ListByVersion(ctx, versionDBID)
	if err != nil {
		return nil, err
	}
	snapshot.Transitions = transitions

	return snapshot, nil
}

// Compare 对比两个版本
func (s *serviceImpl) Compare(ctx context.Context, contentPublicID string, baseVersion, targetVersion int) (*model.VersionDiff, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	base, err := s.versionRepo.GetByContentAndVersion(ctx, contentDBID, baseVersion)
	if err != nil {
		return nil, err
	}
	target, err := s.versionRepo.GetByContentAndVersion(ctx, contentDBID, targetVersion)
	if err != nil {
		return nil, err
	}

	return ComputeDiff(base, target), nil
}

// RevertTo 以历史版本的快照派生一个新的草稿版本
func (s *serviceImpl) RevertTo(ctx context.Context, contentPublicID string, version int, actor *model.User) (*model.ContentVersion, error) {
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

	// 其他用户持有未过期的编辑锁时不允许回滚派生
	lock, err := s.lockRepo.GetByContent(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	if lock != nil && lock.HolderID != actor.ID && s.now().Sub(lock.LastHeartbeatAt) < s.lockStaleAfter {
		return nil, fmt.Errorf("%w: '%s'正在编辑该内容", constant.ErrLockConflict, lock.HolderNickname)
	}

	var result *model.ContentVersion
	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		source, err := repos.Version.GetByContentAndVersion(ctx, contentDBID, version)
		if err != nil {
			return err
		}

		latest, err := repos.Version.GetLatestVersionNo(ctx, contentDBID)
		if err != nil {
			return err
		}

		created, err := repos.Version.Create(ctx, &model.CreateVersionParams{
			ContentDBID:    contentDBID,
			Version:        latest + 1,
			Title:          source.Title,
			ContentMd:      source.ContentMd,
			ContentHTML:    source.ContentHTML,
			Blocks:         source.Blocks,
			Summary:        source.Summary,
			Keywords:       source.Keywords,
			WordCount:      source.WordCount,
			Status:         def.InitialState,
			EditorID:       actor.ID,
			EditorNickname: actor.Nickname,
			ChangeNote:     fmt.Sprintf("从版本v%d回滚", version),
		})
		if err != nil {
			return err
		}

		createdDBID, err := idgen.MustDecodeAs(created.ID, idgen.EntityTypeContentVersion)
		if err != nil {
			return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
		}

		// 版本创建边：FromStatus 为空
		if _, err := repos.Transition.Create(ctx, &model.CreateTransitionParams{
			VersionDBID:   createdDBID,
			FromStatus:    nil,
			ToStatus:      def.InitialState,
			ActorID:       actor.ID,
			ActorNickname: actor.Nickname,
			Comment:       fmt.Sprintf("从版本v%d回滚派生", version),
		}); err != nil {
			return err
		}

		// 新草稿接管内容实体的草稿指针和镜像字段
		if err := repos.Content.SetDraftVersion(ctx, contentDBID, createdDBID); err != nil {
			return err
		}
		if err := repos.Content.UpdateWorkflowStatus(ctx, contentDBID, def.InitialState); err != nil {
			return err
		}
		if err := repos.Content.UpdateTitle(ctx, contentDBID, source.Title); err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[VersionService] 回滚派生成功: 内容=%s, 源版本=v%d, 新版本=v%d, 执行者=%s",
		contentPublicID, version, result.Version, actor.Nickname)
	return result, nil
}

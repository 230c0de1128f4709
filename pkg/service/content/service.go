/*
 * @Description: 内容实体服务：创建、草稿编辑与级联删除
 * @Author: 安知鱼
 * @Date: 2026-02-10 18:36:02
 */
package content

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/parser"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/lock"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/workflow"
)

// CreateParams 创建内容实体的请求参数
type CreateParams struct {
	Type      string
	Title     string
	ContentMd string
	Blocks    []model.ContentBlock
	Summary   string
	Keywords  string
}

// Service 定义了内容实体服务的接口
type Service interface {
	// Create 创建内容实体及其首个草稿版本（版本号1，处于工作流初始状态）
	Create(ctx context.Context, params *CreateParams, actor *model.User) (*model.Content, *model.ContentVersion, error)

	// Get 获取内容实体
	Get(ctx context.Context, contentPublicID string) (*model.Content, error)

	// GetPublished 获取内容当前的发布版本，没有发布版本时返回 ErrNotFound
	GetPublished(ctx context.Context, contentPublicID string) (*model.ContentVersion, error)

	// List 分页获取内容列表，contentType 为空时不过滤
	List(ctx context.Context, contentType string, page, pageSize int) (*model.ContentListResponse, error)

	// UpdateDraft 更新内容的草稿。调用者必须持有有效的编辑锁。
	// 草稿版本仍处于初始状态时原地更新；已进入流转的版本不可修改，
	// 此时自动派生一个新的草稿版本。
	UpdateDraft(ctx context.Context, contentPublicID string, snapshot *model.VersionSnapshot, changeNote string, actor *model.User) (*model.ContentVersion, error)

	// Delete 删除内容实体及其全部版本、转换记录、评论和编辑锁（需要管理权限）
	Delete(ctx context.Context, contentPublicID string, actor *model.User) error
}

type serviceImpl struct {
	txManager   repository.TransactionManager
	contentRepo repository.ContentRepository
	versionRepo repository.VersionRepository
	policySvc   workflow.PolicyService
	lockSvc     lock.Service
}

// NewService 创建内容实体服务实例
func NewService(
	txManager repository.TransactionManager,
	contentRepo repository.ContentRepository,
	versionRepo repository.VersionRepository,
	policySvc workflow.PolicyService,
	lockSvc lock.Service,
) Service {
	return &serviceImpl{
		txManager:   txManager,
		contentRepo: contentRepo,
		versionRepo: versionRepo,
		policySvc:   policySvc,
		lockSvc:     lockSvc,
	}
}

// Create 创建内容实体及其首个草稿版本
func (s *serviceImpl) Create(ctx context.Context, params *CreateParams, actor *model.User) (*model.Content, *model.ContentVersion, error) {
	if !model.IsValidContentType(params.Type) {
		return nil, nil, fmt.Errorf("%w: 未登记的内容类型 '%s'", constant.ErrBadRequest, params.Type)
	}
	if params.Title == "" {
		return nil, nil, fmt.Errorf("%w: 标题不能为空", constant.ErrBadRequest)
	}

	def, err := s.policySvc.ResolveDefinition(ctx, params.Type)
	if err != nil {
		return nil, nil, err
	}

	contentHTML, err := parser.MarkdownToHTML(params.ContentMd)
	if err != nil {
		return nil, nil, fmt.Errorf("渲染内容失败: %w", err)
	}

	var createdContent *model.Content
	var createdVersion *model.ContentVersion

	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		c, err := repos.Content.Create(ctx, &model.CreateContentParams{
			Type:      params.Type,
			Title:     params.Title,
			CreatorID: actor.ID,
		})
		if err != nil {
			return err
		}
		contentDBID, err := idgen.MustDecodeAs(c.ID, idgen.EntityTypeContent)
		if err != nil {
			return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
		}

		v, err := repos.Version.Create(ctx, &model.CreateVersionParams{
			ContentDBID:    contentDBID,
			Version:        1,
			Title:          params.Title,
			ContentMd:      params.ContentMd,
			ContentHTML:    contentHTML,
			Blocks:         params.Blocks,
			Summary:        params.Summary,
			Keywords:       params.Keywords,
			WordCount:      countWords(params.ContentMd),
			Status:         def.InitialState,
			EditorID:       actor.ID,
			EditorNickname: actor.Nickname,
			ChangeNote:     "初稿",
		})
		if err != nil {
			return err
		}
		versionDBID, err := idgen.MustDecodeAs(v.ID, idgen.EntityTypeContentVersion)
		if err != nil {
			return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
		}

		// 版本创建边：FromStatus 为空
		if _, err := repos.Transition.Create(ctx, &model.CreateTransitionParams{
			VersionDBID:   versionDBID,
			FromStatus:    nil,
			ToStatus:      def.InitialState,
			ActorID:       actor.ID,
			ActorNickname: actor.Nickname,
			Comment:       "创建初稿",
		}); err != nil {
			return err
		}

		if err := repos.Content.SetDraftVersion(ctx, contentDBID, versionDBID); err != nil {
			return err
		}
		if err := repos.Content.UpdateWorkflowStatus(ctx, contentDBID, def.InitialState); err != nil {
			return err
		}

		refreshed, err := repos.Content.GetByID(ctx, contentDBID)
		if err != nil {
			return err
		}
		createdContent = refreshed
		createdVersion = v
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[ContentService] 创建内容: ID=%s, 类型=%s, 创建者=%s",
		createdContent.ID, params.Type, actor.Nickname)
	return createdContent, createdVersion, nil
}

// Get 获取内容实体
func (s *serviceImpl) Get(ctx context.Context, contentPublicID string) (*model.Content, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	return s.contentRepo.GetByID(ctx, contentDBID)
}

// GetPublished 获取内容当前的发布版本
func (s *serviceImpl) GetPublished(ctx context.Context, contentPublicID string) (*model.ContentVersion, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	active, err := s.versionRepo.GetActiveByContent(ctx, contentDBID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, fmt.Errorf("%w: 该内容没有发布版本", constant.ErrNotFound)
	}
	return active, nil
}

// List 分页获取内容列表
func (s *serviceImpl) List(ctx context.Context, contentType string, page, pageSize int) (*model.ContentListResponse, error) {
	if contentType != "" && !model.IsValidContentType(contentType) {
		return nil, fmt.Errorf("%w: 未登记的内容类型 '%s'", constant.ErrBadRequest, contentType)
	}

	items, total, err := s.contentRepo.List(ctx, contentType, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &model.ContentListResponse{
		List:     items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateDraft 更新内容的草稿
func (s *serviceImpl) UpdateDraft(ctx context.Context, contentPublicID string, snapshot *model.VersionSnapshot, changeNote string, actor *model.User) (*model.ContentVersion, error) {
	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	if snapshot.Title == "" {
		return nil, fmt.Errorf("%w: 标题不能为空", constant.ErrBadRequest)
	}

	content, err := s.contentRepo.GetByID(ctx, contentDBID)
	if err != nil {
		return nil, err
	}

	// 编辑必须在持有有效编辑锁的前提下进行
	holder, err := s.lockSvc.HeldByOther(ctx, contentDBID, actor.ID)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		return nil, fmt.Errorf("%w: '%s'正在编辑该内容", constant.ErrLockConflict, holder.HolderNickname)
	}
	info, err := s.lockSvc.GetInfo(ctx, contentPublicID, actor)
	if err != nil {
		return nil, err
	}
	if !info.Locked || !info.IsMine {
		return nil, fmt.Errorf("%w: 编辑前请先获取编辑锁", constant.ErrNotLockHolder)
	}

	def, err := s.policySvc.ResolveDefinition(ctx, content.Type)
	if err != nil {
		return nil, err
	}

	contentHTML, err := parser.MarkdownToHTML(snapshot.ContentMd)
	if err != nil {
		return nil, fmt.Errorf("渲染内容失败: %w", err)
	}
	wordCount := countWords(snapshot.ContentMd)

	var result *model.ContentVersion
	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if content.DraftVersionID == nil {
			return fmt.Errorf("%w: 内容没有草稿版本", constant.ErrNotFound)
		}
		draftDBID, err := idgen.MustDecodeAs(*content.DraftVersionID, idgen.EntityTypeContentVersion)
		if err != nil {
			return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
		}
		draft, err := repos.Version.GetByID(ctx, draftDBID)
		if err != nil {
			return err
		}

		if draft.Status == def.InitialState {
			// 仍处于初始状态：原地更新快照，条件写入防止状态在读取后流转
			updated, err := repos.Version.UpdateSnapshot(ctx, draftDBID, def.InitialState, &model.UpdateSnapshotParams{
				Title:          snapshot.Title,
				ContentMd:      snapshot.ContentMd,
				ContentHTML:    contentHTML,
				Blocks:         snapshot.Blocks,
				Summary:        snapshot.Summary,
				Keywords:       snapshot.Keywords,
				WordCount:      wordCount,
				EditorID:       actor.ID,
				EditorNickname: actor.Nickname,
				ChangeNote:     changeNote,
			})
			if err != nil {
				return err
			}
			result = updated
		} else {
			// 版本已进入流转，快照不可变：派生新的草稿版本
			latest, err := repos.Version.GetLatestVersionNo(ctx, contentDBID)
			if err != nil {
				return err
			}
			created, err := repos.Version.Create(ctx, &model.CreateVersionParams{
				ContentDBID:    contentDBID,
				Version:        latest + 1,
				Title:          snapshot.Title,
				ContentMd:      snapshot.ContentMd,
				ContentHTML:    contentHTML,
				Blocks:         snapshot.Blocks,
				Summary:        snapshot.Summary,
				Keywords:       snapshot.Keywords,
				WordCount:      wordCount,
				Status:         def.InitialState,
				EditorID:       actor.ID,
				EditorNickname: actor.Nickname,
				ChangeNote:     changeNote,
			})
			if err != nil {
				return err
			}
			createdDBID, err := idgen.MustDecodeAs(created.ID, idgen.EntityTypeContentVersion)
			if err != nil {
				return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
			}
			if _, err := repos.Transition.Create(ctx, &model.CreateTransitionParams{
				VersionDBID:   createdDBID,
				FromStatus:    nil,
				ToStatus:      def.InitialState,
				ActorID:       actor.ID,
				ActorNickname: actor.Nickname,
				Comment:       fmt.Sprintf("自版本v%d派生新草稿", draft.Version),
			}); err != nil {
				return err
			}
			if err := repos.Content.SetDraftVersion(ctx, contentDBID, createdDBID); err != nil {
				return err
			}
			if err := repos.Content.UpdateWorkflowStatus(ctx, contentDBID, def.InitialState); err != nil {
				return err
			}
			result = created
		}

		// 同步标题镜像
		return repos.Content.UpdateTitle(ctx, contentDBID, snapshot.Title)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[ContentService] 更新草稿: 内容=%s, 版本=v%d, 编辑者=%s",
		contentPublicID, result.Version, actor.Nickname)
	return result, nil
}

// Delete 删除内容实体及其全部关联数据
func (s *serviceImpl) Delete(ctx context.Context, contentPublicID string, actor *model.User) error {
	if !actor.UserGroup.Permissions.Enabled(model.PermissionAdmin) {
		return fmt.Errorf("%w: 删除内容需要管理权限", constant.ErrForbidden)
	}

	contentDBID, err := idgen.MustDecodeAs(contentPublicID, idgen.EntityTypeContent)
	if err != nil {
		return fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}

	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Content.GetByID(ctx, contentDBID); err != nil {
			return err
		}

		versionIDs, err := repos.Version.ListIDsByContent(ctx, contentDBID)
		if err != nil {
			return err
		}

		if err := repos.Comment.DeleteByVersionIDs(ctx, versionIDs); err != nil {
			return err
		}
		if err := repos.Transition.DeleteByVersionIDs(ctx, versionIDs); err != nil {
			return err
		}
		if err := repos.Version.DeleteByContent(ctx, contentDBID); err != nil {
			return err
		}
		if err := repos.Lock.DeleteByContent(ctx, contentDBID); err != nil {
			return err
		}
		if err := repos.Content.Delete(ctx, contentDBID); err != nil {
			return err
		}

		log.Printf("[ContentService] 删除内容及关联数据: ID=%s, 版本数=%d, 执行者=%s",
			contentPublicID, len(versionIDs), actor.Nickname)
		return nil
	})
}

// countWords 从 Markdown 内容计算字数：中文按字符计，其余按空白分词计。
func countWords(content string) int {
	chineseCharCount := 0
	for _, r := range content {
		if unicode.Is(unicode.Han, r) {
			chineseCharCount++
		}
	}
	englishWordCount := len(strings.Fields(content))
	return chineseCharCount + englishWordCount
}

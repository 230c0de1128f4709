/*
 * @Description: 编辑评论服务
 * @Author: 安知鱼
 * @Date: 2026-02-10 18:25:37
 */
package comment

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/parser"
	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/strutil"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

// mentionPattern 匹配评论正文中的 @用户名
var mentionPattern = regexp.MustCompile(`@([a-zA-Z0-9_]{2,50})`)

// Service 定义了编辑评论服务的接口。
// 评论正文创建后不可编辑，本服务只追加评论和翻转其解决状态。
type Service interface {
	// Create 在版本上创建一条编辑评论。
	// blockID 非空时锚定到版本快照中的某个内容块，块必须真实存在。
	Create(ctx context.Context, versionPublicID string, actor *model.User, content string, blockID *string, commentType string) (*model.EditorialComment, error)

	// List 获取版本的全部评论（最新在前）及未解决数量
	List(ctx context.Context, versionPublicID string) (*model.CommentListResponse, error)

	// Resolve 将评论标记为已解决。幂等：已解决的评论重复解决直接返回。
	Resolve(ctx context.Context, commentPublicID string, actor *model.User) (*model.EditorialComment, error)

	// Reopen 重新打开已解决的评论。幂等：未解决的评论重复打开直接返回。
	Reopen(ctx context.Context, commentPublicID string, actor *model.User) (*model.EditorialComment, error)
}

type serviceImpl struct {
	commentRepo repository.CommentRepository
	versionRepo repository.VersionRepository
	userRepo    repository.UserRepository
	eventBus    *event.EventBus
	now         func() time.Time
}

// NewService 创建编辑评论服务实例
func NewService(
	commentRepo repository.CommentRepository,
	versionRepo repository.VersionRepository,
	userRepo repository.UserRepository,
	eventBus *event.EventBus,
) Service {
	return &serviceImpl{
		commentRepo: commentRepo,
		versionRepo: versionRepo,
		userRepo:    userRepo,
		eventBus:    eventBus,
		now:         time.Now,
	}
}

// Create 在版本上创建一条编辑评论
func (s *serviceImpl) Create(ctx context.Context, versionPublicID string, actor *model.User, content string, blockID *string, commentType string) (*model.EditorialComment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: 评论内容不能为空", constant.ErrBadRequest)
	}
	if commentType == "" {
		commentType = model.CommentTypeGeneral
	}
	if !model.IsValidCommentType(commentType) {
		return nil, fmt.Errorf("%w: 未知的评论类型 '%s'", constant.ErrBadRequest, commentType)
	}

	versionDBID, err := idgen.MustDecodeAs(versionPublicID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	version, err := s.versionRepo.GetByID(ctx, versionDBID)
	if err != nil {
		return nil, err
	}

	// 块锚点必须指向版本快照中真实存在的块
	if blockID != nil {
		found := false
		for i := range version.Blocks {
			if version.Blocks[i].ID == *blockID {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: 版本v%d中不存在内容块 '%s'", constant.ErrBadRequest, version.Version, *blockID)
		}
	}

	contentHTML, err := parser.MarkdownToHTML(content)
	if err != nil {
		return nil, fmt.Errorf("渲染评论内容失败: %w", err)
	}

	created, err := s.commentRepo.Create(ctx, &model.CreateCommentParams{
		VersionDBID:    versionDBID,
		AuthorID:       actor.ID,
		AuthorNickname: actor.Nickname,
		Content:        content,
		ContentHTML:    contentHTML,
		BlockID:        blockID,
		Type:           commentType,
	})
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(event.CommentCreated, &model.CommentEvent{
		CommentID:      created.ID,
		VersionID:      versionPublicID,
		AuthorNickname: actor.Nickname,
		Type:           commentType,
		Excerpt:        strutil.Truncate(content, 100),
	})

	// 扫描 @提及，只为真实存在的用户发布事件
	s.publishMentions(ctx, created, actor)

	return created, nil
}

// publishMentions 扫描评论正文中的 @用户名 并逐个发布提及事件
func (s *serviceImpl) publishMentions(ctx context.Context, comment *model.EditorialComment, actor *model.User) {
	matches := mentionPattern.FindAllStringSubmatch(comment.Content, -1)
	if len(matches) == 0 {
		return
	}

	seen := make(map[string]bool, len(matches))
	for _, match := range matches {
		username := match[1]
		if seen[username] || username == actor.Username {
			continue
		}
		seen[username] = true

		mentioned, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			log.Printf("[CommentService] 查询被提及用户失败: username=%s, error=%v", username, err)
			continue
		}
		if mentioned == nil {
			// 不是注册用户名，忽略
			continue
		}

		s.eventBus.Publish(event.CommentMentioned, &model.MentionEvent{
			CommentID:         comment.ID,
			VersionID:         comment.VersionID,
			AuthorNickname:    actor.Nickname,
			MentionedUsername: username,
		})
	}
}

// List 获取版本的全部评论及未解决数量
func (s *serviceImpl) List(ctx context.Context, versionPublicID string) (*model.CommentListResponse, error) {
	versionDBID, err := idgen.MustDecodeAs(versionPublicID, idgen.EntityTypeContentVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	if _, err := s.versionRepo.GetByID(ctx, versionDBID); err != nil {
		return nil, err
	}

	comments, total, err := s.commentRepo.ListByVersion(ctx, versionDBID)
	if err != nil {
		return nil, err
	}
	unresolved, err := s.commentRepo.CountUnresolvedByVersion(ctx, versionDBID)
	if err != nil {
		return nil, err
	}

	return &model.CommentListResponse{
		List:            comments,
		Total:           total,
		UnresolvedCount: unresolved,
	}, nil
}

// Resolve 将评论标记为已解决
func (s *serviceImpl) Resolve(ctx context.Context, commentPublicID string, actor *model.User) (*model.EditorialComment, error) {
	comment, dbID, err := s.loadComment(ctx, commentPublicID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeResolution(comment, actor); err != nil {
		return nil, err
	}

	// 幂等但不短路：重复解决会把解决者和时间刷新为本次操作
	alreadyResolved := comment.IsResolved()
	resolvedAt := s.now()
	updated, err := s.commentRepo.UpdateResolution(ctx, dbID, &actor.ID, actor.Nickname, &resolvedAt)
	if err != nil {
		return nil, err
	}

	// 重复解决只刷新解决信息，不再重复通知
	if !alreadyResolved {
		s.eventBus.Publish(event.CommentResolved, &model.CommentEvent{
			CommentID:      updated.ID,
			VersionID:      updated.VersionID,
			AuthorNickname: actor.Nickname,
			Type:           updated.Type,
			Excerpt:        strutil.Truncate(updated.Content, 100),
		})
	}

	log.Printf("[CommentService] 解决评论: ID=%s, 解决者=%s", commentPublicID, actor.Nickname)
	return updated, nil
}

// Reopen 重新打开已解决的评论
func (s *serviceImpl) Reopen(ctx context.Context, commentPublicID string, actor *model.User) (*model.EditorialComment, error) {
	comment, dbID, err := s.loadComment(ctx, commentPublicID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeResolution(comment, actor); err != nil {
		return nil, err
	}

	if !comment.IsResolved() {
		// 幂等：本就未解决
		return comment, nil
	}

	updated, err := s.commentRepo.UpdateResolution(ctx, dbID, nil, "", nil)
	if err != nil {
		return nil, err
	}

	log.Printf("[CommentService] 重新打开评论: ID=%s, 执行者=%s", commentPublicID, actor.Nickname)
	return updated, nil
}

// loadComment 解码公共ID并加载评论
func (s *serviceImpl) loadComment(ctx context.Context, commentPublicID string) (*model.EditorialComment, uint, error) {
	dbID, err := idgen.MustDecodeAs(commentPublicID, idgen.EntityTypeEditorialComment)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", constant.ErrInvalidPublicID, err)
	}
	comment, err := s.commentRepo.GetByID(ctx, dbID)
	if err != nil {
		return nil, 0, err
	}
	return comment, dbID, nil
}

// authorizeResolution 评论作者本人或持有解决权限的用户可以翻转解决状态
func (s *serviceImpl) authorizeResolution(comment *model.EditorialComment, actor *model.User) error {
	if comment.AuthorID == actor.ID {
		return nil
	}
	if actor.UserGroup.Permissions.Enabled(model.PermissionResolveComment) {
		return nil
	}
	return fmt.Errorf("%w: 只有评论作者或持有解决权限的用户可以操作", constant.ErrForbidden)
}

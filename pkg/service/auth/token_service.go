/*
 * @Description: 登录与令牌服务
 * @Author: 安知鱼
 * @Date: 2026-02-12 11:02:31
 */
package auth

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/auth"
	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/security"
	"github.com/anzhiyu-c/anheyu-flow/pkg/config"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

// LoginResult 是登录成功后返回给前端的令牌信息。
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // 毫秒时间戳
	Nickname     string `json:"nickname"`
	UserGroup    string `json:"user_group"`
}

// TokenService 负责登录验证和 JWT 会话令牌的签发与刷新。
type TokenService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (accessToken string, expiresAt int64, err error)
	ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error)
}

type tokenService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

// NewTokenService 构造函数
func NewTokenService(userRepo repository.UserRepository, cfg *config.Config) TokenService {
	return &tokenService{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *tokenService) secret() ([]byte, error) {
	jwtSecret := s.cfg.GetString(config.KeyJWTSecret)
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT Secret 未配置, 无法签发令牌")
	}
	return []byte(jwtSecret), nil
}

// Login 校验用户名密码并签发会话令牌。
// 用户不存在和密码错误返回同一个错误，避免泄露用户名是否注册。
func (s *tokenService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	secret, err := s.secret()
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("用户名或密码错误: %w", constant.ErrUnauthorized)
	}
	if user.Status != model.UserStatusActive {
		return nil, fmt.Errorf("用户状态异常, 禁止登录: %w", constant.ErrForbidden)
	}
	if !security.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("用户名或密码错误: %w", constant.ErrUnauthorized)
	}

	accessToken, refreshToken, expiresAt, err := s.generateSessionTokens(user, secret)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, s.now()); err != nil {
		// 登录时间只是展示信息，更新失败不影响登录
		log.Printf("[TokenService] 更新最近登录时间失败: %v", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Nickname:     user.Nickname,
		UserGroup:    user.UserGroup.Name,
	}, nil
}

func (s *tokenService) generateSessionTokens(user *model.User, secret []byte) (string, string, int64, error) {
	accessToken, err := auth.GenerateToken(
		user.ID, user.UserGroupID, user.Nickname,
		user.UserGroup.Roles, []byte(user.UserGroup.Permissions), secret,
	)
	if err != nil {
		return "", "", 0, fmt.Errorf("生成访问令牌失败: %w", err)
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, secret)
	if err != nil {
		return "", "", 0, fmt.Errorf("生成刷新令牌失败: %w", err)
	}

	claims, err := auth.ParseToken(accessToken, secret)
	if err != nil {
		return "", "", 0, err
	}
	return accessToken, refreshToken, claims.ExpiresAt.Time.UnixMilli(), nil
}

// RefreshAccessToken 使用刷新令牌换取新的访问令牌。
func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, int64, error) {
	secret, err := s.secret()
	if err != nil {
		return "", 0, err
	}

	claims, err := auth.ParseToken(refreshToken, secret)
	if err != nil {
		return "", 0, fmt.Errorf("无效或过期的刷新令牌: %w", constant.ErrInvalidToken)
	}

	internalUserID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil {
		return "", 0, fmt.Errorf("解码公共用户ID失败: %w", err)
	}
	if entityType != idgen.EntityTypeUser {
		return "", 0, fmt.Errorf("令牌中的用户ID类型不匹配: %w", constant.ErrInvalidToken)
	}

	user, err := s.userRepo.GetByID(ctx, internalUserID)
	if err != nil || user == nil || user.Status != model.UserStatusActive {
		return "", 0, fmt.Errorf("用户不存在或状态异常: %w", constant.ErrUnauthorized)
	}

	accessToken, _, expiresAt, err := s.generateSessionTokens(user, secret)
	if err != nil {
		return "", 0, err
	}
	return accessToken, expiresAt, nil
}

// ParseAccessToken 负责解析和验证 access token
func (s *tokenService) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	secret, err := s.secret()
	if err != nil {
		return nil, err
	}
	return auth.ParseToken(accessToken, secret)
}

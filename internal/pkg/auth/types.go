/*
 * @Description: JWT Claims 结构定义
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:50:03
 */
package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索整个用户信息结构体的键。
const ClaimsKey = "user_claims"

// CustomClaims 定义了 JWT 的自定义 Claims 结构体
// UserID 和 UserGroupID 存储的是其公共 ID 字符串表示。
// Roles 是用户组声明的编辑角色集合，供工作流策略做转换授权判断。
type CustomClaims struct {
	UserID      string   `json:"user_id"`       // 用户公共ID
	UserGroupID string   `json:"user_group_id"` // 用户组公共ID
	Nickname    string   `json:"nickname"`      // 用户昵称（冗余，供审计记录使用）
	Roles       []string `json:"roles"`         // 编辑角色集合
	Permissions []byte   `json:"permissions"`   // 用户的权限位集合
	jwt.RegisteredClaims
}

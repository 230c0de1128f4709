/*
 * @Description: 用户与用户组领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:02:11
 */
package model

import (
	"database/sql/driver"
	"encoding/base64"
	"errors"
	"time"
)

// ========= 业务常量 (与数据库实现无关) =========

// 权限常量定义了用户操作的权限位
const (
	PermissionAdmin          uint = 0 // 系统管理
	PermissionOverrideLock   uint = 1 // 强制抢占他人持有的非过期编辑锁
	PermissionManageWorkflow uint = 2 // 管理工作流定义
	PermissionResolveComment uint = 3 // 解决/重开编辑评论
)

// 用户状态常量定义了用户的几种不同状态
const (
	UserStatusActive   = 1
	UserStatusInactive = 2
	UserStatusBanned   = 3
)

// 内置编辑角色名，工作流定义中的 roles 引用这些名称。
// 角色集合是数据而非代码：自定义工作流可以声明任意角色名，
// 这里只列出默认定义使用的几种。
const (
	RoleWriter   = "writer"
	RoleEditor   = "editor"
	RoleCopyDesk = "copydesk"
	RoleChief    = "chief"
)

// ========= 领域模型定义 =========

type User struct {
	ID           uint       `json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Nickname     string     `json:"nickname"`
	Email        string     `json:"email"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
	UserGroupID  uint       `json:"userGroupID"`
	UserGroup    UserGroup  `json:"userGroup"`
	Status       int        `json:"status"`
}

type UserGroup struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Roles       []string  `json:"roles"`
	Permissions Boolset   `json:"permissions"`
}

// Boolset 是一个以位图形式存储的权限集合，数据库中以 Base64 文本保存。
type Boolset []byte

func (bs Boolset) Value() (driver.Value, error) {
	if len(bs) == 0 {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString(bs), nil
}

func (bs *Boolset) Scan(value interface{}) error {
	if value == nil {
		*bs = nil
		return nil
	}
	var encoded string
	switch v := value.(type) {
	case []byte:
		encoded = string(v)
	case string:
		encoded = v
	default:
		return errors.New("unsupported type for Boolset scan")
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return err
	}
	*bs = decoded
	return nil
}

func (bs Boolset) Enabled(n uint) bool {
	byteIndex := n / 8
	bitIndex := n % 8
	if byteIndex >= uint(len(bs)) {
		return false
	}
	return (bs[byteIndex] & (1 << bitIndex)) != 0
}

func (bs *Boolset) Set(n uint, value bool) {
	byteIndex := n / 8
	bitIndex := n % 8
	requiredLen := int(byteIndex + 1)
	if requiredLen > len(*bs) {
		newSlice := make([]byte, requiredLen)
		copy(newSlice, *bs)
		*bs = newSlice
	}
	if value {
		(*bs)[byteIndex] |= (1 << bitIndex)
	} else {
		(*bs)[byteIndex] &^= (1 << bitIndex)
	}
}

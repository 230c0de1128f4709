/*
 * @Description: ID 生成和解码服务
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:32:08
 */
package idgen

import (
	"fmt"

	"github.com/sqids/sqids-go"
)

// sqidsEncoder 是用于生成和解码短 ID 的 Sqids 编码器实例。
var sqidsEncoder *sqids.Sqids

// DefaultAlphabet 是默认的字母表
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EntityType 定义了不同实体在生成公共 ID 时的类型标识。
const (
	EntityTypeUser               uint64 = 1 // 用户实体的类型标识
	EntityTypeUserGroup          uint64 = 2 // 用户组实体的类型标识
	EntityTypeContent            uint64 = 3 // 内容实体的类型标识
	EntityTypeContentVersion     uint64 = 4 // 内容版本实体的类型标识
	EntityTypeWorkflowTransition uint64 = 5 // 工作流转换记录的类型标识
	EntityTypeEditorialComment   uint64 = 6 // 编辑评论实体的类型标识
	EntityTypeEditLock           uint64 = 7 // 编辑锁实体的类型标识
	EntityTypeWorkflowDefinition uint64 = 8 // 工作流定义实体的类型标识
)

// InitSqidsEncoder 初始化 Sqids 编码器
func InitSqidsEncoder() error {
	s, err := sqids.New(
		sqids.Options{
			MinLength: 4,
			Alphabet:  DefaultAlphabet,
		},
	)
	if err != nil {
		return fmt.Errorf("初始化 Sqids 编码器失败: %w", err)
	}
	sqidsEncoder = s
	return nil
}

// GeneratePublicID 将数据库ID和实体类型编码为对外暴露的公共ID。
func GeneratePublicID(dbID uint, entityType uint64) (string, error) {
	if sqidsEncoder == nil {
		return "", fmt.Errorf("Sqids 编码器未初始化")
	}

	id, err := sqidsEncoder.Encode([]uint64{uint64(dbID), entityType})
	if err != nil {
		return "", fmt.Errorf("编码公共ID失败: %w", err)
	}

	return id, nil
}

// DecodePublicID 解码公共 ID
func DecodePublicID(publicID string) (dbID uint, entityType uint64, err error) {
	if sqidsEncoder == nil {
		return 0, 0, fmt.Errorf("Sqids 编码器未初始化")
	}

	numbers := sqidsEncoder.Decode(publicID)

	if len(numbers) != 2 {
		return 0, 0, fmt.Errorf("无法从公共ID解码出预期数量的数字(期望2个，得到%d个)", len(numbers))
	}

	return uint(numbers[0]), numbers[1], nil
}

// MustDecodeAs 解码公共ID并校验其实体类型，类型不匹配视为解码失败。
// 用于防御性的归属检查，例如路由中的版本ID必须确实是版本实体。
func MustDecodeAs(publicID string, entityType uint64) (uint, error) {
	dbID, typ, err := DecodePublicID(publicID)
	if err != nil {
		return 0, err
	}
	if typ != entityType {
		return 0, fmt.Errorf("公共ID '%s' 的实体类型不匹配(期望%d，得到%d)", publicID, entityType, typ)
	}
	return dbID, nil
}

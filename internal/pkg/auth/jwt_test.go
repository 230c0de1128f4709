package auth

import (
	"os"
	"testing"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")
	var perms model.Boolset
	perms.Set(model.PermissionManageWorkflow, true)

	tokenStr, err := GenerateToken(1, 2, "爱丽丝", []string{model.RoleEditor}, perms, secret)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	claims, err := ParseToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}

	userDBID, err := idgen.MustDecodeAs(claims.UserID, idgen.EntityTypeUser)
	if err != nil {
		t.Fatalf("解码用户公共ID失败: %v", err)
	}
	if userDBID != 1 {
		t.Fatalf("期望用户ID 1，得到: %d", userDBID)
	}
	if claims.Nickname != "爱丽丝" {
		t.Fatalf("昵称不正确: %s", claims.Nickname)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != model.RoleEditor {
		t.Fatalf("角色不正确: %v", claims.Roles)
	}
	if !model.Boolset(claims.Permissions).Enabled(model.PermissionManageWorkflow) {
		t.Fatal("权限位图应携带工作流管理权限")
	}
	if model.Boolset(claims.Permissions).Enabled(model.PermissionAdmin) {
		t.Fatal("权限位图不应携带未授予的权限")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenStr, err := GenerateToken(1, 2, "爱丽丝", nil, nil, []byte("secret-a"))
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	if _, err := ParseToken(tokenStr, []byte("secret-b")); err == nil {
		t.Fatal("错误密钥应解析失败")
	}
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	if _, err := GenerateToken(1, 2, "爱丽丝", nil, nil, nil); err == nil {
		t.Fatal("空密钥应拒绝签发")
	}
	if _, err := GenerateRefreshToken(1, nil); err == nil {
		t.Fatal("空密钥应拒绝签发")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	secret := []byte("test-secret")
	tokenStr, err := GenerateRefreshToken(7, secret)
	if err != nil {
		t.Fatalf("签发刷新令牌失败: %v", err)
	}

	claims, err := ParseToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("解析刷新令牌失败: %v", err)
	}
	userDBID, err := idgen.MustDecodeAs(claims.UserID, idgen.EntityTypeUser)
	if err != nil {
		t.Fatalf("解码用户公共ID失败: %v", err)
	}
	if userDBID != 7 {
		t.Fatalf("期望用户ID 7，得到: %d", userDBID)
	}
	// 刷新令牌只携带身份，不携带角色和权限
	if len(claims.Roles) != 0 || len(claims.Permissions) != 0 {
		t.Fatalf("刷新令牌不应携带角色或权限: %+v", claims)
	}
}

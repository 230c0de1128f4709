// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContentsColumns holds the columns for the "contents" table.
	ContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "type", Type: field.TypeString, Size: 20, Comment: "内容类型 (post/page/recipe)"},
		{Name: "title", Type: field.TypeString, Size: 255, Comment: "标题镜像（来自当前草稿版本，冗余存储）"},
		{Name: "workflow_status", Type: field.TypeString, Size: 50, Comment: "工作流状态镜像（来自当前草稿版本，冗余存储，用于列表过滤）"},
		{Name: "active_version_id", Type: field.TypeUint, Nullable: true, Comment: "当前发布版本ID，NULL表示从未发布"},
		{Name: "draft_version_id", Type: field.TypeUint, Nullable: true, Comment: "当前草稿版本ID"},
		{Name: "created_by", Type: field.TypeUint, Comment: "创建者用户ID"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
		{Name: "updated_at", Type: field.TypeTime, Comment: "更新时间"},
		{Name: "published_at", Type: field.TypeTime, Nullable: true, Comment: "最近一次发布时间"},
	}
	// ContentsTable holds the schema information for the "contents" table.
	ContentsTable = &schema.Table{
		Name:       "contents",
		Comment:    "可版本化内容实体表",
		Columns:    ContentsColumns,
		PrimaryKey: []*schema.Column{ContentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "content_type_workflow_status",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[1], ContentsColumns[3]},
			},
			{
				Name:    "content_created_by",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[6]},
			},
		},
	}
	// ContentVersionsColumns holds the columns for the "content_versions" table.
	ContentVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "content_id", Type: field.TypeUint, Comment: "关联的内容实体ID"},
		{Name: "version", Type: field.TypeInt, Comment: "版本号，从1开始稠密递增"},
		{Name: "title", Type: field.TypeString, Comment: "标题快照"},
		{Name: "content_md", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "Markdown内容快照"},
		{Name: "content_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "渲染后的HTML内容快照"},
		{Name: "blocks", Type: field.TypeJSON, Nullable: true, Comment: "结构化内容块快照"},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 500, Comment: "摘要快照"},
		{Name: "keywords", Type: field.TypeString, Nullable: true, Comment: "关键词快照"},
		{Name: "word_count", Type: field.TypeInt, Comment: "字数", Default: 0},
		{Name: "status", Type: field.TypeString, Size: 50, Comment: "工作流状态，取值由内容类型的工作流定义声明"},
		{Name: "is_active", Type: field.TypeBool, Comment: "是否为当前发布版本，同一内容至多一个为真", Default: false},
		{Name: "editor_id", Type: field.TypeUint, Comment: "编辑者ID"},
		{Name: "editor_nickname", Type: field.TypeString, Nullable: true, Comment: "编辑者昵称（冗余存储）"},
		{Name: "change_note", Type: field.TypeString, Nullable: true, Size: 500, Comment: "变更说明"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
	}
	// ContentVersionsTable holds the schema information for the "content_versions" table.
	ContentVersionsTable = &schema.Table{
		Name:       "content_versions",
		Comment:    "内容版本快照表",
		Columns:    ContentVersionsColumns,
		PrimaryKey: []*schema.Column{ContentVersionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentversion_content_id_version",
				Unique:  true,
				Columns: []*schema.Column{ContentVersionsColumns[1], ContentVersionsColumns[2]},
			},
			{
				Name:    "contentversion_content_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ContentVersionsColumns[1], ContentVersionsColumns[11]},
			},
			{
				Name:    "contentversion_editor_id",
				Unique:  false,
				Columns: []*schema.Column{ContentVersionsColumns[12]},
			},
		},
	}
	// EditLocksColumns holds the columns for the "edit_locks" table.
	EditLocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "content_id", Type: field.TypeUint, Unique: true, Comment: "被锁定的内容实体ID"},
		{Name: "holder_id", Type: field.TypeUint, Comment: "持有者用户ID"},
		{Name: "holder_nickname", Type: field.TypeString, Nullable: true, Size: 50, Comment: "持有者昵称（冗余存储，供冲突提示展示）"},
		{Name: "token", Type: field.TypeString, Size: 36, Comment: "本次持锁会话的唯一标识(UUID)"},
		{Name: "acquired_at", Type: field.TypeTime, Comment: "获取时间"},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Comment: "最近一次心跳时间，过期判定在读取时计算"},
	}
	// EditLocksTable holds the schema information for the "edit_locks" table.
	EditLocksTable = &schema.Table{
		Name:       "edit_locks",
		Comment:    "编辑锁表，心跳续期的会话级互斥记录",
		Columns:    EditLocksColumns,
		PrimaryKey: []*schema.Column{EditLocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "editlock_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{EditLocksColumns[6]},
			},
			{
				Name:    "editlock_holder_id",
				Unique:  false,
				Columns: []*schema.Column{EditLocksColumns[2]},
			},
		},
	}
	// EditorialCommentsColumns holds the columns for the "editorial_comments" table.
	EditorialCommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "version_id", Type: field.TypeUint, Comment: "评论附着的内容版本ID"},
		{Name: "author_id", Type: field.TypeUint, Comment: "评论作者用户ID"},
		{Name: "author_nickname", Type: field.TypeString, Nullable: true, Size: 50, Comment: "评论作者昵称（冗余存储）"},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Comment: "评论内容 (Markdown格式)"},
		{Name: "content_html", Type: field.TypeString, Size: 2147483647, Comment: "经后端安全处理后的HTML格式评论内容"},
		{Name: "block_id", Type: field.TypeString, Nullable: true, Size: 64, Comment: "锚定的内容块ID，NULL表示针对整个版本"},
		{Name: "type", Type: field.TypeString, Size: 30, Comment: "评论类型 general/revision_request/approval", Default: "general"},
		{Name: "resolved_by_id", Type: field.TypeUint, Nullable: true, Comment: "解决者用户ID，NULL表示未解决"},
		{Name: "resolved_by_name", Type: field.TypeString, Nullable: true, Size: 50, Comment: "解决者昵称（冗余存储）"},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true, Comment: "解决时间，NULL表示未解决"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
	}
	// EditorialCommentsTable holds the schema information for the "editorial_comments" table.
	EditorialCommentsTable = &schema.Table{
		Name:       "editorial_comments",
		Comment:    "编辑评论表",
		Columns:    EditorialCommentsColumns,
		PrimaryKey: []*schema.Column{EditorialCommentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "editorialcomment_version_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EditorialCommentsColumns[1], EditorialCommentsColumns[11]},
			},
			{
				Name:    "editorialcomment_version_id_resolved_at",
				Unique:  false,
				Columns: []*schema.Column{EditorialCommentsColumns[1], EditorialCommentsColumns[10]},
			},
			{
				Name:    "editorialcomment_author_id",
				Unique:  false,
				Columns: []*schema.Column{EditorialCommentsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50, Comment: "用户账号"},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "nickname", Type: field.TypeString, Nullable: true, Size: 50, Comment: "用户昵称"},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 100, Comment: "用户邮箱"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeInt, Comment: "用户状态 1:正常 2:未激活 3:已封禁", Default: 2},
		{Name: "user_group_id", Type: field.TypeUint},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "用户表",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_user_groups_users",
				Columns:    []*schema.Column{UsersColumns[10]},
				RefColumns: []*schema.Column{UserGroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UserGroupsColumns holds the columns for the "user_groups" table.
	UserGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 50, Comment: "用户组名称"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 255, Comment: "用户组描述"},
		{Name: "roles", Type: field.TypeJSON, Nullable: true, Comment: "该用户组声明的编辑角色集合，供工作流策略授权判断"},
		{Name: "permissions", Type: field.TypeOther, Comment: "权限集, Base64编码的字节", SchemaType: map[string]string{"mysql": "text", "postgres": "text", "sqlite3": "text"}},
	}
	// UserGroupsTable holds the schema information for the "user_groups" table.
	UserGroupsTable = &schema.Table{
		Name:       "user_groups",
		Comment:    "用户组表",
		Columns:    UserGroupsColumns,
		PrimaryKey: []*schema.Column{UserGroupsColumns[0]},
	}
	// WorkflowDefinitionsColumns holds the columns for the "workflow_definitions" table.
	WorkflowDefinitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "content_type", Type: field.TypeString, Unique: true, Size: 20, Comment: "内容类型，空字符串表示默认定义"},
		{Name: "name", Type: field.TypeString, Size: 100, Comment: "工作流名称"},
		{Name: "states", Type: field.TypeJSON, Comment: "状态集合"},
		{Name: "initial_state", Type: field.TypeString, Size: 50, Comment: "初始状态"},
		{Name: "published_state", Type: field.TypeString, Size: 50, Comment: "发布（终端）状态"},
		{Name: "edges", Type: field.TypeJSON, Comment: "合法转换边集合，含各边的角色要求"},
		{Name: "publish_roles", Type: field.TypeJSON, Comment: "允许执行发布转换的角色集合"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
		{Name: "updated_at", Type: field.TypeTime, Comment: "更新时间"},
	}
	// WorkflowDefinitionsTable holds the schema information for the "workflow_definitions" table.
	WorkflowDefinitionsTable = &schema.Table{
		Name:       "workflow_definitions",
		Comment:    "工作流定义表",
		Columns:    WorkflowDefinitionsColumns,
		PrimaryKey: []*schema.Column{WorkflowDefinitionsColumns[0]},
	}
	// WorkflowTransitionsColumns holds the columns for the "workflow_transitions" table.
	WorkflowTransitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "version_id", Type: field.TypeUint, Comment: "关联的内容版本ID"},
		{Name: "from_status", Type: field.TypeString, Nullable: true, Size: 50, Comment: "源状态，NULL表示版本创建边"},
		{Name: "to_status", Type: field.TypeString, Size: 50, Comment: "目标状态"},
		{Name: "actor_id", Type: field.TypeUint, Comment: "执行者用户ID"},
		{Name: "actor_nickname", Type: field.TypeString, Nullable: true, Comment: "执行者昵称（冗余存储）"},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 500, Comment: "转换附言"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
	}
	// WorkflowTransitionsTable holds the schema information for the "workflow_transitions" table.
	WorkflowTransitionsTable = &schema.Table{
		Name:       "workflow_transitions",
		Comment:    "工作流转换记录表，只追加，从不更新",
		Columns:    WorkflowTransitionsColumns,
		PrimaryKey: []*schema.Column{WorkflowTransitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowtransition_version_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowTransitionsColumns[1], WorkflowTransitionsColumns[7]},
			},
			{
				Name:    "workflowtransition_actor_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowTransitionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContentsTable,
		ContentVersionsTable,
		EditLocksTable,
		EditorialCommentsTable,
		UsersTable,
		UserGroupsTable,
		WorkflowDefinitionsTable,
		WorkflowTransitionsTable,
	}
)

func init() {
	UsersTable.ForeignKeys[0].RefTable = UserGroupsTable
}

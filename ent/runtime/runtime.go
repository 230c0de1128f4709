// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"github.com/anzhiyu-c/anheyu-flow/ent/content"
	"github.com/anzhiyu-c/anheyu-flow/ent/contentversion"
	"github.com/anzhiyu-c/anheyu-flow/ent/editlock"
	"github.com/anzhiyu-c/anheyu-flow/ent/editorialcomment"
	"github.com/anzhiyu-c/anheyu-flow/ent/schema"
	"github.com/anzhiyu-c/anheyu-flow/ent/user"
	"github.com/anzhiyu-c/anheyu-flow/ent/usergroup"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowdefinition"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowtransition"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contentFields := schema.Content{}.Fields()
	_ = contentFields
	// contentDescType is the schema descriptor for type field.
	contentDescType := contentFields[1].Descriptor()
	// content.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	content.TypeValidator = func() func(string) error {
		validators := contentDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentDescTitle is the schema descriptor for title field.
	contentDescTitle := contentFields[2].Descriptor()
	// content.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	content.TitleValidator = contentDescTitle.Validators[0].(func(string) error)
	// contentDescWorkflowStatus is the schema descriptor for workflow_status field.
	contentDescWorkflowStatus := contentFields[3].Descriptor()
	// content.WorkflowStatusValidator is a validator for the "workflow_status" field. It is called by the builders before save.
	content.WorkflowStatusValidator = contentDescWorkflowStatus.Validators[0].(func(string) error)
	// contentDescCreatedAt is the schema descriptor for created_at field.
	contentDescCreatedAt := contentFields[7].Descriptor()
	// content.DefaultCreatedAt holds the default value on creation for the created_at field.
	content.DefaultCreatedAt = contentDescCreatedAt.Default.(func() time.Time)
	// contentDescUpdatedAt is the schema descriptor for updated_at field.
	contentDescUpdatedAt := contentFields[8].Descriptor()
	// content.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	content.DefaultUpdatedAt = contentDescUpdatedAt.Default.(func() time.Time)
	// content.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	content.UpdateDefaultUpdatedAt = contentDescUpdatedAt.UpdateDefault.(func() time.Time)
	contentversionFields := schema.ContentVersion{}.Fields()
	_ = contentversionFields
	// contentversionDescVersion is the schema descriptor for version field.
	contentversionDescVersion := contentversionFields[2].Descriptor()
	// contentversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	contentversion.VersionValidator = contentversionDescVersion.Validators[0].(func(int) error)
	// contentversionDescTitle is the schema descriptor for title field.
	contentversionDescTitle := contentversionFields[3].Descriptor()
	// contentversion.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	contentversion.TitleValidator = contentversionDescTitle.Validators[0].(func(string) error)
	// contentversionDescSummary is the schema descriptor for summary field.
	contentversionDescSummary := contentversionFields[7].Descriptor()
	// contentversion.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	contentversion.SummaryValidator = contentversionDescSummary.Validators[0].(func(string) error)
	// contentversionDescWordCount is the schema descriptor for word_count field.
	contentversionDescWordCount := contentversionFields[9].Descriptor()
	// contentversion.DefaultWordCount holds the default value on creation for the word_count field.
	contentversion.DefaultWordCount = contentversionDescWordCount.Default.(int)
	// contentversion.WordCountValidator is a validator for the "word_count" field. It is called by the builders before save.
	contentversion.WordCountValidator = contentversionDescWordCount.Validators[0].(func(int) error)
	// contentversionDescStatus is the schema descriptor for status field.
	contentversionDescStatus := contentversionFields[10].Descriptor()
	// contentversion.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	contentversion.StatusValidator = contentversionDescStatus.Validators[0].(func(string) error)
	// contentversionDescIsActive is the schema descriptor for is_active field.
	contentversionDescIsActive := contentversionFields[11].Descriptor()
	// contentversion.DefaultIsActive holds the default value on creation for the is_active field.
	contentversion.DefaultIsActive = contentversionDescIsActive.Default.(bool)
	// contentversionDescChangeNote is the schema descriptor for change_note field.
	contentversionDescChangeNote := contentversionFields[14].Descriptor()
	// contentversion.ChangeNoteValidator is a validator for the "change_note" field. It is called by the builders before save.
	contentversion.ChangeNoteValidator = contentversionDescChangeNote.Validators[0].(func(string) error)
	// contentversionDescCreatedAt is the schema descriptor for created_at field.
	contentversionDescCreatedAt := contentversionFields[15].Descriptor()
	// contentversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	contentversion.DefaultCreatedAt = contentversionDescCreatedAt.Default.(func() time.Time)
	editlockFields := schema.EditLock{}.Fields()
	_ = editlockFields
	// editlockDescHolderNickname is the schema descriptor for holder_nickname field.
	editlockDescHolderNickname := editlockFields[3].Descriptor()
	// editlock.HolderNicknameValidator is a validator for the "holder_nickname" field. It is called by the builders before save.
	editlock.HolderNicknameValidator = editlockDescHolderNickname.Validators[0].(func(string) error)
	// editlockDescToken is the schema descriptor for token field.
	editlockDescToken := editlockFields[4].Descriptor()
	// editlock.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	editlock.TokenValidator = editlockDescToken.Validators[0].(func(string) error)
	// editlockDescAcquiredAt is the schema descriptor for acquired_at field.
	editlockDescAcquiredAt := editlockFields[5].Descriptor()
	// editlock.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	editlock.DefaultAcquiredAt = editlockDescAcquiredAt.Default.(func() time.Time)
	// editlockDescLastHeartbeatAt is the schema descriptor for last_heartbeat_at field.
	editlockDescLastHeartbeatAt := editlockFields[6].Descriptor()
	// editlock.DefaultLastHeartbeatAt holds the default value on creation for the last_heartbeat_at field.
	editlock.DefaultLastHeartbeatAt = editlockDescLastHeartbeatAt.Default.(func() time.Time)
	editorialcommentFields := schema.EditorialComment{}.Fields()
	_ = editorialcommentFields
	// editorialcommentDescAuthorNickname is the schema descriptor for author_nickname field.
	editorialcommentDescAuthorNickname := editorialcommentFields[3].Descriptor()
	// editorialcomment.AuthorNicknameValidator is a validator for the "author_nickname" field. It is called by the builders before save.
	editorialcomment.AuthorNicknameValidator = editorialcommentDescAuthorNickname.Validators[0].(func(string) error)
	// editorialcommentDescContent is the schema descriptor for content field.
	editorialcommentDescContent := editorialcommentFields[4].Descriptor()
	// editorialcomment.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	editorialcomment.ContentValidator = editorialcommentDescContent.Validators[0].(func(string) error)
	// editorialcommentDescContentHTML is the schema descriptor for content_html field.
	editorialcommentDescContentHTML := editorialcommentFields[5].Descriptor()
	// editorialcomment.ContentHTMLValidator is a validator for the "content_html" field. It is called by the builders before save.
	editorialcomment.ContentHTMLValidator = editorialcommentDescContentHTML.Validators[0].(func(string) error)
	// editorialcommentDescBlockID is the schema descriptor for block_id field.
	editorialcommentDescBlockID := editorialcommentFields[6].Descriptor()
	// editorialcomment.BlockIDValidator is a validator for the "block_id" field. It is called by the builders before save.
	editorialcomment.BlockIDValidator = editorialcommentDescBlockID.Validators[0].(func(string) error)
	// editorialcommentDescType is the schema descriptor for type field.
	editorialcommentDescType := editorialcommentFields[7].Descriptor()
	// editorialcomment.DefaultType holds the default value on creation for the type field.
	editorialcomment.DefaultType = editorialcommentDescType.Default.(string)
	// editorialcomment.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	editorialcomment.TypeValidator = editorialcommentDescType.Validators[0].(func(string) error)
	// editorialcommentDescResolvedByName is the schema descriptor for resolved_by_name field.
	editorialcommentDescResolvedByName := editorialcommentFields[9].Descriptor()
	// editorialcomment.ResolvedByNameValidator is a validator for the "resolved_by_name" field. It is called by the builders before save.
	editorialcomment.ResolvedByNameValidator = editorialcommentDescResolvedByName.Validators[0].(func(string) error)
	// editorialcommentDescCreatedAt is the schema descriptor for created_at field.
	editorialcommentDescCreatedAt := editorialcommentFields[11].Descriptor()
	// editorialcomment.DefaultCreatedAt holds the default value on creation for the created_at field.
	editorialcomment.DefaultCreatedAt = editorialcommentDescCreatedAt.Default.(func() time.Time)
	userMixin := schema.User{}.Mixin()
	userMixinHooks0 := userMixin[0].Hooks()
	user.Hooks[0] = userMixinHooks0[0]
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[2].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[3].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[4].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = func() func(string) error {
		validators := userDescPasswordHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(password_hash string) error {
			for _, fn := range fns {
				if err := fn(password_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescNickname is the schema descriptor for nickname field.
	userDescNickname := userFields[5].Descriptor()
	// user.NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	user.NicknameValidator = userDescNickname.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[6].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescStatus is the schema descriptor for status field.
	userDescStatus := userFields[8].Descriptor()
	// user.DefaultStatus holds the default value on creation for the status field.
	user.DefaultStatus = userDescStatus.Default.(int)
	usergroupMixin := schema.UserGroup{}.Mixin()
	usergroupMixinHooks0 := usergroupMixin[0].Hooks()
	usergroup.Hooks[0] = usergroupMixinHooks0[0]
	usergroupFields := schema.UserGroup{}.Fields()
	_ = usergroupFields
	// usergroupDescCreatedAt is the schema descriptor for created_at field.
	usergroupDescCreatedAt := usergroupFields[1].Descriptor()
	// usergroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	usergroup.DefaultCreatedAt = usergroupDescCreatedAt.Default.(func() time.Time)
	// usergroupDescUpdatedAt is the schema descriptor for updated_at field.
	usergroupDescUpdatedAt := usergroupFields[2].Descriptor()
	// usergroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usergroup.DefaultUpdatedAt = usergroupDescUpdatedAt.Default.(func() time.Time)
	// usergroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usergroup.UpdateDefaultUpdatedAt = usergroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usergroupDescName is the schema descriptor for name field.
	usergroupDescName := usergroupFields[3].Descriptor()
	// usergroup.NameValidator is a validator for the "name" field. It is called by the builders before save.
	usergroup.NameValidator = func() func(string) error {
		validators := usergroupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usergroupDescDescription is the schema descriptor for description field.
	usergroupDescDescription := usergroupFields[4].Descriptor()
	// usergroup.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	usergroup.DescriptionValidator = usergroupDescDescription.Validators[0].(func(string) error)
	workflowdefinitionFields := schema.WorkflowDefinition{}.Fields()
	_ = workflowdefinitionFields
	// workflowdefinitionDescContentType is the schema descriptor for content_type field.
	workflowdefinitionDescContentType := workflowdefinitionFields[1].Descriptor()
	// workflowdefinition.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	workflowdefinition.ContentTypeValidator = workflowdefinitionDescContentType.Validators[0].(func(string) error)
	// workflowdefinitionDescName is the schema descriptor for name field.
	workflowdefinitionDescName := workflowdefinitionFields[2].Descriptor()
	// workflowdefinition.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workflowdefinition.NameValidator = func() func(string) error {
		validators := workflowdefinitionDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workflowdefinitionDescInitialState is the schema descriptor for initial_state field.
	workflowdefinitionDescInitialState := workflowdefinitionFields[4].Descriptor()
	// workflowdefinition.InitialStateValidator is a validator for the "initial_state" field. It is called by the builders before save.
	workflowdefinition.InitialStateValidator = func() func(string) error {
		validators := workflowdefinitionDescInitialState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(initial_state string) error {
			for _, fn := range fns {
				if err := fn(initial_state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workflowdefinitionDescPublishedState is the schema descriptor for published_state field.
	workflowdefinitionDescPublishedState := workflowdefinitionFields[5].Descriptor()
	// workflowdefinition.PublishedStateValidator is a validator for the "published_state" field. It is called by the builders before save.
	workflowdefinition.PublishedStateValidator = func() func(string) error {
		validators := workflowdefinitionDescPublishedState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(published_state string) error {
			for _, fn := range fns {
				if err := fn(published_state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workflowdefinitionDescCreatedAt is the schema descriptor for created_at field.
	workflowdefinitionDescCreatedAt := workflowdefinitionFields[8].Descriptor()
	// workflowdefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowdefinition.DefaultCreatedAt = workflowdefinitionDescCreatedAt.Default.(func() time.Time)
	// workflowdefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	workflowdefinitionDescUpdatedAt := workflowdefinitionFields[9].Descriptor()
	// workflowdefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowdefinition.DefaultUpdatedAt = workflowdefinitionDescUpdatedAt.Default.(func() time.Time)
	// workflowdefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowdefinition.UpdateDefaultUpdatedAt = workflowdefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowtransitionFields := schema.WorkflowTransition{}.Fields()
	_ = workflowtransitionFields
	// workflowtransitionDescFromStatus is the schema descriptor for from_status field.
	workflowtransitionDescFromStatus := workflowtransitionFields[2].Descriptor()
	// workflowtransition.FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	workflowtransition.FromStatusValidator = workflowtransitionDescFromStatus.Validators[0].(func(string) error)
	// workflowtransitionDescToStatus is the schema descriptor for to_status field.
	workflowtransitionDescToStatus := workflowtransitionFields[3].Descriptor()
	// workflowtransition.ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	workflowtransition.ToStatusValidator = func() func(string) error {
		validators := workflowtransitionDescToStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(to_status string) error {
			for _, fn := range fns {
				if err := fn(to_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workflowtransitionDescComment is the schema descriptor for comment field.
	workflowtransitionDescComment := workflowtransitionFields[6].Descriptor()
	// workflowtransition.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	workflowtransition.CommentValidator = workflowtransitionDescComment.Validators[0].(func(string) error)
	// workflowtransitionDescCreatedAt is the schema descriptor for created_at field.
	workflowtransitionDescCreatedAt := workflowtransitionFields[7].Descriptor()
	// workflowtransition.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowtransition.DefaultCreatedAt = workflowtransitionDescCreatedAt.Default.(func() time.Time)
}

const (
	Version = "v0.14.4"                                         // Version of ent codegen.
	Sum     = "h1:/DhDraSLXIkBhyiVoJeSshr4ZYi7femzhj6/TckzZuI=" // Sum of ent codegen.
)

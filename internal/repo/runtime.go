// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck_backend/internal/repo/attachment"
	"github.com/taskdeck/taskdeck_backend/internal/repo/employee"
	"github.com/taskdeck/taskdeck_backend/internal/repo/task"
	"github.com/taskdeck/taskdeck_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attachmentMixin := schema.Attachment{}.Mixin()
	attachmentMixinFields0 := attachmentMixin[0].Fields()
	_ = attachmentMixinFields0
	attachmentMixinFields1 := attachmentMixin[1].Fields()
	_ = attachmentMixinFields1
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescCreatedAt is the schema descriptor for created_at field.
	attachmentDescCreatedAt := attachmentMixinFields1[0].Descriptor()
	// attachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	attachment.DefaultCreatedAt = attachmentDescCreatedAt.Default.(func() time.Time)
	// attachmentDescName is the schema descriptor for name field.
	attachmentDescName := attachmentFields[1].Descriptor()
	// attachment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	attachment.NameValidator = attachmentDescName.Validators[0].(func(string) error)
	// attachmentDescMime is the schema descriptor for mime field.
	attachmentDescMime := attachmentFields[2].Descriptor()
	// attachment.DefaultMime holds the default value on creation for the mime field.
	attachment.DefaultMime = attachmentDescMime.Default.(string)
	// attachment.MimeValidator is a validator for the "mime" field. It is called by the builders before save.
	attachment.MimeValidator = attachmentDescMime.Validators[0].(func(string) error)
	// attachmentDescExternal is the schema descriptor for external field.
	attachmentDescExternal := attachmentFields[3].Descriptor()
	// attachment.DefaultExternal holds the default value on creation for the external field.
	attachment.DefaultExternal = attachmentDescExternal.Default.(bool)
	// attachmentDescURL is the schema descriptor for url field.
	attachmentDescURL := attachmentFields[4].Descriptor()
	// attachment.DefaultURL holds the default value on creation for the url field.
	attachment.DefaultURL = attachmentDescURL.Default.(string)
	// attachmentDescStoragePath is the schema descriptor for storage_path field.
	attachmentDescStoragePath := attachmentFields[5].Descriptor()
	// attachment.DefaultStoragePath holds the default value on creation for the storage_path field.
	attachment.DefaultStoragePath = attachmentDescStoragePath.Default.(string)
	// attachment.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	attachment.StoragePathValidator = attachmentDescStoragePath.Validators[0].(func(string) error)
	// attachmentDescID is the schema descriptor for id field.
	attachmentDescID := attachmentMixinFields0[0].Descriptor()
	// attachment.DefaultID holds the default value on creation for the id field.
	attachment.DefaultID = attachmentDescID.Default.(func() uuid.UUID)
	employeeMixin := schema.Employee{}.Mixin()
	employeeMixinFields0 := employeeMixin[0].Fields()
	_ = employeeMixinFields0
	employeeMixinFields1 := employeeMixin[1].Fields()
	_ = employeeMixinFields1
	employeeFields := schema.Employee{}.Fields()
	_ = employeeFields
	// employeeDescCreatedAt is the schema descriptor for created_at field.
	employeeDescCreatedAt := employeeMixinFields1[0].Descriptor()
	// employee.DefaultCreatedAt holds the default value on creation for the created_at field.
	employee.DefaultCreatedAt = employeeDescCreatedAt.Default.(func() time.Time)
	// employeeDescName is the schema descriptor for name field.
	employeeDescName := employeeFields[0].Descriptor()
	// employee.NameValidator is a validator for the "name" field. It is called by the builders before save.
	employee.NameValidator = func() func(string) error {
		validators := employeeDescName.Validators
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
	// employeeDescNameLower is the schema descriptor for name_lower field.
	employeeDescNameLower := employeeFields[1].Descriptor()
	// employee.NameLowerValidator is a validator for the "name_lower" field. It is called by the builders before save.
	employee.NameLowerValidator = employeeDescNameLower.Validators[0].(func(string) error)
	// employeeDescID is the schema descriptor for id field.
	employeeDescID := employeeMixinFields0[0].Descriptor()
	// employee.DefaultID holds the default value on creation for the id field.
	employee.DefaultID = employeeDescID.Default.(func() uuid.UUID)
	taskMixin := schema.Task{}.Mixin()
	taskMixinFields0 := taskMixin[0].Fields()
	_ = taskMixinFields0
	taskMixinFields1 := taskMixin[1].Fields()
	_ = taskMixinFields1
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskMixinFields1[0].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[0].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = func() func(string) error {
		validators := taskDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescDetails is the schema descriptor for details field.
	taskDescDetails := taskFields[1].Descriptor()
	// task.DefaultDetails holds the default value on creation for the details field.
	task.DefaultDetails = taskDescDetails.Default.(string)
	// taskDescAssignedName is the schema descriptor for assigned_name field.
	taskDescAssignedName := taskFields[3].Descriptor()
	// task.DefaultAssignedName holds the default value on creation for the assigned_name field.
	task.DefaultAssignedName = taskDescAssignedName.Default.(string)
	// task.AssignedNameValidator is a validator for the "assigned_name" field. It is called by the builders before save.
	task.AssignedNameValidator = taskDescAssignedName.Validators[0].(func(string) error)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskMixinFields0[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
}

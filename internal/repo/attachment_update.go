// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck_backend/internal/repo/attachment"
	"github.com/taskdeck/taskdeck_backend/internal/repo/predicate"
)

// AttachmentUpdate is the builder for updating Attachment entities.
type AttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *AttachmentMutation
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdate) Where(ps ...predicate.Attachment) *AttachmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AttachmentUpdate) SetTaskID(v uuid.UUID) *AttachmentUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableTaskID(v *uuid.UUID) *AttachmentUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AttachmentUpdate) SetName(v string) *AttachmentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableName(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMime sets the "mime" field.
func (_u *AttachmentUpdate) SetMime(v string) *AttachmentUpdate {
	_u.mutation.SetMime(v)
	return _u
}

// SetNillableMime sets the "mime" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableMime(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetMime(*v)
	}
	return _u
}

// ClearMime clears the value of the "mime" field.
func (_u *AttachmentUpdate) ClearMime() *AttachmentUpdate {
	_u.mutation.ClearMime()
	return _u
}

// SetExternal sets the "external" field.
func (_u *AttachmentUpdate) SetExternal(v bool) *AttachmentUpdate {
	_u.mutation.SetExternal(v)
	return _u
}

// SetNillableExternal sets the "external" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableExternal(v *bool) *AttachmentUpdate {
	if v != nil {
		_u.SetExternal(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *AttachmentUpdate) SetURL(v string) *AttachmentUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableURL(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *AttachmentUpdate) ClearURL() *AttachmentUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *AttachmentUpdate) SetStoragePath(v string) *AttachmentUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableStoragePath(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// ClearStoragePath clears the value of the "storage_path" field.
func (_u *AttachmentUpdate) ClearStoragePath() *AttachmentUpdate {
	_u.mutation.ClearStoragePath()
	return _u
}

// SetSize sets the "size" field.
func (_u *AttachmentUpdate) SetSize(v int64) *AttachmentUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableSize(v *int64) *AttachmentUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *AttachmentUpdate) AddSize(v int64) *AttachmentUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// ClearSize clears the value of the "size" field.
func (_u *AttachmentUpdate) ClearSize() *AttachmentUpdate {
	_u.mutation.ClearSize()
	return _u
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdate) Mutation() *AttachmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttachmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttachmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := attachment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Attachment.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mime(); ok {
		if err := attachment.MimeValidator(v); err != nil {
			return &ValidationError{Name: "mime", err: fmt.Errorf(`repo: validator failed for field "Attachment.mime": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := attachment.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`repo: validator failed for field "Attachment.storage_path": %w`, err)}
		}
	}
	return nil
}

func (_u *AttachmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(attachment.FieldTaskID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(attachment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mime(); ok {
		_spec.SetField(attachment.FieldMime, field.TypeString, value)
	}
	if _u.mutation.MimeCleared() {
		_spec.ClearField(attachment.FieldMime, field.TypeString)
	}
	if value, ok := _u.mutation.External(); ok {
		_spec.SetField(attachment.FieldExternal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(attachment.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(attachment.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(attachment.FieldStoragePath, field.TypeString, value)
	}
	if _u.mutation.StoragePathCleared() {
		_spec.ClearField(attachment.FieldStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(attachment.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(attachment.FieldSize, field.TypeInt64, value)
	}
	if _u.mutation.SizeCleared() {
		_spec.ClearField(attachment.FieldSize, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttachmentUpdateOne is the builder for updating a single Attachment entity.
type AttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttachmentMutation
}

// SetTaskID sets the "task_id" field.
func (_u *AttachmentUpdateOne) SetTaskID(v uuid.UUID) *AttachmentUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableTaskID(v *uuid.UUID) *AttachmentUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AttachmentUpdateOne) SetName(v string) *AttachmentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableName(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMime sets the "mime" field.
func (_u *AttachmentUpdateOne) SetMime(v string) *AttachmentUpdateOne {
	_u.mutation.SetMime(v)
	return _u
}

// SetNillableMime sets the "mime" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableMime(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetMime(*v)
	}
	return _u
}

// ClearMime clears the value of the "mime" field.
func (_u *AttachmentUpdateOne) ClearMime() *AttachmentUpdateOne {
	_u.mutation.ClearMime()
	return _u
}

// SetExternal sets the "external" field.
func (_u *AttachmentUpdateOne) SetExternal(v bool) *AttachmentUpdateOne {
	_u.mutation.SetExternal(v)
	return _u
}

// SetNillableExternal sets the "external" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableExternal(v *bool) *AttachmentUpdateOne {
	if v != nil {
		_u.SetExternal(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *AttachmentUpdateOne) SetURL(v string) *AttachmentUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableURL(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *AttachmentUpdateOne) ClearURL() *AttachmentUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *AttachmentUpdateOne) SetStoragePath(v string) *AttachmentUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableStoragePath(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// ClearStoragePath clears the value of the "storage_path" field.
func (_u *AttachmentUpdateOne) ClearStoragePath() *AttachmentUpdateOne {
	_u.mutation.ClearStoragePath()
	return _u
}

// SetSize sets the "size" field.
func (_u *AttachmentUpdateOne) SetSize(v int64) *AttachmentUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableSize(v *int64) *AttachmentUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *AttachmentUpdateOne) AddSize(v int64) *AttachmentUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// ClearSize clears the value of the "size" field.
func (_u *AttachmentUpdateOne) ClearSize() *AttachmentUpdateOne {
	_u.mutation.ClearSize()
	return _u
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdateOne) Mutation() *AttachmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdateOne) Where(ps ...predicate.Attachment) *AttachmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttachmentUpdateOne) Select(field string, fields ...string) *AttachmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attachment entity.
func (_u *AttachmentUpdateOne) Save(ctx context.Context) (*Attachment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdateOne) SaveX(ctx context.Context) *Attachment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := attachment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Attachment.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mime(); ok {
		if err := attachment.MimeValidator(v); err != nil {
			return &ValidationError{Name: "mime", err: fmt.Errorf(`repo: validator failed for field "Attachment.mime": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := attachment.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`repo: validator failed for field "Attachment.storage_path": %w`, err)}
		}
	}
	return nil
}

func (_u *AttachmentUpdateOne) sqlSave(ctx context.Context) (_node *Attachment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Attachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attachment.FieldID)
		for _, f := range fields {
			if !attachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != attachment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(attachment.FieldTaskID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(attachment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mime(); ok {
		_spec.SetField(attachment.FieldMime, field.TypeString, value)
	}
	if _u.mutation.MimeCleared() {
		_spec.ClearField(attachment.FieldMime, field.TypeString)
	}
	if value, ok := _u.mutation.External(); ok {
		_spec.SetField(attachment.FieldExternal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(attachment.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(attachment.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(attachment.FieldStoragePath, field.TypeString, value)
	}
	if _u.mutation.StoragePathCleared() {
		_spec.ClearField(attachment.FieldStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(attachment.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(attachment.FieldSize, field.TypeInt64, value)
	}
	if _u.mutation.SizeCleared() {
		_spec.ClearField(attachment.FieldSize, field.TypeInt64)
	}
	_node = &Attachment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

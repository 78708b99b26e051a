// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck_backend/internal/repo/attachment"
)

// AttachmentCreate is the builder for creating a Attachment entity.
type AttachmentCreate struct {
	config
	mutation *AttachmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttachmentCreate) SetCreatedAt(v time.Time) *AttachmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableCreatedAt(v *time.Time) *AttachmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *AttachmentCreate) SetTaskID(v uuid.UUID) *AttachmentCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AttachmentCreate) SetName(v string) *AttachmentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMime sets the "mime" field.
func (_c *AttachmentCreate) SetMime(v string) *AttachmentCreate {
	_c.mutation.SetMime(v)
	return _c
}

// SetNillableMime sets the "mime" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableMime(v *string) *AttachmentCreate {
	if v != nil {
		_c.SetMime(*v)
	}
	return _c
}

// SetExternal sets the "external" field.
func (_c *AttachmentCreate) SetExternal(v bool) *AttachmentCreate {
	_c.mutation.SetExternal(v)
	return _c
}

// SetNillableExternal sets the "external" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableExternal(v *bool) *AttachmentCreate {
	if v != nil {
		_c.SetExternal(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *AttachmentCreate) SetURL(v string) *AttachmentCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableURL(v *string) *AttachmentCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *AttachmentCreate) SetStoragePath(v string) *AttachmentCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableStoragePath(v *string) *AttachmentCreate {
	if v != nil {
		_c.SetStoragePath(*v)
	}
	return _c
}

// SetSize sets the "size" field.
func (_c *AttachmentCreate) SetSize(v int64) *AttachmentCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableSize(v *int64) *AttachmentCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttachmentCreate) SetID(v uuid.UUID) *AttachmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableID(v *uuid.UUID) *AttachmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AttachmentMutation object of the builder.
func (_c *AttachmentCreate) Mutation() *AttachmentMutation {
	return _c.mutation
}

// Save creates the Attachment in the database.
func (_c *AttachmentCreate) Save(ctx context.Context) (*Attachment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttachmentCreate) SaveX(ctx context.Context) *Attachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttachmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attachment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Mime(); !ok {
		v := attachment.DefaultMime
		_c.mutation.SetMime(v)
	}
	if _, ok := _c.mutation.External(); !ok {
		v := attachment.DefaultExternal
		_c.mutation.SetExternal(v)
	}
	if _, ok := _c.mutation.URL(); !ok {
		v := attachment.DefaultURL
		_c.mutation.SetURL(v)
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		v := attachment.DefaultStoragePath
		_c.mutation.SetStoragePath(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attachment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttachmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Attachment.created_at"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`repo: missing required field "Attachment.task_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Attachment.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := attachment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Attachment.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Mime(); ok {
		if err := attachment.MimeValidator(v); err != nil {
			return &ValidationError{Name: "mime", err: fmt.Errorf(`repo: validator failed for field "Attachment.mime": %w`, err)}
		}
	}
	if _, ok := _c.mutation.External(); !ok {
		return &ValidationError{Name: "external", err: errors.New(`repo: missing required field "Attachment.external"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := attachment.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`repo: validator failed for field "Attachment.storage_path": %w`, err)}
		}
	}
	return nil
}

func (_c *AttachmentCreate) sqlSave(ctx context.Context) (*Attachment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttachmentCreate) createSpec() (*Attachment, *sqlgraph.CreateSpec) {
	var (
		_node = &Attachment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attachment.Table, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attachment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(attachment.FieldTaskID, field.TypeUUID, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(attachment.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Mime(); ok {
		_spec.SetField(attachment.FieldMime, field.TypeString, value)
		_node.Mime = value
	}
	if value, ok := _c.mutation.External(); ok {
		_spec.SetField(attachment.FieldExternal, field.TypeBool, value)
		_node.External = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(attachment.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(attachment.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(attachment.FieldSize, field.TypeInt64, value)
		_node.Size = &value
	}
	return _node, _spec
}

// AttachmentCreateBulk is the builder for creating many Attachment entities in bulk.
type AttachmentCreateBulk struct {
	config
	err      error
	builders []*AttachmentCreate
}

// Save creates the Attachment entities in the database.
func (_c *AttachmentCreateBulk) Save(ctx context.Context) ([]*Attachment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attachment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttachmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttachmentCreateBulk) SaveX(ctx context.Context) []*Attachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Attachment is a file or external link attached to a Task. Exactly one of
// {storage_path, url-with-external=true} carries the payload reference.
type Attachment struct {
	ent.Schema
}

func (Attachment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Attachment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("task_id", uuid.UUID{}).
			Comment("FK → tasks.id"),

		field.String("name").
			MaxLen(255),

		field.String("mime").
			MaxLen(100).
			Optional().
			Default(""),

		field.Bool("external").
			Default(false),

		field.Text("url").
			Optional().
			Default("").
			Comment("external link target, or last issued download URL for stored blobs"),

		field.String("storage_path").
			MaxLen(500).
			Optional().
			Default("").
			Comment("blob store key, needed for cascade delete"),

		field.Int64("size").
			Optional().
			Nillable(),
	}
}

func (Attachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
	}
}

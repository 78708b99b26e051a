package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Task is a tracked work item.
type Task struct {
	ent.Schema
}

func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.Text("details").
			Optional().
			Default(""),

		field.UUID("assigned_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → employees.id (weak reference)"),

		field.String("assigned_name").
			MaxLen(255).
			Optional().
			Default("").
			Comment("denormalized employee name snapshot, taken at assignment time"),

		field.Time("deadline").
			Optional().
			Nillable(),

		field.Enum("status").
			NamedValues(
				"Open", "Open",
				"InProgress", "In-progress",
				"WaitingClient", "Waiting client",
				"Closed", "Closed",
			).
			Default("Open"),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("assigned_id", "status"),
	}
}

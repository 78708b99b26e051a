package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Employee is an assignable directory entry. Append-only: entries are never
// renamed or deleted through the API.
type Employee struct {
	ent.Schema
}

func (Employee) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Employee) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("name_lower").
			MaxLen(255).
			Comment("lowercased name for case-insensitive duplicate checks"),
	}
}

func (Employee) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name_lower").Unique(),
		index.Fields("name"),
	}
}

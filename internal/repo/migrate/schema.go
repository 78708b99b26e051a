// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "mime", Type: field.TypeString, Nullable: true, Size: 100, Default: ""},
		{Name: "external", Type: field.TypeBool, Default: false},
		{Name: "url", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "storage_path", Type: field.TypeString, Nullable: true, Size: 500, Default: ""},
		{Name: "size", Type: field.TypeInt64, Nullable: true},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_task_id",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[2]},
			},
		},
	}
	// EmployeesColumns holds the columns for the "employees" table.
	EmployeesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "name_lower", Type: field.TypeString, Size: 255},
	}
	// EmployeesTable holds the schema information for the "employees" table.
	EmployeesTable = &schema.Table{
		Name:       "employees",
		Columns:    EmployeesColumns,
		PrimaryKey: []*schema.Column{EmployeesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "employee_name_lower",
				Unique:  true,
				Columns: []*schema.Column{EmployeesColumns[3]},
			},
			{
				Name:    "employee_name",
				Unique:  false,
				Columns: []*schema.Column{EmployeesColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "details", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "assigned_id", Type: field.TypeUUID, Nullable: true},
		{Name: "assigned_name", Type: field.TypeString, Nullable: true, Size: 255, Default: ""},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"Open", "In-progress", "Waiting client", "Closed"}, Default: "Open"},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_assigned_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttachmentsTable,
		EmployeesTable,
		TasksTable,
	}
)

func init() {
}

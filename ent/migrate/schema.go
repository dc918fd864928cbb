// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerLogsColumns holds the columns for the "answer_logs" table.
	AnswerLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "outcome", Type: field.TypeString},
	}
	// AnswerLogsTable holds the schema information for the "answer_logs" table.
	AnswerLogsTable = &schema.Table{
		Name:       "answer_logs",
		Columns:    AnswerLogsColumns,
		PrimaryKey: []*schema.Column{AnswerLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerlog_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerLogsColumns[1]},
			},
			{
				Name:    "answerlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerLogsColumns[2]},
			},
			{
				Name:    "answerlog_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerLogsColumns[3]},
			},
			{
				Name:    "answerlog_category",
				Unique:  false,
				Columns: []*schema.Column{AnswerLogsColumns[6]},
			},
		},
	}
	// SessionLogsColumns holds the columns for the "session_logs" table.
	SessionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "completed", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "max_streak", Type: field.TypeInt, Default: 0},
		{Name: "points", Type: field.TypeFloat64, Default: 0},
		{Name: "time_spent", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionLogsTable holds the schema information for the "session_logs" table.
	SessionLogsTable = &schema.Table{
		Name:       "session_logs",
		Columns:    SessionLogsColumns,
		PrimaryKey: []*schema.Column{SessionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionlog_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[1]},
			},
			{
				Name:    "sessionlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[2]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerLogsTable,
		SessionLogsTable,
		SnapshotsTable,
	}
)

func init() {
}

// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Alert struct {
		ID, Title, Content, Date, IsNewAlert, Active string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Alert: struct {
		ID, Title, Content, Date, IsNewAlert, Active string
	}{
		ID:         "alertId",
		Title:      "title",
		Content:    "content",
		Date:       "date",
		IsNewAlert: "isNewAlert",
		Active:     "active",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Alert struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Alert: struct {
		Name, Alias string
	}{
		Name:  "alerts",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Alert struct {
	tableName struct{} `pg:"alerts,alias:t,discard_unknown_columns"`

	ID         int       `pg:"alertId,pk"`
	Title      string    `pg:"title,use_zero"`
	Content    string    `pg:"content,use_zero"`
	Date       time.Time `pg:"date,use_zero"`
	IsNewAlert bool      `pg:"isNewAlert,use_zero"`
	Active     bool      `pg:"active,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

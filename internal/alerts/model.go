package alerts

import (
	"time"

	"github.com/acsess/dept-portal/internal/db"
)

type Alert struct {
	db.Alert
}

// AlertDraft carries the mutable fields of an alert as submitted by a
// client. Date, IsNewAlert and Active are optional; Create and Update
// apply the defaults described on Manager.
type AlertDraft struct {
	Title      string `validate:"required,max=60"`
	Content    string `validate:"required,max=200"`
	Date       *time.Time
	IsNewAlert *bool
	Active     *bool
}

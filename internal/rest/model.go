package rest

import "time"

// Alert is the wire representation of an alert record.
type Alert struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Date       time.Time `json:"date"`
	IsNewAlert bool      `json:"isNewAlert"`
	Active     bool      `json:"active"`
}

// AlertRequest is the create/update body. IsNewAlert and Active default
// to true when omitted; an omitted date means "now" on create and
// "keep the stored date" on update.
type AlertRequest struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Date       *time.Time `json:"date,omitempty"`
	IsNewAlert *bool      `json:"isNewAlert,omitempty"`
	Active     *bool      `json:"active,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AlertsFilter is the optional query filter for the list endpoint,
// decoded with urlstruct.
type AlertsFilter struct {
	Active *bool
	Limit  int
}

// Response is the uniform envelope every API operation returns.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

package rest

import "github.com/acsess/dept-portal/internal/alerts"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewAlert(a alerts.Alert) Alert {
	return Alert{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		Date:       a.Date,
		IsNewAlert: a.IsNewAlert,
		Active:     a.Active,
	}
}

func NewAlerts(list []alerts.Alert) []Alert {
	return Map(list, NewAlert)
}

func (r AlertRequest) ToDraft() alerts.AlertDraft {
	return alerts.AlertDraft{
		Title:      r.Title,
		Content:    r.Content,
		Date:       r.Date,
		IsNewAlert: r.IsNewAlert,
		Active:     r.Active,
	}
}

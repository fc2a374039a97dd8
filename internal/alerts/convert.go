package alerts

import "github.com/acsess/dept-portal/internal/db"

func NewAlert(a *db.Alert) Alert {
	return Alert{Alert: *a}
}

func NewAlerts(list []db.Alert) []Alert {
	result := make([]Alert, len(list))
	for i := range list {
		result[i] = NewAlert(&list[i])
	}
	return result
}

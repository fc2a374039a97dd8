package alerts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/acsess/dept-portal/internal/db"
)

// RecentLimit is how many active alerts the homepage shows.
const RecentLimit = 3

var validate = validator.New()

// Store is the persistence contract the manager operates on.
// *db.Repository is the production implementation.
type Store interface {
	Alerts(ctx context.Context) ([]db.Alert, error)
	AlertByID(ctx context.Context, alertID int) (*db.Alert, error)
	CreateAlert(ctx context.Context, alert *db.Alert) error
	UpdateAlert(ctx context.Context, alert *db.Alert) (bool, error)
	DeleteAlert(ctx context.Context, alertID int) (bool, error)
}

type Manager struct {
	db Store
}

func NewAlertManager(store Store) *Manager {
	return &Manager{
		db: store,
	}
}

// Alerts returns all alerts, newest first.
func (m *Manager) Alerts(ctx context.Context) ([]Alert, error) {
	dbAlerts, err := m.db.Alerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get alerts: %w", err)
	}

	return NewAlerts(dbAlerts), nil
}

func (m *Manager) AlertByID(ctx context.Context, alertID int) (*Alert, error) {
	dbAlert, err := m.db.AlertByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("db get alert by id: %w", err)
	} else if dbAlert == nil {
		return nil, ErrNotFound
	}

	alert := NewAlert(dbAlert)
	return &alert, nil
}

// Create validates the draft and persists a new alert. Date defaults to
// the creation time, IsNewAlert and Active default to true.
func (m *Manager) Create(ctx context.Context, draft AlertDraft) (*Alert, error) {
	if err := validate.StructCtx(ctx, draft); err != nil {
		return nil, newValidationError(err)
	}

	dbAlert := db.Alert{
		Title:      draft.Title,
		Content:    draft.Content,
		Date:       time.Now(),
		IsNewAlert: true,
		Active:     true,
	}
	if draft.Date != nil {
		dbAlert.Date = *draft.Date
	}
	if draft.IsNewAlert != nil {
		dbAlert.IsNewAlert = *draft.IsNewAlert
	}
	if draft.Active != nil {
		dbAlert.Active = *draft.Active
	}

	if err := m.db.CreateAlert(ctx, &dbAlert); err != nil {
		return nil, fmt.Errorf("db create alert: %w", err)
	}

	alert := NewAlert(&dbAlert)
	return &alert, nil
}

// Update replaces the mutable fields of the identified alert. Title and
// content are required; IsNewAlert and Active default to true when
// omitted; an omitted Date preserves the stored one.
func (m *Manager) Update(ctx context.Context, alertID int, draft AlertDraft) (*Alert, error) {
	if err := validate.StructCtx(ctx, draft); err != nil {
		return nil, newValidationError(err)
	}

	existing, err := m.db.AlertByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("db get alert by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	dbAlert := db.Alert{
		ID:         alertID,
		Title:      draft.Title,
		Content:    draft.Content,
		Date:       existing.Date,
		IsNewAlert: true,
		Active:     true,
	}
	if draft.Date != nil {
		dbAlert.Date = *draft.Date
	}
	if draft.IsNewAlert != nil {
		dbAlert.IsNewAlert = *draft.IsNewAlert
	}
	if draft.Active != nil {
		dbAlert.Active = *draft.Active
	}

	updated, err := m.db.UpdateAlert(ctx, &dbAlert)
	if err != nil {
		return nil, fmt.Errorf("db update alert: %w", err)
	} else if !updated {
		return nil, ErrNotFound
	}

	alert := NewAlert(&dbAlert)
	return &alert, nil
}

func (m *Manager) Delete(ctx context.Context, alertID int) error {
	deleted, err := m.db.DeleteAlert(ctx, alertID)
	if err != nil {
		return fmt.Errorf("db delete alert: %w", err)
	} else if !deleted {
		return ErrNotFound
	}

	return nil
}

// Recent returns the limit most recent active alerts, sorted by date
// DESC with id DESC as the tie-break.
func (m *Manager) Recent(ctx context.Context, limit int) ([]Alert, error) {
	if limit <= 0 {
		limit = RecentLimit
	}

	dbAlerts, err := m.db.Alerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get alerts: %w", err)
	}

	active := make([]db.Alert, 0, len(dbAlerts))
	for _, a := range dbAlerts {
		if a.Active {
			active = append(active, a)
		}
	}

	sort.Slice(active, func(i, j int) bool {
		if !active[i].Date.Equal(active[j].Date) {
			return active[i].Date.After(active[j].Date)
		}
		return active[i].ID > active[j].ID
	})

	if len(active) > limit {
		active = active[:limit]
	}

	return NewAlerts(active), nil
}

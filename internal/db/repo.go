package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Alerts retrieves all alerts sorted by date DESC, id DESC
func (r *Repository) Alerts(ctx context.Context) ([]Alert, error) {
	var alerts []Alert
	err := r.db.ModelContext(ctx, &alerts).
		OrderExpr(`"t"."date" DESC`).
		OrderExpr(`"t"."alertId" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}

	return alerts, nil
}

// AlertByID returns the alert with the given id, or nil when it does not exist
func (r *Repository) AlertByID(ctx context.Context, alertID int) (*Alert, error) {
	alert := &Alert{}
	err := r.db.ModelContext(ctx, alert).
		Where(`"t"."alertId" = ?`, alertID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}

	return alert, nil
}

// CreateAlert inserts the alert and fills in the store-assigned id
func (r *Repository) CreateAlert(ctx context.Context, alert *Alert) error {
	_, err := r.db.ModelContext(ctx, alert).
		Returning("*").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}

	return nil
}

// UpdateAlert replaces every mutable column of the identified alert.
// Returns false when the id does not exist.
func (r *Repository) UpdateAlert(ctx context.Context, alert *Alert) (bool, error) {
	res, err := r.db.ModelContext(ctx, alert).
		WherePK().
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update alert: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// DeleteAlert removes the alert. Returns false when the id does not exist.
func (r *Repository) DeleteAlert(ctx context.Context, alertID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Alert)(nil)).
		Where(`"t"."alertId" = ?`, alertID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete alert: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

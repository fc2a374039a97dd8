package alerts

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acsess/dept-portal/internal/db"
)

// fakeStore is an in-memory Store implementation for manager tests
type fakeStore struct {
	alerts []db.Alert
	nextID int
	err    error
}

func newFakeStore(alerts ...db.Alert) *fakeStore {
	maxID := 0
	for _, a := range alerts {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return &fakeStore{alerts: alerts, nextID: maxID + 1}
}

func (s *fakeStore) Alerts(ctx context.Context) ([]db.Alert, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]db.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out, nil
}

func (s *fakeStore) AlertByID(ctx context.Context, alertID int) (*db.Alert, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.alerts {
		if s.alerts[i].ID == alertID {
			a := s.alerts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) CreateAlert(ctx context.Context, alert *db.Alert) error {
	if s.err != nil {
		return s.err
	}
	alert.ID = s.nextID
	s.nextID++
	s.alerts = append(s.alerts, *alert)
	return nil
}

func (s *fakeStore) UpdateAlert(ctx context.Context, alert *db.Alert) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for i := range s.alerts {
		if s.alerts[i].ID == alert.ID {
			s.alerts[i] = *alert
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) DeleteAlert(ctx context.Context, alertID int) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for i := range s.alerts {
		if s.alerts[i].ID == alertID {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

func TestManager_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsApplied", func(t *testing.T) {
		store := newFakeStore()
		m := NewAlertManager(store)

		before := time.Now()
		created, err := m.Create(ctx, AlertDraft{Title: "Exam schedule", Content: "Posted on the board."})
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Equal(t, "Exam schedule", created.Title)
		assert.Equal(t, "Posted on the board.", created.Content)
		assert.True(t, created.IsNewAlert)
		assert.True(t, created.Active)
		assert.False(t, created.Date.Before(before))

		got, err := m.AlertByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Title, got.Title)
		assert.Equal(t, created.Content, got.Content)
		assert.True(t, created.Date.Equal(got.Date))
	})

	t.Run("ExplicitFields", func(t *testing.T) {
		store := newFakeStore()
		m := NewAlertManager(store)

		date := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
		created, err := m.Create(ctx, AlertDraft{
			Title:      "Archived notice",
			Content:    "Kept hidden.",
			Date:       timePtr(date),
			IsNewAlert: boolPtr(false),
			Active:     boolPtr(false),
		})
		require.NoError(t, err)
		assert.True(t, created.Date.Equal(date))
		assert.False(t, created.IsNewAlert)
		assert.False(t, created.Active)
	})

	t.Run("ValidationRejected", func(t *testing.T) {
		tests := []struct {
			name    string
			draft   AlertDraft
			message string
		}{
			{"EmptyTitle", AlertDraft{Content: "c"}, "Please provide a title"},
			{"EmptyContent", AlertDraft{Title: "t"}, "Please provide content"},
			{"TitleTooLong", AlertDraft{Title: strings.Repeat("a", 61), Content: "c"}, "Title cannot be more than 60 characters"},
			{"ContentTooLong", AlertDraft{Title: "t", Content: strings.Repeat("a", 201)}, "Content cannot be more than 200 characters"},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				store := newFakeStore()
				m := NewAlertManager(store)

				_, err := m.Create(ctx, tc.draft)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Error(), tc.message)
				assert.Empty(t, store.alerts, "nothing may be persisted on validation failure")
			})
		}
	})

	t.Run("BoundaryLengthsAccepted", func(t *testing.T) {
		store := newFakeStore()
		m := NewAlertManager(store)

		_, err := m.Create(ctx, AlertDraft{
			Title:   strings.Repeat("a", 60),
			Content: strings.Repeat("b", 200),
		})
		require.NoError(t, err)
	})
}

func TestManager_Update(t *testing.T) {
	ctx := context.Background()
	origDate := time.Date(2025, 1, 20, 8, 0, 0, 0, time.UTC)

	seed := func() (*fakeStore, *Manager) {
		store := newFakeStore(db.Alert{
			ID: 1, Title: "Old", Content: "Old content", Date: origDate,
			IsNewAlert: false, Active: false,
		})
		return store, NewAlertManager(store)
	}

	t.Run("FullReplacement", func(t *testing.T) {
		_, m := seed()

		updated, err := m.Update(ctx, 1, AlertDraft{
			Title:      "New",
			Content:    "New content",
			IsNewAlert: boolPtr(false),
			Active:     boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.ID)
		assert.Equal(t, "New", updated.Title)
		assert.False(t, updated.IsNewAlert)
		assert.True(t, updated.Active)
		assert.True(t, updated.Date.Equal(origDate), "omitted date preserves the stored one")

		got, err := m.AlertByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, "New content", got.Content)
	})

	t.Run("OmittedFlagsResetToDefault", func(t *testing.T) {
		_, m := seed()

		updated, err := m.Update(ctx, 1, AlertDraft{Title: "New", Content: "New content"})
		require.NoError(t, err)
		assert.True(t, updated.IsNewAlert)
		assert.True(t, updated.Active)
	})

	t.Run("ExplicitDate", func(t *testing.T) {
		_, m := seed()

		date := origDate.Add(48 * time.Hour)
		updated, err := m.Update(ctx, 1, AlertDraft{Title: "New", Content: "New content", Date: timePtr(date)})
		require.NoError(t, err)
		assert.True(t, updated.Date.Equal(date))
	})

	t.Run("NotFound", func(t *testing.T) {
		store, m := seed()

		_, err := m.Update(ctx, 42, AlertDraft{Title: "New", Content: "New content"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, "Old", store.alerts[0].Title, "store must be unchanged")
	})

	t.Run("ValidationRejected", func(t *testing.T) {
		store, m := seed()

		_, err := m.Update(ctx, 1, AlertDraft{Title: strings.Repeat("a", 61), Content: "c"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Old", store.alerts[0].Title, "store must be unchanged")
	})
}

func TestManager_Delete(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(db.Alert{ID: 1, Title: "t", Content: "c", Date: time.Now(), Active: true})
	m := NewAlertManager(store)

	require.NoError(t, m.Delete(ctx, 1))
	assert.Empty(t, store.alerts)

	// deleting an already-deleted id reports not found, not a crash
	assert.ErrorIs(t, m.Delete(ctx, 1), ErrNotFound)
}

func TestManager_Recent(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("FiltersInactiveAndSorts", func(t *testing.T) {
		d1 := base
		d2 := base.Add(time.Hour)
		d3 := base.Add(2 * time.Hour)
		store := newFakeStore(
			db.Alert{ID: 1, Title: "a1", Content: "c", Date: d1, Active: true},
			db.Alert{ID: 2, Title: "a2", Content: "c", Date: d2, Active: false},
			db.Alert{ID: 3, Title: "a3", Content: "c", Date: d3, Active: true},
		)
		m := NewAlertManager(store)

		recent, err := m.Recent(ctx, RecentLimit)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, 3, recent[0].ID)
		assert.Equal(t, 1, recent[1].ID)
	})

	t.Run("CapsAtLimit", func(t *testing.T) {
		store := newFakeStore(
			db.Alert{ID: 1, Title: "a", Content: "c", Date: base.Add(1 * time.Hour), Active: true},
			db.Alert{ID: 2, Title: "b", Content: "c", Date: base.Add(2 * time.Hour), Active: true},
			db.Alert{ID: 3, Title: "c", Content: "c", Date: base.Add(3 * time.Hour), Active: true},
			db.Alert{ID: 4, Title: "d", Content: "c", Date: base.Add(4 * time.Hour), Active: true},
			db.Alert{ID: 5, Title: "e", Content: "c", Date: base.Add(5 * time.Hour), Active: true},
		)
		m := NewAlertManager(store)

		recent, err := m.Recent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, recent, 3)
		assert.Equal(t, 5, recent[0].ID)
		assert.Equal(t, 4, recent[1].ID)
		assert.Equal(t, 3, recent[2].ID)
	})

	t.Run("EqualDatesTieBreakByIDDesc", func(t *testing.T) {
		store := newFakeStore(
			db.Alert{ID: 1, Title: "a", Content: "c", Date: base, Active: true},
			db.Alert{ID: 2, Title: "b", Content: "c", Date: base, Active: true},
		)
		m := NewAlertManager(store)

		recent, err := m.Recent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, 2, recent[0].ID)
		assert.Equal(t, 1, recent[1].ID)
	})

	t.Run("StoreError", func(t *testing.T) {
		store := newFakeStore()
		store.err = errors.New("connection refused")
		m := NewAlertManager(store)

		_, err := m.Recent(ctx, 3)
		assert.Error(t, err)
	})
}

package order_test

import (
	"testing"
	"time"

	"tehnoplast/internal/core/domain/model/order"
	"tehnoplast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.StatusInProgress))
		assert.Equal(t, 2, int(order.StatusUrgent))
		assert.Equal(t, 3, int(order.StatusInvoiced))
		assert.Equal(t, 4, int(order.StatusOverdue))
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.StatusUnknown, "Unknown"},
		{order.StatusInProgress, "InProgress"},
		{order.StatusUrgent, "Urgent"},
		{order.StatusInvoiced, "Invoiced"},
		{order.StatusOverdue, "Overdue"},
		{order.Status(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run("should return "+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusInProgress, order.StatusUrgent, order.StatusInvoiced, order.StatusOverdue,
		} {
			assert.NoError(t, status.Validate())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeriveStatus(t *testing.T) {
	today := time.Date(2026, 3, 16, 9, 30, 0, 0, time.UTC)
	date := func(day int) time.Time {
		return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		deliveryDate time.Time
		hasInvoice   bool
		want         order.Status
	}{
		{"overdue when delivery date has passed", date(15), false, order.StatusOverdue},
		{"overdue wins over invoice", date(15), true, order.StatusOverdue},
		{"invoiced when invoice exists and not overdue", date(25), true, order.StatusInvoiced},
		{"invoiced wins over urgent", date(17), true, order.StatusInvoiced},
		{"urgent when delivery is today", date(16), false, order.StatusUrgent},
		{"urgent when delivery is in three days", date(19), false, order.StatusUrgent},
		{"in progress when delivery is in four days", date(20), false, order.StatusInProgress},
		{"in progress when delivery is far away", date(31), false, order.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run("should be "+tt.name, func(t *testing.T) {
			got := order.DeriveStatus(tt.deliveryDate, today, tt.hasInvoice)

			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should ignore time of day", func(t *testing.T) {
		lateToday := time.Date(2026, 3, 16, 23, 59, 0, 0, time.UTC)
		delivery := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, order.StatusUrgent, order.DeriveStatus(delivery, lateToday, false))
	})
}

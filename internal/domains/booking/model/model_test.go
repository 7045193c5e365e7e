package model_test

import (
	"phoenix/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{name: "pending", status: model.StatusPending, want: "warning"},
		{name: "confirmed", status: model.StatusConfirmed, want: "info"},
		{name: "checked in", status: model.StatusCheckedIn, want: "success"},
		{name: "checked out", status: model.StatusCheckedOut, want: "default"},
		{name: "cancelled", status: model.StatusCancelled, want: "danger"},
		{name: "unknown status", status: "no_show", want: "default"},
		{name: "empty status", status: "", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.StatusBadge(tt.status))
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    int
	}{
		{name: "three nights", booking: model.Booking{CheckIn: "2026-09-01", CheckOut: "2026-09-04"}, want: 3},
		{name: "same day", booking: model.Booking{CheckIn: "2026-09-01", CheckOut: "2026-09-01"}, want: 0},
		{name: "inverted range", booking: model.Booking{CheckIn: "2026-09-04", CheckOut: "2026-09-01"}, want: 0},
		{name: "garbage check-in", booking: model.Booking{CheckIn: "soon", CheckOut: "2026-09-01"}, want: 0},
		{name: "garbage check-out", booking: model.Booking{CheckIn: "2026-09-01", CheckOut: "later"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.Nights())
		})
	}
}

func TestCancellable(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: model.StatusPending, want: true},
		{status: model.StatusConfirmed, want: true},
		{status: model.StatusCheckedIn, want: false},
		{status: model.StatusCheckedOut, want: false},
		{status: model.StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			booking := model.Booking{Status: tt.status}
			assert.Equal(t, tt.want, booking.Cancellable())
		})
	}
}

func bookingFixtures() []model.Booking {
	return []model.Booking{
		{ID: "b-1", Status: model.StatusPending, TotalPrice: 120},
		{ID: "b-2", Status: model.StatusConfirmed, TotalPrice: 250},
		{ID: "b-3", Status: model.StatusCheckedIn, TotalPrice: 400},
		{ID: "b-4", Status: model.StatusCancelled, TotalPrice: 90},
	}
}

func TestFilterByStatus(t *testing.T) {
	t.Run("empty status returns everything", func(t *testing.T) {
		got := model.FilterByStatus(bookingFixtures(), "")
		assert.Len(t, got, 4)
	})

	t.Run("narrows to matching status", func(t *testing.T) {
		got := model.FilterByStatus(bookingFixtures(), model.StatusConfirmed)

		assert.Len(t, got, 1)
		assert.Equal(t, "b-2", got[0].ID)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := model.FilterByStatus(bookingFixtures(), model.StatusPending)
		twice := model.FilterByStatus(once, model.StatusPending)

		assert.Equal(t, once, twice)
	})
}

func TestSummarize(t *testing.T) {
	summary := model.Summarize(bookingFixtures())

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.Pending)
	assert.Equal(t, 1, summary.Confirmed)
	assert.Equal(t, 1, summary.CheckedIn)
	assert.Equal(t, 0, summary.CheckedOut)
	assert.Equal(t, 1, summary.Cancelled)
	assert.InDelta(t, 770.0, summary.Revenue, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, model.DeskSummary{}, model.Summarize(nil))
}

func TestSummarizeDay(t *testing.T) {
	today := "2026-03-14"

	bookings := []model.Booking{
		{ID: "b-1", Status: model.StatusConfirmed, CheckIn: today, CheckOut: "2026-03-16"},
		{ID: "b-2", Status: model.StatusPending, CheckIn: today, CheckOut: "2026-03-15"},
		{ID: "b-3", Status: model.StatusCheckedIn, CheckIn: "2026-03-12", CheckOut: today},
		{ID: "b-4", Status: model.StatusCancelled, CheckIn: today, CheckOut: today},
		{ID: "b-5", Status: model.StatusCheckedOut, CheckIn: "2026-03-10", CheckOut: today},
	}

	summary := model.SummarizeDay(bookings, today)

	assert.Equal(t, 2, summary.CheckInsToday)
	assert.Equal(t, 1, summary.CheckOutsToday)
	assert.Equal(t, 5, summary.Total)
}

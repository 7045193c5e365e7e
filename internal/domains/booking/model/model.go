package model

import (
	"time"
)

const (
	EntityName = "booking"

	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// Booking mirrors the backend record. The status transition graph lives
// server-side; the gateway only sends intent and re-renders what comes back.
type Booking struct {
	ID         string    `json:"id"`
	User       string    `json:"user"`
	UserEmail  string    `json:"user_email"`
	Hotel      string    `json:"hotel"`
	HotelName  string    `json:"hotel_name"`
	Room       string    `json:"room"`
	RoomNumber string    `json:"room_number"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Guests     int       `json:"guests"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// Nights returns the stay length, zero when either date fails to parse or
// the range is inverted.
func (b Booking) Nights() int {
	checkIn, err := time.Parse(time.DateOnly, b.CheckIn)
	if err != nil {
		return 0
	}

	checkOut, err := time.Parse(time.DateOnly, b.CheckOut)
	if err != nil {
		return 0
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 0 {
		return 0
	}

	return nights
}

// Cancellable reports whether the list view should offer the cancel action.
// The backend still decides; this only hides buttons that would always fail.
func (b Booking) Cancellable() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// StatusBadge maps a booking status to a badge tone. Total over any input.
func StatusBadge(status string) string {
	switch status {
	case StatusPending:
		return "warning"
	case StatusConfirmed:
		return "info"
	case StatusCheckedIn:
		return "success"
	case StatusCheckedOut:
		return "default"
	case StatusCancelled:
		return "danger"
	default:
		return "default"
	}
}

// FilterByStatus narrows an already-fetched booking list. Empty status
// returns the input unchanged.
func FilterByStatus(bookings []Booking, status string) []Booking {
	if status == "" {
		return bookings
	}

	filtered := make([]Booking, 0, len(bookings))

	for _, booking := range bookings {
		if booking.Status == status {
			filtered = append(filtered, booking)
		}
	}

	return filtered
}

// DeskSummary aggregates a loaded booking list into the counters the staff
// dashboard shows. Single pass, no backend call.
type DeskSummary struct {
	Total          int
	Pending        int
	Confirmed      int
	CheckedIn      int
	CheckedOut     int
	Cancelled      int
	CheckInsToday  int
	CheckOutsToday int
	Revenue        float64
}

func Summarize(bookings []Booking) DeskSummary {
	summary := DeskSummary{Total: len(bookings)}

	for _, booking := range bookings {
		switch booking.Status {
		case StatusPending:
			summary.Pending++
		case StatusConfirmed:
			summary.Confirmed++
		case StatusCheckedIn:
			summary.CheckedIn++
		case StatusCheckedOut:
			summary.CheckedOut++
		case StatusCancelled:
			summary.Cancelled++
		}

		if booking.Status != StatusCancelled {
			summary.Revenue += booking.TotalPrice
		}
	}

	return summary
}

// SummarizeDay adds the day-relative desk counts: arrivals still due in
// and departures still due out on the given date (DateOnly format).
func SummarizeDay(bookings []Booking, today string) DeskSummary {
	summary := Summarize(bookings)

	for _, booking := range bookings {
		if booking.CheckIn == today && (booking.Status == StatusPending || booking.Status == StatusConfirmed) {
			summary.CheckInsToday++
		}

		if booking.CheckOut == today && booking.Status == StatusCheckedIn {
			summary.CheckOutsToday++
		}
	}

	return summary
}

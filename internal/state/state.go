package state

import (
	"slices"
	"time"

	bookingModel "phoenix/internal/domains/booking/model"
	hotelModel "phoenix/internal/domains/hotel/model"
	userModel "phoenix/internal/domains/user/model"
)

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationInfo    = "info"
)

// Notification is a one-shot flash message drained on the next page render.
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// VerifyEmail tracks the pending OTP flow between registration and
// verification. ResendAfter gates the resend button.
type VerifyEmail struct {
	Email       string    `json:"email,omitempty"`
	ResendAfter time.Time `json:"resend_after,omitempty"`
}

// Snapshot is everything the gateway remembers about a visitor between
// requests. It mutates only through Apply, and only after a backend call
// succeeded, never speculatively.
type Snapshot struct {
	User          *userModel.User        `json:"user,omitempty"`
	Token         string                 `json:"token,omitempty"`
	Hotels        []hotelModel.Hotel     `json:"hotels,omitempty"`
	Bookings      []bookingModel.Booking `json:"bookings,omitempty"`
	Notifications []Notification         `json:"notifications,omitempty"`
	VerifyEmail   VerifyEmail            `json:"verify_email,omitempty"`
}

func (s Snapshot) SignedIn() bool {
	return s.Token != "" && s.User != nil
}

func (s Snapshot) Role() string {
	if s.User == nil {
		return ""
	}

	return s.User.Role
}

// Action is a tagged change to a Snapshot.
type Action interface {
	isAction()
}

type LoggedIn struct {
	User  userModel.User
	Token string
}

type LoggedOut struct{}

type HotelsLoaded struct {
	Hotels []hotelModel.Hotel
}

type HotelAdded struct {
	Hotel hotelModel.Hotel
}

type HotelRemoved struct {
	ID string
}

type BookingsLoaded struct {
	Bookings []bookingModel.Booking
}

type BookingAdded struct {
	Booking bookingModel.Booking
}

type BookingUpdated struct {
	Booking bookingModel.Booking
}

type BookingRemoved struct {
	ID string
}

type NotificationPushed struct {
	Notification Notification
}

type NotificationsDrained struct{}

type VerifyEmailStarted struct {
	Email       string
	ResendAfter time.Time
}

func (LoggedIn) isAction()             {}
func (LoggedOut) isAction()            {}
func (HotelsLoaded) isAction()         {}
func (HotelAdded) isAction()           {}
func (HotelRemoved) isAction()         {}
func (BookingsLoaded) isAction()       {}
func (BookingAdded) isAction()         {}
func (BookingUpdated) isAction()       {}
func (BookingRemoved) isAction()       {}
func (NotificationPushed) isAction()   {}
func (NotificationsDrained) isAction() {}
func (VerifyEmailStarted) isAction()   {}

// Apply folds one action into a snapshot. Pure: the input snapshot and its
// slices are never mutated. Total: a nil or unrecognized action returns the
// input unchanged.
func Apply(s Snapshot, action Action) Snapshot {
	switch act := action.(type) {
	case LoggedIn:
		user := act.User
		s.User = &user
		s.Token = act.Token
		s.VerifyEmail = VerifyEmail{}

		return s
	case LoggedOut:
		return Snapshot{Notifications: slices.Clone(s.Notifications)}
	case HotelsLoaded:
		s.Hotels = slices.Clone(act.Hotels)

		return s
	case HotelAdded:
		s.Hotels = append(slices.Clone(s.Hotels), act.Hotel)

		return s
	case HotelRemoved:
		s.Hotels = slices.DeleteFunc(slices.Clone(s.Hotels), func(h hotelModel.Hotel) bool {
			return h.ID == act.ID
		})

		return s
	case BookingsLoaded:
		s.Bookings = slices.Clone(act.Bookings)

		return s
	case BookingAdded:
		s.Bookings = append(slices.Clone(s.Bookings), act.Booking)

		return s
	case BookingUpdated:
		bookings := slices.Clone(s.Bookings)
		for i, booking := range bookings {
			if booking.ID == act.Booking.ID {
				bookings[i] = act.Booking
			}
		}

		s.Bookings = bookings

		return s
	case BookingRemoved:
		s.Bookings = slices.DeleteFunc(slices.Clone(s.Bookings), func(b bookingModel.Booking) bool {
			return b.ID == act.ID
		})

		return s
	case NotificationPushed:
		s.Notifications = append(slices.Clone(s.Notifications), act.Notification)

		return s
	case NotificationsDrained:
		s.Notifications = nil

		return s
	case VerifyEmailStarted:
		s.VerifyEmail = VerifyEmail{
			Email:       act.Email,
			ResendAfter: act.ResendAfter,
		}

		return s
	default:
		return s
	}
}

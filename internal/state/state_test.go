package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "phoenix/internal/domains/booking/model"
	hotelModel "phoenix/internal/domains/hotel/model"
	userModel "phoenix/internal/domains/user/model"
	"phoenix/internal/state"
	"phoenix/shared/constant"
)

func signedInSnapshot() state.Snapshot {
	return state.Apply(state.Snapshot{}, state.LoggedIn{
		User:  userModel.User{ID: "u-1", Email: "amina@example.com", Role: constant.RoleCustomer},
		Token: "backend-token",
	})
}

func TestApplyLoggedIn(t *testing.T) {
	snapshot := signedInSnapshot()

	assert.True(t, snapshot.SignedIn())
	assert.Equal(t, constant.RoleCustomer, snapshot.Role())
	assert.Equal(t, "backend-token", snapshot.Token)
}

func TestApplyLoggedInClearsPendingVerification(t *testing.T) {
	snapshot := state.Apply(state.Snapshot{}, state.VerifyEmailStarted{Email: "amina@example.com"})
	snapshot = state.Apply(snapshot, state.LoggedIn{
		User:  userModel.User{ID: "u-1", Role: constant.RoleCustomer},
		Token: "t",
	})

	assert.Empty(t, snapshot.VerifyEmail.Email)
}

func TestApplyLoggedOut(t *testing.T) {
	snapshot := signedInSnapshot()
	snapshot = state.Apply(snapshot, state.HotelsLoaded{Hotels: []hotelModel.Hotel{{ID: "h-1"}}})
	snapshot = state.Apply(snapshot, state.NotificationPushed{
		Notification: state.Notification{Level: state.NotificationInfo, Message: "Signed out"},
	})

	snapshot = state.Apply(snapshot, state.LoggedOut{})

	assert.False(t, snapshot.SignedIn())
	assert.Empty(t, snapshot.Role())
	assert.Empty(t, snapshot.Hotels)
	// Flash messages survive sign-out so the login page can show them.
	assert.Len(t, snapshot.Notifications, 1)
}

func TestApplyHotelActions(t *testing.T) {
	snapshot := state.Apply(state.Snapshot{}, state.HotelsLoaded{
		Hotels: []hotelModel.Hotel{{ID: "h-1"}, {ID: "h-2"}},
	})
	require.Len(t, snapshot.Hotels, 2)

	snapshot = state.Apply(snapshot, state.HotelAdded{Hotel: hotelModel.Hotel{ID: "h-3"}})
	assert.Len(t, snapshot.Hotels, 3)

	snapshot = state.Apply(snapshot, state.HotelRemoved{ID: "h-1"})
	require.Len(t, snapshot.Hotels, 2)
	assert.Equal(t, "h-2", snapshot.Hotels[0].ID)
}

func TestApplyBookingActions(t *testing.T) {
	snapshot := state.Apply(state.Snapshot{}, state.BookingsLoaded{
		Bookings: []bookingModel.Booking{
			{ID: "b-1", Status: bookingModel.StatusPending},
			{ID: "b-2", Status: bookingModel.StatusConfirmed},
		},
	})

	snapshot = state.Apply(snapshot, state.BookingAdded{
		Booking: bookingModel.Booking{ID: "b-3", Status: bookingModel.StatusPending},
	})
	assert.Len(t, snapshot.Bookings, 3)

	snapshot = state.Apply(snapshot, state.BookingUpdated{
		Booking: bookingModel.Booking{ID: "b-1", Status: bookingModel.StatusCancelled},
	})
	assert.Equal(t, bookingModel.StatusCancelled, snapshot.Bookings[0].Status)

	snapshot = state.Apply(snapshot, state.BookingRemoved{ID: "b-2"})
	assert.Len(t, snapshot.Bookings, 2)
}

func TestApplyBookingUpdatedUnknownIDIsNoop(t *testing.T) {
	before := state.Apply(state.Snapshot{}, state.BookingsLoaded{
		Bookings: []bookingModel.Booking{{ID: "b-1", Status: bookingModel.StatusPending}},
	})

	after := state.Apply(before, state.BookingUpdated{
		Booking: bookingModel.Booking{ID: "b-missing", Status: bookingModel.StatusCancelled},
	})

	assert.Equal(t, before.Bookings, after.Bookings)
}

func TestApplyNotifications(t *testing.T) {
	snapshot := state.Apply(state.Snapshot{}, state.NotificationPushed{
		Notification: state.Notification{Level: state.NotificationSuccess, Message: "Booking created"},
	})
	snapshot = state.Apply(snapshot, state.NotificationPushed{
		Notification: state.Notification{Level: state.NotificationError, Message: "Payment failed"},
	})
	require.Len(t, snapshot.Notifications, 2)

	snapshot = state.Apply(snapshot, state.NotificationsDrained{})
	assert.Empty(t, snapshot.Notifications)
}

func TestApplyVerifyEmailStarted(t *testing.T) {
	resendAfter := time.Now().Add(constant.ResendCooldown)

	snapshot := state.Apply(state.Snapshot{}, state.VerifyEmailStarted{
		Email:       "amina@example.com",
		ResendAfter: resendAfter,
	})

	assert.Equal(t, "amina@example.com", snapshot.VerifyEmail.Email)
	assert.Equal(t, resendAfter, snapshot.VerifyEmail.ResendAfter)
}

func TestApplyTotality(t *testing.T) {
	snapshot := signedInSnapshot()

	assert.Equal(t, snapshot, state.Apply(snapshot, nil))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	original := state.Apply(state.Snapshot{}, state.HotelsLoaded{
		Hotels: []hotelModel.Hotel{{ID: "h-1"}, {ID: "h-2"}},
	})
	originalHotels := append([]hotelModel.Hotel(nil), original.Hotels...)

	_ = state.Apply(original, state.HotelRemoved{ID: "h-1"})
	_ = state.Apply(original, state.HotelAdded{Hotel: hotelModel.Hotel{ID: "h-3"}})

	assert.Equal(t, originalHotels, original.Hotels)
}

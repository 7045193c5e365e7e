package model

import (
	"phoenix/shared/constant"
	"strings"
	"time"
)

const (
	EntityName = "user"
)

// User is the backend's account representation. The gateway never stores
// credentials; it only mirrors what the backend returns.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	IsVerified  bool      `json:"is_verified"`
	IsActive    bool      `json:"is_active"`
	DateJoined  time.Time `json:"date_joined"`
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}

	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// Valid reports whether a stored account record still has a usable shape.
// A record that parses but has no ID or an unrecognized role is treated the
// same as a corrupted one: the session gets cleared and the visitor signs in
// again.
func (u User) Valid() bool {
	return u.ID != "" && RoleValid(u.Role)
}

// FilterBySearch narrows an already-loaded page by a case-insensitive match
// on name or email. The backend list endpoint has no search param.
func FilterBySearch(users []User, search string) []User {
	if search == "" {
		return users
	}

	search = strings.ToLower(search)
	filtered := make([]User, 0, len(users))

	for _, user := range users {
		if strings.Contains(strings.ToLower(user.FullName()), search) ||
			strings.Contains(strings.ToLower(user.Email), search) {
			filtered = append(filtered, user)
		}
	}

	return filtered
}

// DashboardStats is the backend's aggregate for the admin landing page.
type DashboardStats struct {
	TotalUsers    int     `json:"total_users"`
	TotalHotels   int     `json:"total_hotels"`
	TotalBookings int     `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
	ActiveRooms   int     `json:"active_rooms"`
	PendingReview int     `json:"pending_reviews"`
}

func RoleValid(role string) bool {
	switch role {
	case constant.RoleCustomer, constant.RoleStaff, constant.RoleAdmin:
		return true
	default:
		return false
	}
}

package model_test

import (
	"phoenix/internal/domains/user/model"
	"phoenix/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name string
		user model.User
		want string
	}{
		{name: "both names", user: model.User{FirstName: "Amina", LastName: "Odhiambo"}, want: "Amina Odhiambo"},
		{name: "first only", user: model.User{FirstName: "Amina"}, want: "Amina"},
		{name: "last only", user: model.User{LastName: "Odhiambo"}, want: "Odhiambo"},
		{name: "neither", user: model.User{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.FullName())
		})
	}
}

func TestFilterBySearch(t *testing.T) {
	users := []model.User{
		{ID: "u-1", Email: "amina@example.com", FirstName: "Amina", LastName: "Odhiambo"},
		{ID: "u-2", Email: "bob@example.com", FirstName: "Bob", LastName: "Otieno"},
	}

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "empty search keeps everything", search: "", wantIDs: []string{"u-1", "u-2"}},
		{name: "matches on email", search: "bob@", wantIDs: []string{"u-2"}},
		{name: "matches on name case-insensitively", search: "ODHIAMBO", wantIDs: []string{"u-1"}},
		{name: "no match leaves nothing", search: "carol", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := model.FilterBySearch(users, tt.search)

			ids := make([]string, 0, len(filtered))
			for _, user := range filtered {
				ids = append(ids, user.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestUserValid(t *testing.T) {
	tests := []struct {
		name string
		user model.User
		want bool
	}{
		{name: "customer", user: model.User{ID: "u-1", Role: constant.RoleCustomer}, want: true},
		{name: "staff", user: model.User{ID: "u-2", Role: constant.RoleStaff}, want: true},
		{name: "admin", user: model.User{ID: "u-3", Role: constant.RoleAdmin}, want: true},
		{name: "missing id", user: model.User{Role: constant.RoleCustomer}, want: false},
		{name: "unrecognized role", user: model.User{ID: "u-4", Role: "superuser"}, want: false},
		{name: "zero value", user: model.User{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Valid())
		})
	}
}

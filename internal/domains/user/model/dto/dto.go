package dto

import (
	"phoenix/internal/domains/user/model"
	"phoenix/shared"
)

type UpdateUserRequest struct {
	FirstName   string `form:"first_name"   json:"first_name,omitempty"   validate:"omitempty,max=150"`
	LastName    string `form:"last_name"    json:"last_name,omitempty"    validate:"omitempty,max=150"`
	PhoneNumber string `form:"phone_number" json:"phone_number,omitempty" validate:"omitempty,e164"`
	Role        string `form:"role"         json:"role,omitempty"         validate:"omitempty,oneof=customer staff admin"`
	IsActive    *bool  `form:"is_active"    json:"is_active,omitempty"`
}

type UsersResponse struct {
	Users     []model.User `json:"users"`
	TotalData int          `json:"total_data"`
	TotalPage int          `json:"total_page"`
}

func (u *UsersResponse) FromPage(users []model.User, totalData, limit int) {
	u.Users = users
	u.TotalData = totalData
	u.TotalPage = shared.CalculateTotalPage(totalData, limit)
}

package dto

import (
	"phoenix/internal/domains/booking/model"
	"phoenix/shared"
)

type CreateBookingRequest struct {
	Hotel    string `form:"hotel"     json:"hotel"     validate:"required"`
	Room     string `form:"room"      json:"room"      validate:"required"`
	CheckIn  string `form:"check_in"  json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `form:"check_out" json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   int    `form:"guests"    json:"guests"    validate:"required,gte=1,lte=10"`
}

type UpdateBookingRequest struct {
	CheckIn  string `form:"check_in"  json:"check_in,omitempty"  validate:"omitempty,datetime=2006-01-02"`
	CheckOut string `form:"check_out" json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Guests   int    `form:"guests"    json:"guests,omitempty"    validate:"omitempty,gte=1,lte=10"`
}

type BookingsResponse struct {
	Bookings  []model.Booking `json:"bookings"`
	TotalData int             `json:"total_data"`
	TotalPage int             `json:"total_page"`
}

func (r *BookingsResponse) FromPage(bookings []model.Booking, totalData, limit int) {
	r.Bookings = bookings
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
}

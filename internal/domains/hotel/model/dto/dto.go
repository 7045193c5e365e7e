package dto

import (
	"phoenix/internal/domains/hotel/model"
	"phoenix/shared"
)

type CreateHotelRequest struct {
	Name        string   `form:"name"        json:"name"        validate:"required,max=255"`
	Description string   `form:"description" json:"description" validate:"required"`
	Address     string   `form:"address"     json:"address"     validate:"required,max=255"`
	City        string   `form:"city"        json:"city"        validate:"required,max=100"`
	Country     string   `form:"country"     json:"country"     validate:"required,max=100"`
	StarRating  int      `form:"star_rating" json:"star_rating" validate:"required,gte=1,lte=5"`
	Amenities   []string `form:"amenities"   json:"amenities"   validate:"omitempty"`
	ImageURL    string   `form:"-"           json:"image_url,omitempty"`
}

type UpdateHotelRequest struct {
	Name        string   `form:"name"        json:"name,omitempty"        validate:"omitempty,max=255"`
	Description string   `form:"description" json:"description,omitempty"`
	Address     string   `form:"address"     json:"address,omitempty"     validate:"omitempty,max=255"`
	City        string   `form:"city"        json:"city,omitempty"        validate:"omitempty,max=100"`
	Country     string   `form:"country"     json:"country,omitempty"     validate:"omitempty,max=100"`
	StarRating  int      `form:"star_rating" json:"star_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Amenities   []string `form:"amenities"   json:"amenities,omitempty"`
	ImageURL    string   `form:"-"           json:"image_url,omitempty"`
	IsActive    *bool    `form:"is_active"   json:"is_active,omitempty"`
}

// AvailabilityRequest asks the backend which rooms are free; the computation
// is entirely server-side.
type AvailabilityRequest struct {
	Hotel    string `form:"hotel"     json:"hotel"     validate:"required"`
	CheckIn  string `form:"check_in"  json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `form:"check_out" json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   int    `form:"guests"    json:"guests"    validate:"required,gte=1,lte=10"`
}

type AvailabilityResponse struct {
	AvailableRooms []model.Room `json:"available_rooms"`
}

type UpdateRoomStatusRequest struct {
	Status string `form:"status" json:"status" validate:"required,oneof=available occupied maintenance cleaning"`
}

type HotelsResponse struct {
	Hotels    []model.Hotel `json:"hotels"`
	TotalData int           `json:"total_data"`
	TotalPage int           `json:"total_page"`
}

func (r *HotelsResponse) FromPage(hotels []model.Hotel, totalData, limit int) {
	r.Hotels = hotels
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
}

type RoomsResponse struct {
	Rooms     []model.Room `json:"rooms"`
	TotalData int          `json:"total_data"`
	TotalPage int          `json:"total_page"`
}

func (r *RoomsResponse) FromPage(rooms []model.Room, totalData, limit int) {
	r.Rooms = rooms
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
}

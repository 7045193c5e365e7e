package model

import (
	"strings"
	"time"
)

const (
	EntityName = "hotel"

	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusCleaning    = "cleaning"
)

type Hotel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	StarRating  int       `json:"star_rating"`
	Rating      float64   `json:"rating"`
	Amenities   []string  `json:"amenities"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"base_price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
}

type Room struct {
	ID         string   `json:"id"`
	Hotel      string   `json:"hotel"`
	HotelName  string   `json:"hotel_name"`
	RoomType   RoomType `json:"room_type"`
	RoomNumber string   `json:"room_number"`
	Floor      int      `json:"floor"`
	Status     string   `json:"status"`
	Price      float64  `json:"price"`
}

// RoomStatusBadge maps a room status to a badge tone. Total: anything the
// backend sends outside the known set renders as default.
func RoomStatusBadge(status string) string {
	switch status {
	case RoomStatusAvailable:
		return "success"
	case RoomStatusOccupied:
		return "danger"
	case RoomStatusMaintenance:
		return "warning"
	case RoomStatusCleaning:
		return "info"
	default:
		return "default"
	}
}

// Filter narrows an already-fetched hotel list. City and search matching is
// case-insensitive; MinRating and Amenity must both hold when set.
type Filter struct {
	Search    string
	City      string
	MinRating float64
	Amenity   string
}

func (f Filter) IsZero() bool {
	return f.Search == "" && f.City == "" && f.MinRating == 0 && f.Amenity == ""
}

func (f Filter) matches(hotel Hotel) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(hotel.Name), needle) &&
			!strings.Contains(strings.ToLower(hotel.City), needle) {
			return false
		}
	}

	if f.City != "" && !strings.EqualFold(f.City, hotel.City) {
		return false
	}

	if f.MinRating > 0 && hotel.Rating < f.MinRating {
		return false
	}

	if f.Amenity != "" {
		found := false

		for _, amenity := range hotel.Amenities {
			if strings.EqualFold(amenity, f.Amenity) {
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// FilterHotels is a single pass over the loaded list and never mutates its
// input. Applying the same filter to its own output returns it unchanged.
func FilterHotels(hotels []Hotel, filter Filter) []Hotel {
	if filter.IsZero() {
		return hotels
	}

	filtered := make([]Hotel, 0, len(hotels))

	for _, hotel := range hotels {
		if filter.matches(hotel) {
			filtered = append(filtered, hotel)
		}
	}

	return filtered
}

package model

import "time"

const (
	EntityName = "review"

	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID         string    `json:"id"`
	Hotel      string    `json:"hotel"`
	HotelName  string    `json:"hotel_name"`
	User       string    `json:"user"`
	UserName   string    `json:"user_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// Approved keeps only reviews the public hotel page may show.
func Approved(reviews []Review) []Review {
	approved := make([]Review, 0, len(reviews))

	for _, review := range reviews {
		if review.IsApproved {
			approved = append(approved, review)
		}
	}

	return approved
}

// AverageRating over a loaded list, zero when empty.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}

	return float64(total) / float64(len(reviews))
}

package dto

import (
	"phoenix/internal/domains/review/model"
	"phoenix/shared"
)

type CreateReviewRequest struct {
	Hotel   string `form:"hotel"   json:"hotel"   validate:"required"`
	Rating  int    `form:"rating"  json:"rating"  validate:"required,gte=1,lte=5"`
	Comment string `form:"comment" json:"comment" validate:"required,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  int    `form:"rating"  json:"rating,omitempty"  validate:"omitempty,gte=1,lte=5"`
	Comment string `form:"comment" json:"comment,omitempty" validate:"omitempty,max=2000"`
}

type ReviewsResponse struct {
	Reviews   []model.Review `json:"reviews"`
	TotalData int            `json:"total_data"`
	TotalPage int            `json:"total_page"`
}

func (r *ReviewsResponse) FromPage(reviews []model.Review, totalData, limit int) {
	r.Reviews = reviews
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
}

package dto

import (
	"net/http"
	"net/url"
	"phoenix/shared/constant"
	"strconv"
)

// QueryParams carries list pagination through to the backend untouched.
// The backend decides the actual page contents; we only relay and render.
type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,gte=1"`
	Limit int `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// FromRequest populates QueryParams from the HTTP request. With defaultRequest
// set, missing values fall back to the first page at the default size.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Values renders the params as a backend query string fragment.
func (q QueryParams) Values() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set(constant.RequestParamPage, strconv.Itoa(q.Page))
	}

	if q.Limit > 0 {
		values.Set(constant.RequestParamLimit, strconv.Itoa(q.Limit))
	}

	return values
}

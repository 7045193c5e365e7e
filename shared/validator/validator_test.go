package validator_test

import (
	"net/url"
	"phoenix/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required,min=8"`
}

type reviewForm struct {
	BookingID int64    `form:"booking_id" validate:"required"`
	Rating    int      `form:"rating"     validate:"required,gte=1,lte=5"`
	Comment   string   `form:"comment"    validate:"required,max=1000"`
	Tags      []string `form:"tags"       validate:"omitempty"`
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"username":"jdoe","password":"secret-pass"}`,
			wantErr: false,
		},
		{
			name:    "missing username",
			body:    `{"password":"secret-pass"}`,
			wantErr: true,
		},
		{
			name:    "short password",
			body:    `{"username":"jdoe","password":"short"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"username":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := loginForm{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateForm(t *testing.T) {
	values := url.Values{}
	values.Set("booking_id", "42")
	values.Set("rating", "5")
	values.Set("comment", "Great stay, would book again")
	values.Add("tags", "clean")
	values.Add("tags", "quiet")

	req := reviewForm{}
	err := validator.ValidateForm(values, &req)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), req.BookingID)
	assert.Equal(t, 5, req.Rating)
	assert.Equal(t, []string{"clean", "quiet"}, req.Tags)
}

func TestValidateForm_RatingOutOfRange(t *testing.T) {
	values := url.Values{}
	values.Set("booking_id", "42")
	values.Set("rating", "9")
	values.Set("comment", "nope")

	req := reviewForm{}
	err := validator.ValidateForm(values, &req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Rating")
}

func TestValidateForm_BadNumber(t *testing.T) {
	values := url.Values{}
	values.Set("booking_id", "not-a-number")
	values.Set("rating", "4")
	values.Set("comment", "fine")

	req := reviewForm{}
	err := validator.ValidateForm(values, &req)

	assert.Error(t, err)
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("123456", "len=6,numeric"))
	assert.Error(t, validator.ValidateVar("12345", "len=6,numeric"))
	assert.Error(t, validator.ValidateVar("12345a", "len=6,numeric"))
}

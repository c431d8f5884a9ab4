package response

import (
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		data []any
		want Response
	}{
		{
			name: "without data",
			msg:  "Operation successful.",
			want: Response{
				Status:  StatusSuccess,
				Message: "Operation successful.",
			},
		},
		{
			name: "with data",
			msg:  "Operation successful.",
			data: []any{map[string]any{"short_code": "abc1234"}},
			want: Response{
				Status:  StatusSuccess,
				Message: "Operation successful.",
				Data:    map[string]any{"short_code": "abc1234"},
			},
		},
		{
			name: "with multiple data",
			msg:  "Operation successful.",
			data: []any{
				map[string]any{"short_code": "abc1234"},
				map[string]any{"short_code": "abc1235"},
			},
			want: Response{
				Status:  StatusSuccess,
				Message: "Operation successful.",
				Data:    map[string]any{"short_code": "abc1234"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuccessResponse(tt.msg, tt.data...)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	type req struct {
		URL        string `json:"url" validate:"required,url"`
		CustomCode string `json:"custom_code" validate:"omitempty,alphanum"`
		ExpiryDays int    `json:"expiry_days" validate:"omitempty,gt=0"`
	}

	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	tests := []struct {
		name string
		req  req
		want []validationError
	}{
		{
			name: "not validation error",
			req: req{
				URL: "https://example.com",
			},
		},
		{
			name: "missing url",
			req:  req{},
			want: []validationError{
				{
					Field: "url",
					Value: "",
					Issue: "This field is required.",
				},
			},
		},
		{
			name: "multiple errors",
			req: req{
				URL:        "not url",
				CustomCode: "abc-123",
				ExpiryDays: -1,
			},
			want: []validationError{
				{
					Field: "url",
					Value: "not url",
					Issue: "Invalid url.",
				},
				{
					Field: "custom_code",
					Value: "abc-123",
					Issue: "Only alphanumeric characters are allowed.",
				},
				{
					Field: "expiry_days",
					Value: -1,
					Issue: "Must be greater than 0.",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			got := getValidationErrors(err)

			assert.Equal(t, tt.want, got)
		})
	}
}

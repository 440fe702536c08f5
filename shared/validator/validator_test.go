package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/shared/failure"
	"slotkeeper/shared/validator"
)

type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Age      int    `validate:"gte=0,lte=120" json:"age"`
	Category string `validate:"oneof=user admin guest" json:"category"`
}

type scheduleTestStruct struct {
	Timezone string `validate:"required,iana_tz" json:"timezone"`
	Date     string `validate:"required,date" json:"date"`
	Start    string `validate:"required,timeofday" json:"start"`
	End      string `validate:"required,timeofday" json:"end"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name:        "valid struct",
			data:        &ValidTestStruct{Name: "John Doe", Email: "john@example.com", Age: 25, Category: "user"},
			expectError: false,
		},
		{
			name:        "missing required field",
			data:        &ValidTestStruct{Email: "john@example.com", Age: 25, Category: "user"},
			expectError: true,
		},
		{
			name:        "invalid email",
			data:        &ValidTestStruct{Name: "John Doe", Email: "invalid-email", Age: 25, Category: "user"},
			expectError: true,
		},
		{
			name:        "age out of range",
			data:        &ValidTestStruct{Name: "John Doe", Email: "john@example.com", Age: 150, Category: "user"},
			expectError: true,
		},
		{
			name:        "invalid category",
			data:        &ValidTestStruct{Name: "John Doe", Email: "john@example.com", Age: 25, Category: "owner"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid number in range", field: 25, tag: "gte=0,lte=100"},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
		{name: "empty accepts zero", field: 0, tag: "empty"},
		{name: "empty rejects value", field: 3, tag: "empty", expectError: true},

		{name: "time of day", field: "09:30", tag: "timeofday"},
		{name: "midnight", field: "00:00", tag: "timeofday"},
		{name: "end of day", field: "24:00", tag: "timeofday"},
		{name: "past end of day", field: "24:30", tag: "timeofday", expectError: true},
		{name: "missing leading zero", field: "9:30", tag: "timeofday", expectError: true},
		{name: "bad minutes", field: "09:60", tag: "timeofday", expectError: true},

		{name: "iana timezone", field: "Europe/Berlin", tag: "iana_tz"},
		{name: "utc", field: "UTC", tag: "iana_tz"},
		{name: "unknown timezone", field: "Mars/Olympus", tag: "iana_tz", expectError: true},
		{name: "local is rejected", field: "Local", tag: "iana_tz", expectError: true},

		{name: "date", field: "2030-02-28", tag: "date"},
		{name: "invalid day", field: "2030-02-30", tag: "date", expectError: true},
		{name: "timestamp is not a date", field: "2030-02-28T10:00:00Z", tag: "date", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"John Doe","email":"john@example.com","age":25,"category":"user"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","age":25,"category":"user"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "unknown field",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","age":25,"category":"user","role":"admin"}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data ValidTestStruct
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		data scheduleTestStruct
		want string
	}{
		{
			name: "required",
			data: scheduleTestStruct{},
			want: "Timezone is required",
		},
		{
			name: "timezone",
			data: scheduleTestStruct{Timezone: "Nowhere", Date: "2030-01-01", Start: "09:00", End: "17:00"},
			want: "Timezone must be an IANA timezone name",
		},
		{
			name: "date",
			data: scheduleTestStruct{Timezone: "UTC", Date: "01/01/2030", Start: "09:00", End: "17:00"},
			want: "Date must be a date formatted as YYYY-MM-DD",
		},
		{
			name: "time of day",
			data: scheduleTestStruct{Timezone: "UTC", Date: "2030-01-01", Start: "9am", End: "17:00"},
			want: "Start must be a time of day formatted as HH:MM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomValidators(t *testing.T) {
	type payload struct {
		Opening  string `validate:"omitempty,clock"`
		Category string `validate:"required,category"`
	}

	tests := []struct {
		name  string
		in    payload
		valid bool
	}{
		{"valid", payload{Opening: "08:30", Category: "museum"}, true},
		{"empty clock allowed", payload{Category: "fast_food"}, true},
		{"hour out of range", payload{Opening: "24:00", Category: "cafe"}, false},
		{"not a clock", payload{Opening: "8am", Category: "cafe"}, false},
		{"unknown category", payload{Category: "bar"}, false},
		{"category is case sensitive", payload{Category: "Hotel"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate.Struct(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestReadJSONRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"body":"hi","score":4,"extra":true}`))
	var payload CreateReviewPayload
	assert.Error(t, readJSON(httptest.NewRecorder(), req, &payload))
}

func TestWriteJSONErrorEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	assert.NoError(t, writeJSONError(rr, http.StatusConflict, "nope"))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"nope","status":409}`, rr.Body.String())
}

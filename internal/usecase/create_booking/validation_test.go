package create_booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequest_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{"zero experienceID", func(r *Request) { r.ExperienceID = 0 }},
		{"negative slotID", func(r *Request) { r.SlotID = -1 }},
		{"empty fullName", func(r *Request) { r.FullName = "" }},
		{"whitespace fullName", func(r *Request) { r.FullName = "   " }},
		{"too long fullName", func(r *Request) { r.FullName = strings.Repeat("a", 201) }},
		{"empty email", func(r *Request) { r.Email = "" }},
		{"too long email", func(r *Request) { r.Email = strings.Repeat("a", 250) + "@e.com" }},
		{"zero quantity", func(r *Request) { r.Quantity = 0 }},
		{"negative quantity", func(r *Request) { r.Quantity = -3 }},
		{"quantity above limit", func(r *Request) { r.Quantity = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)

			err := validateRequest(req)

			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateRequest_BoundaryQuantities(t *testing.T) {
	req := validRequest()
	req.Quantity = 1
	assert.NoError(t, validateRequest(req))

	req.Quantity = 100
	assert.NoError(t, validateRequest(req))
}

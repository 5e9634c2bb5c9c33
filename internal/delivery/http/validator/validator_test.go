package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

type request struct {
	UserID string `json:"userId" validate:"required"`
	Coords *point `json:"coords" validate:"required"`
}

func ptr(f float64) *float64 { return &f }

func TestCustomValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&request{UserID: "u", Coords: &point{Latitude: ptr(0), Longitude: ptr(0)}}))

	err := v.Validate(&request{Coords: &point{Latitude: ptr(91), Longitude: ptr(0)}})
	require.Error(t, err)
	assert.Equal(t, "userId: required; coords.latitude: max=90", Describe(err))

	err = v.Validate(&request{UserID: "u"})
	assert.Equal(t, "coords: required", Describe(err))
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}

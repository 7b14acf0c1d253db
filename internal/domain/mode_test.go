package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTravelMode(t *testing.T) {
	cases := map[string]Profile{
		"walk":    ProfileFootWalking,
		"WALK":    ProfileFootWalking,
		" Cycle ": ProfileCyclingRegular,
		"drive":   ProfileDrivingCar,
		"DrIvE":   ProfileDrivingCar,
	}

	for in, want := range cases {
		p, err := ToProfile(in)
		require.NoError(t, err, "mode %q", in)
		assert.Equal(t, want, p)
	}
}

func TestParseTravelModeRejects(t *testing.T) {
	for _, in := range []string{"", "fly", "walking", "car", "   "} {
		_, err := ParseTravelMode(in)
		assert.ErrorIs(t, err, ErrInvalidMode, "mode %q", in)
	}
}

func TestTravelModeProfileUnknown(t *testing.T) {
	assert.Equal(t, Profile(""), TravelMode("boat").Profile())
}

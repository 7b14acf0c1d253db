package domain

import (
	"fmt"
	"strings"
)

// TravelMode is the closed vocabulary of modes a client may request.
type TravelMode string

const (
	ModeWalk  TravelMode = "walk"
	ModeCycle TravelMode = "cycle"
	ModeDrive TravelMode = "drive"
)

// Profile is an OpenRouteService routing profile identifier.
type Profile string

const (
	ProfileFootWalking    Profile = "foot-walking"
	ProfileCyclingRegular Profile = "cycling-regular"
	ProfileDrivingCar     Profile = "driving-car"
)

var profiles = map[TravelMode]Profile{
	ModeWalk:  ProfileFootWalking,
	ModeCycle: ProfileCyclingRegular,
	ModeDrive: ProfileDrivingCar,
}

// ParseTravelMode matches s case-insensitively against the mode vocabulary.
// Unknown values, including the empty string, are never coerced to a default.
func ParseTravelMode(s string) (TravelMode, error) {
	m := TravelMode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := profiles[m]; !ok {
		return "", fmt.Errorf("mode %q: use 'walk', 'cycle', or 'drive': %w", s, ErrInvalidMode)
	}
	return m, nil
}

// Profile returns the routing profile for m, or "" for a mode outside the vocabulary.
func (m TravelMode) Profile() Profile { return profiles[m] }

// ToProfile validates a raw mode string and maps it to its routing profile.
func ToProfile(mode string) (Profile, error) {
	m, err := ParseTravelMode(mode)
	if err != nil {
		return "", err
	}
	return m.Profile(), nil
}

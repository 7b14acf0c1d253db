package dto

import (
	"ecovia-route-service/internal/domain"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type GeocodeQuery struct {
	Q    string `query:"q" validate:"required"`
	Size int    `query:"size" validate:"gte=0,lte=40"`
}

// ParseGeocodeQuery reads q and the optional size. Size 0 means "server default".
func ParseGeocodeQuery(values url.Values) (GeocodeQuery, error) {
	q := GeocodeQuery{Q: strings.TrimSpace(values.Get("q"))}

	if s := values.Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return GeocodeQuery{}, fmt.Errorf("invalid size %q: %w", s, domain.ErrInvalidInput)
		}
		q.Size = n
	}

	if err := Validate(q); err != nil {
		return GeocodeQuery{}, err
	}
	return q, nil
}

type SuggestionResponse struct {
	Label *string `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type SuggestionsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

func NewSuggestionsResponse(suggestions []domain.GeocodeSuggestion) SuggestionsResponse {
	out := SuggestionsResponse{Suggestions: make([]SuggestionResponse, 0, len(suggestions))}
	for _, s := range suggestions {
		out.Suggestions = append(out.Suggestions, SuggestionResponse{
			Label: s.Label,
			Lat:   s.Coordinates.Lat,
			Lon:   s.Coordinates.Lon,
		})
	}
	return out
}

package http

import (
	"encoding/json"
	"strconv"
	"strings"

	"moving-offer-service/internal/offer"
)

// --- Request DTOs ---

// generateOfferReq is the POST /generate-offer body. Numeric fields tolerate
// string values and junk the way browser form clients send them; coercion
// failures become the documented defaults, not bind errors.
type generateOfferReq struct {
	Rooms           flexFloat `json:"rooms"`
	AddressFrom     string    `json:"addressFrom"`
	AddressTo       string    `json:"addressTo"`
	HasLift         bool      `json:"hasLift"`
	Floor           flexInt   `json:"floor"`
	IncludeAssembly *bool     `json:"includeAssembly"`
	ExpressService  bool      `json:"expressService"`
	HeavyItems      flexInt   `json:"heavyItems"`
}

// validate returns the list of human-readable validation messages, empty when
// the request is acceptable.
func (r generateOfferReq) validate() []string {
	var details []string
	if float64(r.Rooms) <= 0 {
		details = append(details, msgRoomsInvalid)
	}
	if strings.TrimSpace(r.AddressFrom) == "" {
		details = append(details, msgAddressFromRequired)
	}
	if strings.TrimSpace(r.AddressTo) == "" {
		details = append(details, msgAddressToRequired)
	}
	return details
}

func (r generateOfferReq) toInput() offer.GenerateOfferInput {
	includeAssembly := true
	if r.IncludeAssembly != nil {
		includeAssembly = *r.IncludeAssembly
	}

	floor := int(r.Floor)
	if floor < 0 {
		floor = 0
	}
	heavyItems := int(r.HeavyItems)
	if heavyItems < 0 {
		heavyItems = 0
	}

	return offer.GenerateOfferInput{
		Rooms:           float64(r.Rooms),
		AddressFrom:     strings.TrimSpace(r.AddressFrom),
		AddressTo:       strings.TrimSpace(r.AddressTo),
		HasLift:         r.HasLift,
		Floor:           floor,
		IncludeAssembly: includeAssembly,
		ExpressService:  r.ExpressService,
		HeavyItems:      heavyItems,
	}
}

// --- Lenient numeric types ---

// flexFloat decodes a JSON number or a numeric string; anything else is 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = flexFloat(parseLenientFloat(data))
	return nil
}

// flexInt decodes a JSON number or a numeric string, truncated; anything else
// is 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	*f = flexInt(parseLenientFloat(data))
	return nil
}

func parseLenientFloat(data []byte) float64 {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		return n
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return parsed
		}
	}

	return 0
}

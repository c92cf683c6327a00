package model

// DistanceSource marks whether a km figure came from the local estimator or an
// AI estimate.
type DistanceSource string

const (
	DistanceSourceLocal DistanceSource = "local"
	DistanceSourceAI    DistanceSource = "ai"
)

// DistanceEstimate is the resolved distance for one request. Produced once,
// never mutated.
type DistanceEstimate struct {
	Km     float64        `json:"km"`
	Source DistanceSource `json:"source"`
	From   string         `json:"from"`
	To     string         `json:"to"`
}

// Task is one priced line item of an offer. IDs are sequential from 1 in
// construction order.
type Task struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Price            int    `json:"price"`
	PriceExplanation string `json:"priceExplanation"`
}

// ExpressService describes whether and how the express surcharge was applied.
type ExpressService struct {
	Applied     bool   `json:"applied"`
	Surcharge   int    `json:"surcharge"`
	Explanation string `json:"explanation,omitempty"`
}

// PricingResult is the deterministic output of the pricing engine.
// Invariants: TotalPrice = Subtotal + ExpressService.Surcharge and
// Subtotal = sum of task prices.
type PricingResult struct {
	Tasks          []Task           `json:"tasks"`
	Distance       DistanceEstimate `json:"distance"`
	Subtotal       int              `json:"subtotal"`
	ExpressService ExpressService   `json:"expressService"`
	TotalPrice     int              `json:"totalPrice"`
	Currency       string           `json:"currency"`
}

// EnhancedTask is one task entry in an enrichment result.
type EnhancedTask struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Enrichment holds AI-generated (or fallback) replacement text. It never
// affects prices.
type Enrichment struct {
	EnhancedTasks    []EnhancedTask `json:"enhancedTasks"`
	ExecutionSummary string         `json:"executionSummary"`
}

// OfferDetails mirror the validated job in the response plus the resolved
// distance fields.
type OfferDetails struct {
	Rooms           float64        `json:"rooms"`
	From            string         `json:"from"`
	To              string         `json:"to"`
	DistanceKm      float64        `json:"distanceKm"`
	DistanceSource  DistanceSource `json:"distanceSource"`
	HasLift         bool           `json:"hasLift"`
	Floor           int            `json:"floor"`
	IncludeAssembly bool           `json:"includeAssembly"`
	ExpressService  bool           `json:"expressService"`
	HeavyItems      int            `json:"heavyItems"`
}

// OfferPricing is the pricing block of the final offer document.
type OfferPricing struct {
	Subtotal       int            `json:"subtotal"`
	ExpressService ExpressService `json:"expressService"`
	TotalPrice     int            `json:"totalPrice"`
	Currency       string         `json:"currency"`
}

// Offer is the final document returned to the client.
type Offer struct {
	Service          string       `json:"service"`
	Details          OfferDetails `json:"details"`
	Tasks            []Task       `json:"tasks"`
	Pricing          OfferPricing `json:"pricing"`
	ExecutionSummary string       `json:"executionSummary"`
}

package offer

// GenerateOfferInput carries the validated, coerced parameters of a moving job.
// Immutable once built by the delivery layer.
type GenerateOfferInput struct {
	Rooms           float64
	AddressFrom     string
	AddressTo       string
	HasLift         bool
	Floor           int
	IncludeAssembly bool
	ExpressService  bool
	HeavyItems      int
}

package http

const (
	// msgGenerateOfferFailed is the opaque message for unexpected failures.
	// Internal detail stays in the logs.
	msgGenerateOfferFailed = "Failed to generate offer"

	msgRoomsInvalid        = "rooms must be a positive number (e.g. 3.5)"
	msgAddressFromRequired = "addressFrom is required"
	msgAddressToRequired   = "addressTo is required"
	msgBodyInvalid         = "request body must be a JSON object"
)

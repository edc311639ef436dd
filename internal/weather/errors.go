package weather

import "errors"

var (
	// ErrValidation is returned when a request parameter is out of range.
	// Raised before any network activity.
	ErrValidation = errors.New("invalid request")

	// ErrTransport is returned when the SMHI fetch fails: timeout,
	// connection failure, or a non-2xx response.
	ErrTransport = errors.New("weather api request failed")

	// ErrParse is returned when the API payload is structurally broken or
	// contains a malformed timestamp.
	ErrParse = errors.New("malformed weather api payload")

	// ErrEmptyResult is returned when the API responded but no entries
	// fell inside the requested time window.
	ErrEmptyResult = errors.New("no forecast data for the requested time period")
)

package geocode

// ResolutionError reports that an address could not be turned into usable
// coordinates. Message is intended for direct display.
type ResolutionError struct {
	Message string
}

func (e *ResolutionError) Error() string {
	return e.Message
}

func newResolutionError(message string) *ResolutionError {
	return &ResolutionError{Message: message}
}

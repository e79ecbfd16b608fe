package parallel

import "fmt"

// APIError is returned when the API responds with a non-2xx status.
//
// Body holds the raw response text, unmodified.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "API error"
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Body)
}

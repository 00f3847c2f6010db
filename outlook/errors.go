package outlook

import "fmt"

// APIError is a non-2xx response from the mail endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("outlook: endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("outlook: endpoint returned status %d: %s", e.StatusCode, e.Body)
}

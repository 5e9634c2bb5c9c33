package errors

// Response statuses used by the safe-location wire format.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the body shape shared by every safe-location endpoint.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"` // Business error code, e.g., "SAFE_LOCATION_NOT_FOUND"
}

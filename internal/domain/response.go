package domain

// Response statuses used by ServiceResponse.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ServiceResponse is the discriminated success/error envelope returned by
// every public service operation. No errors are thrown past the service
// boundary: failures are represented as Status == "error" with a stable
// user-safe Error message and the underlying cause preserved in Details.
type ServiceResponse[T any] struct {
	Status  string `json:"status"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// Success wraps data in a successful envelope.
func Success[T any](data T) ServiceResponse[T] {
	return ServiceResponse[T]{Status: StatusSuccess, Data: &data}
}

// Failure builds an error envelope with a user-safe message and the
// underlying detail (which may be empty).
func Failure[T any](msg, details string) ServiceResponse[T] {
	return ServiceResponse[T]{Status: StatusError, Error: msg, Details: details}
}

// OK reports whether the response carries data rather than an error.
func (r ServiceResponse[T]) OK() bool { return r.Status == StatusSuccess }

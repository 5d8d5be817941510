package engine

// Status is the lifecycle phase of one independent query.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// RequestState is the tagged request lifecycle for one query type.
//
// Invariant: Data is non-nil iff Status == StatusSuccess, and ErrorMessage is
// non-empty iff Status == StatusError. The two are never set together.
type RequestState[T any] struct {
	Status       Status `json:"status"`
	Data         *T     `json:"data,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Idle returns the initial, untouched state.
func Idle[T any]() RequestState[T] {
	return RequestState[T]{Status: StatusIdle}
}

// Loading returns an in-flight state. Any prior data is dropped: results are
// replaced wholesale, never merged.
func Loading[T any]() RequestState[T] {
	return RequestState[T]{Status: StatusLoading}
}

// Succeeded returns a success state holding the response payload.
func Succeeded[T any](data *T) RequestState[T] {
	return RequestState[T]{Status: StatusSuccess, Data: data}
}

// Failed returns an error state carrying a human-readable message.
func Failed[T any](msg string) RequestState[T] {
	return RequestState[T]{Status: StatusError, ErrorMessage: msg}
}

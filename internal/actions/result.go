package actions

// Result is the envelope every action returns. Exactly one of Data and
// Error is set, matching Success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success[T any](data *T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func failure[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

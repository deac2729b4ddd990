package serverutils

type Response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) *Response[T] {
	return &Response[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) *Response[any] {
	return &Response[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorResponseWithCode adds a machine-readable error code next to the
// human message, e.g. "capacity_exceeded".
func ErrorResponseWithCode(status int, errorCode, message string) *Response[any] {
	res := ErrorResponse(status, message)
	res.Error = errorCode
	return res
}

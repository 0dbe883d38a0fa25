package domain

// ErrorKind is one row of the fixed error table shared by every service
type ErrorKind struct {
	Message    string
	StatusCode int
}

var (
	KindUserNotFound       = ErrorKind{"User not found", 404}
	KindInvalidCredentials = ErrorKind{"Invalid credentials", 401}
	KindPermissionDenied   = ErrorKind{"Permission denied", 403}
	KindBadRequest         = ErrorKind{"Bad request", 400}
	KindServerError        = ErrorKind{"Internal server error", 500}
)

// Response is the uniform envelope returned at every boundary. Business
// failures travel inside it with an embedded status code; the transport
// status line stays 200 except at the authentication gate.
type Response struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	TotalCount *int64 `json:"total_count,omitempty"`
	StatusCode int    `json:"status_code"`
}

// OK wraps a successful payload
func OK(data any) Response {
	return Response{Success: true, Message: "success", Data: data, StatusCode: 200}
}

// OKWithTotal wraps a successful list payload together with the total row count
func OKWithTotal(data any, total int64) Response {
	return Response{Success: true, Message: "success", Data: data, TotalCount: &total, StatusCode: 200}
}

// Fail wraps an error kind
func Fail(kind ErrorKind) Response {
	return Response{Success: false, Message: kind.Message, StatusCode: kind.StatusCode}
}

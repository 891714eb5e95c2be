package errors

// SuccessResponse is the envelope for successful API responses.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope for failed API responses.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo carries the machine-readable code, the human-readable
// message, and optional field-level details of a failure.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo carries the request ID so clients can correlate a response
// with the server-side logs.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

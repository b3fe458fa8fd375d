package apiv1

// Pong is the response of the ping endpoint
type Pong struct {
	Ping string `json:"ping"`
}

// ErrorResponse is the envelope for failed requests
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

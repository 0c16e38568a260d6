package domain

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatResponse is the success body of POST /api/chat.
type ChatResponse struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}

// ErrorResponse is the error body returned by the HTTP layer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HistoryResponse is the body of GET /api/chat/history/:sessionId.
type HistoryResponse struct {
	Success bool   `json:"success"`
	History []Turn `json:"history"`
	Count   int    `json:"count"`
}

// ClearResponse is the body of DELETE /api/chat/history/:sessionId.
type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Model     string `json:"model"`
	Timestamp string `json:"timestamp"`
}

package dto

type ChatRequest struct {
	// Message is untyped so that non-string values are reported as a
	// validation failure rather than a decode failure.
	Message interface{} `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

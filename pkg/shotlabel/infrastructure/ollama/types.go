package ollama

type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images,omitempty"`
	Stream *bool    `json:"stream,omitempty"`
}

type generateResponse struct {
	Model string `json:"model"`
	// Response is a pointer to tell a missing field from an empty one
	Response   *string `json:"response"`
	Done       bool    `json:"done"`
	DoneReason string  `json:"done_reason,omitempty"`
	Error      string  `json:"error,omitempty"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

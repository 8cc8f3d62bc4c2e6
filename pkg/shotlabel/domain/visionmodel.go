package domain

// InferenceRequest everything needed for a single call to a vision model. Built fresh for every attempt.
type InferenceRequest struct {
	// ImageBase64 the raw image file, base64-encoded
	ImageBase64 string
	Prompt      string
	// Model the model identifier, e.g. "qwen3-vl:4b-instruct"
	Model string
	// Host the base URL of the inference service
	Host string
	// RequestID correlates log lines with requests on the server side
	RequestID string
}

// VisionModel generates text for an image. Implementations must not retry on their own (see Retrier) and
// should report failures as *InferenceError.
type VisionModel interface {
	Infer(request InferenceRequest) (string, error)
}

package domain

// A list of config keys understood by the pipeline and the infrastructure it's built from.

const (
	// ConfigKeyOllamaHost base URL of the inference service
	ConfigKeyOllamaHost = "ollamaHost"
	// ConfigKeyOllamaAPIKey optional bearer token for remote inference services
	ConfigKeyOllamaAPIKey = "ollamaAPIKey"
	// ConfigKeyVisionModel the model identifier sent with every inference request
	ConfigKeyVisionModel = "visionModel"
	// ConfigKeyMaxAttempts how many times we try to get a response for a single image within one round,
	// before we finally give up on it
	ConfigKeyMaxAttempts = "maxAttempts"
	// ConfigKeyRetryDelay how long to wait between two attempts, in milliseconds
	ConfigKeyRetryDelay = "retryDelay"
	// ConfigKeyRequestTimeout when to stop if the model takes too long to respond, in milliseconds
	ConfigKeyRequestTimeout = "requestTimeout"
	// ConfigKeyMaxSlugLength the maximum length of a generated filename, not counting the extension
	ConfigKeyMaxSlugLength = "maxSlugLength"
	// ConfigKeyMacOSScreenshotsOnly only accept files named like "Screenshot 2025-11-16 at 18.23.47.png"
	ConfigKeyMacOSScreenshotsOnly = "macOSScreenshotsOnly"
	// ConfigKeyLogPath file path where to save the process log, in addition to the console
	ConfigKeyLogPath = "logPath"
)

const (
	DefaultOllamaHost  = "http://localhost:11434"
	DefaultVisionModel = "qwen3-vl:4b-instruct"
)

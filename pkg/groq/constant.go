package groq

import "time"

const (
	// DefaultModel is the default Groq model
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultBaseURL is the default Groq OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	responseFormatJSONObject = "json_object"
)

package llm

import (
	"log"
	"os"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "CARBOBOT_MODE"
	// ModeMock indicates the mock gateway should be used.
	ModeMock = "MOCK"
)

// NewGateway creates a gateway based on the CARBOBOT_MODE environment
// variable. If CARBOBOT_MODE=MOCK, returns a MockGateway; otherwise a real
// client.
func NewGateway(baseURL, model, apiKey string) Gateway {
	if os.Getenv(EnvMode) == ModeMock {
		log.Println("CARBOBOT_MODE=MOCK detected, using mock inference gateway")
		return NewMockGateway()
	}
	return NewClient(baseURL, model, apiKey)
}

package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. Production environments get JSON output,
// everything else gets the human-readable development encoder.
func New(environment string) (*zap.Logger, error) {
	env := strings.ToLower(strings.TrimSpace(environment))
	if env == "production" || env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

package logging

import "go.uber.org/zap"

// New monta o logger padrão da aplicação.
func New() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		// fallback: nunca subir sem logger
		return zap.NewNop()
	}
	return logger
}

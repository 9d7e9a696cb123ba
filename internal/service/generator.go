package service

import (
	"errors"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/password"
)

// Error kind labels as reported to API clients.
const (
	KindType  = "type_error"
	KindValue = "value_error"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen    *password.Generator
	logger *slog.Logger
}

// NewGeneratorService creates a new GeneratorService. A nil logger falls back
// to slog.Default().
func NewGeneratorService(gen *password.Generator, logger *slog.Logger) *GeneratorService {
	if gen == nil {
		gen = password.New(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeneratorService{gen: gen, logger: logger}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	pw, err := s.gen.GenerateValue(req.Length)
	if err != nil {
		s.logger.Info("password generation rejected", "kind", ErrorKind(err), "error", err)
		return model.GenerateResponse{}, err
	}

	s.logger.Debug("password generated", "length", len(pw))

	return model.GenerateResponse{
		Password: pw,
		Length:   len(pw),
	}, nil
}

// ErrorKind maps a validation error to its client-facing kind, or "" if err
// is not a validation error.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, password.ErrType):
		return KindType
	case errors.Is(err, password.ErrValue):
		return KindValue
	default:
		return ""
	}
}

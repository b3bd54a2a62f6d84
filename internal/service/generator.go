package service

import (
	"context"

	"github.com/randorium/randorium-go/internal/crypto"
	"github.com/randorium/randorium-go/internal/model"
	"github.com/randorium/randorium-go/internal/telemetry"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen      *crypto.Generator
	counters *telemetry.Counters
}

// NewGeneratorService creates a new GeneratorService. counters may be nil.
func NewGeneratorService(gen *crypto.Generator, counters *telemetry.Counters) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator()
	}
	return &GeneratorService{gen: gen, counters: counters}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultLength
	}

	genReq := opts.Request()
	password, err := s.gen.Generate(genReq)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	s.counters.PasswordGenerated(ctx, len(password))

	classes := make([]string, 0, genReq.Classes.Len())
	for _, c := range genReq.Classes.Classes() {
		classes = append(classes, c.String())
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Classes:  classes,
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

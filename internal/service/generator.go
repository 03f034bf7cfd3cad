package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/charset"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	DefaultLength = 12
	MaxLength     = 1024
)

var ErrLengthTooLong = fmt.Errorf("password length must be at most %d", MaxLength)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen        *crypto.Generator
	hashParams crypto.HashParams
	logger     *slog.Logger
}

// Option customizes a GeneratorService.
type Option func(*GeneratorService)

// WithHashParams sets the Argon2id parameters used when a request asks for a hash.
func WithHashParams(p crypto.HashParams) Option {
	return func(s *GeneratorService) { s.hashParams = p }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *GeneratorService) { s.logger = l }
}

// NewGeneratorService creates a new GeneratorService. A nil gen uses crypto/rand.
func NewGeneratorService(gen *crypto.Generator, opts ...Option) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	s := &GeneratorService{
		gen:        gen,
		hashParams: crypto.DefaultHashParams(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = DefaultLength
	}
	if length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	classes := enabledClasses(req)
	password, err := s.gen.Generate(length, classes...)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Classes:  charset.Names(classes),
	}

	if req.Hash {
		resp.Hash, err = crypto.HashPassword(password, s.hashParams)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
		}
	}

	s.logger.Debug("password generated", "length", resp.Length, "classes", resp.Classes, "hashed", req.Hash)
	return resp, nil
}

// GenerateBatch runs Generate count times with the same request.
func (s *GeneratorService) GenerateBatch(req model.GenerateRequest, count int) ([]model.GenerateResponse, error) {
	if count < 1 {
		count = 1
	}
	out := make([]model.GenerateResponse, 0, count)
	for i := 0; i < count; i++ {
		resp, err := s.Generate(req)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// NewRequest builds a request enabling exactly the given classes.
func NewRequest(length int, classes []charset.Class, hash bool) model.GenerateRequest {
	enabled := make(map[charset.Class]bool, len(classes))
	for _, c := range classes {
		enabled[c] = true
	}
	return model.GenerateRequest{
		Length:    length,
		Lowercase: boolPtr(enabled[charset.Lowercase]),
		Uppercase: boolPtr(enabled[charset.Uppercase]),
		Digits:    boolPtr(enabled[charset.Digits]),
		Special:   boolPtr(enabled[charset.Special]),
		Hash:      hash,
	}
}

// IsValidationError reports whether err was caused by the caller's input
// rather than a failure while generating.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrNoClassSelected) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, charset.ErrUnknownClass)
}

func enabledClasses(req model.GenerateRequest) []charset.Class {
	toggles := []struct {
		class charset.Class
		on    *bool
	}{
		{charset.Lowercase, req.Lowercase},
		{charset.Uppercase, req.Uppercase},
		{charset.Digits, req.Digits},
		{charset.Special, req.Special},
	}

	var classes []charset.Class
	for _, t := range toggles {
		if boolOrDefault(t.on, true) {
			classes = append(classes, t.class)
		}
	}
	return classes
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func boolPtr(b bool) *bool { return &b }

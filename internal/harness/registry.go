package harness

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedLanguage is returned when no generator is registered for
// the requested language key.
var ErrUnsupportedLanguage = errors.New("unsupported programming language")

// Registry resolves a language name to its generator. Lookup is
// case-insensitive. The set of generators is fixed at construction time.
type Registry struct {
	generators map[string]Generator
}

func NewRegistry(generators ...Generator) *Registry {
	m := make(map[string]Generator, len(generators))
	for _, g := range generators {
		m[strings.ToLower(g.Language())] = g
	}
	return &Registry{generators: m}
}

func (r *Registry) Resolve(language string) (Generator, error) {
	g, ok := r.generators[strings.ToLower(language)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}
	return g, nil
}

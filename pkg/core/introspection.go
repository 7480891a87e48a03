package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Notes          int            `json:"notes"`
	Categories     map[string]int `json:"categories"`
	RepositoryType string         `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	state := ServiceState{
		Categories:     make(map[string]int, len(s.categories)),
		RepositoryType: repoType,
	}
	for _, c := range s.categories {
		state.Categories[c.name] = len(c.notes)
		state.Notes += len(c.notes)
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)

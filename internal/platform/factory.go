package platform

import (
	"github.com/aretw0/noteapp/pkg/core"
)

// New creates a notes service backed by the data file at uri.
//
//	svc, err := noteapp.New("notes_data.json", noteapp.WithVersioning(true))
//
// The stored notes are not loaded; call Service.Load.
func New(uri string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := o.initRepo(uri)
	if err != nil {
		return nil, err
	}
	return core.NewService(repo, o.logger), nil
}

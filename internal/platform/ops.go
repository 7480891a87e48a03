package platform

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/noteapp/pkg/adapters/fs"
	"github.com/aretw0/noteapp/pkg/core"
)

// Init builds and initializes the repository for the data file at uri.
// An injected repository is returned as is.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o.initRepo(uri)
}

func (o *options) initRepo(uri string) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	var repo core.Repository
	var err error

	switch o.adapter {
	case "fs":
		repo, err = initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if initializer, ok := repo.(core.Initializer); ok {
		if err := initializer.Initialize(context.Background()); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// initFS builds the file store.
func initFS(path string, o *options) (*fs.Store, error) {
	autoInit, _ := o.config["auto_init"].(bool)
	versioning, _ := o.config["versioning"].(bool)
	tempDir, _ := o.config["temp_dir"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	isReadOnly, _ := o.config["read_only"].(bool)
	eventBuffer, _ := o.config["event_buffer"].(int)
	fileMode, _ := o.config["file_mode"].(os.FileMode)

	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}
	bypassSafety := isReadOnly || !devSafety

	useTemp := tempDir || (IsDevRun() && !bypassSafety)
	resolvedPath := ResolveDataPath(path, useTemp)

	if o.logger != nil && useTemp && resolvedPath != path {
		o.logger.Warn("running in SAFE MODE (dev sandbox)", "original_path", path, "resolved_path", resolvedPath)
	}

	var serializers map[string]fs.Serializer
	if len(o.serializers) > 0 {
		serializers = fs.DefaultSerializers()
		for ext, s := range o.serializers {
			serializer, ok := s.(fs.Serializer)
			if !ok {
				return nil, fmt.Errorf("serializer for %s must implement fs.Serializer", ext)
			}
			serializers[ext] = serializer
		}
	}

	return fs.NewStore(fs.Config{
		Path:        resolvedPath,
		Logger:      o.logger,
		AutoInit:    autoInit || useTemp,
		MustExist:   mustExist,
		Versioning:  versioning,
		ReadOnly:    isReadOnly,
		FileMode:    fileMode,
		EventBuffer: eventBuffer,
		Serializers: serializers,
	}), nil
}

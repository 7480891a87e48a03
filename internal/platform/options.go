package platform

import (
	"log/slog"
	"os"

	"github.com/aretw0/noteapp/pkg/core"
)

// options holds the internal configuration for the notes service.
type options struct {
	repository  core.Repository
	logger      *slog.Logger
	adapter     string
	config      map[string]any
	serializers map[string]any
}

// Option defines a functional option for configuring the notes service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:     "fs",
		config:      make(map[string]any),
		serializers: make(map[string]any),
	}
}

// WithSerializer registers a serializer for a file extension. It must
// implement fs.Serializer; the check happens in Init.
func WithSerializer(ext string, s any) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}

// WithAutoInit creates the data file's directory (and git repo when
// versioning) on start.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithVersioning commits the data file to git after every save.
// Off by default.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.config["versioning"] = enabled
	}
}

// WithForceTemp forces the data file into a temporary directory.
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithMustExist requires the data file's directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithLogger sets the logger for the service and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository injects a storage adapter. The file store is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter selects the storage adapter by name. Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithEventBuffer sets the capacity of the watch channel.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithFileMode sets the permissions of written data files.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.config["file_mode"] = mode
	}
}

// WithReadOnly makes saves fail with core.ErrReadOnly and skips directory
// and git initialization. The dev sandbox is bypassed.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithDevSafety controls the sandbox used under `go run` and `go test`:
// when on (the default) the data file is moved into a temporary directory.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

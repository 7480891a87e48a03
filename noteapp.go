package noteapp

import (
	"log/slog"
	"os"

	"github.com/aretw0/noteapp/internal/platform"
	"github.com/aretw0/noteapp/pkg/adapters/fs"
	"github.com/aretw0/noteapp/pkg/core"
)

// DefaultFile is the data file used when no path is given.
const DefaultFile = fs.DefaultFile

// --- Types ---

// Note is a public alias for the core note.
type Note = core.Note

// Category is a public alias for the core category.
type Category = core.Category

// Service is a public alias for the core service.
type Service = core.Service

// Query is a public alias for the search query.
type Query = core.Query

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithAutoInit creates the data file's directory on start.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithVersioning commits the data file to git after every save.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithForceTemp forces the data file into a temporary directory.
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist requires the data file's directory to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository injects a storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter selects the storage adapter by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithSerializer registers an fs.Serializer for a file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// WithEventBuffer sets the capacity of the watch channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithFileMode sets the permissions of written data files.
func WithFileMode(mode os.FileMode) Option {
	return platform.WithFileMode(mode)
}

// WithReadOnly makes saves fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety toggles the temporary sandbox used under `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New creates a notes service backed by the data file at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init builds and initializes a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// ResolveDataPath returns where the data file really lives under the dev
// sandbox rules.
func ResolveDataPath(userPath string, forceTemp bool) string {
	return platform.ResolveDataPath(userPath, forceTemp)
}

// IsDevRun reports whether the process runs via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindDataFile looks upwards from startDir for a data file called name.
func FindDataFile(startDir, name string) (string, error) {
	return platform.FindDataFile(startDir, name)
}

// --- Change Reasons ---

const (
	CommitTypeAdd    = platform.CommitTypeAdd
	CommitTypeEdit   = platform.CommitTypeEdit
	CommitTypeDelete = platform.CommitTypeDelete
	CommitTypeImport = platform.CommitTypeImport
	CommitTypeChore  = platform.CommitTypeChore
)

// FormatChangeReason builds a conventional commit message for a save.
func FormatChangeReason(ctype, scope, subject, body string) string {
	return platform.FormatCommitMessage(ctype, scope, subject, body)
}

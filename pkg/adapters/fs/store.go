package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/noteapp/pkg/core"
	"github.com/aretw0/noteapp/pkg/git"
)

const (
	// DefaultFile is the data file used when Config.Path is empty.
	DefaultFile = "notes_data.json"

	// DefaultFileMode is applied to written data files.
	DefaultFileMode os.FileMode = 0644

	defaultEventBuffer = 16
)

// Config holds the configuration for the file store.
type Config struct {
	Path        string // Data file, relative to the working directory or absolute.
	Logger      *slog.Logger
	AutoInit    bool // Create the parent directory (and git repo when versioning).
	MustExist   bool // Fail Initialize when the parent directory is missing.
	Versioning  bool // Commit the data file after every Save.
	ReadOnly    bool
	FileMode    os.FileMode
	EventBuffer int
	Serializers map[string]Serializer // Keyed by extension; DefaultSerializers when nil.
}

// Store persists note collections to local files. It implements
// core.Repository for its configured path, and also reads and writes
// arbitrary paths for export and import.
type Store struct {
	Path        string
	config      Config
	logger      *slog.Logger
	git         *git.Client
	serializers map[string]Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
}

// NewStore creates a file store. Zero config fields take their defaults.
func NewStore(config Config) *Store {
	if config.Path == "" {
		config.Path = DefaultFile
	}
	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = defaultEventBuffer
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	serializers := config.Serializers
	if serializers == nil {
		serializers = DefaultSerializers()
	}

	return &Store{
		Path:        config.Path,
		config:      config,
		logger:      config.Logger,
		git:         git.NewClient(filepath.Dir(config.Path), config.Logger),
		serializers: serializers,
	}
}

// Initialize prepares the directory holding the data file and, when
// versioning, the git repository around it.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.ReadOnly {
		return nil
	}

	dir := filepath.Dir(s.Path)
	if s.config.MustExist {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: directory does not exist: %s", core.ErrFileAccess, dir)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", core.ErrFileAccess, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: not a directory: %s", core.ErrFileAccess, dir)
		}
	} else if s.config.AutoInit {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create directory: %w", core.ErrFileAccess, err)
		}
	}

	if !s.config.Versioning {
		return nil
	}
	if !git.IsInstalled() {
		return fmt.Errorf("%w: git is not installed", core.ErrVersioning)
	}
	if s.git.IsRepo() {
		return nil
	}
	if !s.config.AutoInit {
		return fmt.Errorf("%w: path is not a git repository: %s", core.ErrVersioning, dir)
	}
	if err := s.git.Init(); err != nil {
		return fmt.Errorf("%w: failed to git init: %w", core.ErrVersioning, err)
	}
	return nil
}

// Save writes notes to the configured path and, when versioning, commits the
// file. The commit message comes from core.ChangeReasonKey when set.
func (s *Store) Save(ctx context.Context, notes []*core.Note) error {
	if err := s.SaveToFile(notes, s.Path); err != nil {
		return err
	}
	if !s.config.Versioning {
		return nil
	}

	msg := fmt.Sprintf("notes: save %d notes", len(notes))
	if val, ok := ctx.Value(core.ChangeReasonKey).(string); ok && val != "" {
		msg = val
	}
	if err := s.commit(msg); err != nil {
		return fmt.Errorf("%w: %w", core.ErrVersioning, err)
	}
	return nil
}

// Load reads the configured path. See LoadFromFile.
func (s *Store) Load(ctx context.Context) ([]*core.Note, error) {
	return s.LoadFromFile(s.Path)
}

// SaveToFile writes notes to path in the format picked by its extension
// (JSON when unknown). The file is replaced atomically. Write failures wrap
// core.ErrFileAccess.
func (s *Store) SaveToFile(notes []*core.Note, path string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	records := make([]core.Record, 0, len(notes))
	for i, n := range notes {
		if n == nil {
			return fmt.Errorf("%w: note %d is nil", core.ErrValidation, i)
		}
		records = append(records, n.ToRecord())
	}

	data, err := s.serializerFor(path).Encode(records)
	if err != nil {
		return fmt.Errorf("%w: failed to encode notes: %w", core.ErrFormat, err)
	}

	if err := writeFileAtomic(path, data, s.config.FileMode); err != nil {
		return fmt.Errorf("%w: %w", core.ErrFileAccess, err)
	}

	if path == s.Path {
		ts := time.Now()
		s.mu.Lock()
		s.lastSave = &ts
		s.mu.Unlock()
	}
	s.logger.Debug("notes written", "path", path, "count", len(notes))
	return nil
}

// LoadFromFile reads the notes stored at path.
//
// A missing file and unparsable content both yield an empty collection and no
// error. A file in the legacy display format fails with core.ErrLegacyFormat
// instead, since loading it as empty would drop its notes on the next save.
// Records that cannot be rebuilt are skipped and logged. Other read failures
// wrap core.ErrFileAccess.
func (s *Store) LoadFromFile(path string) ([]*core.Note, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.Info("data file not found, nothing to load", "path", path)
		return []*core.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrFileAccess, err)
	}

	records, err := s.serializerFor(path).Decode(data)
	switch {
	case errors.Is(err, core.ErrLegacyFormat):
		return nil, fmt.Errorf("%w: %s; convert it with ImportLegacy", core.ErrLegacyFormat, path)
	case errors.Is(err, core.ErrFormat):
		s.logger.Warn("data file is malformed, nothing to load", "path", path, "error", err)
		return []*core.Note{}, nil
	case err != nil:
		return nil, err
	}

	notes := make([]*core.Note, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			s.logger.Warn("skipping record", "path", path, "index", i, "error", "not an object")
			continue
		}
		n, err := core.FromRecord(rec)
		if err != nil {
			s.logger.Warn("skipping record", "path", path, "index", i, "error", err)
			continue
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// ImportLegacy reads a data file in the legacy shape, a JSON object mapping a
// category key to a list of display strings, and rebuilds the notes in file
// order. Blocks without a category line take the key as their category.
// Blocks that cannot be parsed are skipped and logged.
func (s *Store) ImportLegacy(path string) ([]*core.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrFileAccess, err)
	}

	groups, err := decodeLegacy(data)
	if err != nil {
		return nil, err
	}

	var notes []*core.Note
	for _, g := range groups {
		for i, block := range g.blocks {
			n, err := core.ParseDisplayString(block, g.key)
			if err != nil {
				s.logger.Warn("skipping legacy note", "category", g.key, "index", i, "error", err)
				continue
			}
			notes = append(notes, n)
		}
	}
	s.logger.Info("legacy notes imported", "path", path, "count", len(notes))
	return notes, nil
}

type legacyGroup struct {
	key    string
	blocks []string
}

// decodeLegacy walks the top-level object by token to keep key order.
func decodeLegacy(data []byte) ([]legacyGroup, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", core.ErrFormat, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: legacy file must be a JSON object", core.ErrFormat)
	}

	var groups []legacyGroup
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: invalid json: %v", core.ErrFormat, err)
		}
		key, _ := tok.(string)

		var blocks []string
		if err := dec.Decode(&blocks); err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", core.ErrFormat, key, err)
		}
		groups = append(groups, legacyGroup{key: key, blocks: blocks})
	}
	return groups, nil
}

func (s *Store) serializerFor(path string) Serializer {
	if ser, ok := s.serializers[strings.ToLower(filepath.Ext(path))]; ok {
		return ser
	}
	if ser, ok := s.serializers[".json"]; ok {
		return ser
	}
	return NewJSONSerializer()
}

func (s *Store) commit(msg string) error {
	unlock, err := s.git.Lock()
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	name := filepath.Base(s.Path)
	if err := s.git.Add(name); err != nil {
		return fmt.Errorf("failed to stage %s: %w", name, err)
	}
	status, err := s.git.Status(name)
	if err != nil {
		return err
	}
	if status == "" {
		s.logger.Debug("nothing to commit", "path", s.Path)
		return nil
	}
	if err := s.git.Commit(msg); err != nil {
		return fmt.Errorf("failed to commit %s: %w", name, err)
	}
	return nil
}

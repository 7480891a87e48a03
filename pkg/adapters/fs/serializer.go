package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/noteapp/pkg/core"
)

// Serializer defines how a note collection is laid out in a specific file format.
type Serializer interface {
	// Encode renders the records in order.
	Encode(records []core.Record) ([]byte, error)
	// Decode returns the records in file order. An element that is not a
	// key-value object comes back as a nil Record so the caller can skip it.
	Decode(data []byte) ([]core.Record, error)
}

// DefaultSerializers returns the standard set of serializers keyed by file extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
		".csv":  NewCSVSerializer(),
	}
}

// entry fixes the key order of a record on disk.
type entry struct {
	Title      string `json:"title" yaml:"title"`
	Content    string `json:"content" yaml:"content"`
	Category   string `json:"category" yaml:"category"`
	CreatedAt  string `json:"created_at" yaml:"created_at"`
	ModifiedAt string `json:"modified_at" yaml:"modified_at"`
}

func toEntries(records []core.Record) []entry {
	out := make([]entry, 0, len(records))
	for _, r := range records {
		out = append(out, entry{
			Title:      r.String(core.KeyTitle),
			Content:    r.String(core.KeyContent),
			Category:   r.String(core.KeyCategory),
			CreatedAt:  r.String(core.KeyCreatedAt),
			ModifiedAt: r.String(core.KeyModifiedAt),
		})
	}
	return out
}

// --- JSON Serializer ---

// JSONSerializer handles the canonical data file: a JSON array of records.
type JSONSerializer struct{}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

// Encode writes an indented array. Non-ASCII text is kept as is.
func (s *JSONSerializer) Encode(records []core.Record) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(toEntries(records)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a JSON array of records. A top-level object in the legacy
// category -> display strings shape fails with core.ErrLegacyFormat; anything
// else that is not an array fails with core.ErrFormat.
func (s *JSONSerializer) Decode(data []byte) ([]core.Record, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", core.ErrFormat, err)
	}

	switch v := payload.(type) {
	case nil:
		return nil, nil
	case []any:
		records := make([]core.Record, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				records = append(records, nil)
				continue
			}
			records = append(records, core.Record(obj))
		}
		return records, nil
	case map[string]any:
		if isLegacyShape(v) {
			return nil, core.ErrLegacyFormat
		}
		return nil, fmt.Errorf("%w: expected an array of notes, got an object", core.ErrFormat)
	default:
		return nil, fmt.Errorf("%w: expected an array of notes, got %T", core.ErrFormat, v)
	}
}

// isLegacyShape reports whether every value of obj is a list of strings.
func isLegacyShape(obj map[string]any) bool {
	if len(obj) == 0 {
		return false
	}
	for _, v := range obj {
		items, ok := v.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return false
			}
		}
	}
	return true
}

// --- YAML Serializer ---

// YAMLSerializer lays records out as a YAML sequence of mappings.
type YAMLSerializer struct{}

func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Encode(records []core.Record) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(toEntries(records)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *YAMLSerializer) Decode(data []byte) ([]core.Record, error) {
	var payload []map[string]any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid yaml: %v", core.ErrFormat, err)
	}
	records := make([]core.Record, 0, len(payload))
	for _, m := range payload {
		if m == nil {
			records = append(records, nil)
			continue
		}
		records = append(records, core.Record(m))
	}
	return records, nil
}

// --- CSV Serializer ---

// CSVSerializer writes one row per note under a header row of record keys.
type CSVSerializer struct{}

func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

func (s *CSVSerializer) Encode(records []core.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(core.RecordKeys); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := make([]string, 0, len(core.RecordKeys))
		for _, k := range core.RecordKeys {
			row = append(row, r.String(k))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode maps columns by header name, so column order is free. Short rows
// leave the missing keys out of the record.
func (s *CSVSerializer) Decode(data []byte) ([]core.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid csv: %v", core.ErrFormat, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]core.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(core.Record, len(headers))
		for i, h := range headers {
			if i < len(row) && h != "" {
				rec[h] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

package palette

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kmarchant/chromat/internal/colour"
)

// ExportFile is the default snapshot filename.
const ExportFile = "palette.json"

// SnapshotEntry is the serialized form of one palette entry.
type SnapshotEntry struct {
	Color string `json:"color"`
	Name  string `json:"name"`
}

// Snapshot serializes the entry list as a JSON array of color/name pairs,
// pretty-printed with two-space indentation. The adjustment record is not
// part of the snapshot.
func (s *Session) Snapshot() ([]byte, error) {
	entries := make([]SnapshotEntry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = SnapshotEntry{Color: e.Colour.Hex(), Name: e.Name}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// LoadSnapshot parses a snapshot previously produced by Snapshot and
// returns its entries in order. Every colour is validated; a malformed
// colour fails with a wrapped MalformedColourError.
func LoadSnapshot(data []byte) ([]Entry, error) {
	var raw []SnapshotEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	entries := make([]Entry, len(raw))
	for i, se := range raw {
		rgb, err := colour.ParseHex(se.Color)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries[i] = Entry{Colour: rgb, Name: se.Name}
	}
	return entries, nil
}

// Export writes the snapshot to path, creating or truncating the file.
// An empty path writes to ExportFile in the working directory. The file
// handle is released whether or not the write succeeds.
func (s *Session) Export(path string) error {
	if path == "" {
		path = ExportFile
	}

	data, err := s.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to serialize palette: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 - user-specified export path, intended to be written
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("failed to write export file: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("failed to close export file: %w", cerr)
	}
	return nil
}

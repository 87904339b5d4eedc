package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StateFilename is the snapshot file name inside the data directory.
const StateFilename = "state.json"

// Save writes the graph to path atomically: the document is written to a
// temp file in the same directory and renamed over the target, so a crash
// mid-write never corrupts an existing snapshot.
func Save(path string, g Graph) error {
	data, err := json.MarshalIndent(Encode(g), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp state file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}

// Load reads a snapshot from path. On any failure (missing file,
// malformed content) it returns the default empty graph together with
// the error, so the caller can log and keep running.
func Load(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultGraph(), fmt.Errorf("reading state: %w", err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultGraph(), fmt.Errorf("decoding state: %w", err)
	}
	return Decode(s), nil
}

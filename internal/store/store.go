package store

import (
	"os"
	"path/filepath"
)

const stateDirName = ".inkcell"

// Store locates the per-workspace state directory (config, UI state db).
// Notebook documents themselves live wherever the user keeps them; only
// editor-side state is scoped to the store dir.
type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for an existing .inkcell dir.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, stateDirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the state dir for the current working directory,
// falling back to a fresh .inkcell next to it.
func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, stateDirName), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

package dataset

import (
	"fmt"
	"hash/fnv"
	"os"
	"sync"

	"polareye/models"
)

// Store memoizes both loaders for the lifetime of the process. The cache key
// is a signature of the directory listing (names, sizes, mtimes), so repeat
// calls within one session never re-read file contents, while a changed
// data directory is picked up on the next access. Invalidate drops the
// cache explicitly, which tests rely on.
type Store struct {
	dir string

	mu     sync.RWMutex
	sig    uint64
	env    *models.EnvironmentTable
	growth *models.GrowthTable
	gerr   error
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store reads from.
func (s *Store) Dir() string { return s.dir }

// Environment returns the memoized environment table, loading on first use.
func (s *Store) Environment() *models.EnvironmentTable {
	s.refresh()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.env
}

// Growth returns the memoized growth table. The error is sticky for a given
// directory signature: ErrNoGrowthWorkbook keeps being returned until the
// directory changes.
func (s *Store) Growth() (*models.GrowthTable, error) {
	s.refresh()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.growth, s.gerr
}

// Invalidate drops the cached tables; the next access reloads from disk.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sig = 0
	s.env = nil
	s.growth = nil
	s.gerr = nil
}

func (s *Store) refresh() {
	sig := listingSignature(s.dir)

	s.mu.RLock()
	hit := s.env != nil && s.sig == sig
	s.mu.RUnlock()
	if hit {
		return
	}

	env := LoadEnvironment(s.dir, models.Sites)
	growth, gerr := LoadGrowth(s.dir)

	s.mu.Lock()
	s.sig = sig
	s.env = env
	s.growth = growth
	s.gerr = gerr
	s.mu.Unlock()
}

// listingSignature hashes the immediate directory listing. File contents are
// deliberately not read; a rewrite that preserves name, size and mtime is
// invisible, which matches the one-process cache lifetime this serves.
func listingSignature(dir string) uint64 {
	h := fnv.New64a()
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(h, "err:%v", err)
		return h.Sum64()
	}
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			fmt.Fprintf(h, "%s|err", e.Name())
			continue
		}
		fmt.Fprintf(h, "%s|%d|%d;", e.Name(), info.Size(), info.ModTime().UnixNano())
	}
	return h.Sum64()
}

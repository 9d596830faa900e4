package prefs

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Store keeps a handful of plain string preference keys (locale, theme,
// soundEnabled, notificationsEnabled, serverRegion), no schema, no
// versioning. Values persist to a single flat file so a restarted session
// keeps its preferences.
type Store struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// Open loads the prefs file if it exists. A missing or unreadable file just
// means empty prefs.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating prefs dir: %w", err)
	}

	s := &Store{
		path:   filepath.Join(dir, "prefs"),
		values: make(map[string]string),
	}

	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Prefs read error, starting empty: %v", err)
		}
		return s, nil
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		k, v, ok := strings.Cut(line, "=")
		if !ok || k == "" {
			continue
		}
		s.values[k] = v
	}

	return s, nil
}

// Get returns the stored value, or fallback when the key is absent.
func (s *Store) Get(key, fallback string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

// GetBool reads a key written as "true"/"false".
func (s *Store) GetBool(key string, fallback bool) bool {
	v := s.Get(key, "")
	if v == "" {
		return fallback
	}
	return v == "true"
}

// Set stores the value and rewrites the file. Write failures are logged and
// swallowed, a lost preference is not fatal.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	if err := s.flush(); err != nil {
		log.Printf("Prefs write error: %v", err)
	}
}

func (s *Store) SetBool(key string, value bool) {
	if value {
		s.Set(key, "true")
	} else {
		s.Set(key, "false")
	}
}

func (s *Store) flush() error {
	s.mu.RLock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(s.values[k])
		b.WriteString("\n")
	}
	s.mu.RUnlock()

	return os.WriteFile(s.path, []byte(b.String()), 0o644)
}

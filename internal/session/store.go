// Package session persists the authenticated Principal across client runs.
//
// The durable form mirrors the two browser-storage keys of the web client:
// a raw token and the serialized profile JSON, kept in a state directory and
// written and cleared together.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/models"
)

// Store is the durable session storage consulted by the auth service and the
// session state at startup. Load never fails on malformed data: anything that
// does not parse into a valid Principal reads as "no session".
type Store interface {
	// Save persists token and profile together.
	Save(p *models.Principal) error
	// Load returns the previously saved Principal, or nil when no session
	// is stored or the stored data is malformed.
	Load() *models.Principal
	// Clear removes token and profile. Clearing an empty store is a no-op.
	Clear() error
	// HasToken is a fast check that a token is stored, independent of
	// profile parsing.
	HasToken() bool
	// Token returns the stored access token, or "" when absent.
	Token() string
}

const (
	tokenFile   = "token"
	profileFile = "profile.json"
)

// FileStore keeps the session under a directory on disk, one file per key.
type FileStore struct {
	dir string
}

// NewFileStore builds a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the profile first and the token last: the token file is the
// commit point, so a crash in between still reads back as "no session".
func (s *FileStore) Save(p *models.Principal) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(s.dir, profileFile), data); err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(s.dir, tokenFile), []byte(p.AccessToken))
}

func (s *FileStore) Load() *models.Principal {
	token := s.Token()
	if token == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Join(s.dir, profileFile))
	if err != nil {
		return nil
	}

	var p models.Principal
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	if !p.Valid() {
		return nil
	}
	// The token file is authoritative; a profile written by an older run
	// must not resurrect a stale credential.
	p.AccessToken = token
	return &p
}

// Clear removes the token first so a crash in between leaves no readable
// session behind.
func (s *FileStore) Clear() error {
	if err := removeIfExists(filepath.Join(s.dir, tokenFile)); err != nil {
		return err
	}
	return removeIfExists(filepath.Join(s.dir, profileFile))
}

func (s *FileStore) HasToken() bool {
	return s.Token() != ""
}

func (s *FileStore) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage defines a public type used by goConsole APIs.
//
// FileStorage keeps both slots inside a single envelope file so the pair
// commits atomically through a temp-write + rename. Two separate files
// could be observed half-written after a crash; one envelope cannot.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

type fileEnvelope struct {
	Slots map[string]string `json:"slots"`
}

// NewFileStorage describes the newfilestorage operation and its observable behavior.
//
// NewFileStorage may return an error when input validation, dependency calls, or security checks fail.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		return nil, errors.New("file storage path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &FileStorage{path: path}, nil
}

// Load describes the load operation and its observable behavior.
func (f *FileStorage) Load(context.Context) (string, []byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil, false, nil
	}
	if err != nil {
		return "", nil, false, err
	}

	var env fileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		// A torn or hand-edited file means no session.
		return "", nil, false, nil
	}

	token, tok := env.Slots[tokenSlot]
	identity, iok := env.Slots[identitySlot]
	if !tok || !iok || token == "" || identity == "" {
		return "", nil, false, nil
	}
	return token, []byte(identity), true, nil
}

// Store describes the store operation and its observable behavior.
func (f *FileStorage) Store(_ context.Context, token string, identity []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	env := fileEnvelope{Slots: map[string]string{
		tokenSlot:    token,
		identitySlot: string(identity),
	}}
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return f.writeAtomic(data)
}

// Clear describes the clear operation and its observable behavior.
func (f *FileStorage) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (f *FileStorage) writeAtomic(data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path)
}

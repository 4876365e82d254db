package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newFileStorageTest(t *testing.T) (*FileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "session.json")
	storage, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("new file storage: %v", err)
	}
	return storage, path
}

func TestFileStorePairRoundTrip(t *testing.T) {
	storage, _ := newFileStorageTest(t)
	ctx := context.Background()

	if _, _, ok, err := storage.Load(ctx); err != nil || ok {
		t.Fatalf("expected empty storage, ok=%v err=%v", ok, err)
	}

	if err := storage.Store(ctx, "tok-1", []byte(`{"v":2,"id":1,"role":"admin"}`)); err != nil {
		t.Fatalf("store: %v", err)
	}

	token, identity, ok, err := storage.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok || token != "tok-1" || len(identity) == 0 {
		t.Fatalf("unexpected pair: token=%q identity=%q ok=%v", token, identity, ok)
	}
}

func TestFileClearRemovesEnvelope(t *testing.T) {
	storage, path := newFileStorageTest(t)
	ctx := context.Background()

	if err := storage.Store(ctx, "tok-1", []byte("id")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := storage.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := storage.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("envelope file survived clear: %v", err)
	}
}

func TestFileTornEnvelopeLoadsAsAbsent(t *testing.T) {
	storage, path := newFileStorageTest(t)
	ctx := context.Background()

	if err := os.WriteFile(path, []byte(`{"slots":{"auth_tok`), 0o600); err != nil {
		t.Fatalf("seed torn file: %v", err)
	}

	_, _, ok, err := storage.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("torn envelope must load as absent")
	}
}

func TestFileMissingSlotLoadsAsAbsent(t *testing.T) {
	storage, path := newFileStorageTest(t)
	ctx := context.Background()

	if err := os.WriteFile(path, []byte(`{"slots":{"auth_token":"tok-only"}}`), 0o600); err != nil {
		t.Fatalf("seed token-only envelope: %v", err)
	}

	_, _, ok, err := storage.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("token without identity must load as absent")
	}
}

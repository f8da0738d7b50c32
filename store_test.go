package goldtrack

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	s := &FileStore{Dir: t.TempDir()}

	if _, ok, err := s.Get(ctx, KeyPriceCache); err != nil || ok {
		t.Fatalf("missing key: got ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set(ctx, KeyPriceCache, `{"gramPrice":5000}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, ok, err := s.Get(ctx, KeyPriceCache)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if got != `{"gramPrice":5000}` {
		t.Errorf("value = %q", got)
	}

	// Overwrite replaces, never appends.
	if err := s.Set(ctx, KeyPriceCache, `{"gramPrice":5100}`); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _, _ = s.Get(ctx, KeyPriceCache)
	if got != `{"gramPrice":5100}` {
		t.Errorf("value after overwrite = %q", got)
	}
}

func TestFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := &FileStore{Dir: dir}

	if err := s.Set(context.Background(), KeyAlarmConfig, "{}"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, KeyAlarmConfig+".json")); err != nil {
		t.Errorf("record file missing: %v", err)
	}
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	s := &FileStore{Dir: t.TempDir()}
	for range 5 {
		if err := s.Set(context.Background(), KeyTransactions, "line"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d files in store dir, want 1", len(entries))
	}
}

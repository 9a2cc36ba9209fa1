package artifact

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestWriteFile_CreatesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "raw-dump-formatted.txt")

	if err := WriteFile(context.Background(), dest, writeString("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := WriteFile(context.Background(), dest, writeString("second")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the artifact to remain, found %v", names)
	}
}

func TestWriteFile_FailureKeepsPreviousArtifact(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(dest, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := WriteFile(context.Background(), dest, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "previous" {
		t.Errorf("content = %q, want previous artifact intact", data)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, ".out.txt.tmp-*"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

func TestWriteFile_Locked(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.txt")

	held := flock.New(dest + ".lock")
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock() = %v, %v", ok, err)
	}
	defer func() { _ = held.Unlock() }()

	err = WriteFile(context.Background(), dest, writeString("x"))
	if !errors.Is(err, ErrLocked) {
		t.Errorf("expected ErrLocked, got: %v", err)
	}
	if _, statErr := os.Stat(dest); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("artifact written despite lock: %v", statErr)
	}
}

func TestWriteFile_ContextCancelled(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteFile(ctx, dest, writeString("x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "out.txt")
	if err := WriteFile(context.Background(), dest, writeString("x")); err == nil {
		t.Error("expected error for missing directory")
	}
}

package artifact

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked indicates another process is writing the same artifact.
var ErrLocked = errors.New("artifact: destination is locked by another run")

const (
	defaultPermFile = 0o644
	defaultBufSize  = 64 * 1024
)

// WriteFile replaces dest with whatever write produces. The content goes to a
// temporary file in dest's directory that is renamed over dest only after it
// has been flushed and synced, so readers never see a partial artifact. A
// sibling "<dest>.lock" file serializes concurrent writers of the same dest.
func WriteFile(ctx context.Context, dest string, write func(io.Writer) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	lockPath := dest + ".lock"
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, dest)
	}
	defer func() {
		unlockErr := lock.Unlock()
		_ = os.Remove(lockPath)
		if err == nil && unlockErr != nil {
			err = fmt.Errorf("release lock: %w", unlockErr)
		}
	}()

	return writeAtomic(ctx, dest, write)
}

func writeAtomic(ctx context.Context, dest string, write func(io.Writer) error) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	bw := bufio.NewWriterSize(tmp, defaultBufSize)
	if err := write(bw); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(fmt.Errorf("flush: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("sync: %w", err))
	}
	if err := tmp.Chmod(defaultPermFile); err != nil {
		return fail(fmt.Errorf("chmod: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", dest, err)
	}
	return nil
}

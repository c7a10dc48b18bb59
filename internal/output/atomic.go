// Package output writes report documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
)

// ExpandPath fills the {job} and {period} placeholders of an output path.
func ExpandPath(pattern, job string, period entity.Period) string {
	return strings.NewReplacer("{job}", job, "{period}", period.String()).Replace(pattern)
}

// WriteFileAtomic writes data to a temp file next to path, syncs it and renames
// it over path. Readers see either the old file or the complete new one.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

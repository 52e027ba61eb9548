// /home/krylon/go/src/github.com/blicero/herald/persist/atomic.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-04 21:12:50 krylon>

package persist

import (
	"fmt"
	"os"
	"path/filepath"
)

const tmpPrefix = ".herald-tmp-"

// writeFileAtomic writes data to a temporary file next to filename and
// renames it into place, so readers never see a partially written file.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	var (
		err error
		tmp *os.File
		dir = filepath.Dir(filename)
	)

	if tmp, err = os.CreateTemp(dir, tmpPrefix+"*"); err != nil {
		return fmt.Errorf("Cannot create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // nolint: errcheck

	if _, err = tmp.Write(data); err != nil {
		tmp.Close() // nolint: errcheck
		return fmt.Errorf("Cannot write to temp file %s: %w", tmp.Name(), err)
	} else if err = tmp.Sync(); err != nil {
		tmp.Close() // nolint: errcheck
		return fmt.Errorf("Cannot sync temp file %s: %w", tmp.Name(), err)
	} else if err = tmp.Close(); err != nil {
		return fmt.Errorf("Cannot close temp file %s: %w", tmp.Name(), err)
	} else if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("Cannot chmod temp file %s: %w", tmp.Name(), err)
	} else if err = os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("Cannot rename %s to %s: %w", tmp.Name(), filename, err)
	}

	return nil
} // func writeFileAtomic(filename string, data []byte, perm os.FileMode) error

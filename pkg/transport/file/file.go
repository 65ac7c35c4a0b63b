// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/mia-platform/loglane/pkg/colorutil"
	"github.com/mia-platform/loglane/pkg/formatter"
	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/transport"
)

var (
	_ transport.Transport = &Transport{}
	_ io.Closer           = &Transport{}
)

const (
	filePermissions = 0o644
	dirPermissions  = 0o755
)

// Options configures a file transport.
type Options struct {
	Path string
	// MaxSize is the size in bytes a file may reach before rotation. Zero disables rotation.
	MaxSize int64
	// MaxFiles is the number of archived files kept. Zero keeps every archive.
	MaxFiles int
}

// Transport appends one line per record to a file.
type Transport struct {
	path     string
	maxSize  int64
	maxFiles int

	file *os.File
	size int64
	lock sync.Mutex
}

func New(opts Options) *Transport {
	return &Transport{
		path:     opts.Path,
		maxSize:  opts.MaxSize,
		maxFiles: opts.MaxFiles,
	}
}

// Path returns the path of the active log file.
func (t *Transport) Path() string {
	return t.path
}

// ArchivePath returns the path of the n-th archive, 1 being the most recent.
func (t *Transport) ArchivePath(n int) string {
	return t.path + "." + strconv.Itoa(n)
}

func (t *Transport) Write(data *logdata.Data, f *formatter.Formatter) error {
	line := colorutil.Strip(f.Format(data)) + "\n"

	t.lock.Lock()
	defer t.lock.Unlock()

	if err := t.open(); err != nil {
		return err
	}

	if t.shouldRotate(int64(len(line))) {
		if err := t.rotate(); err != nil {
			return err
		}
	}

	written, err := io.WriteString(t.file, line)
	t.size += int64(written)
	if err != nil {
		return fmt.Errorf("write log file %q: %w", t.path, err)
	}
	return nil
}

// Close closes the underlying file. A later Write reopens it.
func (t *Transport) Close() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.file == nil {
		return nil
	}

	err := t.file.Close()
	t.file = nil
	return err
}

func (t *Transport) open() error {
	if t.file != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(t.path), dirPermissions); err != nil {
		return fmt.Errorf("open log file %q: %w", t.path, err)
	}

	file, err := os.OpenFile(t.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermissions)
	if err != nil {
		return fmt.Errorf("open log file %q: %w", t.path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("open log file %q: %w", t.path, err)
	}

	t.file = file
	t.size = info.Size()
	return nil
}

// shouldRotate reports whether writing pending bytes would push the file past the
// size limit. An empty file is never rotated so oversized lines are still written.
func (t *Transport) shouldRotate(pending int64) bool {
	return t.maxSize > 0 && t.size > 0 && t.size+pending > t.maxSize
}

func (t *Transport) rotate() error {
	if err := t.file.Close(); err != nil {
		return fmt.Errorf("rotate log file %q: %w", t.path, err)
	}
	t.file = nil

	if err := t.shiftArchives(); err != nil {
		return fmt.Errorf("rotate log file %q: %w", t.path, err)
	}

	if err := os.Rename(t.path, t.ArchivePath(1)); err != nil {
		return fmt.Errorf("rotate log file %q: %w", t.path, err)
	}

	return t.open()
}

// shiftArchives moves every archive one generation back, dropping the ones beyond maxFiles.
func (t *Transport) shiftArchives() error {
	last := t.maxFiles
	if last <= 0 {
		last = t.lastArchive() + 1
	}

	if err := os.Remove(t.ArchivePath(last)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for n := last - 1; n >= 1; n-- {
		if err := os.Rename(t.ArchivePath(n), t.ArchivePath(n+1)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}

func (t *Transport) lastArchive() int {
	n := 0
	for {
		if _, err := os.Stat(t.ArchivePath(n + 1)); err != nil {
			return n
		}
		n++
	}
}

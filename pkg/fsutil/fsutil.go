// Package fsutil provides the file system helpers breeze needs around
// buffers and configuration files: reading a file as buffer lines,
// detecting content changes, atomic writes and sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates insufficient permissions.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// Buffer is a file read as editor lines.
type Buffer struct {
	// Path is the path the buffer was read from.
	Path string

	// Lines holds the file split on '\n'. A trailing newline does not
	// add an empty last line and the '\r' of CRLF endings is dropped.
	Lines []string

	// Content is the raw file content.
	Content []byte

	// Hash is the SHA-256 hash of Content.
	Hash [32]byte
}

// ReadBuffer reads path as buffer lines.
func ReadBuffer(ctx context.Context, path string) (*Buffer, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read buffer: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(path, err)
	}

	return &Buffer{
		Path:    path,
		Lines:   SplitLines(content),
		Content: content,
		Hash:    sha256.Sum256(content),
	}, nil
}

// SplitLines splits content into buffer lines. Empty content is one
// empty line, as in an editor.
func SplitLines(content []byte) []string {
	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return []string{""}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Changed reports whether the file at b.Path no longer holds b's content.
// A file that cannot be read counts as unchanged.
func (b *Buffer) Changed() bool {
	content, err := os.ReadFile(b.Path)
	if err != nil {
		return false
	}
	return sha256.Sum256(content) != b.Hash
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

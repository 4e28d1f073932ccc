package ingest

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/slaytrack/slaytrack/internal/domain"
)

// File extensions accepted by the upload surface
const (
	runFileExt = ".run"
	zipFileExt = ".zip"
)

// Upload is one uploaded file, opened lazily so multipart bodies are only
// read when needed.
type Upload struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// CollectFiles gathers run documents from a mixed set of uploads. Plain
// .run files are read directly; .zip archives are staged in a temporary
// directory under tempDir and searched for .run entries at any depth. Other
// file types are silently skipped.
//
// The staging directory is removed on every path, including errors. A
// corrupt archive fails the whole collection with domain.ErrBadArchive;
// finding nothing usable fails with domain.ErrNoValidFiles.
func CollectFiles(uploads []Upload, tempDir string) (files []File, err error) {
	staging, err := os.MkdirTemp(tempDir, "extract-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	for i, u := range uploads {
		switch {
		case strings.HasSuffix(u.Name, zipFileExt):
			collected, err := collectFromArchive(u, staging, i)
			if err != nil {
				return nil, err
			}
			files = append(files, collected...)

		case strings.HasSuffix(u.Name, runFileExt):
			content, err := readUpload(u)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", u.Name, err)
			}
			files = append(files, File{Name: u.Name, Content: content})
		}
	}

	if len(files) == 0 {
		return nil, domain.ErrNoValidFiles
	}
	return files, nil
}

// collectFromArchive stages one uploaded archive on disk and pulls every
// .run entry out of it.
func collectFromArchive(u Upload, staging string, index int) ([]File, error) {
	src, err := u.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", u.Name, err)
	}
	defer src.Close()

	path := filepath.Join(staging, fmt.Sprintf("upload-%d.zip", index))
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stage %s: %w", u.Name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return nil, fmt.Errorf("failed to stage %s: %w", u.Name, err)
	}
	if err := dst.Close(); err != nil {
		return nil, fmt.Errorf("failed to stage %s: %w", u.Name, err)
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBadArchive, u.Name)
		}
		return nil, fmt.Errorf("failed to open archive %s: %w", u.Name, err)
	}
	defer reader.Close()

	var files []File
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || !strings.HasSuffix(entry.Name, runFileExt) {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from %s: %w", entry.Name, u.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from %s: %w", entry.Name, u.Name, err)
		}

		files = append(files, File{Name: filepath.Base(entry.Name), Content: content})
	}
	return files, nil
}

func readUpload(u Upload) ([]byte, error) {
	rc, err := u.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

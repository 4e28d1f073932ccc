package ingest

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/slaytrack/slaytrack/internal/domain"
)

func bytesUpload(name string, content []byte) Upload {
	return Upload{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func zipUpload(t *testing.T, name string, entries map[string][]byte) Upload {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for entryName, content := range entries {
		f, err := w.Create(entryName)
		if err != nil {
			t.Fatalf("Failed to add %s to archive: %v", entryName, err)
		}
		if _, err := f.Write(content); err != nil {
			t.Fatalf("Failed to write %s: %v", entryName, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish archive: %v", err)
	}
	return bytesUpload(name, buf.Bytes())
}

func TestCollectFiles_PlainRunFiles(t *testing.T) {
	files, err := CollectFiles([]Upload{
		bytesUpload("first.run", []byte(`{"play_id": "a"}`)),
		bytesUpload("second.run", []byte(`{"play_id": "b"}`)),
	}, t.TempDir())
	if err != nil {
		t.Fatalf("CollectFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if files[0].Name != "first.run" || string(files[0].Content) != `{"play_id": "a"}` {
		t.Errorf("First file wrong: %s %s", files[0].Name, files[0].Content)
	}
}

func TestCollectFiles_ZipArchive(t *testing.T) {
	archive := zipUpload(t, "runs.zip", map[string][]byte{
		"exports/run1.run":  []byte(`{"play_id": "a"}`),
		"exports/run2.run":  []byte(`{"play_id": "b"}`),
		"exports/notes.txt": []byte("not a run"),
	})

	files, err := CollectFiles([]Upload{archive}, t.TempDir())
	if err != nil {
		t.Fatalf("CollectFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 run entries, got %d", len(files))
	}
	for _, f := range files {
		// Archive paths are flattened to base names.
		if f.Name != "run1.run" && f.Name != "run2.run" {
			t.Errorf("Unexpected entry name %s", f.Name)
		}
	}
}

func TestCollectFiles_MixedUploads(t *testing.T) {
	archive := zipUpload(t, "runs.zip", map[string][]byte{
		"run1.run": []byte(`{"play_id": "a"}`),
	})

	files, err := CollectFiles([]Upload{
		archive,
		bytesUpload("direct.run", []byte(`{"play_id": "b"}`)),
		bytesUpload("readme.md", []byte("ignored")),
	}, t.TempDir())
	if err != nil {
		t.Fatalf("CollectFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
}

func TestCollectFiles_BadArchive(t *testing.T) {
	_, err := CollectFiles([]Upload{
		bytesUpload("broken.zip", []byte("this is not a zip file")),
	}, t.TempDir())

	if !errors.Is(err, domain.ErrBadArchive) {
		t.Errorf("CollectFiles with corrupt archive = %v, want ErrBadArchive", err)
	}
}

func TestCollectFiles_NothingUsable(t *testing.T) {
	tests := [][]Upload{
		{},
		{bytesUpload("readme.md", []byte("ignored"))},
	}

	for _, uploads := range tests {
		_, err := CollectFiles(uploads, t.TempDir())
		if !errors.Is(err, domain.ErrNoValidFiles) {
			t.Errorf("CollectFiles(%d uploads) = %v, want ErrNoValidFiles", len(uploads), err)
		}
	}
}

func TestCollectFiles_EmptyArchiveIsNotUsable(t *testing.T) {
	archive := zipUpload(t, "empty.zip", map[string][]byte{
		"notes.txt": []byte("no runs here"),
	})

	_, err := CollectFiles([]Upload{archive}, t.TempDir())
	if !errors.Is(err, domain.ErrNoValidFiles) {
		t.Errorf("Archive without runs = %v, want ErrNoValidFiles", err)
	}
}

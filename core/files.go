package core

import (
	"os"
	"path/filepath"
)

// failedReader reports an open failure when the pipeline reads the source.
type failedReader struct {
	err error
}

func (r failedReader) Read([]byte) (int, error) {
	return 0, r.err
}

// FileSources opens the given paths as pipeline sources named by their base name.
// Empty paths are skipped. A file that cannot be opened still yields a source,
// so the failure is recorded as a ParseError while the other file is processed.
// The returned func closes every opened file.
func FileSources(paths ...string) ([]Source, func()) {
	var sources []Source
	var files []*os.File
	for _, path := range paths {
		if path == "" {
			continue
		}
		name := filepath.Base(path)
		file, err := os.Open(path)
		if err != nil {
			sources = append(sources, Source{Name: name, Reader: failedReader{err: err}})
			continue
		}
		files = append(files, file)
		sources = append(sources, Source{Name: name, Reader: file})
	}
	return sources, func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
}

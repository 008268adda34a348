package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileProvider reads a single plain-text or PDF document from disk.
// The reference may be a glob pattern as long as it matches exactly one file.
type FileProvider struct {
	extensions map[string]struct{}
}

func NewFileProvider() *FileProvider {
	return &FileProvider{extensions: map[string]struct{}{
		"": {}, ".txt": {}, ".text": {}, ".md": {}, ".markdown": {}, ".pdf": {},
	}}
}

func (p *FileProvider) Fetch(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	matches, err := filepath.Glob(ref)
	if err != nil {
		return "", err
	}
	if matches == nil {
		if strings.ContainsAny(ref, "*?[") {
			return "", fmt.Errorf("%w: %s", ErrNoMatch, ref)
		}
		matches = []string{ref}
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("%w: %s (%d files)", ErrMultipleDocuments, ref, len(matches))
	}
	path := matches[0]
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := p.extensions[ext]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if ext == ".pdf" {
		return readPDF(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	return pdfText(f, info.Size())
}

package input

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=loader.go -destination=mocks/loader_mock.go -package=mocks

var ErrInputNotFound = errors.New("input file not found")

// Loader supplies the raw puzzle text for a day.
type Loader interface {
	Load(ctx context.Context, day int) (string, error)
}

// FileLoader reads <Dir>/dayNN.txt unless Paths has an explicit file for the day.
type FileLoader struct {
	Dir   string
	Paths map[int]string
}

func NewFileLoader(dir string, paths map[int]string) *FileLoader {
	if paths == nil {
		paths = make(map[int]string)
	}
	return &FileLoader{
		Dir:   dir,
		Paths: paths,
	}
}

func (l *FileLoader) Path(day int) string {
	if p, ok := l.Paths[day]; ok && p != "" {
		return p
	}
	return filepath.Join(l.Dir, fmt.Sprintf("day%02d.txt", day))
}

func (l *FileLoader) Load(ctx context.Context, day int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := l.Path(day)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", path, err)
	}

	return string(data), nil
}

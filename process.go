package slang

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// FileResult is the expansion of one input file.
type FileResult struct {
	Path   string
	Output string
}

// ExpandFiles expands every file named by paths against the store. A path
// naming a directory is walked and every regular file under it is expanded.
// Results come back sorted by path. Expansion of a single file cannot fail,
// so the only errors are filesystem ones.
func ExpandFiles(ctx context.Context, logger *zap.Logger, store *MacroStore, paths []string) ([]FileResult, error) {
	var results []FileResult
	for _, path := range paths {
		res, err := expandPath(ctx, logger, store, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		results = append(results, res...)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func expandPath(ctx context.Context, logger *zap.Logger, store *MacroStore, path string) ([]FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		res, err := expandFile(store, path)
		if err != nil {
			return nil, err
		}
		return []FileResult{res}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fileInfo.Mode().IsRegular() {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	resultChan := make(chan FileResult, len(files))
	errorChan := make(chan error, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()

				res, err := expandFile(store, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
					resultChan <- FileResult{}
				} else {
					resultChan <- res
					errorChan <- nil
				}
				bar.Add(1)
			}(filePath)
		}
	}

	var results []FileResult
	var firstErr error
	for range files {
		if err := <-errorChan; err != nil && firstErr == nil {
			firstErr = err
		}
		if res := <-resultChan; res.Path != "" {
			results = append(results, res)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func expandFile(store *MacroStore, path string) (FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return FileResult{Path: path, Output: Expand(string(data), store)}, nil
}

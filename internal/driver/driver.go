package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"dvm/internal/bytecode"
	"dvm/internal/disasm"
)

// Result содержит результат дизассемблирования одного контейнера
type Result struct {
	Path   string // Путь к входному контейнеру
	Source string // Восстановленный исходный текст
}

// DisasmFile reads one module container and restores its source text.
func DisasmFile(path string, opt disasm.Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	source, err := disasm.Disasm(data, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Result{Path: path, Source: source}, nil
}

// listModFiles возвращает отсортированный список всех контейнеров в директории
func listModFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, bytecode.FileExt) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// DisasmDir disassembles every module container under dir in parallel.
// Modules share no state, so each file is decoded independently; results
// keep the sorted file order. The first failure cancels the remaining work.
func DisasmDir(ctx context.Context, dir string, opt disasm.Options, jobs int) ([]*Result, error) {
	files, err := listModFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers in %q: %w", dir, err)
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := DisasmFile(path, opt)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// OutputName converts a container file name into its source file name.
func OutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".move"
}

// WriteSource writes a result's source text next to the input, or under
// outDir when it is non-empty. Returns the path written.
func WriteSource(res *Result, outDir string) (string, error) {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(res.Path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}
	out := filepath.Join(dir, OutputName(res.Path))
	if err := os.WriteFile(out, []byte(res.Source), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", out, err)
	}
	return out, nil
}

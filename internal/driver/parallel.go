package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"wright/internal/ast"
	"wright/internal/diag"
	"wright/internal/source"
)

// ListSources возвращает отсортированный список файлов dir, выбранных
// include-шаблонами и не попавших под exclude. Пути содержат dir.
func ListSources(dir string, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = []string{DefaultInclude}
	}
	for _, pat := range append(slices.Clone(include), exclude...) {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid glob pattern %q", pat)
		}
	}

	fsys := os.DirFS(dir)
	seen := make(map[string]struct{})
	var files []string
	for _, pat := range include {
		matches, err := doublestar.Glob(fsys, pat, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q in %s: %w", pat, dir, err)
		}
		for _, rel := range matches {
			if _, dup := seen[rel]; dup || excluded(rel, exclude) {
				continue
			}
			seen[rel] = struct{}{}
			files = append(files, filepath.Join(dir, filepath.FromSlash(rel)))
		}
	}

	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

func excluded(rel string, exclude []string) bool {
	for _, pat := range exclude {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}

// ExpandPaths turns command line arguments into source files: directories are
// walked with ListSources, files and "-" are kept as given.
func ExpandPaths(paths []string, opts Options) ([]string, error) {
	var out []string
	for _, p := range paths {
		if p == StdinPath {
			out = append(out, p)
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			// ошибку загрузки покажет сама проверка файла
			if errors.Is(err, fs.ErrNotExist) {
				out = append(out, p)
				continue
			}
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		files, err := ListSources(p, opts.Include, opts.Exclude)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}

// FileResult содержит результат обработки одного файла
type FileResult struct {
	Path   string
	Source *source.Source // nil, если файл не загрузился
	File   *ast.File      // nil для Check и при ошибке загрузки
	Bag    *diag.Bag
	Cached bool
}

// RunResult собирает результаты по всем файлам в порядке входных путей.
type RunResult struct {
	Sources *source.Map
	Files   []FileResult
}

// Diagnostics returns the diagnostics of every file, sorted.
func (r *RunResult) Diagnostics() []diag.Diagnostic {
	all := diag.NewBag(0)
	for _, f := range r.Files {
		all.Merge(f.Bag)
	}
	all.Sort()
	return all.Items()
}

// HasErrors reports whether any file has an error diagnostic.
func (r *RunResult) HasErrors() bool {
	for _, f := range r.Files {
		if f.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Close releases the locks of every loaded source.
func (r *RunResult) Close() error {
	if r == nil || r.Sources == nil {
		return nil
	}
	return r.Sources.Close()
}

// ParseDir парсит все исходники в директории параллельно, сохраняя AST.
func ParseDir(ctx context.Context, dir string, opts Options) (*RunResult, error) {
	files, err := ListSources(dir, opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}
	return run(ctx, files, opts, true)
}

// Check parses every file named by paths and keeps only diagnostics.
// Files whose contents were checked before are served from opts.Cache.
func Check(ctx context.Context, paths []string, opts Options) (*RunResult, error) {
	files, err := ExpandPaths(paths, opts)
	if err != nil {
		return nil, err
	}
	return run(ctx, files, opts, false)
}

func run(ctx context.Context, files []string, opts Options, keepAST bool) (*RunResult, error) {
	res := &RunResult{
		Sources: source.NewMap(),
		Files:   make([]FileResult, len(files)),
	}
	if len(files) == 0 {
		return res, nil
	}

	done := opts.Timer.Track("check")
	defer func() { done(fmt.Sprintf("%d files", len(files))) }()

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}
			// индекс i уникален для горутины, мьютекс не нужен
			res.Files[i] = processFile(gctx, path, res.Sources, opts, keepAST)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}

func processFile(ctx context.Context, path string, sources *source.Map, opts Options, keepAST bool) FileResult {
	start := time.Now()
	bag := diag.NewBag(opts.MaxDiagnostics)
	fr := FileResult{Path: path, Bag: bag}

	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	src, err := Open(ctx, path)
	if err != nil {
		logger().Debugf("load %s: %v", path, err)
		bag.Add(diag.FromLoadError(err))
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return fr
	}
	sources.Add(src)
	fr.Source = src

	if !keepAST && cacheLookup(src, bag, opts) {
		fr.Cached = true
		finish(opts.Progress, fr, StageCache, start)
		return fr
	}

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	file := analyze(src, diag.BagReporter{Bag: bag}, opts.MaxDiagnostics)
	if keepAST {
		fr.File = file
	} else if opts.Cache != nil {
		if err := opts.Cache.Put(KeyFor(src, opts.MaxDiagnostics), toPayload(src, bag.Items())); err != nil {
			logger().Warningf("cache store for %s: %v", path, err)
		}
	}
	finish(opts.Progress, fr, StageParse, start)
	return fr
}

func cacheLookup(src *source.Source, bag *diag.Bag, opts Options) bool {
	if opts.Cache == nil {
		return false
	}
	var payload DiskPayload
	hit, err := opts.Cache.Get(KeyFor(src, opts.MaxDiagnostics), &payload)
	if err != nil {
		logger().Debugf("cache read for %s: %v", src.Name(), err)
		return false
	}
	if !hit {
		logger().Debugf("cache miss: %s", src.Name())
		return false
	}
	diags, ok := payload.diagnostics(src)
	if !ok {
		return false
	}
	logger().Debugf("cache hit: %s", src.Name())
	for _, d := range diags {
		bag.Add(d)
	}
	return true
}

func finish(sink ProgressSink, fr FileResult, stage Stage, start time.Time) {
	status := StatusDone
	if fr.Bag.HasErrors() {
		status = StatusError
	}
	emit(sink, Event{File: fr.Path, Stage: stage, Status: status, Elapsed: time.Since(start)})
}

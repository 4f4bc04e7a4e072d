// Package emitter writes rendered projects to disk. Emission is
// idempotent: re-running generation for the same platform and output
// directory overwrites prior files in place. A single file failure is
// recorded, not fatal; the remaining files are still written.
package emitter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ismailco/pwa2native/internal/errors"
	"github.com/ismailco/pwa2native/internal/logging"
	"github.com/ismailco/pwa2native/internal/renderer"
)

const (
	dirPerm        os.FileMode = 0o755
	filePerm       os.FileMode = 0o644
	executablePerm os.FileMode = 0o755
)

// FileResult is the outcome of writing one file.
type FileResult struct {
	RelPath string
	Err     error
}

// Result aggregates per-file outcomes for one platform emission.
type Result struct {
	Platform string
	Root     string
	Files    []FileResult
}

// Written counts successfully written files.
func (r *Result) Written() int {
	n := 0
	for _, f := range r.Files {
		if f.Err == nil {
			n++
		}
	}

	return n
}

// Failed returns the file results that carry an error.
func (r *Result) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}

	return failed
}

// OK reports whether every file was written.
func (r *Result) OK() bool {
	return len(r.Failed()) == 0 && len(r.Files) > 0
}

// Emitter writes rendered project trees under an output root.
type Emitter struct {
	logger logging.Logger
}

// New creates an emitter.
func New(logger logging.Logger) *Emitter {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &Emitter{logger: logger.WithComponent("emitter")}
}

// Emit writes the project under outputRoot/<platform>/, creating parent
// directories as needed and setting the executable bit exactly for files
// flagged executable.
func (e *Emitter) Emit(ctx context.Context, project *renderer.RenderedProject, outputRoot string) *Result {
	platformDir := filepath.Join(outputRoot, string(project.Platform))
	result := &Result{
		Platform: string(project.Platform),
		Root:     platformDir,
		Files:    make([]FileResult, 0, len(project.Files)),
	}

	for _, file := range project.Files {
		err := e.writeFile(platformDir, file)
		if err != nil {
			err = errors.NewEmitError(filepath.Join(platformDir, file.RelPath), err).
				WithPlatform(string(project.Platform))
			e.logger.Warn(ctx, err, "file write failed", "path", file.RelPath)
		}
		result.Files = append(result.Files, FileResult{RelPath: file.RelPath, Err: err})
	}

	e.logger.Debug(ctx, "emission complete",
		"platform", result.Platform,
		"written", result.Written(),
		"failed", len(result.Failed()))

	return result
}

func (e *Emitter) writeFile(platformDir string, file renderer.RenderedFile) error {
	target := filepath.Join(platformDir, filepath.FromSlash(file.RelPath))

	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return err
	}

	perm := filePerm
	if file.Executable {
		perm = executablePerm
	}

	if err := os.WriteFile(target, file.Data, perm); err != nil {
		return err
	}

	// WriteFile does not change the mode of an existing file; chmod keeps
	// overwrites idempotent when the executable flag applies.
	if file.Executable {
		return os.Chmod(target, executablePerm)
	}

	return nil
}

// Package batch processes a directory of documents into one output record
// per input file.
//
// Every input yields exactly one record: documents that fail to decode,
// exceed the time budget or panic during extraction are logged and emitted
// as the default empty result instead of aborting the run. An optional
// SQLite cache re-emits records for unchanged inputs without decoding
// them.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tsawler/contour"
	"github.com/tsawler/contour/internal/cache"
	"github.com/tsawler/contour/model"
)

// Config controls one batch run.
type Config struct {
	// InputDir is scanned for documents matching Glob.
	InputDir string
	// OutputDir receives one <stem>.json record per input document.
	OutputDir string
	// Glob matches input base names. Default "*.pdf".
	Glob string
	// Workers bounds concurrent document processing. Default 4.
	Workers int
	// PerDocTimeout is the wall-clock budget for one document. Documents
	// that exceed it emit the empty result. Zero means no budget.
	PerDocTimeout time.Duration
	// CacheDB, when set, is the path of a SQLite result cache.
	CacheDB string
	// ValidateOutput checks each emitted record against the embedded
	// JSON Schema before writing.
	ValidateOutput bool
	// MaxPages caps page count per document. Zero means no cap.
	MaxPages int
	// Logger receives per-document and summary log records. Default
	// slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the standard batch settings for an input and
// output directory.
func DefaultConfig(inputDir, outputDir string) Config {
	return Config{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Glob:      "*.pdf",
		Workers:   4,
	}
}

// Summary reports what one batch run did.
type Summary struct {
	Processed int // documents picked up
	Failed    int // documents that emitted the empty result
	Written   int // records written to the output directory
	FromCache int // records re-emitted from the cache
}

// Runner executes batch runs. A Runner is tied to one configuration; the
// logger's lifecycle spans a single Run call chain, never the process.
type Runner struct {
	config Config
	logger *slog.Logger
	store  *cache.Store
}

// NewRunner creates a batch runner, applying config defaults.
func NewRunner(config Config) *Runner {
	if config.Glob == "" {
		config.Glob = "*.pdf"
	}
	if config.Workers <= 0 {
		config.Workers = 4
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{config: config, logger: logger}
}

// Run scans the input directory and processes every matching document.
// The returned error covers setup failures only (unreadable input dir,
// unusable output dir or cache); per-document failures are absorbed into
// the summary.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	paths, err := filepath.Glob(filepath.Join(r.config.InputDir, r.config.Glob))
	if err != nil {
		return Summary{}, fmt.Errorf("scan input dir: %w", err)
	}
	if err := os.MkdirAll(r.config.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}
	if err := r.ensureStore(); err != nil {
		return Summary{}, err
	}
	defer r.Close()

	var (
		mu      sync.Mutex
		summary Summary
		wg      sync.WaitGroup
	)
	sem := make(chan struct{}, r.config.Workers)

	for _, path := range paths {
		select {
		case <-ctx.Done():
			wg.Wait()
			return summary, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			outcome := r.processOne(ctx, path)

			mu.Lock()
			summary.Processed++
			if outcome.failed {
				summary.Failed++
			}
			if outcome.fromCache {
				summary.FromCache++
			}
			if outcome.written {
				summary.Written++
			}
			mu.Unlock()
		}(path)
	}
	wg.Wait()

	r.logger.Info("batch complete",
		"processed", summary.Processed,
		"failed", summary.Failed,
		"written", summary.Written,
		"cached", summary.FromCache)
	return summary, nil
}

// ProcessFile processes a single document immediately, outside a full
// scan. The watch surface uses it when a file appears or changes. The
// returned error covers setup failures only; extraction failures emit the
// empty result like any other document.
func (r *Runner) ProcessFile(ctx context.Context, path string) error {
	if err := os.MkdirAll(r.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := r.ensureStore(); err != nil {
		return err
	}
	r.processOne(ctx, path)
	return nil
}

// ensureStore opens the configured result cache once per runner.
func (r *Runner) ensureStore() error {
	if r.config.CacheDB == "" || r.store != nil {
		return nil
	}
	store, err := cache.Open(r.config.CacheDB)
	if err != nil {
		return err
	}
	r.store = store
	return nil
}

// Close releases the result cache, if one was opened. Safe to call when no
// cache is configured.
func (r *Runner) Close() error {
	if r.store != nil {
		err := r.store.Close()
		r.store = nil
		return err
	}
	return nil
}

type outcome struct {
	failed    bool
	fromCache bool
	written   bool
}

func (r *Runner) processOne(ctx context.Context, path string) outcome {
	logger := r.logger.With("file", filepath.Base(path))

	record, out := r.buildRecord(ctx, path, logger)

	if r.config.ValidateOutput {
		if err := ValidateRecord(record); err != nil {
			logger.Error("emitted record rejected", "error", err)
			record = r.encodeEmpty()
			out.failed = true
		}
	}

	outPath := filepath.Join(r.config.OutputDir, outputName(path))
	if err := os.WriteFile(outPath, record, 0o644); err != nil {
		writeErr := &model.WriteError{Path: outPath, Err: err}
		logger.Error("write failed", "error", writeErr)
		return out
	}

	out.written = true
	return out
}

// buildRecord produces the serialized output record for one input,
// consulting the cache first and falling back to the empty result on any
// extraction failure.
func (r *Runner) buildRecord(ctx context.Context, path string, logger *slog.Logger) ([]byte, outcome) {
	var key cache.Key
	if r.store != nil {
		if info, err := os.Stat(path); err == nil {
			key = cache.KeyFor(path, info)
			if record, hit, err := r.store.Get(key); err == nil && hit {
				logger.Debug("cache hit")
				return record, outcome{fromCache: true}
			}
		}
	}

	result, err := r.extract(ctx, path)
	if err != nil {
		logError(logger, err)
		return r.encodeEmpty(), outcome{failed: true}
	}

	var buf bytes.Buffer
	if err := contour.EncodeResult(&buf, result); err != nil {
		logger.Error("encode failed", "error", err)
		return r.encodeEmpty(), outcome{failed: true}
	}
	record := buf.Bytes()

	if r.store != nil && key.Path != "" {
		if err := r.store.Put(key, record); err != nil {
			logger.Warn("cache store failed", "error", err)
		}
	}

	logger.Info("processed", "title", result.Title, "headings", len(result.Outline))
	return record, outcome{}
}

// extract runs one document through the extractor, enforcing the
// per-document time budget when one is configured.
func (r *Runner) extract(ctx context.Context, path string) (model.Result, error) {
	run := func() (model.Result, error) {
		return contour.Open(path).
			WithLogger(r.logger).
			WithMaxPages(r.config.MaxPages).
			Result()
	}

	if r.config.PerDocTimeout <= 0 {
		return run()
	}

	type reply struct {
		result model.Result
		err    error
	}
	done := make(chan reply, 1)
	go func() {
		result, err := run()
		done <- reply{result, err}
	}()

	timer := time.NewTimer(r.config.PerDocTimeout)
	defer timer.Stop()

	select {
	case rep := <-done:
		return rep.result, rep.err
	case <-ctx.Done():
		return model.EmptyResult(), ctx.Err()
	case <-timer.C:
		return model.EmptyResult(), &model.ResourceError{
			Path:  path,
			Limit: fmt.Sprintf("time budget %s exceeded", r.config.PerDocTimeout),
		}
	}
}

func (r *Runner) encodeEmpty() []byte {
	var buf bytes.Buffer
	contour.EncodeResult(&buf, model.EmptyResult())
	return buf.Bytes()
}

// logError classifies a per-document failure for the log record.
func logError(logger *slog.Logger, err error) {
	var (
		decodeErr *model.DecodeError
		resErr    *model.ResourceError
		unexpErr  *model.UnexpectedError
	)
	switch {
	case errors.As(err, &decodeErr):
		logger.Warn("undecodable input, emitting empty result", "error", err)
	case errors.As(err, &resErr):
		logger.Warn("resource limit hit, emitting empty result", "error", err)
	case errors.As(err, &unexpErr):
		logger.Error("extraction failed unexpectedly, emitting empty result", "error", err)
	default:
		logger.Error("extraction failed, emitting empty result", "error", err)
	}
}

// outputName maps an input path to its record's base name: the input's
// stem plus ".json".
func outputName(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ".json"
}

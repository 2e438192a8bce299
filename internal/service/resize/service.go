package resize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/upscaler/internal/config"
	"github.com/aliskhannn/upscaler/internal/resolution"
)

// errPrefix is the single uniform prefix carried by every error crossing the
// pipeline boundary.
const errPrefix = "[UPSCALER]"

// ErrEmptyResult is returned when the transform yields no data.
var ErrEmptyResult = errors.New("transform produced an empty result")

// transformer turns a source image into resized, encoded bytes.
type transformer interface {
	Resize(ctx context.Context, src io.Reader, target resolution.Resolution, outPath string) ([]byte, error)
}

// sink persists the final output buffer.
type sink interface {
	Save(ctx context.Context, path string, data []byte) error
}

// reporter renders the progress protocol for one resize: 0%, a byte-size
// estimate, then 100%.
type reporter interface {
	Start()
	Estimate(outputLen int, originalSize int64)
	Finish()
}

// Source is a handle to the input file: its path plus the on-disk size used
// for progress estimation. The size is captured once, at pipeline entry, and
// stays 0 when metadata is unavailable. A Source belongs to exactly one
// invocation and is never shared.
type Source struct {
	Path string
	Size int64
}

// NewSource stats path and caches its size. Missing metadata is not an
// error; progress estimation falls back to the output size.
func NewSource(path string) Source {
	src := Source{Path: path}

	if info, err := os.Stat(path); err == nil {
		src.Size = info.Size()
	}

	return src
}

// Service orchestrates a single resize: validate the target resolution, run
// the transform, drive the progress protocol and hand the buffer to the sink.
type Service struct {
	transformer transformer
	sink        sink
	reporter    reporter
}

// NewService creates a new Service with the given transform, sink and
// progress reporter.
func NewService(t transformer, s sink, r reporter) *Service {
	return &Service{transformer: t, sink: s, reporter: r}
}

// ResizeImage validates resolutionString, runs the transform against src and
// returns the encoded output buffer. The progress sequence runs 0% before the
// transform, a byte-size estimate against the cached source size once the
// buffer exists, then an unconditional 100%. An invalid resolution aborts
// before the source is even opened.
func (s *Service) ResizeImage(ctx context.Context, src Source, resolutionString, outPath string) ([]byte, error) {
	target, err := resolution.Parse(resolutionString)
	if err != nil {
		return nil, wrap("invalid target resolution", err)
	}

	s.reporter.Start()

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, wrap("failed to open source image", err)
	}
	defer f.Close()

	buf, err := s.transformer.Resize(ctx, f, target, outPath)
	if err != nil {
		return nil, wrap("resize transform failed", err)
	}

	if len(buf) == 0 {
		return nil, wrap("resize transform failed", ErrEmptyResult)
	}

	s.reporter.Estimate(len(buf), src.Size)
	s.reporter.Finish()

	return buf, nil
}

// Run executes a full invocation: resize, then persist. The write does not
// begin until the full output buffer exists, and the progress bar completes
// its sequence before success is reported.
func (s *Service) Run(ctx context.Context, opts config.Options) error {
	if opts.Batch {
		zlog.Logger.Warn().Msg("batch mode is not implemented; processing a single image")
	}

	if opts.Debug {
		zlog.Logger.Info().
			Str("image", opts.ImagePath).
			Str("resolution", opts.ResolutionString).
			Str("output", opts.OutputPath).
			Msg("starting resize")
	}

	src := NewSource(opts.ImagePath)

	buf, err := s.ResizeImage(ctx, src, opts.ResolutionString, opts.OutputPath)
	if err != nil {
		return err
	}

	if err := s.sink.Save(ctx, opts.OutputPath, buf); err != nil {
		return wrap("failed to persist output", err)
	}

	if opts.Debug {
		zlog.Logger.Info().
			Str("output", opts.OutputPath).
			Int("bytes", len(buf)).
			Msg("resize complete")
	}

	return nil
}

// wrap folds an internal failure into the one uniform error surface, keeping
// the original cause in the chain. Each error is wrapped exactly once, at the
// boundary it crosses.
func wrap(msg string, err error) error {
	return fmt.Errorf("%s %s: %w", errPrefix, msg, err)
}

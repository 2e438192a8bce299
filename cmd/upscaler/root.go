package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/upscaler/internal/config"
	"github.com/aliskhannn/upscaler/internal/processor"
	"github.com/aliskhannn/upscaler/internal/progress"
	"github.com/aliskhannn/upscaler/internal/service/resize"
	filestorage "github.com/aliskhannn/upscaler/internal/storage/file"
	s3storage "github.com/aliskhannn/upscaler/internal/storage/s3"
)

func newRootCommand() *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:           "upscaler",
		Short:         "Resize a single image to one of the supported resolutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ImagePath, "image", "", "Path to the source image (required)")
	cmd.Flags().StringVar(&opts.ResolutionString, "resolution", "", "Target resolution as WxH, e.g. 1920x1080 (required)")
	cmd.Flags().StringVar(&opts.OutputPath, "output", "", "Destination path, local or s3://bucket/key (required)")
	cmd.Flags().StringVar(&opts.Label, "label", "", "Optional text stamped in the bottom-right corner")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Verbose logging of configuration and completion")
	cmd.Flags().BoolVar(&opts.Batch, "batch", false, "Reserved; has no effect")

	return cmd
}

func run(ctx context.Context, progressOut io.Writer, opts config.Options) error {
	zlog.Init()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// DEBUG=true in the environment is equivalent to --debug; the merged
	// value travels on Options from here on.
	if cfg.Debug {
		opts.Debug = true
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	sink, err := newSink(ctx, cfg, opts.OutputPath)
	if err != nil {
		return err
	}

	proc := processor.New(cfg.Encoding.Quality, opts.Label, cfg.Label.FontPath)
	bar := progress.NewReporter(progressOut)
	svc := resize.NewService(proc, sink, bar)

	return svc.Run(ctx, opts)
}

// sink persists the final output buffer.
type sink interface {
	Save(ctx context.Context, path string, data []byte) error
}

// newSink picks the local filesystem sink, or the object-store sink when the
// output path is an s3://bucket/key URL.
func newSink(ctx context.Context, cfg *config.Config, outputPath string) (sink, error) {
	bucket, _, ok := s3storage.SplitURL(outputPath)
	if !ok {
		return filestorage.NewStorage(), nil
	}

	st := cfg.Storage
	if st.Endpoint == "" {
		return nil, fmt.Errorf("output %q requires storage credentials in the config file", outputPath)
	}

	return s3storage.NewStorage(ctx, st.Endpoint, st.AccessKey, st.SecretKey, bucket, st.UseSSL)
}

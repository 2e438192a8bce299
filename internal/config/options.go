package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aliskhannn/upscaler/internal/resolution"
)

// Options carries the per-invocation settings built from CLI flags. It is
// created once per process invocation and read-only thereafter; the debug
// toggle travels here as an explicit field, not as ambient process state.
type Options struct {
	ImagePath        string
	ResolutionString string
	OutputPath       string
	Label            string
	Debug            bool
	Batch            bool // reserved; has no effect
}

// OptionsError reports a missing or invalid invocation setting.
type OptionsError struct {
	Flag   string
	Detail string
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid option --%s: %s", e.Flag, e.Detail)
}

// Video containers are recognized only to be rejected: there is no video
// support.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".avi":  {},
	".mov":  {},
	".webm": {},
	".m4v":  {},
	".wmv":  {},
}

// Validate is the configuration boundary. Required flags must be present,
// the resolution must be a member of the fixed preset allow-list AND pass
// structural validation, and the source must not be a video container. The
// pipeline re-runs structural validation on its own; both layers hold
// independently.
func (o Options) Validate() error {
	if o.ImagePath == "" {
		return &OptionsError{Flag: "image", Detail: "path to the source image is required"}
	}

	if o.OutputPath == "" {
		return &OptionsError{Flag: "output", Detail: "destination path is required"}
	}

	if o.ResolutionString == "" {
		return &OptionsError{Flag: "resolution", Detail: "target resolution is required"}
	}

	if _, ok := videoExtensions[strings.ToLower(filepath.Ext(o.ImagePath))]; ok {
		return &OptionsError{Flag: "image", Detail: "video inputs are not supported"}
	}

	if !resolution.IsPreset(o.ResolutionString) {
		return &OptionsError{
			Flag:   "resolution",
			Detail: fmt.Sprintf("%q is not a supported resolution; supported: %s", o.ResolutionString, strings.Join(resolution.Presets, ", ")),
		}
	}

	if _, err := resolution.Parse(o.ResolutionString); err != nil {
		return &OptionsError{Flag: "resolution", Detail: err.Error()}
	}

	return nil
}

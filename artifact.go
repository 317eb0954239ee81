package codetex

import (
	"context"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Default artifact naming, producing files like slide-3-0.py.
const (
	DefaultPrefix    = "slide"
	DefaultSeparator = "-"
	DefaultExtension = ".py"
)

var (
	safeNamePart  = regexp.MustCompile(`^[^/\\]*$`)
	extensionPart = regexp.MustCompile(`^(\.[^/\\.]+)?$`)
)

// ArtifactNaming builds artifact file names from block positions.
type ArtifactNaming struct {
	Prefix    string
	Separator string
	Extension string
}

// DefaultArtifactNaming returns the naming used when nothing is configured.
func DefaultArtifactNaming() ArtifactNaming {
	return ArtifactNaming{
		Prefix:    DefaultPrefix,
		Separator: DefaultSeparator,
		Extension: DefaultExtension,
	}
}

// Name returns the file name for block of frame, e.g. "slide-0-1.py".
func (n ArtifactNaming) Name(frame, block int) string {
	return n.Prefix + n.Separator + strconv.Itoa(frame) + n.Separator + strconv.Itoa(block) + n.Extension
}

// Validate ensures names built from n stay inside the output directory.
func (n ArtifactNaming) Validate() error {
	err := validation.ValidateStruct(&n,
		validation.Field(&n.Prefix, validation.Match(safeNamePart).Error("prefix must not contain path separators")),
		validation.Field(&n.Separator, validation.Required, validation.Match(safeNamePart).Error("separator must not contain path separators")),
		validation.Field(&n.Extension, validation.Match(extensionPart).Error("extension must look like .py")),
	)
	if err != nil {
		return Errorf(EINVALID, "%s", err.Error())
	}
	return nil
}

// ArtifactWriter persists code blocks as individual files.
type ArtifactWriter interface {
	// WriteArtifact writes block and returns the path it was written to.
	// Existing files are overwritten.
	WriteArtifact(ctx context.Context, block *CodeBlock) (path string, err error)
}

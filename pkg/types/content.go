package types

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/skel/pkg/errors"
)

// ContentKind determines how a content entry is applied to the project:
// files are copied verbatim, templates are rendered first.
type ContentKind string

const (
	KindFile     ContentKind = "file"
	KindTemplate ContentKind = "template"
)

// DotPrefix on a source filename is rewritten to a leading "." in the
// destination, so skeleton repositories can avoid literal dotfiles.
const DotPrefix = "dot_"

// Content describes one piece of skeleton content: where it comes from
// (relative to the skeleton's content root), where it lands in the project,
// how it is applied, and which other entries must be applied before it.
type Content struct {
	// Source is the content-root-relative path and the entry's key in the
	// content table.
	Source string

	// Destination is the project-root-relative target path.
	Destination string

	// Kind selects copy vs render.
	Kind ContentKind

	// Dependencies lists content keys that must be applied before this one.
	Dependencies []string
}

// ParseContentKind maps a configuration string onto a ContentKind. The
// comparison trims whitespace and ignores case; an empty string means
// KindFile. Anything else is an INVALID_CONTENT_KIND error.
func ParseContentKind(input string) (ContentKind, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return KindFile, nil
	case string(KindFile):
		return KindFile, nil
	case string(KindTemplate):
		return KindTemplate, nil
	default:
		return KindFile, errors.Newf(errors.ErrInvalidContentKind, "invalid content kind %q", input).
			WithDetail("kind", input)
	}
}

// NewContent builds a Content entry from a content-root-relative source path
// and an optional kind string. The destination mirrors the source except
// that a "dot_" filename prefix becomes a leading dot.
func NewContent(source, kind string) (Content, error) {
	parsedKind, err := ParseContentKind(kind)
	if err != nil {
		return Content{}, err
	}

	fileName := filepath.Base(source)
	if strings.HasPrefix(fileName, DotPrefix) {
		fileName = "." + strings.TrimPrefix(fileName, DotPrefix)
	}

	destination := fileName
	if dir := filepath.Dir(source); dir != "." {
		destination = filepath.Join(dir, fileName)
	}

	return Content{
		Source:      source,
		Destination: destination,
		Kind:        parsedKind,
	}, nil
}

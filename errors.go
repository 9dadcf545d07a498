package content11

import (
	"errors"
	"fmt"
)

var (
	// ErrMetadata marks a document whose header is missing a required
	// field or carries one that does not parse.
	ErrMetadata = errors.New("invalid document metadata")
	// ErrCollision marks two documents claiming the same slug.
	ErrCollision = errors.New("duplicate slug")
)

// MetadataError reports a required header field that is missing or
// malformed, identified by the offending source file.
type MetadataError struct {
	Path   string
	Field  string
	Reason string
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("%s: field %q in %v: %s", ErrMetadata.Error(), e.Field, e.Path, e.Reason)
}

func (e *MetadataError) Unwrap() error { return ErrMetadata }

func metadataErrorf(path, field, format string, args ...any) error {
	return &MetadataError{Path: path, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// CollisionError reports two documents with the same slug, naming both
// source files. The build cannot proceed; slugs address output pages.
type CollisionError struct {
	Slug                  string
	FirstPath, SecondPath string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s %q: %v and %v", ErrCollision.Error(), e.Slug, e.FirstPath, e.SecondPath)
}

func (e *CollisionError) Unwrap() error { return ErrCollision }

package filesystem

import "errors"

// Errors returned by providers and stores.
// They are defined here so they can be checked against with errors.Is.
var (
	// ErrInvalidURI is returned by Provider.Path for URIs that do not name
	// an absolute local path.
	ErrInvalidURI = errors.New("invalid file URI")

	// ErrNoMountPoint indicates no entry of the mount table contains the
	// requested path.
	ErrNoMountPoint = errors.New("no mount point found")

	// ErrUnsupportedAttribute is returned by Store.Attribute for names the
	// store does not recognize.
	ErrUnsupportedAttribute = errors.New("attribute not supported")
)

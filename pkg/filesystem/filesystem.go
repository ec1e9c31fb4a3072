// Package filesystem defines the filesystem provider capability shared by the
// snapshot decorator and the real operating system filesystem.
package filesystem

// Scheme is the URI scheme served by the providers in this package.
const Scheme = "file"

// RootURI addresses the root of the filesystem.
const RootURI = "file:///"

// Provider resolves URIs to paths and paths to the filesystem store holding them.
type Provider interface {
	// Scheme returns the URI scheme this provider serves.
	Scheme() string
	// Path resolves a URI to a clean absolute path.
	Path(uri string) (string, error)
	// Store returns the store (mounted volume) holding path.
	Store(path string) (Store, error)
}

// Store describes a mounted volume: its identity, capacity and the attribute
// views it supports.
type Store interface {
	Name() string
	Type() string
	IsReadOnly() bool

	// TotalSpace returns the size of the store in bytes.
	TotalSpace() (int64, error)
	// UsableSpace returns the bytes available to an unprivileged caller.
	UsableSpace() (int64, error)
	// UnallocatedSpace returns the free bytes, including reserved blocks.
	UnallocatedSpace() (int64, error)

	SupportsAttributeView(kind AttributeViewKind) bool
	SupportsAttributeViewName(name string) bool
	// StoreAttributeView returns the view of the given kind, or false when
	// the store cannot provide it.
	StoreAttributeView(kind StoreViewKind) (StoreAttributeView, bool)
	// Attribute returns a named store attribute. Unknown names fail with
	// ErrUnsupportedAttribute.
	Attribute(name string) (any, error)
}

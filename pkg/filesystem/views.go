package filesystem

import "k8s.io/apimachinery/pkg/util/sets"

// AttributeViewKind names a family of file attributes a store may support.
type AttributeViewKind string

const (
	BasicView AttributeViewKind = "basic"
	PosixView AttributeViewKind = "posix"
	UnixView  AttributeViewKind = "unix"
	OwnerView AttributeViewKind = "owner"
	UserView  AttributeViewKind = "user"
	DosView   AttributeViewKind = "dos"
	ACLView   AttributeViewKind = "acl"
)

var knownAttributeViews = sets.New(BasicView, PosixView, UnixView, OwnerView, UserView, DosView, ACLView)

// ParseAttributeViewKind returns the kind named by name. Names are case sensitive.
func ParseAttributeViewKind(name string) (AttributeViewKind, bool) {
	kind := AttributeViewKind(name)
	if !knownAttributeViews.Has(kind) {
		return "", false
	}
	return kind, true
}

// StoreViewKind names a view over store-wide attributes.
type StoreViewKind string

const (
	MountInfoView   StoreViewKind = "mount"
	BlockDeviceView StoreViewKind = "block"
)

// StoreAttributeView is implemented by the typed store views.
type StoreAttributeView interface {
	Kind() StoreViewKind
}

// MountInfo is the mount table entry backing a store.
type MountInfo struct {
	Device  string
	Path    string
	Type    string
	Options []string
}

func (MountInfo) Kind() StoreViewKind { return MountInfoView }

// BlockDevice describes the partition a store is mounted from.
type BlockDevice struct {
	Disk       string
	Partition  string
	SizeBytes  uint64
	DriveType  string
	Controller string
}

func (BlockDevice) Kind() StoreViewKind { return BlockDeviceView }

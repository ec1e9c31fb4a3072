package filesystem

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog/v2"
	"k8s.io/mount-utils"

	filesystemstats "github.com/linode/snapshot-filestore/pkg/filesystem-stats"
	"github.com/linode/snapshot-filestore/pkg/hwinfo"
)

// Attribute names understood by the OS store.
const (
	AttrTotalSpace       = "totalSpace"
	AttrUsableSpace      = "usableSpace"
	AttrUnallocatedSpace = "unallocatedSpace"
	AttrBlockSize        = "statfs:blockSize"
	AttrFiles            = "statfs:files"
	AttrFreeFiles        = "statfs:freeFiles"
	AttrMountPoint       = "mount:point"
	AttrMountDevice      = "mount:device"
	AttrMountOptions     = "mount:options"
	AttrBlockDisk        = "block:disk"
	AttrBlockPartition   = "block:partition"
	AttrBlockSizeBytes   = "block:sizeBytes"
	AttrBlockDriveType   = "block:driveType"
	AttrBlockController  = "block:controller"
)

var (
	// views every POSIX filesystem provides
	posixViews = sets.New(BasicView, PosixView, UnixView, OwnerView)

	// filesystems with user extended attributes regardless of mount options
	xattrFilesystems = sets.New("xfs", "btrfs", "tmpfs", "f2fs", "zfs")
)

// OSProvider is the Provider backed by the local operating system.
type OSProvider struct {
	mounter mount.Interface
	statter filesystemstats.FilesystemStatter
	hw      hwinfo.HardwareInfo
	log     logr.Logger
}

var _ Provider = (*OSProvider)(nil)

type Option func(*OSProvider)

func WithMounter(m mount.Interface) Option {
	return func(p *OSProvider) { p.mounter = m }
}

func WithStatter(s filesystemstats.FilesystemStatter) Option {
	return func(p *OSProvider) { p.statter = s }
}

func WithHardwareInfo(hw hwinfo.HardwareInfo) Option {
	return func(p *OSProvider) { p.hw = hw }
}

func WithLogger(log logr.Logger) Option {
	return func(p *OSProvider) { p.log = log }
}

func NewOSProvider(opts ...Option) *OSProvider {
	p := &OSProvider{
		mounter: mount.New(""),
		statter: filesystemstats.NewFilesystemStatter(),
		hw:      hwinfo.NewHardwareInfo(),
		log:     klog.NewKlogr(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.WithName("filesystem")
	return p
}

func (p *OSProvider) Scheme() string {
	return Scheme
}

func (p *OSProvider) Path(uri string) (string, error) {
	return resolveFileURI(uri)
}

// Store resolves the mount holding path. Relative paths are taken from the
// working directory. Space figures of the returned store are read live on
// every call; the mount entry and block device are fixed at lookup time.
func (p *OSProvider) Store(path string) (Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path of %s: %w", path, err)
	}
	path = abs
	if _, err := filesystemstats.Stat(p.statter, path); err != nil {
		return nil, err
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = path
	}

	mps, err := p.mounter.List()
	if err != nil {
		return nil, fmt.Errorf("list mount points: %w", err)
	}
	mp, ok := findMountPoint(mps, resolved)
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoMountPoint, path)
	}

	p.log.V(4).Info("Resolved filesystem store", "path", path, "mountPoint", mp.Path, "device", mp.Device, "type", mp.Type)
	s := &osStore{
		path:    resolved,
		mount:   mp,
		statter: p.statter,
		hw:      p.hw,
		log:     p.log,
	}
	s.blockDevice = sync.OnceValues(s.lookupBlockDevice)
	return s, nil
}

type osStore struct {
	path    string
	mount   mount.MountPoint
	statter filesystemstats.FilesystemStatter
	hw      hwinfo.HardwareInfo
	log     logr.Logger

	// inventory is read on first use
	blockDevice func() (BlockDevice, error)
}

func (s *osStore) Name() string {
	return s.mount.Device
}

func (s *osStore) Type() string {
	return s.mount.Type
}

func (s *osStore) IsReadOnly() bool {
	return slices.Contains(s.mount.Opts, "ro")
}

func (s *osStore) space() (filesystemstats.Space, error) {
	return filesystemstats.Stat(s.statter, s.path)
}

func (s *osStore) TotalSpace() (int64, error) {
	sp, err := s.space()
	return sp.Total, err
}

func (s *osStore) UsableSpace() (int64, error) {
	sp, err := s.space()
	return sp.Usable, err
}

func (s *osStore) UnallocatedSpace() (int64, error) {
	sp, err := s.space()
	return sp.Unallocated, err
}

func (s *osStore) SupportsAttributeView(kind AttributeViewKind) bool {
	if posixViews.Has(kind) {
		return true
	}
	if kind != UserView {
		return false
	}
	switch {
	case slices.Contains(s.mount.Opts, "user_xattr"):
		return true
	case s.mount.Type == "ext3" || s.mount.Type == "ext4":
		return !slices.Contains(s.mount.Opts, "nouser_xattr")
	default:
		return xattrFilesystems.Has(s.mount.Type)
	}
}

func (s *osStore) SupportsAttributeViewName(name string) bool {
	kind, ok := ParseAttributeViewKind(name)
	if !ok {
		return false
	}
	return s.SupportsAttributeView(kind)
}

func (s *osStore) StoreAttributeView(kind StoreViewKind) (StoreAttributeView, bool) {
	switch kind {
	case MountInfoView:
		return s.mountInfo(), true
	case BlockDeviceView:
		dev, err := s.blockDevice()
		if err != nil {
			s.log.V(4).Info("Block device unavailable", "mountPoint", s.mount.Path, "err", err.Error())
			return nil, false
		}
		return dev, true
	default:
		return nil, false
	}
}

func (s *osStore) mountInfo() MountInfo {
	return MountInfo{
		Device:  s.mount.Device,
		Path:    s.mount.Path,
		Type:    s.mount.Type,
		Options: slices.Clone(s.mount.Opts),
	}
}

func (s *osStore) lookupBlockDevice() (BlockDevice, error) {
	part, err := hwinfo.PartitionForMountPoint(s.hw, s.mount.Path)
	if err != nil {
		return BlockDevice{}, err
	}
	dev := BlockDevice{
		Partition: part.Name,
		SizeBytes: part.SizeBytes,
	}
	if part.Disk != nil {
		dev.Disk = part.Disk.Name
		dev.DriveType = part.Disk.DriveType.String()
		dev.Controller = part.Disk.StorageController.String()
	}
	return dev, nil
}

func (s *osStore) Attribute(name string) (any, error) {
	switch name {
	case AttrTotalSpace, AttrUsableSpace, AttrUnallocatedSpace, AttrBlockSize, AttrFiles, AttrFreeFiles:
		sp, err := s.space()
		if err != nil {
			return nil, err
		}
		return spaceAttribute(sp, name), nil
	case AttrMountPoint:
		return s.mount.Path, nil
	case AttrMountDevice:
		return s.mount.Device, nil
	case AttrMountOptions:
		return slices.Clone(s.mount.Opts), nil
	case AttrBlockDisk, AttrBlockPartition, AttrBlockSizeBytes, AttrBlockDriveType, AttrBlockController:
		dev, err := s.blockDevice()
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedAttribute, name, err)
		}
		return blockAttribute(dev, name), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAttribute, name)
}

func spaceAttribute(sp filesystemstats.Space, name string) int64 {
	switch name {
	case AttrTotalSpace:
		return sp.Total
	case AttrUsableSpace:
		return sp.Usable
	case AttrUnallocatedSpace:
		return sp.Unallocated
	case AttrBlockSize:
		return sp.BlockSize
	case AttrFiles:
		return sp.Files
	default:
		return sp.FreeFiles
	}
}

func blockAttribute(dev BlockDevice, name string) any {
	switch name {
	case AttrBlockDisk:
		return dev.Disk
	case AttrBlockPartition:
		return dev.Partition
	case AttrBlockSizeBytes:
		return dev.SizeBytes
	case AttrBlockDriveType:
		return dev.DriveType
	default:
		return dev.Controller
	}
}

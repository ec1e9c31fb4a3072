package filesystemstats

import (
	"fmt"
	"math"

	"golang.org/x/sys/unix"
)

// FilesystemStatter provides an interface for getting filesystem statistics.
// This interface allows for easier mocking in tests.
type FilesystemStatter interface {
	// Statfs returns filesystem statistics for the given path.
	Statfs(path string, stat *unix.Statfs_t) error
}

// UnixFilesystemStatter implements FilesystemStatter using the real unix.Statfs system call.
type UnixFilesystemStatter struct{}

// Statfs calls the unix.Statfs system call.
func (u *UnixFilesystemStatter) Statfs(path string, stat *unix.Statfs_t) error {
	return unix.Statfs(path, stat)
}

// NewFilesystemStatter creates a new FilesystemStatter using the real unix.Statfs.
func NewFilesystemStatter() FilesystemStatter {
	return &UnixFilesystemStatter{}
}

// Space holds the byte and inode figures of a filesystem as reported by statfs(2).
type Space struct {
	BlockSize   int64
	Total       int64
	Usable      int64
	Unallocated int64
	Files       int64
	FreeFiles   int64
}

// SpaceOf converts raw statfs block counts into byte figures. Counts are in
// fragment units (f_frsize) where the platform reports one, f_bsize
// otherwise. Figures too large for an int64 saturate at math.MaxInt64.
// See http://man7.org/linux/man-pages/man2/statfs.2.html for details.
func SpaceOf(stat *unix.Statfs_t) Space {
	unit := fragmentSize(stat)
	if unit <= 0 {
		unit = int64(stat.Bsize) //nolint:unconvert // Bsize is uint32 on darwin
	}
	return Space{
		BlockSize:   unit,
		Total:       toBytes(uint64(stat.Blocks), unit),
		Usable:      toBytes(uint64(stat.Bavail), unit),
		Unallocated: toBytes(uint64(stat.Bfree), unit),
		Files:       clamp(uint64(stat.Files)),
		FreeFiles:   clamp(uint64(stat.Ffree)),
	}
}

func toBytes(count uint64, unit int64) int64 {
	if unit <= 0 {
		return 0
	}
	if count > uint64(math.MaxInt64/unit) {
		return math.MaxInt64
	}
	return int64(count) * unit
}

func clamp(n uint64) int64 {
	if n > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}

// Stat runs statfs on path through statter and returns the converted figures.
func Stat(statter FilesystemStatter, path string) (Space, error) {
	var stat unix.Statfs_t
	if err := statter.Statfs(path, &stat); err != nil {
		return Space{}, fmt.Errorf("statfs %s: %w", path, err)
	}
	return SpaceOf(&stat), nil
}

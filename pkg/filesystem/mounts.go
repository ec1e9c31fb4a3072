package filesystem

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"k8s.io/mount-utils"
)

// resolveFileURI turns file:///a/b into /a/b.
func resolveFileURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	switch {
	case u.Scheme != Scheme:
		return "", fmt.Errorf("%w: scheme %q is not %q", ErrInvalidURI, u.Scheme, Scheme)
	case u.Opaque != "":
		return "", fmt.Errorf("%w: %q is not hierarchical", ErrInvalidURI, uri)
	case u.Host != "" && u.Host != "localhost":
		return "", fmt.Errorf("%w: remote host %q", ErrInvalidURI, u.Host)
	case !strings.HasPrefix(u.Path, "/"):
		return "", fmt.Errorf("%w: %q has no absolute path", ErrInvalidURI, uri)
	}
	return filepath.Clean(filepath.FromSlash(u.Path)), nil
}

// containsPath reports whether path lies at or below mountPoint.
func containsPath(mountPoint, path string) bool {
	if mountPoint == "/" || mountPoint == path {
		return true
	}
	return strings.HasPrefix(path, mountPoint+string(filepath.Separator))
}

// findMountPoint returns the deepest mount point holding path. Later entries
// shadow earlier ones mounted at the same point.
func findMountPoint(mps []mount.MountPoint, path string) (mount.MountPoint, bool) {
	var best mount.MountPoint
	found := false
	for _, mp := range mps {
		mpPath := filepath.Clean(mp.Path)
		if !containsPath(mpPath, path) {
			continue
		}
		if !found || len(mpPath) >= len(best.Path) {
			best = mp
			best.Path = mpPath
			found = true
		}
	}
	return best, found
}

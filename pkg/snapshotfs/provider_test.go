package snapshotfs_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
	"k8s.io/mount-utils"

	"github.com/linode/snapshot-filestore/mocks"
	"github.com/linode/snapshot-filestore/pkg/filesystem"
	"github.com/linode/snapshot-filestore/pkg/observability"
	"github.com/linode/snapshot-filestore/pkg/snapshotfs"
)

var errBoom = errors.New("boom")

// expectRootStore sets up the delegate so that the root store reports the given figures.
func expectRootStore(ctrl *gomock.Controller, delegate *mocks.MockProvider, total, usable, unallocated int64) *mocks.MockStore {
	root := mocks.NewMockStore(ctrl)
	delegate.EXPECT().Path(filesystem.RootURI).Return("/", nil)
	delegate.EXPECT().Store("/").Return(root, nil)
	root.EXPECT().TotalSpace().Return(total, nil)
	root.EXPECT().UsableSpace().Return(usable, nil)
	root.EXPECT().UnallocatedSpace().Return(unallocated, nil)
	return root
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(ctrl *gomock.Controller, delegate *mocks.MockProvider)
		want    snapshotfs.Snapshot
		wantErr string
	}{
		{
			name: "captures root store figures",
			setup: func(ctrl *gomock.Controller, delegate *mocks.MockProvider) {
				expectRootStore(ctrl, delegate, 1_000_000_000, 500_000_000, 400_000_000)
			},
			want: snapshotfs.Snapshot{TotalSpace: 1_000_000_000, UsableSpace: 500_000_000, UnallocatedSpace: 400_000_000},
		},
		{
			name: "root path cannot be resolved",
			setup: func(ctrl *gomock.Controller, delegate *mocks.MockProvider) {
				delegate.EXPECT().Path(filesystem.RootURI).Return("", errBoom)
			},
			wantErr: "capture filesystem space snapshot: resolve file:///: boom",
		},
		{
			name: "root store lookup fails",
			setup: func(ctrl *gomock.Controller, delegate *mocks.MockProvider) {
				delegate.EXPECT().Path(filesystem.RootURI).Return("/", nil)
				delegate.EXPECT().Store("/").Return(nil, errBoom)
			},
			wantErr: "capture filesystem space snapshot: store for /: boom",
		},
		{
			name: "total space unreadable",
			setup: func(ctrl *gomock.Controller, delegate *mocks.MockProvider) {
				root := mocks.NewMockStore(ctrl)
				delegate.EXPECT().Path(filesystem.RootURI).Return("/", nil)
				delegate.EXPECT().Store("/").Return(root, nil)
				root.EXPECT().TotalSpace().Return(int64(0), errBoom)
			},
			wantErr: "capture filesystem space snapshot: total space of /: boom",
		},
		{
			name: "usable space unreadable",
			setup: func(ctrl *gomock.Controller, delegate *mocks.MockProvider) {
				root := mocks.NewMockStore(ctrl)
				delegate.EXPECT().Path(filesystem.RootURI).Return("/", nil)
				delegate.EXPECT().Store("/").Return(root, nil)
				root.EXPECT().TotalSpace().Return(int64(10), nil)
				root.EXPECT().UsableSpace().Return(int64(0), errBoom)
			},
			wantErr: "capture filesystem space snapshot: usable space of /: boom",
		},
		{
			name: "unallocated space unreadable",
			setup: func(ctrl *gomock.Controller, delegate *mocks.MockProvider) {
				root := mocks.NewMockStore(ctrl)
				delegate.EXPECT().Path(filesystem.RootURI).Return("/", nil)
				delegate.EXPECT().Store("/").Return(root, nil)
				root.EXPECT().TotalSpace().Return(int64(10), nil)
				root.EXPECT().UsableSpace().Return(int64(5), nil)
				root.EXPECT().UnallocatedSpace().Return(int64(0), errBoom)
			},
			wantErr: "capture filesystem space snapshot: unallocated space of /: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			delegate := mocks.NewMockProvider(ctrl)
			tt.setup(ctrl, delegate)

			p, err := snapshotfs.NewProvider(context.Background(), delegate)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				assert.ErrorIs(t, err, snapshotfs.ErrSnapshot)
				assert.ErrorIs(t, err, errBoom)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Snapshot())
		})
	}
}

func TestNewProviderRecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockProvider(ctrl)
	expectRootStore(ctrl, delegate, 3_000_000, 2_000_000, 1_000_000)

	completed := testutil.ToFloat64(observability.SnapshotCaptureTotal.WithLabelValues(observability.Completed))
	_, err := snapshotfs.NewProvider(context.Background(), delegate)
	require.NoError(t, err)

	assert.InDelta(t, completed+1, testutil.ToFloat64(observability.SnapshotCaptureTotal.WithLabelValues(observability.Completed)), 0)
	assert.InDelta(t, 3e6, testutil.ToFloat64(observability.SnapshotTotalBytes), 0)
	assert.InDelta(t, 2e6, testutil.ToFloat64(observability.SnapshotUsableBytes), 0)
	assert.InDelta(t, 1e6, testutil.ToFloat64(observability.SnapshotUnallocatedBytes), 0)

	failing := mocks.NewMockProvider(ctrl)
	failing.EXPECT().Path(filesystem.RootURI).Return("", errBoom)
	failed := testutil.ToFloat64(observability.SnapshotCaptureTotal.WithLabelValues(observability.Failed))
	_, err = snapshotfs.NewProvider(context.Background(), failing)
	require.Error(t, err)

	assert.InDelta(t, failed+1, testutil.ToFloat64(observability.SnapshotCaptureTotal.WithLabelValues(observability.Failed)), 0)
	assert.InDelta(t, 3e6, testutil.ToFloat64(observability.SnapshotTotalBytes), 0)
	assert.InDelta(t, 2e6, testutil.ToFloat64(observability.SnapshotUsableBytes), 0)
	assert.InDelta(t, 1e6, testutil.ToFloat64(observability.SnapshotUnallocatedBytes), 0)
}

func TestStoreRecordsLookupMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockProvider(ctrl)
	expectRootStore(ctrl, delegate, 1000, 500, 400)
	p, err := snapshotfs.NewProvider(context.Background(), delegate)
	require.NoError(t, err)

	delegate.EXPECT().Store("/data").Return(mocks.NewMockStore(ctrl), nil).Times(2)
	delegate.EXPECT().Store("/missing").Return(nil, errBoom)

	completed := testutil.ToFloat64(observability.StoreLookupTotal.WithLabelValues(observability.Completed))
	failed := testutil.ToFloat64(observability.StoreLookupTotal.WithLabelValues(observability.Failed))

	for _, path := range []string{"/data", "/missing", "/data"} {
		_, _ = p.Store(path)
	}

	assert.InDelta(t, completed+2, testutil.ToFloat64(observability.StoreLookupTotal.WithLabelValues(observability.Completed)), 0)
	assert.InDelta(t, failed+1, testutil.ToFloat64(observability.StoreLookupTotal.WithLabelValues(observability.Failed)), 0)
}

func TestStoreSpaceIsFrozenAndPathIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockProvider(ctrl)
	expectRootStore(ctrl, delegate, 1_000_000_000, 500_000_000, 400_000_000)

	p, err := snapshotfs.NewProvider(context.Background(), delegate)
	require.NoError(t, err)

	// The live stores must never be asked for space figures.
	for _, path := range []string{"/", "/var/lib/data", "/tmp/a/b"} {
		delegate.EXPECT().Store(path).Return(mocks.NewMockStore(ctrl), nil).Times(2)
	}

	for range 2 {
		for _, path := range []string{"/", "/var/lib/data", "/tmp/a/b"} {
			store, err := p.Store(path)
			require.NoError(t, err)

			total, err := store.TotalSpace()
			require.NoError(t, err)
			usable, err := store.UsableSpace()
			require.NoError(t, err)
			unallocated, err := store.UnallocatedSpace()
			require.NoError(t, err)

			assert.Equal(t, int64(1_000_000_000), total, path)
			assert.Equal(t, int64(500_000_000), usable, path)
			assert.Equal(t, int64(400_000_000), unallocated, path)
		}
	}
}

func TestStoreForwardsToLiveStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockProvider(ctrl)
	expectRootStore(ctrl, delegate, 100, 50, 60)

	p, err := snapshotfs.NewProvider(context.Background(), delegate)
	require.NoError(t, err)

	live := mocks.NewMockStore(ctrl)
	delegate.EXPECT().Store("/data").Return(live, nil)

	view := filesystem.MountInfo{Device: "/dev/sdb", Path: "/data", Type: "xfs", Options: []string{"rw"}}
	errRejected := errors.New("attribute rejected")
	live.EXPECT().Name().Return("/dev/sdb")
	live.EXPECT().Type().Return("xfs")
	live.EXPECT().IsReadOnly().Return(true)
	live.EXPECT().SupportsAttributeView(filesystem.UserView).Return(true)
	live.EXPECT().SupportsAttributeView(filesystem.DosView).Return(false)
	live.EXPECT().SupportsAttributeViewName("posix").Return(true)
	live.EXPECT().StoreAttributeView(filesystem.MountInfoView).Return(view, true)
	live.EXPECT().StoreAttributeView(filesystem.BlockDeviceView).Return(nil, false)
	live.EXPECT().Attribute(filesystem.AttrTotalSpace).Return(int64(42), nil)
	live.EXPECT().Attribute("bogus").Return(nil, errRejected)

	store, err := p.Store("/data")
	require.NoError(t, err)

	assert.Equal(t, "/dev/sdb", store.Name())
	assert.Equal(t, "xfs", store.Type())
	assert.True(t, store.IsReadOnly())
	assert.True(t, store.SupportsAttributeView(filesystem.UserView))
	assert.False(t, store.SupportsAttributeView(filesystem.DosView))
	assert.True(t, store.SupportsAttributeViewName("posix"))

	got, ok := store.StoreAttributeView(filesystem.MountInfoView)
	assert.True(t, ok)
	assert.Equal(t, view, got)
	_, ok = store.StoreAttributeView(filesystem.BlockDeviceView)
	assert.False(t, ok)

	// named attributes are not part of the snapshot
	attr, err := store.Attribute(filesystem.AttrTotalSpace)
	require.NoError(t, err)
	assert.Equal(t, int64(42), attr)

	_, err = store.Attribute("bogus")
	assert.Same(t, errRejected, err)
}

func TestStoreLookupErrorIsUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockProvider(ctrl)
	expectRootStore(ctrl, delegate, 1, 1, 1)

	p, err := snapshotfs.NewProvider(context.Background(), delegate)
	require.NoError(t, err)

	notFound := &fs.PathError{Op: "statfs", Path: "/missing", Err: unix.ENOENT}
	delegate.EXPECT().Store("/missing").Return(nil, notFound)

	store, err := p.Store("/missing")
	assert.Nil(t, store)
	assert.Same(t, notFound, err)
}

func TestSchemeAndPathAreDelegated(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockProvider(ctrl)
	expectRootStore(ctrl, delegate, 1, 1, 1)

	p, err := snapshotfs.NewProvider(context.Background(), delegate)
	require.NoError(t, err)

	delegate.EXPECT().Scheme().Return("file")
	delegate.EXPECT().Path("file:///etc").Return("/etc", nil)

	assert.Equal(t, "file", p.Scheme())
	path, err := p.Path("file:///etc")
	require.NoError(t, err)
	assert.Equal(t, "/etc", path)
	assert.Equal(t, delegate, p.Delegate())
}

func TestConcurrentReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockProvider(ctrl)
	expectRootStore(ctrl, delegate, 300, 200, 100)

	p, err := snapshotfs.NewProvider(context.Background(), delegate)
	require.NoError(t, err)
	delegate.EXPECT().Store(gomock.Any()).Return(mocks.NewMockStore(ctrl), nil).AnyTimes()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store, err := p.Store(filepath.Join("/data", string(rune('a'+i))))
			if !assert.NoError(t, err) {
				return
			}
			usable, err := store.UsableSpace()
			assert.NoError(t, err)
			assert.Equal(t, int64(200), usable)
		}()
	}
	wg.Wait()
}

// fakeMountTable returns a single ext4 root mount.
func fakeMountTable() *mount.FakeMounter {
	return mount.NewFakeMounter([]mount.MountPoint{
		{Device: "/dev/sda1", Path: "/", Type: "ext4", Opts: []string{"rw", "relatime"}},
	})
}

func TestSnapshotSurvivesExternalConsumption(t *testing.T) {
	ctrl := gomock.NewController(t)
	statter := mocks.NewMockFilesystemStatter(ctrl)

	var mu sync.Mutex
	consumed := int64(0)
	statter.EXPECT().Statfs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(path string, stat *unix.Statfs_t) error {
			mu.Lock()
			defer mu.Unlock()
			stat.Bsize = 1
			stat.Blocks = 1_000_000_000
			stat.Bavail = uint64(500_000_000 - consumed)
			stat.Bfree = uint64(400_000_000 - consumed)
			return nil
		}).AnyTimes()

	osProvider := filesystem.NewOSProvider(
		filesystem.WithMounter(fakeMountTable()),
		filesystem.WithStatter(statter),
		filesystem.WithHardwareInfo(mocks.NewMockHardwareInfo(ctrl)),
	)

	p, err := snapshotfs.NewProvider(context.Background(), osProvider)
	require.NoError(t, err)

	mu.Lock()
	consumed = 200_000_000
	mu.Unlock()

	live, err := osProvider.Store("/srv/data")
	require.NoError(t, err)
	liveUsable, err := live.UsableSpace()
	require.NoError(t, err)
	assert.Equal(t, int64(300_000_000), liveUsable)

	for _, path := range []string{"/", "/srv/data", "/home"} {
		store, err := p.Store(path)
		require.NoError(t, err)
		usable, err := store.UsableSpace()
		require.NoError(t, err)
		assert.Equal(t, int64(500_000_000), usable, path)
		unallocated, err := store.UnallocatedSpace()
		require.NoError(t, err)
		assert.Equal(t, int64(400_000_000), unallocated, path)
		assert.Equal(t, "/dev/sda1", store.Name())
		assert.Equal(t, "ext4", store.Type())
	}
}

func TestSnapshotOfRealFilesystem(t *testing.T) {
	osProvider := filesystem.NewOSProvider()
	if _, err := osProvider.Store("/"); err != nil {
		t.Skipf("root store unavailable on this host: %v", err)
	}

	p, err := snapshotfs.NewProvider(context.Background(), osProvider)
	require.NoError(t, err)
	before := p.Snapshot()
	assert.Positive(t, before.TotalSpace)

	dir := t.TempDir()
	store, err := p.Store(dir)
	require.NoError(t, err)
	usableBefore, err := store.UsableSpace()
	require.NoError(t, err)

	data := make([]byte, 8<<20)
	for i := range data {
		data[i] = byte(i)
	}
	f, err := os.Create(filepath.Join(dir, "filler"))
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	usableAfter, err := store.UsableSpace()
	require.NoError(t, err)
	assert.Equal(t, usableBefore, usableAfter)
	assert.Equal(t, before, p.Snapshot())

	again, err := p.Store(dir)
	require.NoError(t, err)
	total, err := again.TotalSpace()
	require.NoError(t, err)
	assert.Equal(t, before.TotalSpace, total)
}

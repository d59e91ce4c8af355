package install_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
	"go.parcel.ch/parcel/internal/core/ports/mocks"
	"go.parcel.ch/parcel/internal/engine/flow"
	"go.parcel.ch/parcel/internal/engine/install"
	"go.uber.org/mock/gomock"
)

func newResolver(ctrl *gomock.Controller, cache *install.Cache, remotes ...ports.Remote) (*install.Resolver, *flow.JobGroup) {
	jobs := flow.NewJobGroup()
	tracer := newTracerMock(ctrl)
	preparer := install.NewPreparer(jobs, tracer)
	return install.NewResolver(cache, remotes, preparer, newLoggerMock(ctrl), tracer), jobs
}

func listing(name string, versions ...string) []ports.PackageInfo {
	infos := make([]ports.PackageInfo, len(versions))
	for i, v := range versions {
		infos[i] = ports.PackageInfo{Name: name, Version: v, Ref: name + "@" + v}
	}
	return infos
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("cache hit skips remotes entirely", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		cache := install.NewCache()
		cached := descriptor("pkg", "1.0.0")
		cache.Insert(cached, false)

		// The remote carries no List expectation: touching it fails the test.
		remote := mocks.NewMockRemote(ctrl)

		r, _ := newResolver(ctrl, cache, remote)
		got, err := r.Resolve(context.Background(), "pkg", "", false)
		require.NoError(t, err)
		assert.Same(t, cached, got)
	})

	t.Run("first satisfying remote stops the scan", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			first := mocks.NewMockRemote(ctrl)
			first.EXPECT().URL().Return("https://first.example").AnyTimes()
			first.EXPECT().List(gomock.Any(), gomock.Any()).Return(listing("pkg", "1.0.0"), nil)
			first.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("/tmp/staged", nil).AnyTimes()

			// The second remote is never queried.
			second := mocks.NewMockRemote(ctrl)

			r, _ := newResolver(ctrl, install.NewCache(), first, second)
			got, err := r.Resolve(context.Background(), "pkg", "", false)
			require.NoError(t, err)
			assert.Equal(t, "1.0.0", got.Version)
			assert.Equal(t, install.OriginRemote, got.Origin)

			synctest.Wait()
		})
	})

	t.Run("unsatisfying remote falls through to the next", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			first := mocks.NewMockRemote(ctrl)
			first.EXPECT().URL().Return("https://first.example").AnyTimes()
			first.EXPECT().List(gomock.Any(), gomock.Any()).Return(listing("pkg", "1.0.0"), nil)
			first.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("/tmp/a", nil).AnyTimes()

			second := mocks.NewMockRemote(ctrl)
			second.EXPECT().URL().Return("https://second.example").AnyTimes()
			second.EXPECT().List(gomock.Any(), gomock.Any()).Return(listing("pkg", "2.1.0"), nil)
			second.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("/tmp/b", nil).AnyTimes()

			r, _ := newResolver(ctrl, install.NewCache(), first, second)
			got, err := r.Resolve(context.Background(), "pkg", "2.0.0", false)
			require.NoError(t, err)
			assert.Equal(t, "2.1.0", got.Version)

			synctest.Wait()
		})
	})

	t.Run("listing failure warns and continues", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			broken := mocks.NewMockRemote(ctrl)
			broken.EXPECT().URL().Return("https://broken.example").AnyTimes()
			broken.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

			working := mocks.NewMockRemote(ctrl)
			working.EXPECT().URL().Return("https://working.example").AnyTimes()
			working.EXPECT().List(gomock.Any(), gomock.Any()).Return(listing("pkg", "1.0.0"), nil)
			working.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("/tmp/staged", nil).AnyTimes()

			logger := mocks.NewMockLogger(ctrl)
			logger.EXPECT().Warn(gomock.Any()).Times(1)

			jobs := flow.NewJobGroup()
			tracer := newTracerMock(ctrl)
			preparer := install.NewPreparer(jobs, tracer)
			r := install.NewResolver(install.NewCache(), []ports.Remote{broken, working}, preparer, logger, tracer)

			got, err := r.Resolve(context.Background(), "pkg", "", false)
			require.NoError(t, err)
			assert.Equal(t, "1.0.0", got.Version)

			synctest.Wait()
		})
	})

	t.Run("exhausted remotes yield not found", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemote(ctrl)
		remote.EXPECT().URL().Return("https://empty.example").AnyTimes()
		remote.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		r, _ := newResolver(ctrl, install.NewCache(), remote)
		_, err := r.Resolve(context.Background(), "pkg", "1.0.0", false)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrPackageNotFound.Error())
	})

	t.Run("listing requests dependency information", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			remote := mocks.NewMockRemote(ctrl)
			remote.EXPECT().URL().Return("https://first.example").AnyTimes()
			remote.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("/tmp/staged", nil).AnyTimes()
			remote.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, query ports.ListQuery) ([]ports.PackageInfo, error) {
					assert.True(t, query.IncludeDependencies)
					assert.Equal(t, "pkg", query.Name)
					return listing("pkg", "1.0.0"), nil
				},
			)

			r, _ := newResolver(ctrl, install.NewCache(), remote)
			_, err := r.Resolve(context.Background(), "pkg", "", false)
			require.NoError(t, err)

			synctest.Wait()
		})
	})

	t.Run("fresh candidates are prefetched speculatively", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			remote := mocks.NewMockRemote(ctrl)
			remote.EXPECT().URL().Return("https://first.example").AnyTimes()
			remote.EXPECT().List(gomock.Any(), gomock.Any()).Return(listing("pkg", "1.0.0", "1.1.0"), nil)
			remote.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("/tmp/staged", nil).Times(2)

			cache := install.NewCache()
			r, jobs := newResolver(ctrl, cache, remote)

			_, err := r.Resolve(context.Background(), "pkg", "", false)
			require.NoError(t, err)

			// Both listed candidates get a background prepare job, not just
			// the selected one.
			synctest.Wait()
			assert.True(t, jobs.Started("pkg@1.0.0#prepare"))
			assert.True(t, jobs.Started("pkg@1.1.0#prepare"))
		})
	})
}

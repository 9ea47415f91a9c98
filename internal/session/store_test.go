package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/internal/session"
)

func TestStoreLoad(t *testing.T) {
	t.Run("FetchesRemoteSet", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("FetchProducts", mock.Anything).Return(
			[]domain.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil,
		).Once()

		store := session.NewStore(remote)
		require.NoError(t, store.Load(context.Background()))
		assert.Len(t, store.Snapshot(), 2)
		remote.AssertExpectations(t)
	})

	t.Run("FailureKeepsPreviousSet", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("FetchProducts", mock.Anything).Return(
			[]domain.Product{{ID: 1}}, nil,
		).Once()
		store := session.NewStore(remote)
		require.NoError(t, store.Load(context.Background()))

		remote.On("FetchProducts", mock.Anything).
			Return(nil, errors.New("remote down")).Times(3)
		assert.Error(t, store.Load(context.Background()))
		assert.Len(t, store.Snapshot(), 1)
		remote.AssertExpectations(t)
	})
}

func TestStoreSnapshot(t *testing.T) {
	t.Run("IsolatedFromLaterMutations", func(t *testing.T) {
		remote := new(MockRemote)
		store := seededStore(remote, domain.Product{ID: 1, Name: "a"})
		m := session.NewMutator(store, remote, confirmAlways)

		snap := store.Snapshot()

		remote.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil).Once()
		_, err := m.Create(draft("Shirt"))
		require.NoError(t, err)
		m.Close()

		assert.Len(t, snap, 1)
		assert.Len(t, store.Snapshot(), 2)
	})

	t.Run("CallerWritesDoNotLeakBack", func(t *testing.T) {
		remote := new(MockRemote)
		store := seededStore(remote, domain.Product{ID: 1, Name: "a"})

		snap := store.Snapshot()
		snap[0].Name = "tampered"

		got, err := store.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "a", got.Name)
	})
}

func TestStoreSubscribe(t *testing.T) {
	t.Run("NotifiedOnEveryChange", func(t *testing.T) {
		remote := new(MockRemote)
		store := seededStore(remote, domain.Product{ID: 1})
		m := session.NewMutator(store, remote, confirmAlways)

		var calls int
		unsubscribe := store.Subscribe(func() { calls++ })

		remote.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil).Once()
		remote.On("DeleteProduct", mock.Anything, 1).
			Return(nil).Once()

		_, err := m.Create(draft("Shirt"))
		require.NoError(t, err)
		_, err = m.Delete(1)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)

		unsubscribe()
		remote.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil).Once()
		_, err = m.Create(draft("Cap"))
		require.NoError(t, err)
		assert.Equal(t, 2, calls)

		m.Close()
	})
}

func TestStoreClose(t *testing.T) {
	t.Run("RejectsMutations", func(t *testing.T) {
		remote := new(MockRemote)
		store := seededStore(remote, domain.Product{ID: 1})
		m := session.NewMutator(store, remote, confirmAlways)
		defer m.Close()

		store.Close()

		_, err := m.Create(draft("Shirt"))
		assert.Error(t, err)
		assert.Len(t, store.Snapshot(), 1)
		remote.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("LoadCannotRepopulate", func(t *testing.T) {
		remote := new(MockRemote)
		store := seededStore(remote, domain.Product{ID: 1})

		store.Close()

		remote.On("FetchProducts", mock.Anything).Return(
			[]domain.Product{{ID: 2}, {ID: 3}}, nil,
		)
		assert.Error(t, store.Load(context.Background()))
		assert.Len(t, store.Snapshot(), 1)
	})
}

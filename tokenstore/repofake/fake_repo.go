package repofake

import (
	"context"
	"sync"

	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/jrsteele09/go-sim-client/tokenstore"
)

var _ tokenstore.Repo = (*FakeRepo)(nil)

type FakeRepo struct {
	values map[string]string
	lock   sync.RWMutex

	// Injected failures, returned by the matching method when set
	GetErr    error
	SetErr    error
	DeleteErr error

	gets int
}

func NewFakeRepo() *FakeRepo {
	return &FakeRepo{
		values: make(map[string]string),
	}
}

func (fr *FakeRepo) Get(_ context.Context, key string) (string, error) {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	fr.gets++
	if fr.GetErr != nil {
		return "", fr.GetErr
	}
	v, ok := fr.values[key]
	if !ok {
		return "", simerrors.ErrNotFound
	}
	return v, nil
}

func (fr *FakeRepo) Set(_ context.Context, key, value string) error {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	if fr.SetErr != nil {
		return fr.SetErr
	}
	fr.values[key] = value
	return nil
}

func (fr *FakeRepo) Delete(_ context.Context, key string) error {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	if fr.DeleteErr != nil {
		return fr.DeleteErr
	}
	delete(fr.values, key)
	return nil
}

// Gets reports how many times Get has been called
func (fr *FakeRepo) Gets() int {
	fr.lock.RLock()
	defer fr.lock.RUnlock()
	return fr.gets
}

package memrepo

import (
	"context"
	"fmt"
	"sync"

	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/jrsteele09/go-sim-client/tokenstore"
)

var _ tokenstore.Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is a process-lifetime implementation of tokenstore.Repo
type InMemoryRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewInMemoryRepo creates an empty in-memory repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		values: make(map[string]string),
	}
}

func (r *InMemoryRepo) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return "", simerrors.ErrNotFound
	}
	return v, nil
}

func (r *InMemoryRepo) Set(_ context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}

func (r *InMemoryRepo) Delete(_ context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key) // Already doesn't exist, no error
	return nil
}

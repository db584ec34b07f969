// Package filerepo persists key-value pairs in a single JSON file, optionally
// sealing every value with NaCl secretbox.
package filerepo

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/jrsteele09/go-sim-client/tokenstore"
	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var _ tokenstore.Repo = (*FileRepo)(nil)

// FileRepo is safe for concurrent use within a process.
type FileRepo struct {
	path string
	key  *[32]byte
	mu   sync.Mutex
}

// Option configures a FileRepo
type Option func(*FileRepo)

// WithSealingKey seals values at rest with the given key
func WithSealingKey(key [32]byte) Option {
	return func(fr *FileRepo) {
		fr.key = &key
	}
}

// New creates a FileRepo at path. The file and its directory are created on first write.
func New(path string, options ...Option) (*FileRepo, error) {
	if path == "" {
		return nil, errors.Wrap(simerrors.ErrInvalidArgument, "[filerepo.New] path is required")
	}
	fr := &FileRepo{path: path}
	for _, opt := range options {
		opt(fr)
	}
	return fr, nil
}

// ParseKey decodes a 64 character hex string into a sealing key
func ParseKey(s string) ([32]byte, error) {
	var key [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return key, errors.Wrap(err, "[filerepo.ParseKey] invalid hex")
	}
	if len(b) != len(key) {
		return key, fmt.Errorf("[filerepo.ParseKey] key must be %d bytes, got %d", len(key), len(b))
	}
	copy(key[:], b)
	return key, nil
}

func (fr *FileRepo) Get(_ context.Context, key string) (string, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	values, err := fr.read()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", simerrors.ErrNotFound
	}
	return fr.open(v)
}

func (fr *FileRepo) Set(_ context.Context, key, value string) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	values, err := fr.read()
	if err != nil {
		return err
	}
	sealed, err := fr.seal(value)
	if err != nil {
		return err
	}
	values[key] = sealed
	return fr.write(values)
}

func (fr *FileRepo) Delete(_ context.Context, key string) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	values, err := fr.read()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return fr.write(values)
}

func (fr *FileRepo) read() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(fr.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", fr.path)
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", fr.path)
	}
	return values, nil
}

// write replaces the file atomically via a temp file and rename
func (fr *FileRepo) write(values map[string]string) error {
	dir := filepath.Dir(fr.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	data, err := json.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "encoding values")
	}
	tmp, err := os.CreateTemp(dir, ".store-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return errors.Wrap(err, "chmod temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), fr.path), "replacing %s", fr.path)
}

func (fr *FileRepo) seal(value string) (string, error) {
	if fr.key == nil {
		return value, nil
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", errors.Wrap(err, "generating nonce")
	}
	out := secretbox.Seal(nonce[:], []byte(value), &nonce, fr.key)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (fr *FileRepo) open(value string) (string, error) {
	if fr.key == nil {
		return value, nil
	}
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil || len(raw) < nonceSize {
		return "", errors.New("sealed value is malformed")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, fr.key)
	if !ok {
		return "", errors.New("sealed value failed authentication")
	}
	return string(plain), nil
}

// Package inventory routes per-document-type operations to the SIM API.
package inventory

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jrsteele09/go-sim-client/endpoints"
	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/pkg/errors"
)

// Gateway is the subset of gateway.Client the service needs
type Gateway interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string, body any) (json.RawMessage, error)
}

// Service dispatches document operations for a store
type Service struct {
	gw Gateway
}

// NewService creates a Service
func NewService(gw Gateway) (*Service, error) {
	if gw == nil {
		return nil, errors.Wrap(simerrors.ErrInvalidArgument, "[NewService] gateway is required")
	}
	return &Service{gw: gw}, nil
}

// List fetches every document of the type. Templates that take segments are
// scoped to store.
func (s *Service) List(ctx context.Context, dt DocumentType, store string) (json.RawMessage, error) {
	key, err := operationKey(dt, "list", func(o operations) endpoints.Key { return o.list })
	if err != nil {
		return nil, err
	}
	var path string
	if endpoints.TakesSegments(key) {
		path, err = endpoints.Path(key, store)
	} else {
		path, err = endpoints.Path(key)
	}
	if err != nil {
		return nil, err
	}
	return s.gw.Get(ctx, path)
}

// Search matches query against documents of the type. An empty query lists.
func (s *Service) Search(ctx context.Context, dt DocumentType, store, query string) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		return s.List(ctx, dt, store)
	}
	return s.getScoped(ctx, dt, "search", func(o operations) endpoints.Key { return o.search }, query, store)
}

// Filter narrows documents of the type by a status or reason value.
func (s *Service) Filter(ctx context.Context, dt DocumentType, store, value string) (json.RawMessage, error) {
	if err := requireArg("filter value", value); err != nil {
		return nil, err
	}
	return s.getScoped(ctx, dt, "filter", func(o operations) endpoints.Key { return o.filter }, value, store)
}

// Sort orders documents of the type.
func (s *Service) Sort(ctx context.Context, dt DocumentType, store string, order SortOrder) (json.RawMessage, error) {
	if _, err := ParseSortOrder(string(order)); err != nil {
		return nil, err
	}
	return s.getScoped(ctx, dt, "sort", func(o operations) endpoints.Key { return o.sort }, string(order), store)
}

// Create starts a new document. Templates that take segments are scoped to store.
func (s *Service) Create(ctx context.Context, dt DocumentType, store string, body any) (json.RawMessage, error) {
	key, err := operationKey(dt, "create", func(o operations) endpoints.Key { return o.create })
	if err != nil {
		return nil, err
	}
	var segments []string
	if endpoints.TakesSegments(key) {
		segments = []string{store}
	}
	return s.post(ctx, key, body, segments...)
}

// Submit finalises a document's line items. For transfers in this receives the
// transfer; for transfers out it ships it.
func (s *Service) Submit(ctx context.Context, dt DocumentType, body any, segments ...string) (json.RawMessage, error) {
	key, err := operationKey(dt, "submit", func(o operations) endpoints.Key { return o.submit })
	if err != nil {
		return nil, err
	}
	return s.post(ctx, key, body, segments...)
}

// SaveDraft stores a document without submitting it.
func (s *Service) SaveDraft(ctx context.Context, dt DocumentType, body any, segments ...string) (json.RawMessage, error) {
	key, err := operationKey(dt, "save draft", func(o operations) endpoints.Key { return o.draft })
	if err != nil {
		return nil, err
	}
	return s.post(ctx, key, body, segments...)
}

// Delete removes the document with id.
func (s *Service) Delete(ctx context.Context, dt DocumentType, id string, body any) (json.RawMessage, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	key, err := operationKey(dt, "delete", func(o operations) endpoints.Key { return o.remove })
	if err != nil {
		return nil, err
	}
	path, err := endpoints.Path(key, id)
	if err != nil {
		return nil, err
	}
	return s.gw.Delete(ctx, path, body)
}

// Items fetches the line items of the document with id. Extra segments are
// appended after the id, e.g. a SKU and type for purchase order item search.
func (s *Service) Items(ctx context.Context, dt DocumentType, id string, extra ...string) (json.RawMessage, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	key, err := operationKey(dt, "items", func(o operations) endpoints.Key { return o.items })
	if err != nil {
		return nil, err
	}
	return s.get(ctx, key, append([]string{id}, extra...)...)
}

// Reasons fetches the reason codes for the type.
func (s *Service) Reasons(ctx context.Context, dt DocumentType) (json.RawMessage, error) {
	key, err := operationKey(dt, "reasons", func(o operations) endpoints.Key { return o.reasons })
	if err != nil {
		return nil, err
	}
	return s.get(ctx, key)
}

// Supports reports whether the type exposes the named operation:
// list, search, filter, sort, create, submit, delete, draft, items or reasons.
func Supports(dt DocumentType, operation string) (bool, error) {
	ops, err := operationsFor(dt)
	if err != nil {
		return false, err
	}
	keys := map[string]endpoints.Key{
		"list":    ops.list,
		"search":  ops.search,
		"filter":  ops.filter,
		"sort":    ops.sort,
		"create":  ops.create,
		"submit":  ops.submit,
		"delete":  ops.remove,
		"draft":   ops.draft,
		"items":   ops.items,
		"reasons": ops.reasons,
	}
	key, ok := keys[operation]
	if !ok {
		return false, simerrors.Wrapf(simerrors.ErrUnknownOperation, "%q", operation)
	}
	return key != "", nil
}

func (s *Service) getScoped(ctx context.Context, dt DocumentType, name string, pick func(operations) endpoints.Key, value, store string) (json.RawMessage, error) {
	key, err := operationKey(dt, name, pick)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, key, value, store)
}

func (s *Service) get(ctx context.Context, key endpoints.Key, segments ...string) (json.RawMessage, error) {
	path, err := endpoints.Path(key, segments...)
	if err != nil {
		return nil, err
	}
	return s.gw.Get(ctx, path)
}

func (s *Service) post(ctx context.Context, key endpoints.Key, body any, segments ...string) (json.RawMessage, error) {
	path, err := endpoints.Path(key, segments...)
	if err != nil {
		return nil, err
	}
	return s.gw.Post(ctx, path, body)
}

func operationKey(dt DocumentType, name string, pick func(operations) endpoints.Key) (endpoints.Key, error) {
	ops, err := operationsFor(dt)
	if err != nil {
		return "", err
	}
	key := pick(ops)
	if key == "" {
		return "", simerrors.Wrapf(simerrors.ErrUnsupportedOperation, "%s for %s", name, dt)
	}
	return key, nil
}

func requireArg(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return simerrors.Wrapf(simerrors.ErrInvalidArgument, "%s is required", name)
	}
	return nil
}

package inventory

import (
	"context"
	"encoding/json"

	"github.com/jrsteele09/go-sim-client/endpoints"
)

// ItemSearch matches a SKU in store for the given document type
func (s *Service) ItemSearch(ctx context.Context, sku, store string, dt DocumentType) (json.RawMessage, error) {
	if err := requireArg("sku", sku); err != nil {
		return nil, err
	}
	if _, err := operationsFor(dt); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.GeneralItemSearch, sku, store, string(dt))
}

// ItemsBySupplier matches a SKU among a supplier's products
func (s *Service) ItemsBySupplier(ctx context.Context, supplier, sku, store string) (json.RawMessage, error) {
	if err := requireArg("supplier", supplier); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.FetchItemsBySupplier, supplier, sku, store, string(DirectStoreDelivery))
}

// SupplierSearch matches suppliers by name or id
func (s *Service) SupplierSearch(ctx context.Context, query string) (json.RawMessage, error) {
	if err := requireArg("query", query); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.FetchSupplierByNameOrID, query)
}

// CategoryItemSearch matches a SKU within a product category
func (s *Service) CategoryItemSearch(ctx context.Context, sku, store, category string) (json.RawMessage, error) {
	if err := requireArg("category", category); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.SearchCatItems, sku, store, category)
}

func (s *Service) Variants(ctx context.Context, sku string) (json.RawMessage, error) {
	if err := requireArg("sku", sku); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.FetchVariants, sku)
}

// ProductDetails posts a variant selection and returns its current details
func (s *Service) ProductDetails(ctx context.Context, body any) (json.RawMessage, error) {
	return s.post(ctx, endpoints.FetchCurrentDetails, body)
}

// StoreItemDetails fetches a product's details in a buddy store
func (s *Service) StoreItemDetails(ctx context.Context, sku, store string) (json.RawMessage, error) {
	if err := requireArg("sku", sku); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.StoreItemDetails, sku, store)
}

func (s *Service) Stores(ctx context.Context, query string) (json.RawMessage, error) {
	if err := requireArg("query", query); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.FetchStores, query)
}

func (s *Service) BuddyStores(ctx context.Context, store string) (json.RawMessage, error) {
	if err := requireArg("store", store); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.GetAllBuddyStores, store)
}

func (s *Service) Categories(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, endpoints.GetAllCategories)
}

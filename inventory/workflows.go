package inventory

import (
	"context"
	"encoding/json"

	"github.com/jrsteele09/go-sim-client/endpoints"
)

// RequestTransfer adds products to a transfer request
func (s *Service) RequestTransfer(ctx context.Context, body any) (json.RawMessage, error) {
	return s.post(ctx, endpoints.RequestTsf, body)
}

// AcceptTransfer updates the acceptance status of a transfer order
func (s *Service) AcceptTransfer(ctx context.Context, body any) (json.RawMessage, error) {
	return s.post(ctx, endpoints.TsfAcceptance, body)
}

// ShipTransfer ships an outbound transfer
func (s *Service) ShipTransfer(ctx context.Context, body any, segments ...string) (json.RawMessage, error) {
	return s.Submit(ctx, TransferOut, body, segments...)
}

// ReceiveTransfer receives an inbound transfer
func (s *Service) ReceiveTransfer(ctx context.Context, body any) (json.RawMessage, error) {
	return s.Submit(ctx, TransferIn, body)
}

// CreateASN creates an advance shipping notice
func (s *Service) CreateASN(ctx context.Context, body any) (json.RawMessage, error) {
	return s.post(ctx, endpoints.CreateAsn, body)
}

// ASNItems fetches the items of an ASN
func (s *Service) ASNItems(ctx context.Context, asnNumber string) (json.RawMessage, error) {
	if err := requireArg("asn number", asnNumber); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.FetchAsnItems, asnNumber)
}

// ASNsForPO lists the ASNs raised against a purchase order
func (s *Service) ASNsForPO(ctx context.Context, poNumber string) (json.RawMessage, error) {
	if err := requireArg("po number", poNumber); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.FetchASNForPO, poNumber)
}

// AddCountItems records counted or recounted quantities
func (s *Service) AddCountItems(ctx context.Context, body any) (json.RawMessage, error) {
	return s.post(ctx, endpoints.AddItemsToSC, body)
}

// AddAdhocItems adds products to an ad hoc stock count
func (s *Service) AddAdhocItems(ctx context.Context, body any) (json.RawMessage, error) {
	return s.post(ctx, endpoints.AddItemsToAd, body)
}

// CountEntry fetches the entry view of a stock count
func (s *Service) CountEntry(ctx context.Context, id string) (json.RawMessage, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	return s.get(ctx, endpoints.FetchSCEntry, id)
}

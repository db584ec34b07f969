package inventory

import (
	"strings"

	"github.com/jrsteele09/go-sim-client/endpoints"
	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
)

// DocumentType is one of the seven inventory workflows.
type DocumentType string

const (
	InventoryAdjustment DocumentType = "IA"
	DirectStoreDelivery DocumentType = "DSD"
	PurchaseOrder       DocumentType = "PO"
	ReturnToVendor      DocumentType = "RTV"
	TransferIn          DocumentType = "TSFIN"
	TransferOut         DocumentType = "TSFOUT"
	StockCount          DocumentType = "SC"
)

// DocumentTypes lists every document type
var DocumentTypes = []DocumentType{
	InventoryAdjustment,
	DirectStoreDelivery,
	PurchaseOrder,
	ReturnToVendor,
	TransferIn,
	TransferOut,
	StockCount,
}

// ParseDocumentType maps a tag such as "ia" or "TSFIN" to a DocumentType.
func ParseDocumentType(tag string) (DocumentType, error) {
	dt := DocumentType(strings.ToUpper(strings.TrimSpace(tag)))
	if _, err := operationsFor(dt); err != nil {
		return "", err
	}
	return dt, nil
}

func (dt DocumentType) String() string {
	return string(dt)
}

// Description is the human readable workflow name
func (dt DocumentType) Description() string {
	switch dt {
	case InventoryAdjustment:
		return "Inventory Adjustment"
	case DirectStoreDelivery:
		return "Direct Store Delivery"
	case PurchaseOrder:
		return "Purchase Order"
	case ReturnToVendor:
		return "Return to Vendor"
	case TransferIn:
		return "Transfer In"
	case TransferOut:
		return "Transfer Out"
	case StockCount:
		return "Stock Count"
	}
	return "Unknown"
}

// operations holds the endpoint key for each per-type operation. An empty key
// means the backend exposes no such operation for the type.
type operations struct {
	list    endpoints.Key
	search  endpoints.Key
	filter  endpoints.Key
	sort    endpoints.Key
	create  endpoints.Key
	submit  endpoints.Key
	remove  endpoints.Key
	draft   endpoints.Key
	items   endpoints.Key
	reasons endpoints.Key
}

// operationsFor must have a case for every DocumentType.
func operationsFor(dt DocumentType) (operations, error) {
	switch dt {
	case InventoryAdjustment:
		return operations{
			list:    endpoints.FetchIA,
			search:  endpoints.SearchIA,
			filter:  endpoints.FilterIA,
			sort:    endpoints.SortIA,
			create:  endpoints.CreateIA,
			submit:  endpoints.SubmitIA,
			remove:  endpoints.DeleteIA,
			draft:   endpoints.SaveAsDraftIA,
			items:   endpoints.FetchItemsIA,
			reasons: endpoints.FetchReasons,
		}, nil
	case DirectStoreDelivery:
		return operations{
			list:   endpoints.FetchDSD,
			search: endpoints.SearchDSD,
			filter: endpoints.FilterDSD,
			sort:   endpoints.SortDSD,
			create: endpoints.CreateDSD,
			submit: endpoints.SubmitDSD,
			remove: endpoints.DeleteDSD,
			draft:  endpoints.SaveAsDraftDSD,
			items:  endpoints.FetchItemsDSD,
		}, nil
	case PurchaseOrder:
		return operations{
			list:   endpoints.FetchPO,
			search: endpoints.SearchPO,
			filter: endpoints.FilterPO,
			sort:   endpoints.SortPO,
			submit: endpoints.SubmitAsnItems,
			draft:  endpoints.SaveAsnItems,
			items:  endpoints.FetchPOItems,
		}, nil
	case ReturnToVendor:
		return operations{
			list:    endpoints.FetchRTV,
			search:  endpoints.SearchRTV,
			filter:  endpoints.FilterRTV,
			sort:    endpoints.SortRTV,
			create:  endpoints.CreateRTV,
			submit:  endpoints.SubmitRTV,
			remove:  endpoints.DeleteRTV,
			draft:   endpoints.SaveAsDraftRTV,
			items:   endpoints.FetchItemsRTV,
			reasons: endpoints.FetchRTVReasons,
		}, nil
	case TransferIn:
		return operations{
			list:    endpoints.FetchTsfIn,
			search:  endpoints.SearchTsfIn,
			filter:  endpoints.FilterTsf,
			sort:    endpoints.SortTsf,
			create:  endpoints.CreateTsf,
			submit:  endpoints.ReceiveTsf,
			items:   endpoints.FetchItemsTsf,
			reasons: endpoints.FetchTsfReasons,
		}, nil
	case TransferOut:
		return operations{
			list:    endpoints.FetchTsfOut,
			search:  endpoints.SearchTsfOut,
			filter:  endpoints.FilterTsf,
			sort:    endpoints.SortTsf,
			create:  endpoints.CreateTsf,
			submit:  endpoints.ShipTsf,
			items:   endpoints.FetchItemsTsf,
			reasons: endpoints.FetchTsfReasons,
		}, nil
	case StockCount:
		// The backend has no stock count search endpoint
		return operations{
			list:    endpoints.FetchSC,
			filter:  endpoints.FilterSC,
			sort:    endpoints.SortSC,
			create:  endpoints.CreateSC,
			submit:  endpoints.AddItemsToSC,
			draft:   endpoints.DraftSC,
			items:   endpoints.FetchSCItems,
			reasons: endpoints.FetchSCReasons,
		}, nil
	}
	return operations{}, simerrors.Wrapf(simerrors.ErrUnknownDocumentType, "%q", string(dt))
}

// SortOrder orders listings by their primary date
type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
)

// ParseSortOrder accepts "latest" or "oldest"
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case SortLatest, SortOldest:
		return o, nil
	}
	return "", simerrors.Wrapf(simerrors.ErrInvalidArgument, "sort order %q", s)
}

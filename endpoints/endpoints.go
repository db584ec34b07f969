// Package endpoints holds the operation-key to REST path table of the SIM API.
// The paths are the API contract and must not be altered.
package endpoints

import (
	"net/url"
	"sort"
	"strings"

	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
)

// LoginPath is the authentication endpoint, relative to the base URL
const LoginPath = "/api/auth/login"

var table = map[Key]string{
	FetchIA:       "/inventoryadjustment/all/adjustments",
	CreateIA:      "/inventoryadjustment/create/IA/",
	SearchIA:      "/inventoryadjustment/search/adjustments/",
	DeleteIA:      "/inventoryadjustment/delete/byid/",
	FilterIA:      "/inventoryadjustment/filter/adjustments/",
	SortIA:        "/inventoryadjustment/sort/",
	SaveAsDraftIA: "/inventoryadjustment/saveAsDraft",
	SubmitIA:      "/inventoryadjustment/save/adj/products",
	FetchItemsIA:  "/inventoryadjustment/products/id/",

	FetchDSD:                "/dsd/all/Dsd",
	CreateDSD:               "/dsd/create/Dsd/",
	DeleteDSD:               "/dsd/delete/byid/",
	SearchDSD:               "/dsd/getMatched/Dsd/",
	SortDSD:                 "/dsd/sort/",
	FilterDSD:               "/dsd/filter/Dsd/",
	SaveAsDraftDSD:          "/dsd/saveAsDraft",
	SubmitDSD:               "/dsd/save/Dsd/products",
	FetchItemsDSD:           "/dsd/products/DsdNumber/",
	FetchItemsBySupplier:    "/dsd/get/supplier/products/",
	FetchSupplierByNameOrID: "/dsd/getMatched/suppliers/",

	FetchTsfIn:      "/transferreceive/get/intransfers/",
	FetchTsfOut:     "/transferreceive/get/outtransfers/",
	SearchTsfIn:     "/transferreceive/search/In/Tsf/",
	SearchTsfOut:    "/transferreceive/search/Out/Tsf/",
	SortTsf:         "/transferreceive/sort/",
	FilterTsf:       "/transferreceive/filter/",
	CreateTsf:       "/transferreceive/create/transfer/",
	FetchTsfReasons: "/transferreceive/get/reasoncodes",
	FetchItemsTsf:   "/transferreceive/getProducts/byTransferid/",
	RequestTsf:      "/transferreceive/add/tsf/products",
	ReceiveTsf:      "/transferreceive/receive/transfer",
	TsfAcceptance:   "/transferreceive/update/orderAcceptance",
	ShipTsf:         "/transferreceive/ship/tsf/",
	CreateAsn:       "/purchaseOrder/create/asn",
	FetchAsnItems:   "/purchaseOrder/getitemsby/asnnumber/",

	FetchPO:        "/purchaseOrder/getall/po",
	SearchPO:       "/purchaseOrder/getMatched/Po/",
	SortPO:         "/purchaseOrder/sort/",
	SubmitAsnItems: "/purchaseOrder/save/po_receive/",
	SaveAsnItems:   "/purchaseOrder/save/draft/po/",
	FetchASNForPO:  "/purchaseOrder/get/asn/list/by/ponumber/",
	FetchPOItems:   "/purchaseOrder/get/itemBy/po/",
	FilterPO:       "/purchaseOrder/filter/po/",

	FetchSC:        "/stockcount/all/StockCounts",
	CreateSC:       "/stockcount/Create/AdhocstockCount/",
	FetchSCItems:   "/stockcount/products/id/",
	FetchSCReasons: "/stockcount/reasoncodes",
	FetchSCEntry:   "/stockcount/products/id/",
	AddItemsToSC:   "/stockcount/update/count/recount",
	AddItemsToAd:   "/stockcount/add/AdhocProducts",
	DraftSC:        "/stockcount/draft/SC/",
	FilterSC:       "/stockcount/filter/SC/",
	SortSC:         "/stockcount/sort/",

	FetchRTV:        "/returntovendor/all/rtv",
	CreateRTV:       "/returntovendor/create/rtv/",
	FetchItemsRTV:   "/returntovendor/getRtv/products/id/",
	FetchRTVReasons: "/returntovendor/reasoncodes",
	DeleteRTV:       "/returntovendor/delete/byid/",
	SearchRTV:       "/returntovendor/search/rtv/",
	SortRTV:         "/returntovendor/sort/",
	SaveAsDraftRTV:  "/returntovendor/save/draft/rtv",
	SubmitRTV:       "/returntovendor/save/rtv/products",
	FilterRTV:       "/returntovendor/filter/rtv/",

	GeneralItemSearch:   "/product/getMatched/sku/",
	StoreItemDetails:    "/store/getBuddyStoreProductDetails/",
	FetchVariants:       "/product/getVariants/",
	FetchReasons:        "/inventoryadjustment/reasoncodes",
	FetchStores:         "/store/getMatched/stores/",
	GetAllBuddyStores:   "/store/get/all/buddystores/",
	FetchCurrentDetails: "/product/getProductDetailsByVariants",
	GetAllCategories:    "/product/getall/categories",
	SearchCatItems:      "/product/getMatched/sku/byCategory/",

	FetchMyTasks:              "/sim/dashboard/getMyTasks/",
	FetchVariance:             "/sim/dashboard/getCategoryWiseVariance/",
	FetchDiscrepancyTypeRatio: "/sim/dashboard/getInventoryDiscrepancyRatio/",
	FetchTransfersStatus:      "/sim/dashboard/getTransferStatus/",
}

// Resolve returns the path template for key.
func Resolve(key Key) (string, error) {
	path, ok := table[key]
	if !ok {
		return "", simerrors.Wrapf(simerrors.ErrUnknownOperation, "resolve %q", string(key))
	}
	return path, nil
}

// Path resolves key and appends the path-escaped segments, separated by "/".
func Path(key Key, segments ...string) (string, error) {
	template, err := Resolve(key)
	if err != nil {
		return "", err
	}
	return Join(template, segments...), nil
}

// Join appends path-escaped segments to template
func Join(template string, segments ...string) string {
	if len(segments) == 0 {
		return template
	}
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	var b strings.Builder
	b.WriteString(template)
	if !strings.HasSuffix(template, "/") {
		b.WriteByte('/')
	}
	b.WriteString(strings.Join(escaped, "/"))
	return b.String()
}

// TakesSegments reports whether the template for key expects trailing path segments.
func TakesSegments(key Key) bool {
	return strings.HasSuffix(table[key], "/")
}

// Keys returns every key in the table, sorted
func Keys() []Key {
	keys := make([]Key, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

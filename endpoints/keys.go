package endpoints

// Key is a logical operation name in the endpoint table.
type Key string

// Inventory adjustment
const (
	FetchIA       Key = "fetchIa"
	CreateIA      Key = "createIA"
	SearchIA      Key = "searchIA"
	DeleteIA      Key = "deleteIA"
	FilterIA      Key = "filterIA"
	SortIA        Key = "sortIA"
	SaveAsDraftIA Key = "saveAsDraftIA"
	SubmitIA      Key = "submitIA"
	FetchItemsIA  Key = "fetchItemsIA"
)

// Direct store delivery
const (
	FetchDSD                Key = "fetchDsd"
	CreateDSD               Key = "createDSD"
	DeleteDSD               Key = "deleteDSD"
	SearchDSD               Key = "searchDSD"
	SortDSD                 Key = "sortDSD"
	FilterDSD               Key = "filterDSD"
	SaveAsDraftDSD          Key = "saveAsDraftDSD"
	SubmitDSD               Key = "submitDSD"
	FetchItemsDSD           Key = "fetchItemsDSD"
	FetchItemsBySupplier    Key = "fetchItemsBySupplier"
	FetchSupplierByNameOrID Key = "fetchSupplierByNameOrId"
)

// Transfers
const (
	FetchTsfIn      Key = "fetchTsfIn"
	FetchTsfOut     Key = "fetchTsfOut"
	SearchTsfIn     Key = "searchTsfIn"
	SearchTsfOut    Key = "searchTsfOut"
	SortTsf         Key = "sortTsf"
	FilterTsf       Key = "filterTsf"
	CreateTsf       Key = "createTsf"
	FetchTsfReasons Key = "fetchTsfReasons"
	FetchItemsTsf   Key = "fetchItemsTsf"
	RequestTsf      Key = "requestTsf"
	ReceiveTsf      Key = "receiveTsf"
	TsfAcceptance   Key = "tsfAcceptance"
	ShipTsf         Key = "shipTsf"
	CreateAsn       Key = "createAsn"
	FetchAsnItems   Key = "fetchAsnItems"
)

// Purchase order
const (
	FetchPO        Key = "fetchPo"
	SearchPO       Key = "searchPo"
	SortPO         Key = "sortPo"
	SubmitAsnItems Key = "submitAsnItems"
	SaveAsnItems   Key = "saveAsnItems"
	FetchASNForPO  Key = "fetchASNForPO"
	FetchPOItems   Key = "fetchPoItems"
	FilterPO       Key = "filterPo"
)

// Stock count
const (
	FetchSC        Key = "fetchSc"
	CreateSC       Key = "createSc"
	FetchSCItems   Key = "fetchScItems"
	FetchSCReasons Key = "fetchScReasons"
	FetchSCEntry   Key = "fetchScEntry"
	AddItemsToSC   Key = "addItemsToSc"
	AddItemsToAd   Key = "addItemsToAd"
	DraftSC        Key = "draftSc"
	FilterSC       Key = "filterSc"
	SortSC         Key = "sortSC"
)

// Return to vendor
const (
	FetchRTV        Key = "fetchRtv"
	CreateRTV       Key = "createRtv"
	FetchItemsRTV   Key = "fetchItemsRTV"
	FetchRTVReasons Key = "fetchRTVReasons"
	DeleteRTV       Key = "deleteRTV"
	SearchRTV       Key = "searchRTV"
	SortRTV         Key = "sortRTV"
	SaveAsDraftRTV  Key = "saveAsDraftRTV"
	SubmitRTV       Key = "submitRTV"
	FilterRTV       Key = "filterRTV"
)

// Products and stores
const (
	GeneralItemSearch   Key = "generalItemSearch"
	StoreItemDetails    Key = "storeItemDetails"
	FetchVariants       Key = "fetchVariants"
	FetchReasons        Key = "fetchReasons"
	FetchStores         Key = "fetchStores"
	GetAllBuddyStores   Key = "getAllBuddyStores"
	FetchCurrentDetails Key = "fetchCurrentDetails"
	GetAllCategories    Key = "getAllCategories"
	SearchCatItems      Key = "searchCatItems"
)

// Dashboard
const (
	FetchMyTasks              Key = "fetchMyTasks"
	FetchVariance             Key = "fetchVariance"
	FetchDiscrepancyTypeRatio Key = "fetchDiscrepancyTypeRatio"
	FetchTransfersStatus      Key = "fetchTransfersStatus"
)

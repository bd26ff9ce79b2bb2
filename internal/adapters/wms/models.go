package wms

// ImportOrderDetail is one expected line of an import order
type ImportOrderDetail struct {
	ImportOrderDetailID string `json:"importOrderDetailId"`
	ImportOrderID       string `json:"importOrderId"`
	ItemID              string `json:"itemId"`
	ItemName            string `json:"itemName"`
	ExpectQuantity      int    `json:"expectQuantity"`
	ActualQuantity      int    `json:"actualQuantity"`
	Status              string `json:"status"`
}

// ExportRequestDetail is one requested line of an export request
type ExportRequestDetail struct {
	ExportRequestDetailID string `json:"exportRequestDetailId"`
	ExportRequestID       string `json:"exportRequestId"`
	ItemID                string `json:"itemId"`
	ItemName              string `json:"itemName"`
	Quantity              int    `json:"quantity"`
	ActualQuantity        int    `json:"actualQuantity"`
	Status                string `json:"status"`
}

// ExportRequest is the header of an export request as the backend lists it
type ExportRequest struct {
	ExportRequestID string `json:"exportRequestId"`
	ExportReason    string `json:"exportReason"`
	Type            string `json:"type"`
	ExportDate      string `json:"exportDate"`
	Status          string `json:"status"`
}

// ActualQuantityUpdate records the counted quantity of an export line
type ActualQuantityUpdate struct {
	ExportRequestDetailID string `json:"exportRequestDetailId"`
	InventoryItemID       string `json:"inventoryItemId"`
	ActualQuantity        int    `json:"actualQuantity"`
}

// PaperRequest is the signed receipt of an import or export count, exactly
// one of the order ids is set
type PaperRequest struct {
	ImportOrderID    string `json:"importOrderId,omitempty"`
	ExportRequestID  string `json:"exportRequestId,omitempty"`
	Description      string `json:"description,omitempty"`
	SignProviderURL  string `json:"signProviderUrl"`
	SignWarehouseURL string `json:"signWarehouseUrl"`
}

// Paper is what the backend stored for a PaperRequest
type Paper struct {
	ID string `json:"id"`
}

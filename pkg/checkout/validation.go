package checkout

import (
	"fmt"

	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
)

// StockValidationInput pairs a cart line with the live catalog stock for its product.
type StockValidationInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	// Available is the live stock; a negative value marks a product missing from the catalog.
	Available int
}

// StockViolationDetail exposes the data returned to callers when a validation fails.
type StockViolationDetail struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName,omitempty"`
	Available    int    `json:"available"`
	RequestedQty int    `json:"requestedQty"`
	Missing      bool   `json:"missing,omitempty"`
}

// ValidateStock ensures every line can be fulfilled from current stock.
func ValidateStock(items []StockValidationInput) error {
	var violations []StockViolationDetail
	for _, item := range items {
		if item.Available < 0 {
			violations = append(violations, StockViolationDetail{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				RequestedQty: item.Quantity,
				Missing:      true,
			})
			continue
		}
		if item.Quantity > item.Available {
			violations = append(violations, StockViolationDetail{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				Available:    item.Available,
				RequestedQty: item.Quantity,
			})
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("insufficient stock for %d item(s)", len(violations))).WithDetails(map[string]any{
		"violations": violations,
	})
}

package catalog

import (
	"strconv"

	"github.com/shoplens/shoplens/internal/domain"
)

// Hash field names. They double as indexed attribute names, so the filter
// field constants below are what callers pass in filter conditions.
const (
	FieldID              = "id"
	FieldOrderID         = "order_id"
	FieldAmount          = "amount"
	FieldProfit          = "profit"
	FieldQuantity        = "quantity"
	FieldCategory        = "category"
	FieldSubCategory     = "sub_category"
	FieldContent         = "content"
	FieldBusinessContent = "business_content"
	FieldAmountRange     = "amount_range"
	FieldProfitRange     = "profit_range"
	FieldQuantityRange   = "quantity_range"
)

var allFields = []string{
	FieldID, FieldOrderID, FieldAmount, FieldProfit, FieldQuantity,
	FieldCategory, FieldSubCategory, FieldContent, FieldBusinessContent,
	FieldAmountRange, FieldProfitRange, FieldQuantityRange,
}

func docToFields(doc domain.Document) map[string]string {
	return map[string]string{
		FieldID:              doc.ID,
		FieldOrderID:         doc.OrderID,
		FieldAmount:          strconv.FormatFloat(doc.Amount, 'f', -1, 64),
		FieldProfit:          strconv.FormatFloat(doc.Profit, 'f', -1, 64),
		FieldQuantity:        strconv.Itoa(doc.Quantity),
		FieldCategory:        doc.Category,
		FieldSubCategory:     doc.SubCategory,
		FieldContent:         doc.Content,
		FieldBusinessContent: doc.BusinessContent,
		FieldAmountRange:     doc.AmountRange,
		FieldProfitRange:     doc.ProfitRange,
		FieldQuantityRange:   doc.QuantityRange,
	}
}

func docFromFields(fallbackID string, fields map[string]string) domain.Document {
	doc := domain.Document{
		ID:              fields[FieldID],
		OrderID:         fields[FieldOrderID],
		Category:        fields[FieldCategory],
		SubCategory:     fields[FieldSubCategory],
		Content:         fields[FieldContent],
		BusinessContent: fields[FieldBusinessContent],
		AmountRange:     fields[FieldAmountRange],
		ProfitRange:     fields[FieldProfitRange],
		QuantityRange:   fields[FieldQuantityRange],
	}
	if doc.ID == "" {
		doc.ID = fallbackID
	}
	if v, err := strconv.ParseFloat(fields[FieldAmount], 64); err == nil {
		doc.Amount = v
	}
	if v, err := strconv.ParseFloat(fields[FieldProfit], 64); err == nil {
		doc.Profit = v
	}
	if v, err := strconv.Atoi(fields[FieldQuantity]); err == nil {
		doc.Quantity = v
	}
	return doc
}

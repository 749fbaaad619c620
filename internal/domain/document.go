package domain

import "fmt"

// Range bucket labels derived from numeric order fields via fixed thresholds.
const (
	AmountLow    = "low"
	AmountMedium = "medium"
	AmountHigh   = "high"

	ProfitLoss = "loss"
	ProfitLow  = "low_profit"
	ProfitHigh = "high_profit"

	QuantitySmall  = "small"
	QuantityMedium = "medium"
	QuantityLarge  = "large"
)

// Document is the indexable representation of one order record. It carries two
// parallel natural-language renderings: Content for shoppers (no profit figures)
// and BusinessContent for analysts (price and profit included).
type Document struct {
	ID              string  `json:"id"`
	OrderID         string  `json:"order_id"`
	Amount          float64 `json:"amount"`
	Profit          float64 `json:"profit"`
	Quantity        int     `json:"quantity"`
	Category        string  `json:"category"`
	SubCategory     string  `json:"sub_category"`
	Content         string  `json:"content"`
	BusinessContent string  `json:"business_content"`
	AmountRange     string  `json:"amount_range"`
	ProfitRange     string  `json:"profit_range"`
	QuantityRange   string  `json:"quantity_range"`
}

// BuildDocument derives the indexable document for a record. The document id is
// stable per row index, so rebuilding the index from the same file yields the
// same id set.
func BuildDocument(rec OrderRecord, row int) Document {
	return Document{
		ID:              fmt.Sprintf("order_%d", row),
		OrderID:         rec.OrderID,
		Amount:          rec.Amount,
		Profit:          rec.Profit,
		Quantity:        rec.Quantity,
		Category:        rec.Category,
		SubCategory:     rec.SubCategory,
		Content:         consumerContent(rec),
		BusinessContent: businessContent(rec),
		AmountRange:     amountRange(rec.Amount),
		ProfitRange:     profitRange(rec.Profit),
		QuantityRange:   quantityRange(rec.Quantity),
	}
}

// consumerContent renders the shopper-facing sentence. It must never include
// profit figures.
func consumerContent(rec OrderRecord) string {
	return fmt.Sprintf(
		"Product: %s from %s category. Price: $%.2f, Quantity available: %d. This is a %s item with %s quality. %s.",
		rec.SubCategory, rec.Category, rec.Amount, rec.Quantity,
		priceDescriptor(rec.Amount), qualityDescriptor(rec.Amount), availabilityDescriptor(rec.Quantity),
	)
}

// businessContent renders the analyst-facing sentence with price and profit.
func businessContent(rec OrderRecord) string {
	return fmt.Sprintf(
		"Product: %s from %s category. Price: $%.2f, Profit: $%.2f, Quantity available: %d. This is a %s-priced item with %s.",
		rec.SubCategory, rec.Category, rec.Amount, rec.Profit, rec.Quantity,
		amountRange(rec.Amount), profitDescriptor(rec.Profit),
	)
}

func priceDescriptor(amount float64) string {
	switch {
	case amount < 100:
		return "affordable"
	case amount < 500:
		return "mid-range"
	default:
		return "premium"
	}
}

func qualityDescriptor(amount float64) string {
	switch {
	case amount < 100:
		return "good value"
	case amount < 500:
		return "high quality"
	default:
		return "luxury"
	}
}

func availabilityDescriptor(quantity int) string {
	switch {
	case quantity <= 2:
		return "Limited stock available"
	case quantity <= 5:
		return "Moderate availability"
	default:
		return "Good stock availability"
	}
}

func profitDescriptor(profit float64) string {
	switch {
	case profit > 0:
		return "positive profitability"
	case profit < 0:
		return "negative profitability"
	default:
		return "break-even"
	}
}

func amountRange(amount float64) string {
	switch {
	case amount < 100:
		return AmountLow
	case amount < 500:
		return AmountMedium
	default:
		return AmountHigh
	}
}

func profitRange(profit float64) string {
	switch {
	case profit < 0:
		return ProfitLoss
	case profit < 50:
		return ProfitLow
	default:
		return ProfitHigh
	}
}

func quantityRange(quantity int) string {
	switch {
	case quantity <= 2:
		return QuantitySmall
	case quantity <= 5:
		return QuantityMedium
	default:
		return QuantityLarge
	}
}

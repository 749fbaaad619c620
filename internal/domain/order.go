package domain

// OrderRecord is one row of the source order file, as loaded from CSV.
type OrderRecord struct {
	OrderID     string
	Amount      float64
	Profit      float64
	Quantity    int
	Category    string
	SubCategory string
}

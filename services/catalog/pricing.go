package catalog

// Quote is the derived price and duration for a package plus extension.
type Quote struct {
	BasePrice      int `json:"basePrice"`
	ExtensionPrice int `json:"extensionPrice"`
	TotalPrice     int `json:"totalPrice"`
	Downpayment    int `json:"downpayment"` // ceil(total / 2)
	DurationTotal  int `json:"durationTotal"`
}

// ComputeQuote derives the totals for a selected package and extension.
// An unknown package ID yields a zero quote, matching the wizard's state
// before a package has been chosen.
func ComputeQuote(packageID string, extensionMinutes int) Quote {
	var q Quote
	pkg, ok := Get(packageID)
	if ok {
		q.BasePrice = pkg.Price
		q.DurationTotal = pkg.Duration
	}
	q.ExtensionPrice = ExtensionPrice(extensionMinutes)
	q.TotalPrice = q.BasePrice + q.ExtensionPrice
	q.Downpayment = (q.TotalPrice + 1) / 2
	q.DurationTotal += extensionMinutes
	return q
}

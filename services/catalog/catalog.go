package catalog

// Package is a fixed studio offering. Prices are whole pesos, durations
// in minutes. The table is defined at process start and never mutated.
type Package struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration int    `json:"duration"`
}

var packages = []Package{
	{ID: "solo", Name: "Solo Package", Price: 299, Duration: 15},
	{ID: "basic", Name: "Basic Package", Price: 399, Duration: 25},
	{ID: "transfer", Name: "Just Transfer", Price: 549, Duration: 30},
	{ID: "standard", Name: "Standard Package", Price: 699, Duration: 45},
	{ID: "family", Name: "Family Package", Price: 1249, Duration: 50},
	{ID: "barkada", Name: "Barkada Package", Price: 1949, Duration: 50},
	{ID: "birthday", Name: "Birthday Package", Price: 599, Duration: 45},
}

// extensionRates maps extra minutes to extra pesos. Only these five keys
// are meaningful; anything else is a caller error and prices as zero.
var extensionRates = map[int]int{
	0:  0,
	15: 150,
	30: 300,
	45: 450,
	60: 600,
}

// Get looks up a package by ID.
func Get(id string) (Package, bool) {
	for _, p := range packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// All returns the full package table.
func All() []Package {
	out := make([]Package, len(packages))
	copy(out, packages)
	return out
}

// ExtensionPrice returns the add-on price for the given extra minutes.
func ExtensionPrice(minutes int) int {
	return extensionRates[minutes]
}

// ExtensionRates returns a copy of the extension price table.
func ExtensionRates() map[int]int {
	out := make(map[int]int, len(extensionRates))
	for k, v := range extensionRates {
		out[k] = v
	}
	return out
}

// ValidExtension reports whether minutes is one of the offered durations.
func ValidExtension(minutes int) bool {
	_, ok := extensionRates[minutes]
	return ok
}

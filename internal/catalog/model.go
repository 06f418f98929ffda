package catalog

// Sauce categories as stored in the catalog.
const (
	CategorySignature = "signature-sauce"
	CategoryDryRub    = "dry-rub"
	CategoryDipping   = "dipping-sauce"
)

// Sauce is one catalog sauce record.
// Source data is inconsistent about IsDryRub vs Category,
// so every sauce goes through Normalize at ingestion.
type Sauce struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	IsDryRub  bool   `json:"isDryRub"`
	HeatLevel int    `json:"heatLevel"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// CateringPackage is the package-size data the UI offers
// (wing totals the distribution translator works against).
type CateringPackage struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	TotalWings int     `json:"totalWings"`
	Serves     int     `json:"serves"`
	BasePrice  float64 `json:"basePrice"`
}

// Normalize reconciles the dry-rub flag with the category.
// Category wins: a dry-rub category always means IsDryRub,
// and an explicit flag without the category is kept as-is.
func Normalize(s Sauce) Sauce {
	if s.Category == CategoryDryRub {
		s.IsDryRub = true
	}
	if s.HeatLevel < 0 {
		s.HeatLevel = 0
	}
	if s.HeatLevel > 5 {
		s.HeatLevel = 5
	}
	return s
}

// NormalizeAll normalizes a catalog read in bulk.
func NormalizeAll(sauces []Sauce) []Sauce {
	out := make([]Sauce, len(sauces))
	for i, s := range sauces {
		out[i] = Normalize(s)
	}
	return out
}

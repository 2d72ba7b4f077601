package book_models

// Book is one catalog row. Numeric fields are pointers because the catalog
// is noisy: an empty or NaN cell means "absent", never zero, and bonuses
// must not be applied to absent values. Missing text reads as "".
type Book struct {
	ProductID     string
	Title         string
	Authors       string
	Category      string
	Summary       string
	Content       string
	Manufacturer  string
	CoverLink     string
	OriginalPrice *float64
	CurrentPrice  *float64
	Quantity      *float64
	AvgRating     *float64
	ReviewCount   *float64
	Pages         *float64
}

// QuantityOrZero is the sort key for sales-volume tie-breaking. Books with
// no recorded quantity rank after books that have one.
func (b Book) QuantityOrZero() float64 {
	if b.Quantity == nil {
		return 0
	}
	return *b.Quantity
}

// Recommendation pairs a catalog book with its computed match score for one
// resolved profile. Recomputed per request, never persisted.
type Recommendation struct {
	Book
	PersonalityMatchScore float64
}

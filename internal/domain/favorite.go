package domain

// FavoriteEntry is a saved product snapshot. Unlike cart lines, favorites
// key on the product ID alone, not on a variant. An entry is never mutated
// in place; re-adding a favorite replaces the prior snapshot entirely.
type FavoriteEntry struct {
	ProductID     string   `json:"product_id"`
	Name          string   `json:"name"`
	UnitPrice     int64    `json:"unit_price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Image         string   `json:"image,omitempty"`
	Category      string   `json:"category"`
	Rating        *float64 `json:"rating,omitempty"`
}

// FavoriteSnapshot is the full sequence of saved products, insertion order
// preserved. At most one entry exists per product ID.
type FavoriteSnapshot []FavoriteEntry

// FindIndex returns the index of the entry for the given product ID, or -1.
func (s FavoriteSnapshot) FindIndex(productID string) int {
	for i := range s {
		if s[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Contains reports whether the given product is saved.
func (s FavoriteSnapshot) Contains(productID string) bool {
	return s.FindIndex(productID) >= 0
}

// Clone returns a copy of the snapshot.
func (s FavoriteSnapshot) Clone() FavoriteSnapshot {
	if s == nil {
		return nil
	}
	out := make(FavoriteSnapshot, len(s))
	copy(out, s)
	return out
}

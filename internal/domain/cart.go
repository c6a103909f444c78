package domain

import "strings"

// CartLine represents a single purchasable line in the cart. A line is
// identified by its Key, derived from the product and its chosen variant
// attributes; the variant attributes are immutable once the line exists.
type CartLine struct {
	Key       string  `json:"key"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice int64   `json:"unit_price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
}

// LineKey derives the identity key for a cart line from the product ID and
// its optional variant attributes. Two lines with the same key are the same
// line. Absent attributes produce a different key than empty-string ones,
// which cannot occur through the public API but keeps derivation total.
func LineKey(productID string, size, color *string) string {
	var b strings.Builder
	b.WriteString(productID)
	for _, attr := range []*string{size, color} {
		b.WriteByte('|')
		if attr != nil {
			b.WriteString(*attr)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// CartSnapshot is the full ordered sequence of cart lines, oldest first.
// Order is preserved for stable display; it carries no meaning for totals.
type CartSnapshot []CartLine

// Total returns the sum of unit price times quantity over all lines, in the
// smallest currency unit.
func (s CartSnapshot) Total() int64 {
	var total int64
	for _, line := range s {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all lines. A line with
// quantity 5 counts as 5, not 1.
func (s CartSnapshot) ItemCount() int {
	var count int
	for _, line := range s {
		count += line.Quantity
	}
	return count
}

// FindIndex returns the index of the line with the given identity key, or -1.
func (s CartSnapshot) FindIndex(key string) int {
	for i := range s {
		if s[i].Key == key {
			return i
		}
	}
	return -1
}

// Clone returns a deep-enough copy of the snapshot. Pointer fields reference
// immutable values so sharing them is safe.
func (s CartSnapshot) Clone() CartSnapshot {
	if s == nil {
		return nil
	}
	out := make(CartSnapshot, len(s))
	copy(out, s)
	return out
}

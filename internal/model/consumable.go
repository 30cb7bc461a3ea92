package model

// ConsumableItem tracks truck stock of consumables (solder, flux, tape).
type ConsumableItem struct {
	ID     string `json:"id"`
	Item   string `json:"item"`
	OnHand int    `json:"on_hand"`
	Unit   string `json:"unit,omitempty"`
	Min    int    `json:"min"` // low-stock threshold, 0 disables the warning
}

// Low reports whether the item is at or below its low-stock threshold.
// Derived, never stored.
func (c ConsumableItem) Low() bool {
	return c.Min > 0 && c.OnHand <= c.Min
}

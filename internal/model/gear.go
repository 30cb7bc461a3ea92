package model

// GearItem represents reusable inventory (quantity-based, not individual
// tracking). Checkouts copy the name/type by value, they never link back.
type GearItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Qty  int    `json:"qty"`
	Tag  string `json:"tag,omitempty"`
}

// Common gear types. Free-text values are also accepted.
const (
	GearTypeTool     = "Tool"
	GearTypeReusable = "Reusable Material"
)

// internal/defs/drops.go
package defs

// DropEntry is one entry in the power-up drop table. Kind is a power-up
// kind, Weight its relative chance.
type DropEntry struct {
	Kind   string `json:"kind"`
	Weight int    `json:"weight"`
}

// PowerUpDropTable is the weighted table rolled when a destroyed enemy
// drops a power-up.
var PowerUpDropTable = []DropEntry{
	{Kind: "spread", Weight: 32},
	{Kind: "rapid", Weight: 26},
	{Kind: "shield", Weight: 22},
	{Kind: "multiplier", Weight: 20},
}

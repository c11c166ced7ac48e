package component

// Health holds remaining hit points. The owning system destroys the entity
// when the value reaches zero; it never goes negative.
type Health struct {
	Value int
}

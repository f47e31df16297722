package gateways

// Collator orders recipe names
type Collator interface {
	// Compare returns -1, 0 or +1 like strings.Compare
	Compare(a, b string) int
}

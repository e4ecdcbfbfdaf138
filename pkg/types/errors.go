package types

import "fmt"

// DataIntegrityError signals a dangling reference in the static source
// collections, a product pointing at a missing category or a category
// pointing at a missing owner. It is a startup-time failure, never a
// runtime one.
type DataIntegrityError struct {
	Kind      string
	Id        uint
	MissingId uint
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("reference data integrity: %s %d references missing id %d", e.Kind, e.Id, e.MissingId)
}

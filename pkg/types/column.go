package types

import "fmt"

// SortColumn is the closed set of sortable listing columns plus the
// unsorted state.
type SortColumn uint8

const (
	ColumnNone SortColumn = iota
	ColumnId
	ColumnProduct
	ColumnCategory
	ColumnUser
)

func (c SortColumn) String() string {
	switch c {
	case ColumnId:
		return "id"
	case ColumnProduct:
		return "product"
	case ColumnCategory:
		return "category"
	case ColumnUser:
		return "user"
	}
	return ""
}

// ParseSortColumn maps the wire name of a column to its tag. The empty
// string is the unsorted state.
func ParseSortColumn(name string) (SortColumn, error) {
	switch name {
	case "":
		return ColumnNone, nil
	case "id":
		return ColumnId, nil
	case "product":
		return ColumnProduct, nil
	case "category":
		return ColumnCategory, nil
	case "user":
		return ColumnUser, nil
	}
	return ColumnNone, fmt.Errorf("unknown sort column %q", name)
}

func (c SortColumn) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *SortColumn) UnmarshalText(data []byte) error {
	parsed, err := ParseSortColumn(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

package selection

import (
	"slices"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-listing/pkg/types"
)

// CategorySet holds the selected category ids. It serializes as a sorted
// id array so session state survives the redis round trip and the wire
// shape is stable.
type CategorySet map[types.CategoryId]struct{}

func (s CategorySet) Ids() []types.CategoryId {
	ids := make([]types.CategoryId, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s CategorySet) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(s.Ids())
}

func (s *CategorySet) UnmarshalJSON(data []byte) error {
	var ids []types.CategoryId
	if err := sonic.Unmarshal(data, &ids); err != nil {
		return err
	}
	if len(ids) == 0 {
		*s = nil
		return nil
	}
	set := make(CategorySet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	*s = set
	return nil
}

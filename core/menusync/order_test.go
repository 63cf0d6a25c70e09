package menusync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(items []PortableItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.SourceItemID)
	}
	return out
}

func TestMaterializationOrder_ParentsFirst(t *testing.T) {
	items := []PortableItem{
		{SourceItemID: 3, ParentSourceItemID: 2, Position: 1},
		{SourceItemID: 2, ParentSourceItemID: 1, Position: 1},
		{SourceItemID: 1, Position: 2},
		{SourceItemID: 4, Position: 1},
	}
	assert.Equal(t, []int64{4, 1, 2, 3}, ids(materializationOrder(items)))
}

func TestMaterializationOrder_SiblingsByPosition(t *testing.T) {
	items := []PortableItem{
		{SourceItemID: 1, Position: 1},
		{SourceItemID: 12, ParentSourceItemID: 1, Position: 3},
		{SourceItemID: 11, ParentSourceItemID: 1, Position: 2},
		{SourceItemID: 10, ParentSourceItemID: 1, Position: 2},
	}
	assert.Equal(t, []int64{1, 10, 11, 12}, ids(materializationOrder(items)))
}

func TestMaterializationOrder_MissingParentIsRoot(t *testing.T) {
	items := []PortableItem{
		{SourceItemID: 2, ParentSourceItemID: 99, Position: 1},
		{SourceItemID: 1, Position: 2},
	}
	assert.Equal(t, []int64{2, 1}, ids(materializationOrder(items)))
}

func TestMaterializationOrder_CycleIsBroken(t *testing.T) {
	items := []PortableItem{
		{SourceItemID: 1, ParentSourceItemID: 2, Position: 2},
		{SourceItemID: 2, ParentSourceItemID: 1, Position: 1},
		{SourceItemID: 3, Position: 5},
	}
	got := materializationOrder(items)
	assert.Len(t, got, 3)
	assert.Equal(t, []int64{3, 2, 1}, ids(got))
}

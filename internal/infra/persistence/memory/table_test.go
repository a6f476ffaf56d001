package memory

import (
	"testing"

	"stayscape/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewTable() *Table[entity.Review] {
	return NewTable(
		func(r *entity.Review) int64 { return r.ID },
		func(r *entity.Review, id int64) { r.ID = id },
		nil,
	)
}

func TestTable_CreateAssignsMonotonicIDs(t *testing.T) {
	table := newReviewTable()

	first := table.Create(&entity.Review{Rating: 5})
	second := table.Create(&entity.Review{Rating: 6})

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestTable_IDsAreNotReusedAfterDelete(t *testing.T) {
	table := newReviewTable()

	table.Create(&entity.Review{})
	second := table.Create(&entity.Review{})
	_, ok := table.Delete(second.ID)
	require.True(t, ok)

	third := table.Create(&entity.Review{})

	assert.Equal(t, int64(3), third.ID)
	_, found := table.Get(second.ID)
	assert.False(t, found)
}

func TestTable_GetReturnsCopy(t *testing.T) {
	table := newReviewTable()
	created := table.Create(&entity.Review{Comment: "original"})

	got, ok := table.Get(created.ID)
	require.True(t, ok)
	got.Comment = "mutated"

	again, _ := table.Get(created.ID)
	assert.Equal(t, "original", again.Comment)
}

func TestTable_WhereOrdersByID(t *testing.T) {
	table := newReviewTable()
	for i := range 5 {
		table.Create(&entity.Review{PropertyID: int64(i % 2), Rating: i})
	}

	rows := table.Where(func(r *entity.Review) bool { return r.PropertyID == 0 })

	require.Len(t, rows, 3)
	assert.Equal(t, []int64{1, 3, 5}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})
}

func TestTable_UpdateKeepsID(t *testing.T) {
	table := newReviewTable()
	created := table.Create(&entity.Review{Rating: 3})

	before, after, ok := table.Update(created.ID, func(r *entity.Review) {
		r.ID = 99
		r.Rating = 4
	})

	require.True(t, ok)
	assert.Equal(t, 3, before.Rating)
	assert.Equal(t, 4, after.Rating)
	assert.Equal(t, created.ID, after.ID)

	_, _, ok = table.Update(42, func(*entity.Review) {})
	assert.False(t, ok)
}

func TestTable_CreateUnique(t *testing.T) {
	table := newReviewTable()
	sameUser := func(r *entity.Review) bool { return r.UserID == 7 }

	first, created := table.CreateUnique(&entity.Review{UserID: 7}, sameUser)
	require.True(t, created)

	second, created := table.CreateUnique(&entity.Review{UserID: 7}, sameUser)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, table.Len())
}

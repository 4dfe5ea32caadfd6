package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(10))
	assert.Equal(t, 2, TotalPages(11))
	assert.Equal(t, 2, TotalPages(20))
	assert.Equal(t, 3, TotalPages(21))
}

func TestKindPredicate(t *testing.T) {
	where, args := kindPredicate("m", "film")
	assert.Equal(t, "m.media_kind = ?", where)
	assert.Equal(t, []interface{}{"film"}, args)

	where, args = kindPredicate("m", "comic")
	assert.Equal(t, "m.media_kind = ? AND m.book_type = ?", where)
	assert.Equal(t, []interface{}{"book", "CS"}, args)

	where, args = kindPredicate("m", "anime")
	assert.Equal(t, "m.media_kind = ? AND m.series_type = ?", where)
	assert.Equal(t, []interface{}{"series", "AE"}, args)

	// anything unrecognized falls back to books
	where, args = kindPredicate("m", "podcast")
	assert.Equal(t, "m.media_kind = ?", where)
	assert.Equal(t, []interface{}{"book"}, args)
}

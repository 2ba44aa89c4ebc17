package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := Pagination{Page: 0, PageSize: 0}.Normalize(6)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 6, p.PageSize)

	p = Pagination{Page: -3, PageSize: 10}.Normalize(6)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, (Pagination{Page: 1, PageSize: 6}).Offset())
	assert.Equal(t, 12, (Pagination{Page: 3, PageSize: 6}).Offset())
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{13, 6, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PageCount(c.total, c.pageSize), "total=%d", c.total)
	}
}

package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPager_TotalPages(t *testing.T) {
	assert.Equal(t, 3, New(makeRange(25), 10).TotalPages())
	assert.Equal(t, 3, New(makeRange(30), 10).TotalPages())
	assert.Equal(t, 1, New(makeRange(1), 10).TotalPages())
	// Boş koleksiyonda 0 sayfa
	assert.Equal(t, 0, New([]int{}, 10).TotalPages())
}

func TestPager_LastPagePartial(t *testing.T) {
	p := New(makeRange(25), 10)
	p.Paginate(3)

	records := p.CurrentRecords()
	require.Len(t, records, 5)
	assert.Equal(t, 21, records[0])
	assert.Equal(t, 25, records[4])
}

func TestPager_ConcatenationReconstructsCollection(t *testing.T) {
	data := makeRange(25)
	p := New(data, 10)

	var all []int
	for page := 1; page <= p.TotalPages(); page++ {
		p.Paginate(page)
		records := p.CurrentRecords()
		assert.LessOrEqual(t, len(records), 10)
		all = append(all, records...)
	}

	// Sayfalar birleştirildiğinde boşluksuz ve tekrarsız aynı koleksiyon çıkmalı
	assert.Equal(t, data, all)
}

func TestPager_PaginateOutOfRange(t *testing.T) {
	p := New(makeRange(25), 10)

	p.Paginate(7)
	assert.Empty(t, p.CurrentRecords())
	assert.Equal(t, 7, p.CurrentPage())

	p.Paginate(0)
	assert.Empty(t, p.CurrentRecords())

	p.Paginate(-3)
	assert.Empty(t, p.CurrentRecords())
}

func TestPager_NextPrevClamp(t *testing.T) {
	p := New(makeRange(25), 10)

	p.PrevPage()
	assert.Equal(t, 1, p.CurrentPage())

	p.NextPage()
	p.NextPage()
	p.NextPage()
	p.NextPage() // son sayfadan ileri gitmez
	assert.Equal(t, 3, p.CurrentPage())

	p.PrevPage()
	assert.Equal(t, 2, p.CurrentPage())
}

func TestPager_Indexes(t *testing.T) {
	p := New(makeRange(25), 10)
	p.Paginate(2)

	assert.Equal(t, 10, p.IndexOfFirstRecord())
	assert.Equal(t, 20, p.IndexOfLastRecord())
}

func TestPager_FilterChangeRequiresReset(t *testing.T) {
	p := New(makeRange(25), 10)
	p.Paginate(3)
	require.Len(t, p.CurrentRecords(), 5)

	// Arama terimi değişti: sonuç tek sayfaya düştü
	p.SetData(makeRange(4))
	assert.Empty(t, p.CurrentRecords()) // reset yapılmadan sayfa 3 boş kalır

	p.ResetToFirstPage()
	assert.Equal(t, 1, p.CurrentPage())
	assert.Len(t, p.CurrentRecords(), 4)
}

func TestPager_EmptyData(t *testing.T) {
	p := New([]string{}, 10)

	assert.Equal(t, 0, p.TotalPages())
	assert.Empty(t, p.CurrentRecords())

	p.NextPage()
	assert.Equal(t, 1, p.CurrentPage())
}

package catalog

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListParams_All(t *testing.T) {
	v, err := url.ParseQuery("minPrice=10.5&maxPrice=99&categoryIds=1,%202,x,3&subcategoryIds=101&q=%20soja%20&is_active=true&page=2&pageSize=5&sortBy=price&order=desc")
	require.NoError(t, err)

	got := ParseListParams(v)

	require.NotNil(t, got.Filter.MinPrice)
	require.NotNil(t, got.Filter.MaxPrice)
	assert.True(t, got.Filter.MinPrice.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, got.Filter.MaxPrice.Equal(decimal.NewFromInt(99)))
	assert.Equal(t, []int64{1, 2, 3}, got.Filter.CategoryIDs)
	assert.Equal(t, []int64{101}, got.Filter.SubcategoryIDs)
	assert.Equal(t, "soja", got.Filter.Q)
	assert.Equal(t, True, got.Filter.IsActive)
	assert.Equal(t, Page{Number: 2, Size: 5}, got.Page)
	assert.Equal(t, SortSpec{Field: "price", Order: "desc"}, got.Sort)
}

func TestParseListParams_Empty(t *testing.T) {
	got := ParseListParams(url.Values{})

	assert.Equal(t, Filter{}, got.Filter)
	assert.Equal(t, NewPage(1, 10), got.Page)
	assert.Equal(t, SortSpec{}, got.Sort)
}

func TestParseTristate(t *testing.T) {
	tests := map[string]Tristate{
		"":      Unset,
		"true":  True,
		"TRUE":  True,
		"1":     True,
		"false": False,
		"0":     False,
		"maybe": Unset,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseTristate(in), in)
	}
}

func TestParseIDList(t *testing.T) {
	assert.Nil(t, parseIDList(""))
	assert.Nil(t, parseIDList("a,b"))
	assert.Equal(t, []int64{7}, parseIDList(",7,"))
}

func TestParseDecimal_Invalid(t *testing.T) {
	assert.Nil(t, parseDecimal("abc"))
	assert.Nil(t, parseDecimal("  "))
}

// is_activeは解釈できる値のときだけ絞り込む（空・不正値は全ステータス）
func TestParseListParams_IsActive(t *testing.T) {
	tests := []struct {
		query string
		want  Tristate
	}{
		{query: "", want: Unset},
		{query: "is_active=", want: Unset},
		{query: "is_active=%20", want: Unset},
		{query: "is_active=foo", want: Unset},
		{query: "is_active=1", want: True},
		{query: "is_active=True", want: True},
		{query: "is_active=false", want: False},
		{query: "is_active=0", want: False},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			v, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.want, ParseListParams(v).Filter.IsActive)
		})
	}
}

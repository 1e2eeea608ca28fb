package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/clause"
)

func TestResolveSort(t *testing.T) {
	tests := []struct {
		name string
		in   SortSpec
		want []OrderKey
	}{
		{"default", SortSpec{}, []OrderKey{{"created_at", true}, {"product_id", false}}},
		{"price asc", SortSpec{"price", "asc"}, []OrderKey{{"price", false}, {"product_id", false}}},
		{"price DESC upper", SortSpec{"price", "DESC"}, []OrderKey{{"price", true}, {"product_id", false}}},
		{"descending synonym", SortSpec{"name", "descending"}, []OrderKey{{"name", true}, {"product_id", false}}},
		{"unknown direction is asc", SortSpec{"stock", "sideways"}, []OrderKey{{"stock", false}, {"product_id", false}}},
		{"trimmed field", SortSpec{" slug ", "desc"}, []OrderKey{{"slug", true}, {"product_id", false}}},
		{"unknown field", SortSpec{"DROP TABLE", "asc"}, []OrderKey{{"created_at", true}, {"product_id", false}}},
		{"case sensitive field", SortSpec{"Price", "asc"}, []OrderKey{{"created_at", true}, {"product_id", false}}},
		{"product_id primary", SortSpec{"product_id", "desc"}, []OrderKey{{"product_id", true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSort(tt.in))
		})
	}
}

func TestResolveSort_AlwaysEndsWithTieBreak(t *testing.T) {
	for field := range sortableFields {
		if field == "product_id" {
			continue
		}
		for _, dir := range []string{"asc", "desc", ""} {
			keys := ResolveSort(SortSpec{Field: field, Order: dir})
			assert.Equal(t, OrderKey{Field: "product_id"}, keys[len(keys)-1], field)
		}
	}
}

func TestOrderKey_Clause(t *testing.T) {
	assert.Equal(t,
		clause.OrderByColumn{Column: clause.Column{Name: "price"}, Desc: true},
		OrderKey{Field: "price", Desc: true}.Clause(),
	)
}

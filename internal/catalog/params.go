package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ListParams は GET /products のクエリを型付きにしたもの
type ListParams struct {
	Filter Filter
	Page   Page
	Sort   SortSpec
}

// ParseListParams はクエリ文字列を検索条件に変換する。
// 不正な値はエラーにせず、その項目だけ未指定として扱う。
func ParseListParams(v url.Values) ListParams {
	f := Filter{
		MinPrice:       parseDecimal(v.Get("minPrice")),
		MaxPrice:       parseDecimal(v.Get("maxPrice")),
		CategoryIDs:    parseIDList(v.Get("categoryIds")),
		SubcategoryIDs: parseIDList(v.Get("subcategoryIds")),
		Q:              strings.TrimSpace(v.Get("q")),
		IsActive:       parseTristate(v.Get("is_active")),
	}

	return ListParams{
		Filter: f,
		Page:   ParsePage(v.Get("page"), v.Get("pageSize")),
		Sort:   SortSpec{Field: v.Get("sortBy"), Order: v.Get("order")},
	}
}

func parseDecimal(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// "1, 2,x,3" => [1 2 3]
func parseIDList(s string) []int64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func parseTristate(s string) Tristate {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset
	}
	b, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return Unset
	}
	return TristateOf(b)
}

package catalog

import (
	"strings"

	"gorm.io/gorm/clause"
)

const (
	defaultSortField = "created_at"
	tieBreakField    = "product_id"
)

// 並び替えに使える列
var sortableFields = map[string]struct{}{
	"name":       {},
	"price":      {},
	"stock":      {},
	"created_at": {},
	"updated_at": {},
	"slug":       {},
	"is_active":  {},
	"product_id": {},
}

// 呼び出し側から渡される並び順の指定（生の文字列）
type SortSpec struct {
	Field string
	Order string
}

type OrderKey struct {
	Field string
	Desc  bool
}

func (k OrderKey) Clause() clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: k.Field}, Desc: k.Desc}
}

// ResolveSort は許可リストで検証した並び順を返す。
// 先頭が主キー、最後は常に product_id ASC（主キーが product_id の場合を除く）。
func ResolveSort(s SortSpec) []OrderKey {
	field := strings.TrimSpace(s.Field)
	var primary OrderKey
	if _, ok := sortableFields[field]; ok && field != "" {
		primary = OrderKey{Field: field, Desc: isDescending(s.Order)}
	} else {
		primary = OrderKey{Field: defaultSortField, Desc: true}
	}

	keys := []OrderKey{primary}
	if primary.Field != tieBreakField {
		keys = append(keys, OrderKey{Field: tieBreakField, Desc: false})
	}
	return keys
}

// asc系・不明な値はすべて昇順
func isDescending(order string) bool {
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "desc", "descending", "descend":
		return true
	}
	return false
}

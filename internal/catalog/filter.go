// Package catalog は商品一覧の検索条件（絞り込み・並び順・ページング）を組み立て、
// ストレージに1回の読み取りとして問い合わせる。
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// Tristate は「未指定」を true/false と区別して持つ。
type Tristate uint8

const (
	Unset Tristate = iota
	True
	False
)

func TristateOf(b bool) Tristate {
	if b {
		return True
	}
	return False
}

// 商品一覧の絞り込み条件。ゼロ値は「制限なし」。
type Filter struct {
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	CategoryIDs    []int64
	SubcategoryIDs []int64
	Q              string
	IsActive       Tristate
}

// Predicate はWHERE句の断片の並び。すべてANDで結合される。
type Predicate []clause.Expression

// fragmentは条件が不要なとき ok=false を返す
type fragment func(f Filter) (clause.Expression, bool)

var fragments = []fragment{
	activeFragment,
	minPriceFragment,
	maxPriceFragment,
	categoryFragment,
	subcategoryFragment,
	textFragment,
}

// BuildPredicate は Filter を WHERE 条件に変換する。失敗しない。
func BuildPredicate(f Filter) Predicate {
	p := Predicate{}
	for _, frag := range fragments {
		if expr, ok := frag(f); ok {
			p = append(p, expr)
		}
	}
	return p
}

func activeFragment(f Filter) (clause.Expression, bool) {
	switch f.IsActive {
	case True:
		return clause.Eq{Column: clause.Column{Name: "is_active"}, Value: true}, true
	case False:
		return clause.Eq{Column: clause.Column{Name: "is_active"}, Value: false}, true
	}
	return nil, false
}

func minPriceFragment(f Filter) (clause.Expression, bool) {
	if f.MinPrice == nil {
		return nil, false
	}
	return clause.Gte{Column: clause.Column{Name: "price"}, Value: *f.MinPrice}, true
}

func maxPriceFragment(f Filter) (clause.Expression, bool) {
	if f.MaxPrice == nil {
		return nil, false
	}
	return clause.Lte{Column: clause.Column{Name: "price"}, Value: *f.MaxPrice}, true
}

func categoryFragment(f Filter) (clause.Expression, bool) {
	return inFragment("category_id", f.CategoryIDs)
}

func subcategoryFragment(f Filter) (clause.Expression, bool) {
	return inFragment("subcategory_id", f.SubcategoryIDs)
}

func inFragment(column string, ids []int64) (clause.Expression, bool) {
	if len(ids) == 0 {
		return nil, false
	}
	values := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	return clause.IN{Column: clause.Column{Name: column}, Values: values}, true
}

// name / description / sku のいずれかに部分一致（大文字小文字を区別しない）
func textFragment(f Filter) (clause.Expression, bool) {
	q := strings.TrimSpace(f.Q)
	if q == "" {
		return nil, false
	}
	like := "%" + escapeLike(q) + "%"

	ors := make([]clause.Expression, 0, len(searchColumns))
	for _, col := range searchColumns {
		ors = append(ors, clause.Expr{
			SQL:  "? ILIKE ?",
			Vars: []interface{}{clause.Column{Name: col}, like},
		})
	}
	return clause.Or(ors...), true
}

var searchColumns = []string{"name", "description", "sku"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

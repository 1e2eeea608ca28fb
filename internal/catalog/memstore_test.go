package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// memStore は BuildPredicate/ResolveSort が作る句をメモリ上で評価する
type memStore struct {
	rows []model.Product
	err  error
}

func (m *memStore) FindAndCount(_ context.Context, q Query) ([]model.Product, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}

	var hit []model.Product
	for _, p := range m.rows {
		if matchesAll(p, q.Where) {
			hit = append(hit, p)
		}
	}
	total := int64(len(hit))

	sort.SliceStable(hit, func(i, j int) bool {
		for _, k := range q.Order {
			c := compareField(hit[i], hit[j], k.Field)
			if c == 0 {
				continue
			}
			if k.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	if q.Offset >= len(hit) {
		return []model.Product{}, total, nil
	}
	end := q.Offset + q.Limit
	if end > len(hit) {
		end = len(hit)
	}
	return hit[q.Offset:end], total, nil
}

func matchesAll(p model.Product, exprs Predicate) bool {
	for _, e := range exprs {
		if !matches(p, e) {
			return false
		}
	}
	return true
}

func matches(p model.Product, e clause.Expression) bool {
	switch x := e.(type) {
	case clause.Eq:
		return p.IsActive == x.Value.(bool)
	case clause.Gte:
		return p.Price.GreaterThanOrEqual(x.Value.(decimal.Decimal))
	case clause.Lte:
		return p.Price.LessThanOrEqual(x.Value.(decimal.Decimal))
	case clause.IN:
		var v *int64
		switch x.Column.(clause.Column).Name {
		case "category_id":
			v = p.CategoryID
		case "subcategory_id":
			v = p.SubcategoryID
		}
		if v == nil {
			return false
		}
		for _, want := range x.Values {
			if want.(int64) == *v {
				return true
			}
		}
		return false
	case clause.OrConditions:
		for _, sub := range x.Exprs {
			if matches(p, sub) {
				return true
			}
		}
		return false
	case clause.Expr:
		col := x.Vars[0].(clause.Column).Name
		needle := unescapeLike(strings.Trim(x.Vars[1].(string), "%"))
		return strings.Contains(strings.ToLower(textField(p, col)), strings.ToLower(needle))
	}
	panic(fmt.Sprintf("unexpected expression %T", e))
}

func unescapeLike(s string) string {
	return strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`).Replace(s)
}

func textField(p model.Product, col string) string {
	switch col {
	case "name":
		return p.Name
	case "description":
		if p.Description != nil {
			return *p.Description
		}
	case "sku":
		if p.SKU != nil {
			return *p.SKU
		}
	}
	return ""
}

func compareField(a, b model.Product, field string) int {
	switch field {
	case "product_id":
		return cmpInt(a.ID, b.ID)
	case "price":
		return a.Price.Cmp(b.Price)
	case "stock":
		return cmpInt(a.Stock, b.Stock)
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "slug":
		return strings.Compare(a.Slug, b.Slug)
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "is_active":
		return cmpBool(a.IsActive, b.IsActive)
	}
	panic("unexpected sort field " + field)
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

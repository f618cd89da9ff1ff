package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fisk-dimension/internal/models"

	"cloud.google.com/go/civil"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DateRange is an inclusive range of calendar days, compared in UTC.
type DateRange struct {
	From civil.Date
	To   civil.Date
}

func (r DateRange) Contains(t time.Time) bool {
	d := civil.DateOf(t.UTC())
	return !d.Before(r.From) && !d.After(r.To)
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortSpec struct {
	Column    string
	Direction SortDirection
}

// DefaultSort orders newest first.
var DefaultSort = SortSpec{Column: "timestamp", Direction: SortDesc}

type sortKind int

const (
	sortString sortKind = iota
	sortNumber
)

// sortValue is one side of a comparison. A zero value is an absent field.
type sortValue struct {
	present bool
	str     string
	num     float64
}

type sortColumn struct {
	kind  sortKind
	value func(*models.Transaction) sortValue
}

func strValue(s string) sortValue {
	return sortValue{present: s != "", str: s}
}

func numValue(f float64) sortValue {
	return sortValue{present: true, num: f}
}

var sortColumns = map[string]sortColumn{
	"id":            {sortString, func(t *models.Transaction) sortValue { return strValue(t.ID) }},
	"timestamp":     {sortNumber, func(t *models.Transaction) sortValue { return numValue(float64(t.Timestamp)) }},
	"status":        {sortString, func(t *models.Transaction) sortValue { return strValue(t.Status) }},
	"blockNumber":   {sortNumber, func(t *models.Transaction) sortValue { return numValue(float64(t.BlockNumber)) }},
	"confirmations": {sortNumber, func(t *models.Transaction) sortValue { return numValue(float64(t.Confirmations)) }},
	"data.type":     {sortString, func(t *models.Transaction) sortValue { return strValue(string(t.Data.Type)) }},
	"data.amount": {sortNumber, func(t *models.Transaction) sortValue {
		if t.Data.Amount == nil {
			return sortValue{}
		}
		f, _ := t.Data.Amount.Float64()
		return numValue(f)
	}},
	"data.currency":    {sortString, func(t *models.Transaction) sortValue { return strValue(t.Data.Currency) }},
	"data.description": {sortString, func(t *models.Transaction) sortValue { return strValue(t.Data.Description) }},
	"data.category":    {sortString, func(t *models.Transaction) sortValue { return strValue(t.Data.Category) }},
	"data.user":        {sortString, func(t *models.Transaction) sortValue { return strValue(t.Data.User) }},
}

// IsSortColumn reports whether column can be used in a SortSpec.
func IsSortColumn(column string) bool {
	_, ok := sortColumns[column]
	return ok
}

// SortColumns lists the accepted sort columns in a stable order.
func SortColumns() []string {
	out := make([]string, 0, len(sortColumns))
	for c := range sortColumns {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// TransactionQuery describes one page request over the chain log. Zero values mean
// "no filter" except Page and Limit, which must both be at least 1 to return items.
type TransactionQuery struct {
	SearchTerm string
	Types      []models.TransactionType
	DateRange  *DateRange
	Page       int
	Limit      int
	Sort       *SortSpec
}

type TransactionPage struct {
	Items []*models.Transaction `json:"items"`
	Total int                   `json:"total"`
}

// QueryTransactions filters, sorts and paginates records. records is not modified.
func QueryTransactions(records []*models.Transaction, q TransactionQuery) TransactionPage {
	filtered := filterTransactions(records, q)

	order := DefaultSort
	if q.Sort != nil && IsSortColumn(q.Sort.Column) {
		order = *q.Sort
	}
	sortTransactions(filtered, order)

	return TransactionPage{
		Items: paginate(filtered, q.Page, q.Limit),
		Total: len(filtered),
	}
}

func filterTransactions(records []*models.Transaction, q TransactionQuery) []*models.Transaction {
	term := strings.ToLower(strings.TrimSpace(q.SearchTerm))

	var types map[models.TransactionType]bool
	if len(q.Types) > 0 {
		types = make(map[models.TransactionType]bool, len(q.Types))
		for _, t := range q.Types {
			types[t] = true
		}
	}

	out := make([]*models.Transaction, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if types != nil && !types[r.Data.Type] {
			continue
		}
		if q.DateRange != nil && !q.DateRange.Contains(r.Time()) {
			continue
		}
		if term != "" && !matchesSearch(r, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesSearch expects term already lower-cased.
func matchesSearch(r *models.Transaction, term string) bool {
	fields := []string{
		r.ID,
		string(r.Data.Type),
		r.Data.Description,
		r.Data.User,
		r.Data.UserAddress,
		r.Data.Currency,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	for _, v := range r.Data.Details {
		if v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(v)), term) {
			return true
		}
	}
	return false
}

func sortTransactions(records []*models.Transaction, order SortSpec) {
	col := sortColumns[order.Column]
	desc := order.Direction == SortDesc

	// collate.Collator keeps scratch buffers, so each sort gets its own.
	collator := collate.New(language.English)

	sort.SliceStable(records, func(i, j int) bool {
		c := compareValues(col.kind, col.value(records[i]), col.value(records[j]), collator)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compareValues orders absent values after present ones, so they end up last
// ascending and first descending.
func compareValues(kind sortKind, a, b sortValue, collator *collate.Collator) int {
	switch {
	case !a.present && !b.present:
		return 0
	case !a.present:
		return 1
	case !b.present:
		return -1
	}

	if kind == sortNumber {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	}
	return collator.CompareString(a.str, b.str)
}

func paginate(records []*models.Transaction, page, limit int) []*models.Transaction {
	items := []*models.Transaction{}
	if page < 1 || limit < 1 {
		return items
	}
	start := (page - 1) * limit
	if start < 0 || start >= len(records) {
		return items
	}
	end := start + limit
	if end > len(records) || end < start {
		end = len(records)
	}
	return append(items, records[start:end]...)
}

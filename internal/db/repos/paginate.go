package repos

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// ErrInvalidFilter is returned when a list request carries a filter the resource does not support
// or a value the filter cannot parse
var ErrInvalidFilter = errors.New("invalid filter")

// dateLayouts are the formats accepted by date filters, the long form is what the dashboard sends
var dateLayouts = []string{"January 2, 2006", "2006-01-02"}

// likeEscaper makes LIKE wildcards in a search term match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type condition struct {
	clause string
	args   []any
}

type filterFunc func(value string) (condition, error)

// listQuery describes how a resource is searched, filtered and ordered
type listQuery struct {
	// where is applied to every query before search and filters
	where         []condition
	searchColumns []string
	filters       map[string]filterFunc
	order         string
}

func eqFilter(column string) filterFunc {
	return func(value string) (condition, error) {
		return condition{clause: column + " = ?", args: []any{value}}, nil
	}
}

func enumFilter[S ~string](column string, parse func(string) (S, error)) filterFunc {
	return func(value string) (condition, error) {
		s, err := parse(value)
		if err != nil {
			return condition{}, err
		}
		return condition{clause: column + " = ?", args: []any{string(s)}}, nil
	}
}

func boolFilter(column string) filterFunc {
	return func(value string) (condition, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return condition{}, fmt.Errorf("invalid boolean %q", value)
		}
		return condition{clause: column + " = ?", args: []any{b}}, nil
	}
}

// dayFilter matches rows whose column falls on the given calendar day (UTC)
func dayFilter(column string) filterFunc {
	return func(value string) (condition, error) {
		day, err := ParseDay(value)
		if err != nil {
			return condition{}, err
		}
		return condition{
			clause: column + " >= ? AND " + column + " < ?",
			args:   []any{day, day.AddDate(0, 0, 1)},
		}, nil
	}
}

// ParseDay parses a calendar day in any of the accepted date filter layouts
func ParseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// scoped returns a copy of q restricted by an additional fixed condition
func (q listQuery) scoped(clause string, args ...any) listQuery {
	where := make([]condition, len(q.where), len(q.where)+1)
	copy(where, q.where)
	q.where = append(where, condition{clause: clause, args: args})
	return q
}

func (q listQuery) conditions(opts *models.ListOptions) ([]condition, error) {
	conds := append([]condition(nil), q.where...)

	if term := strings.TrimSpace(opts.Search); term != "" && len(q.searchColumns) > 0 {
		like := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		clauses := make([]string, len(q.searchColumns))
		args := make([]any, len(q.searchColumns))
		for i, col := range q.searchColumns {
			clauses[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
			args[i] = like
		}
		conds = append(conds, condition{clause: "(" + strings.Join(clauses, " OR ") + ")", args: args})
	}

	keys := make([]string, 0, len(opts.Filters))
	for k := range opts.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn, ok := q.filters[k]
		if !ok {
			return nil, fmt.Errorf("%w: unsupported filter %q", ErrInvalidFilter, k)
		}
		c, err := fn(opts.Filters[k])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFilter, k, err)
		}
		conds = append(conds, c)
	}
	return conds, nil
}

// paginate runs a filtered, searched and paginated list query for T.
// The requested page is clamped to [1, totalPage].
func paginate[T any](ctx context.Context, db *gorm.DB, q listQuery, opts *models.ListOptions) (*models.Page[T], error) {
	if opts == nil {
		opts = models.NewListOptions(1, models.DefaultLimit)
	}
	norm := models.NewListOptions(opts.Page, opts.Limit)
	norm.Search = opts.Search
	norm.Filters = opts.Filters

	conds, err := q.conditions(norm)
	if err != nil {
		return nil, err
	}
	scope := func(tx *gorm.DB) *gorm.DB {
		for _, c := range conds {
			tx = tx.Where(c.clause, c.args...)
		}
		return tx
	}

	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(scope).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}

	totalPage := models.TotalPages(total, norm.Limit)
	if norm.Page > totalPage {
		norm.Page = totalPage
	}

	rows := make([]T, 0, norm.Limit)
	err = db.WithContext(ctx).Model(new(T)).Scopes(scope).
		Order(q.order).
		Limit(norm.Limit).Offset(norm.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rows: %w", err)
	}

	return &models.Page[T]{
		Rows:      rows,
		Total:     total,
		Page:      norm.Page,
		Limit:     norm.Limit,
		TotalPage: totalPage,
	}, nil
}

// notFound wraps gorm.ErrRecordNotFound for a missing row
func notFound(kind string, id uint) error {
	return fmt.Errorf("%s %d not found: %w", kind, id, gorm.ErrRecordNotFound)
}

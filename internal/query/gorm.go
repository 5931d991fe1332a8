package query

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

// Meta echoes pagination state alongside the total match count. Total counts
// the full match set for the condition tree, not the returned page.
type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// PagedResult is one page of matching rows plus list metadata.
type PagedResult[T any] struct {
	Meta Meta `json:"meta"`
	Data []T  `json:"data"`
}

// validColumnName matches only alphanumeric characters and underscores.
// Field names failing the check never reach SQL.
var validColumnName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Apply renders a condition tree onto a GORM query. A nil tree leaves the
// query unchanged (match all).
func Apply(db *gorm.DB, n Node) *gorm.DB {
	expr, args := render(n)
	if expr == "" {
		return db
	}
	return db.Where(expr, args...)
}

// render produces the SQL fragment and arguments for one node. Nodes with
// invalid field names render to nothing rather than erring: the allowlists
// upstream make this unreachable for well-behaved callers.
func render(n Node) (string, []any) {
	switch v := n.(type) {
	case nil:
		return "", nil
	case And:
		return renderGroup(v.Children, " AND ")
	case Or:
		return renderGroup(v.Children, " OR ")
	case Equals:
		column := ColumnName(v.Field)
		if column == "" {
			return "", nil
		}
		return column + " = ?", []any{v.Value}
	case Contains:
		column := ColumnName(v.Field)
		if column == "" {
			return "", nil
		}
		if v.CaseInsensitive {
			return "LOWER(" + column + ") LIKE ?", []any{"%" + strings.ToLower(v.Value) + "%"}
		}
		return column + " LIKE ?", []any{"%" + v.Value + "%"}
	case RelationEquals:
		column := ColumnName(v.Relation)
		if column == "" {
			return "", nil
		}
		return column + "_id = ?", []any{v.ID}
	default:
		return "", nil
	}
}

func renderGroup(children []Node, sep string) (string, []any) {
	parts := make([]string, 0, len(children))
	var args []any
	for _, child := range children {
		expr, childArgs := render(child)
		if expr == "" {
			continue
		}
		parts = append(parts, expr)
		args = append(args, childArgs...)
	}
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], args
	default:
		return "(" + strings.Join(parts, sep) + ")", args
	}
}

// ColumnName converts an API field name (camelCase, matching the JSON
// representation) to its database column and validates it. It returns ""
// for names that would not be safe in SQL.
func ColumnName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	column := b.String()
	if !validColumnName.MatchString(column) {
		return ""
	}
	return column
}

// Paginate returns a GORM scope applying LIMIT and OFFSET from the options.
func Paginate(opts Options) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(opts.Skip).Limit(opts.Limit)
	}
}

// Sort returns a GORM scope applying ORDER BY from the options. Only sort
// fields in the allowed list are accepted; anything else falls back to the
// default newest-first ordering, with id as tie-breaker so page boundaries
// stay stable across calls.
func Sort(opts Options, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if opts.SortBy != "" && slices.Contains(allowed, opts.SortBy) {
			if column := ColumnName(opts.SortBy); column != "" {
				direction := "ASC"
				if opts.SortOrder == "desc" {
					direction = "DESC"
				}
				return db.Order(column + " " + direction)
			}
		}
		return db.Order("created_at DESC, id DESC")
	}
}

// FindPage runs the count and find queries for one condition tree. Both
// observe the same condition; count ignores pagination and ordering. Store
// errors propagate unchanged — translation happens at the repository
// boundary.
func FindPage[T any](db *gorm.DB, cond Node, opts Options, allowedSort []string, preloads ...string) (*PagedResult[T], error) {
	var model T

	var total int64
	if err := Apply(db.Model(&model), cond).Count(&total).Error; err != nil {
		return nil, err
	}

	q := Apply(db.Model(&model), cond)
	for _, preload := range preloads {
		q = q.Preload(preload)
	}

	rows := []T{}
	if err := q.Scopes(Paginate(opts), Sort(opts, allowedSort)).Find(&rows).Error; err != nil {
		return nil, err
	}

	return &PagedResult[T]{
		Meta: Meta{Total: total, Page: opts.Page, Limit: opts.Limit},
		Data: rows,
	}, nil
}

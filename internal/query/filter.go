// Package query is the reusable list-query core shared by every entity
// module: a filter-bag compiler producing a boolean condition tree, a
// pagination resolver, and a GORM executor that runs the matching find and
// count queries.
package query

import (
	"sort"
	"strconv"
)

// Filters is the caller-supplied filter bag for a list query: named scalar
// equality filters plus an optional free-text search term. The search term is
// never treated as an equality filter. Keys not recognized by an entity are
// expected to be dropped before the bag reaches Compile.
type Filters struct {
	SearchTerm string
	Fields     map[string]string
}

// Empty reports whether the bag carries no constraints at all.
func (f Filters) Empty() bool {
	return f.SearchTerm == "" && len(f.Fields) == 0
}

// Node is one node of a compiled condition tree. A nil Node matches all rows.
type Node interface {
	node()
}

// And matches rows satisfying every child.
type And struct {
	Children []Node
}

// Or matches rows satisfying at least one child.
type Or struct {
	Children []Node
}

// Equals matches rows whose field equals the value exactly. An empty value
// still filters: it matches rows whose field is the empty string. Value is a
// string unless the entity declared the field typed, in which case Compile
// has already coerced it.
type Equals struct {
	Field string
	Value any
}

// Contains matches rows whose field contains the value as a substring.
type Contains struct {
	Field           string
	Value           string
	CaseInsensitive bool
}

// RelationEquals matches rows related to the entity with the given id
// through the named relation.
type RelationEquals struct {
	Relation string
	ID       string
}

// FieldType declares the storage type of a filterable field so its raw
// query-string value can be coerced before reaching SQL. Fields without an
// entry stay strings. Raw strings happen to match integer and boolean
// columns on SQLite through column affinity ("2025") or not at all ("true"
// against a 0/1 flag); postgres rejects the comparison outright.
type FieldType int

const (
	FieldString FieldType = iota
	FieldInt
	FieldBool
)

func (And) node()            {}
func (Or) node()             {}
func (Equals) node()         {}
func (Contains) node()       {}
func (RelationEquals) node() {}

// Compile expands a filter bag into a condition tree.
//
// A non-empty search term becomes an Or of case-insensitive Contains nodes
// over the searchable fields. Every remaining key becomes an Equals node, or
// a RelationEquals node when the key appears in the relational map. The two
// blocks are combined under a top-level And; when both are absent the result
// is nil (match all). Keys are visited in sorted order so the rendered query
// is deterministic regardless of map iteration. Values for keys in the typed
// map are coerced to their declared type so they bind correctly against
// non-text columns.
func Compile(f Filters, searchable []string, relational map[string]string, typed map[string]FieldType) Node {
	var children []Node

	if f.SearchTerm != "" && len(searchable) > 0 {
		or := Or{Children: make([]Node, 0, len(searchable))}
		for _, field := range searchable {
			or.Children = append(or.Children, Contains{
				Field:           field,
				Value:           f.SearchTerm,
				CaseInsensitive: true,
			})
		}
		children = append(children, or)
	}

	if len(f.Fields) > 0 {
		keys := make([]string, 0, len(f.Fields))
		for key := range f.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		and := And{Children: make([]Node, 0, len(keys))}
		for _, key := range keys {
			if relation, ok := relational[key]; ok {
				and.Children = append(and.Children, RelationEquals{
					Relation: relation,
					ID:       f.Fields[key],
				})
			} else {
				and.Children = append(and.Children, Equals{
					Field: key,
					Value: coerceValue(f.Fields[key], typed[key]),
				})
			}
		}
		children = append(children, and)
	}

	if len(children) == 0 {
		return nil
	}
	return And{Children: children}
}

// coerceValue converts a raw filter value per the declared field type.
// Unparseable values pass through unchanged and match nothing rather than
// the wrong rows.
func coerceValue(value string, t FieldType) any {
	switch t {
	case FieldInt:
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	case FieldBool:
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return value
}

package query

// Params are the raw, caller-supplied pagination and sorting inputs, before
// any defaulting. Zero values mean "not supplied".
type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Defaults configures how missing Params values are filled in. The values
// come from configuration so page-size policy can change without code edits.
type Defaults struct {
	Limit    int
	MaxLimit int
}

// Options is the normalized pagination tuple applied to list queries.
type Options struct {
	Page      int
	Limit     int
	Skip      int
	SortBy    string
	SortOrder string
}

const (
	fallbackLimit    = 10
	fallbackMaxLimit = 100
)

// Resolve normalizes raw params against the configured defaults. It never
// fails: non-positive page/limit fall back, limit is capped at MaxLimit, and
// a sortBy without an explicit order sorts ascending. SortOrder values other
// than "asc"/"desc" are treated as unsupplied.
func Resolve(p Params, d Defaults) Options {
	if d.Limit <= 0 {
		d.Limit = fallbackLimit
	}
	if d.MaxLimit <= 0 {
		d.MaxLimit = fallbackMaxLimit
	}

	page := p.Page
	if page < 1 {
		page = 1
	}

	limit := p.Limit
	if limit < 1 {
		limit = d.Limit
	}
	if limit > d.MaxLimit {
		limit = d.MaxLimit
	}

	order := ""
	if p.SortBy != "" {
		switch p.SortOrder {
		case "asc", "desc":
			order = p.SortOrder
		default:
			order = "asc"
		}
	}

	return Options{
		Page:      page,
		Limit:     limit,
		Skip:      (page - 1) * limit,
		SortBy:    p.SortBy,
		SortOrder: order,
	}
}

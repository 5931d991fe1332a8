package query

import "testing"

func TestResolve_Defaults(t *testing.T) {
	opts := Resolve(Params{}, Defaults{Limit: 10, MaxLimit: 100})

	if opts.Page != 1 {
		t.Errorf("Page = %d; want 1", opts.Page)
	}
	if opts.Limit != 10 {
		t.Errorf("Limit = %d; want 10", opts.Limit)
	}
	if opts.Skip != 0 {
		t.Errorf("Skip = %d; want 0", opts.Skip)
	}
	if opts.SortBy != "" || opts.SortOrder != "" {
		t.Errorf("sort = %q %q; want empty", opts.SortBy, opts.SortOrder)
	}
}

func TestResolve_SkipComputation(t *testing.T) {
	opts := Resolve(Params{Page: 2, Limit: 10}, Defaults{Limit: 10, MaxLimit: 100})

	if opts.Page != 2 {
		t.Errorf("Page = %d; want 2", opts.Page)
	}
	if opts.Limit != 10 {
		t.Errorf("Limit = %d; want 10", opts.Limit)
	}
	if opts.Skip != 10 {
		t.Errorf("Skip = %d; want 10", opts.Skip)
	}
}

func TestResolve_NonPositiveInputsFallBack(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		wantPage  int
		wantLimit int
	}{
		{"zero page", Params{Page: 0, Limit: 5}, 1, 5},
		{"negative page", Params{Page: -3, Limit: 5}, 1, 5},
		{"zero limit", Params{Page: 4, Limit: 0}, 4, 10},
		{"negative limit", Params{Page: 4, Limit: -1}, 4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Resolve(tt.params, Defaults{Limit: 10, MaxLimit: 100})
			if opts.Page != tt.wantPage {
				t.Errorf("Page = %d; want %d", opts.Page, tt.wantPage)
			}
			if opts.Limit != tt.wantLimit {
				t.Errorf("Limit = %d; want %d", opts.Limit, tt.wantLimit)
			}
			if want := (tt.wantPage - 1) * tt.wantLimit; opts.Skip != want {
				t.Errorf("Skip = %d; want %d", opts.Skip, want)
			}
		})
	}
}

func TestResolve_LimitCappedAtMax(t *testing.T) {
	opts := Resolve(Params{Limit: 5000}, Defaults{Limit: 10, MaxLimit: 100})
	if opts.Limit != 100 {
		t.Errorf("Limit = %d; want 100", opts.Limit)
	}
}

func TestResolve_ZeroDefaultsUseFallbacks(t *testing.T) {
	opts := Resolve(Params{Limit: 500}, Defaults{})
	if opts.Limit != fallbackMaxLimit {
		t.Errorf("Limit = %d; want %d", opts.Limit, fallbackMaxLimit)
	}

	opts = Resolve(Params{}, Defaults{})
	if opts.Limit != fallbackLimit {
		t.Errorf("Limit = %d; want %d", opts.Limit, fallbackLimit)
	}
}

func TestResolve_SortOrderDefaults(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		wantBy    string
		wantOrder string
	}{
		{"sortBy without order defaults asc", Params{SortBy: "title"}, "title", "asc"},
		{"explicit desc kept", Params{SortBy: "title", SortOrder: "desc"}, "title", "desc"},
		{"invalid order treated as unsupplied", Params{SortBy: "title", SortOrder: "sideways"}, "title", "asc"},
		{"order without sortBy ignored", Params{SortOrder: "desc"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Resolve(tt.params, Defaults{Limit: 10, MaxLimit: 100})
			if opts.SortBy != tt.wantBy {
				t.Errorf("SortBy = %q; want %q", opts.SortBy, tt.wantBy)
			}
			if opts.SortOrder != tt.wantOrder {
				t.Errorf("SortOrder = %q; want %q", opts.SortOrder, tt.wantOrder)
			}
		})
	}
}

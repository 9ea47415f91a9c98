package session

import (
	"net/url"
	"strconv"

	"github.com/mystore/catalog/internal/core/domain"
)

// ViewState is the filter/sort/search tuple a storefront page keeps in
// sync with the address bar.
//
// Encoding is pure and one-directional-triggered: a state change
// pushes a URL replace (no history entry), and only the initial page
// load seeds state from the URL. A state-triggered write never
// re-triggers a decode.
type ViewState struct {
	Type  string
	Price int
	Sort  domain.SortOrder
	Query string
}

// Defaults are the per-page values omitted from the serialized URL.
type Defaults struct {
	Type  string
	Price int
}

var (
	WatchesDefaults = Defaults{Type: "All", Price: 20000}
	ShoesDefaults   = Defaults{Type: "All", Price: 5000}
)

// Encode serializes the state to a canonical query string, omitting
// every parameter that equals its default.
func (st ViewState) Encode(d Defaults) string {
	params := url.Values{}

	if st.Type != "" && st.Type != d.Type {
		params.Set("type", st.Type)
	}
	if st.Price != 0 && st.Price != d.Price {
		params.Set("price", strconv.Itoa(st.Price))
	}
	if st.Sort != "" && st.Sort != domain.SortNone {
		params.Set("sort", string(st.Sort))
	}
	if st.Query != "" {
		params.Set("q", st.Query)
	}

	return params.Encode()
}

// DecodeViewState parses a query string back into a state tuple,
// substituting the page defaults for absent or malformed parameters.
func DecodeViewState(raw string, d Defaults) ViewState {
	st := ViewState{Type: d.Type, Price: d.Price, Sort: domain.SortNone}

	params, err := url.ParseQuery(raw)
	if err != nil {
		return st
	}

	if v := params.Get("type"); v != "" {
		st.Type = v
	}
	if v := params.Get("price"); v != "" {
		if price, err := strconv.Atoi(v); err == nil {
			st.Price = price
		}
	}
	st.Sort = domain.ParseSortOrder(params.Get("sort"))
	st.Query = params.Get("q")

	return st
}

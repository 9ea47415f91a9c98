package session

import (
	"strings"
	"time"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/pkg/debounce"
)

// SuggestDelay is how long the search box input must stay quiet before
// suggestions are computed.
const SuggestDelay = 300 * time.Millisecond

// SuggestBox drives the live suggestion dropdown. Keystrokes go in via
// Input; after the debounce delay deliver receives the settled query
// and up to [domain.SuggestLimit] matches. A blank query delivers nil:
// the dropdown shows its static trending list instead.
type SuggestBox struct {
	store *Store
	deb   *debounce.Debouncer[string]
}

func NewSuggestBox(
	store *Store, deliver func(query string, suggestions []domain.Product),
) *SuggestBox {
	b := &SuggestBox{store: store}
	b.deb = debounce.New(SuggestDelay, func(q string) {
		q = strings.TrimSpace(q)
		if q == "" {
			deliver(q, nil)
			return
		}
		// fresh snapshot: the store may have changed during the delay
		deliver(q, domain.Suggest(store.Snapshot(), q, domain.SuggestLimit))
	})
	return b
}

func (b *SuggestBox) Input(query string) {
	b.deb.Input(query)
}

func (b *SuggestBox) Close() {
	b.deb.Stop()
}

package catalog

import (
	"fmt"

	"github.com/TylerBromley/bindkit/core/schema"
)

// Store provides read access to the catalog data. Handlers never mutate it;
// write endpoints validate and echo their payloads.
type Store interface {
	// Items returns the item summaries page starting at skip, at most limit
	// entries.
	Items(skip, limit int) []*schema.Instance

	// Item returns the full item for id.
	Item(id string) (*schema.Instance, bool)

	// Listing returns the vehicle listing for id.
	Listing(id string) (*schema.Instance, bool)
}

// memStore is the in-memory Store used by the demo application and tests.
// Seed data conforms through the same models as request payloads, so
// presence tracking works for stored values too: an item seeded without a
// tax reports the default as not explicitly set.
type memStore struct {
	order    []string
	items    map[string]*schema.Instance
	listings map[string]*schema.Instance
}

// NewMemStore builds the seeded in-memory store.
func NewMemStore() Store {
	s := &memStore{
		items:    make(map[string]*schema.Instance),
		listings: make(map[string]*schema.Instance),
	}

	s.seedItem("foo", map[string]any{
		"name": "Foo", "price": 50.2,
	})
	s.seedItem("bar", map[string]any{
		"name": "Bar", "description": "The bartenders", "price": 62, "tax": 20.2,
	})
	s.seedItem("baz", map[string]any{
		"name": "Baz", "description": nil, "price": 50.2, "tax": 10.5,
	})

	s.seedListing("classic", map[string]any{
		"kind": "car", "description": "A restored classic",
	})
	s.seedListing("jet", map[string]any{
		"kind": "plane", "description": "Twin-engine jet", "size": 12,
	})

	return s
}

func (s *memStore) seedItem(id string, doc map[string]any) {
	inst, err := Item.Conform(doc)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid seed item %s: %v", id, err))
	}
	s.order = append(s.order, id)
	s.items[id] = inst
}

func (s *memStore) seedListing(id string, doc map[string]any) {
	inst, err := Listing.Conform(doc)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid seed listing %s: %v", id, err))
	}
	s.listings[id] = inst
}

func (s *memStore) Items(skip, limit int) []*schema.Instance {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(s.order) || limit <= 0 {
		return nil
	}
	end := min(skip+limit, len(s.order))

	out := make([]*schema.Instance, 0, end-skip)
	for _, id := range s.order[skip:end] {
		summary, err := ItemSummary.Conform(map[string]any{"item_name": s.items[id].String("name")})
		if err != nil {
			continue
		}
		out = append(out, summary)
	}
	return out
}

func (s *memStore) Item(id string) (*schema.Instance, bool) {
	inst, ok := s.items[id]
	return inst, ok
}

func (s *memStore) Listing(id string) (*schema.Instance, bool) {
	inst, ok := s.listings[id]
	return inst, ok
}

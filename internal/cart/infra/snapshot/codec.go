package snapshot

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/neonthreads/storefront/internal/cart/domain"
)

type record struct {
	Items []entry `json:"items"`
}

// entry is the persisted line-item shape. Price is a pointer so an absent
// field can be told apart from a zero price.
type entry struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Image    string           `json:"image"`
	Quantity int              `json:"quantity"`
}

// Encode serializes line items into the snapshot record.
func Encode(items []domain.LineItem) ([]byte, error) {
	rec := record{Items: make([]entry, 0, len(items))}
	for _, it := range items {
		price := it.Price
		rec.Items = append(rec.Items, entry{
			ID:       it.ID,
			Name:     it.Name,
			Price:    &price,
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}
	return json.Marshal(rec)
}

// Decode parses a snapshot record. A record that is not valid JSON is an
// error; individual entries that fail shape validation (no id, no price,
// quantity below one) are dropped, keeping the rest.
func Decode(data []byte) ([]domain.LineItem, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	items := make([]domain.LineItem, 0, len(rec.Items))
	for _, e := range rec.Items {
		if e.ID == "" || e.Price == nil {
			continue
		}
		it := domain.LineItem{
			ID:       e.ID,
			Name:     e.Name,
			Price:    *e.Price,
			Image:    e.Image,
			Quantity: e.Quantity,
		}
		if !it.Valid() {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

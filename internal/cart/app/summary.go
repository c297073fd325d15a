package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// SummaryLine is one cart line joined with live catalog details, with
// amounts already formatted for display.
type SummaryLine struct {
	ProductID string
	Name      string
	Image     string
	InStock   bool
	Quantity  int
	UnitPrice string
	LineTotal string
}

type Summary struct {
	Lines      []SummaryLine
	TotalItems int
	TotalPrice string
}

// SummaryService builds display summaries of the current cart, fetching
// product details from the catalog with a bounded fan-out.
type SummaryService struct {
	store   *Store
	catalog CatalogReader

	maxConcurrent int
}

func NewSummaryService(store *Store, catalog CatalogReader, maxConcurrent int) *SummaryService {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &SummaryService{
		store:         store,
		catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

// Summarize renders the current cart. A product the catalog no longer knows
// keeps the name and image recorded at add time and is flagged out of stock;
// any other catalog failure aborts the summary.
func (s *SummaryService) Summarize(ctx context.Context) (Summary, error) {
	items := s.store.Items()

	lines := make([]SummaryLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		idx := idx
		g.Go(func() error {
			it := items[idx]
			line := SummaryLine{
				ProductID: it.ID,
				Name:      it.Name,
				Image:     it.Image,
				Quantity:  it.Quantity,
				UnitPrice: it.Price.StringFixed(2),
				LineTotal: it.Subtotal().StringFixed(2),
			}

			product, err := s.catalog.Product(ctx, it.ID)
			switch {
			case errors.Is(err, ErrProductNotFound):
				line.InStock = false
			case err != nil:
				return fmt.Errorf("failed to get product %s: %w", it.ID, err)
			default:
				line.Name = product.Name
				if product.Image != "" {
					line.Image = product.Image
				}
				line.InStock = product.InStock
			}

			lines[idx] = line
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	// Totals come from the same snapshot the lines were built from.
	totalItems := 0
	totalPrice := decimal.Zero
	for _, it := range items {
		totalItems += it.Quantity
		totalPrice = totalPrice.Add(it.Subtotal())
	}

	return Summary{
		Lines:      lines,
		TotalItems: totalItems,
		TotalPrice: totalPrice.StringFixed(2),
	}, nil
}

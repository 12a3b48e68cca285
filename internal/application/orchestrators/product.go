package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/domain/product"
	"lockerroom/internal/domain/record"
)

// CreateProductInput carries input for the create product orchestrator.
type CreateProductInput struct {
	Kind        string // Defaults to digital when empty
	Title       string
	Price       int
	Description string
	CTA         string
	Link        string
}

// CreateProductDeps holds dependencies for CreateProduct.
type CreateProductDeps struct {
	Products *collection.Collection[product.Product]
	Now      func() time.Time
}

// ExecuteCreateProduct adds a product to the products grid.
// PRE: Title and Link must be non-empty after trimming; Price >= 0;
// Kind (if set) must be valid
// POST: Product created with a fresh id and prepended to the collection
func ExecuteCreateProduct(ctx context.Context, input CreateProductInput, deps CreateProductDeps) (product.Product, error) {
	kind := input.Kind
	if kind == "" {
		kind = product.KindDigital
	}

	cta := strings.TrimSpace(input.CTA)
	if cta == "" {
		cta = "Get it"
	}

	p := product.Product{
		ID:          record.NewID(deps.Now()),
		Kind:        kind,
		Title:       strings.TrimSpace(input.Title),
		Price:       input.Price,
		Description: strings.TrimSpace(input.Description),
		CTA:         cta,
		Link:        strings.TrimSpace(input.Link),
	}

	if err := p.Validate(); err != nil {
		return product.Product{}, err
	}

	deps.Products.Add(ctx, p)
	slog.Info("board_event", "event", "product_created", "id", p.ID, "kind", p.Kind, "title", p.Title)
	return p, nil
}

// DeleteProductDeps holds dependencies for DeleteProduct.
type DeleteProductDeps struct {
	Products *collection.Collection[product.Product]
}

// ExecuteDeleteProduct removes a product by id.
// PRE: id is a record id
// POST: Returns true if a record was removed
func ExecuteDeleteProduct(ctx context.Context, id int64, deps DeleteProductDeps) bool {
	removed := deps.Products.Delete(ctx, id)
	if removed {
		slog.Info("board_event", "event", "product_deleted", "id", id)
	}
	return removed
}

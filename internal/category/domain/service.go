package domain

import (
	"context"
	"errors"
)

type Service interface {
	// List returns every category ordered by name.
	List(ctx context.Context) ([]Category, error)
	// ListWithCounts returns every category ordered by name, each annotated
	// with its count of active products.
	ListWithCounts(ctx context.Context) ([]CategoryWithCount, error)
}

var ErrNotFound = errors.New("not_found")

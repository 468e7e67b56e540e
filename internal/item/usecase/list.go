package usecase

import (
	"context"

	"item-catalog/internal/item"
)

// List returns every Item in store order. An empty store yields an
// empty output, never an error.
func (uc *implUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{Items: items}, nil
}

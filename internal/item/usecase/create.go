package usecase

import (
	"context"

	"item-catalog/internal/item"
	repo "item-catalog/internal/item/repository"
)

// Create persists a new Item built from the input's id, name and price.
// There is no duplicate-id pre-check here: id uniqueness belongs to the
// store, and a duplicate create comes back as a store-level error.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	created, err := uc.repo.InsertItem(ctx, repo.InsertItemOptions{
		ID:    input.ID,
		Name:  input.Name,
		Price: input.Price,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: created}, nil
}

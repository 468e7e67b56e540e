package usecase

import (
	"context"
	"errors"

	"item-catalog/internal/item"
	repo "item-catalog/internal/item/repository"
)

// Detail retrieves a single Item by id. Returns ErrItemNotFound when
// no such item exists.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.DetailItemOutput, error) {
	found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if errors.Is(err, repo.ErrNotFound) {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	return item.DetailItemOutput{Item: found}, nil
}

// Update overwrites name and price of an existing Item in one atomic
// store round-trip. Returns ErrItemNotFound when no such item exists.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:    input.ID,
		Name:  input.Name,
		Price: input.Price,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	return item.UpdateItemOutput{Item: updated}, nil
}

// Delete removes an Item by id in one atomic store round-trip. Returns
// ErrItemNotFound when no such item exists.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.DeleteItem(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return item.ErrItemNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}

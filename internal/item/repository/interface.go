package repository

import (
	"context"

	"item-catalog/internal/item"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
//
// GetOneItem, UpdateItem and DeleteItem return ErrNotFound when no
// document matches; UpdateItem and DeleteItem must locate and mutate
// the document in a single store round-trip so concurrent writers
// cannot interleave between the read and the write.
type ItemRepository interface {
	InsertItem(ctx context.Context, opt InsertItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context) ([]item.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

package repository

// InsertItemOptions holds parameters for inserting a new Item.
type InsertItemOptions struct {
	ID    int64
	Name  string
	Price float64
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID int64
}

// UpdateItemOptions holds parameters for updating an existing Item.
// Only Name and Price are written; the identifier is never part of the
// update payload.
type UpdateItemOptions struct {
	ID    int64
	Name  string
	Price float64
}

package item

// --- Item Domain Model ---

// Item is the catalog entity managed by this module. The identifier is
// assigned by the caller on create, is unique across the collection
// and never changes afterwards.
type Item struct {
	ID    int64
	Name  string
	Price float64
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	ID    int64
	Name  string
	Price float64
}

type UpdateItemInput struct {
	ID    int64
	Name  string
	Price float64
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}

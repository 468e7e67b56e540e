package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"item-catalog/internal/item"
	repo "item-catalog/internal/item/repository"
)

// itemDoc is the persisted shape of an Item. The driver manages its
// own _id; the external key is the id field.
type itemDoc struct {
	ID    int64   `bson:"id"`
	Name  string  `bson:"name"`
	Price float64 `bson:"price"`
}

func (d itemDoc) toEntity() item.Item {
	return item.Item{
		ID:    d.ID,
		Name:  d.Name,
		Price: d.Price,
	}
}

func idFilter(id int64) bson.D {
	return bson.D{bson.E{Key: "id", Value: id}}
}

// InsertItem persists a new Item document and returns the created entity.
// No duplicate check happens here; the unique index on id rejects
// duplicates with a driver-level write error.
func (r *implRepository) InsertItem(ctx context.Context, opt repo.InsertItemOptions) (item.Item, error) {
	doc := itemDoc{
		ID:    opt.ID,
		Name:  opt.Name,
		Price: opt.Price,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "item/repository/mongodb.InsertItem: %v", err)
		return item.Item{}, err
	}
	return doc.toEntity(), nil
}

// GetOneItem fetches a single Item by the given filter.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	var doc itemDoc
	err := r.col.FindOne(ctx, idFilter(opt.ID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "item/repository/mongodb.GetOneItem: %v", err)
		return item.Item{}, err
	}
	return doc.toEntity(), nil
}

// ListItems returns every Item in the collection, in store order.
func (r *implRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		r.l.Errorf(ctx, "item/repository/mongodb.ListItems: %v", err)
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []itemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "item/repository/mongodb.ListItems: %v", err)
		return nil, err
	}

	items := make([]item.Item, len(docs))
	for i, d := range docs {
		items[i] = d.toEntity()
	}
	return items, nil
}

// UpdateItem overwrites name and price of the Item matching opt.ID in
// a single findOneAndUpdate round-trip and returns the updated entity.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	upd := bson.D{
		bson.E{Key: "$set", Value: bson.D{
			bson.E{Key: "name", Value: opt.Name},
			bson.E{Key: "price", Value: opt.Price},
		}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc itemDoc
	err := r.col.FindOneAndUpdate(ctx, idFilter(opt.ID), upd, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "item/repository/mongodb.UpdateItem: %v", err)
		return item.Item{}, err
	}
	return doc.toEntity(), nil
}

// DeleteItem removes the Item matching id in a single findOneAndDelete
// round-trip.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	err := r.col.FindOneAndDelete(ctx, idFilter(id)).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "item/repository/mongodb.DeleteItem: %v", err)
		return err
	}
	return nil
}

package http

import (
	"item-catalog/internal/item"
)

// --- Request DTOs ---

type createReq struct {
	ID    int64   `json:"id"    binding:"required"`
	Name  string  `json:"name"  binding:"required,min=1,max=255"`
	Price float64 `json:"price"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
	}
}

// ---

type updateReq struct {
	ID    int64   `json:"-"` // populated from URI param
	Name  string  `json:"name"  binding:"required,min=1,max=255"`
	Price float64 `json:"price"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
	}
}

// --- Response DTOs ---

// itemObj is the transfer shape of an Item: the same three fields as
// the entity, nothing dropped or renamed.
type itemObj struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func newItemObj(it item.Item) itemObj {
	return itemObj{
		ID:    it.ID,
		Name:  it.Name,
		Price: it.Price,
	}
}

type createResp struct {
	Item itemObj `json:"item"`
}

func (h *handler) newCreateResp(out item.CreateItemOutput) createResp {
	return createResp{Item: newItemObj(out.Item)}
}

type listResp struct {
	Items []itemObj `json:"items"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	items := make([]itemObj, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemObj(it)
	}
	return listResp{Items: items}
}

type detailResp struct {
	Item itemObj `json:"item"`
}

func (h *handler) newDetailResp(out item.DetailItemOutput) detailResp {
	return detailResp{Item: newItemObj(out.Item)}
}

type updateResp struct {
	Item itemObj `json:"item"`
}

func (h *handler) newUpdateResp(out item.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemObj(out.Item)}
}

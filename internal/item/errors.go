package item

import "errors"

// ErrItemNotFound is the only domain error this module raises. Detail,
// Update and Delete return it when no item matches the given id; every
// other failure is a store-level error and propagates unchanged.
var ErrItemNotFound = errors.New("item not found")

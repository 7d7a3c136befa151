package marketplace

import "errors"

// ErrInvalidID is returned by repositories when an identifier cannot address
// a record in the backing store, such as a malformed ObjectID.
var ErrInvalidID = errors.New("invalid identifier")

// ErrDuplicate is returned by seeders when a record with the same identifier
// is already stored.
var ErrDuplicate = errors.New("record already exists")

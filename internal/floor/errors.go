package floor

import "errors"

var (
	ErrOutOfBounds    = errors.New("position out of bounds")
	ErrCellOccupied   = errors.New("cell already occupied")
	ErrUnknownActor   = errors.New("unknown actor")
	ErrDuplicateActor = errors.New("actor already on floor")
	ErrUnknownItem    = errors.New("unknown item")
	ErrDuplicateItem  = errors.New("item already on floor")
)

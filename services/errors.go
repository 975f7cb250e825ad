package services

import "errors"

// Engine error taxonomy. Every failed precondition maps to exactly one of
// these; controllers translate the code to an HTTP status. The engine never
// retries and never swallows a failed invariant check.
var (
	ErrInvalidRange      = errors.New("invalid_range")
	ErrRoomUnavailable   = errors.New("room_unavailable")
	ErrIllegalTransition = errors.New("illegal_transition")
	ErrRoomOccupied      = errors.New("room_occupied")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrInsufficientStock = errors.New("insufficient_stock")
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrSlipProcessed     = errors.New("slip_already_processed")
)

package tlc59xx

import "errors"

// ErrChannelRange is returned when a channel index lies outside the chain.
// It is always a programming error in the caller; nothing is written.
var ErrChannelRange = errors.New("tlc59xx: channel index out of range")

// ErrReleased is returned by every operation after Release has handed the
// bus and latch pin back to the caller.
var ErrReleased = errors.New("tlc59xx: device released")

// TransferError reports a failed SPI transfer. The latch was not pulsed, so
// the chips still show the previously committed frame.
type TransferError struct {
	Err error
}

func (e *TransferError) Error() string {
	return "tlc59xx: spi transfer: " + e.Err.Error()
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// LatchError reports a failed latch pin drive after a successful transfer.
// The shift registers hold the new frame but it may not be applied; calling
// Write again resends and relatches safely.
type LatchError struct {
	Err error
}

func (e *LatchError) Error() string {
	return "tlc59xx: latch: " + e.Err.Error()
}

func (e *LatchError) Unwrap() error {
	return e.Err
}

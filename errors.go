package stockbroker

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the ways an order can be rejected.
type ErrorKind int

const (
	// MalformedOrder marks a line with the wrong field count or an
	// unparsable price or volume.
	MalformedOrder ErrorKind = iota
	// InvalidAction marks an action other than buy or sell.
	InvalidAction
	// InvalidStockCodeFormat marks a stock code that is not exactly 4
	// uppercase letters.
	InvalidStockCodeFormat
	// UnknownStockCode marks a well-formed stock code absent from the
	// stock-code set.
	UnknownStockCode
	// InvalidPrice marks a price below 0.50 or with more than two
	// fractional digits.
	InvalidPrice
	// InvalidVolume marks a volume outside [1, 1,000,000].
	InvalidVolume
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedOrder:
		return "malformed-order"
	case InvalidAction:
		return "invalid-action"
	case InvalidStockCodeFormat:
		return "invalid-stock-code-format"
	case UnknownStockCode:
		return "unknown-stock-code"
	case InvalidPrice:
		return "invalid-price"
	case InvalidVolume:
		return "invalid-volume"
	default:
		return "unknown"
	}
}

// RejectionError reports why an order was not recorded. The Message is the
// user-visible status line; Kind lets callers branch without string
// matching. All rejections are recovered locally: the order is dropped and
// processing continues with the next line.
type RejectionError struct {
	Kind    ErrorKind
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

func reject(kind ErrorKind, message string) *RejectionError {
	return &RejectionError{Kind: kind, Message: message}
}

// Kind returns the ErrorKind carried by err, or ok=false if err is not a
// rejection.
func Kind(err error) (ErrorKind, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Kind, true
	}
	return 0, false
}

// ErrStorageUnavailable marks a missing or unreadable storage file at
// startup. Unlike rejections it is fatal: the process reports the failure
// and exits without entering either mode.
var ErrStorageUnavailable = errors.New("storage unavailable")

func storageUnavailable(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, path, err)
}

// Rejection messages shown to the operator.
const (
	msgMalformedFields  = "Invalid command. Format: [buy|sell] [STOCKCODE] [PRICE] [VOLUME]"
	msgMalformedNumbers = "Invalid command. Price must be a decimal number and volume must be an integer."
	msgInvalidAction    = "Invalid action. Must be 'buy' or 'sell'."
	msgInvalidStockCode = "Invalid stock code. Must be 4 uppercase letters."
	msgUnknownStockCode = "Unknown stock code. Must exist in stockcode.csv."
	msgInvalidPrice     = "Invalid price. Must be a number with 2 decimal places and >= 0.50."
	msgInvalidVolume    = "Invalid volume. Must be between 1 and 1,000,000."
)

// Acceptance messages shown to the operator.
const (
	// MsgBookAdded confirms that a new trade book was created.
	MsgBookAdded = "Trade book added."
	// MsgBookUpdated confirms that an existing trade book's volume was
	// adjusted.
	MsgBookUpdated = "Trade book updated."
)

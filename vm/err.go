package vm

import (
	"github.com/QuickWrite/luasm/translate"
)

var f = translate.From

// ErrUnknownLabel reports a jump to a label absent from the label table.
type ErrUnknownLabel string

func (err ErrUnknownLabel) Error() string {
	return f("unknown label %q", string(err))
}

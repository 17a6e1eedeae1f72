package cons

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a window size below 1 is requested.
	ErrInvalidSize = errors.New("cons: invalid window size")
	// ErrNilSource is returned when an adapter is constructed without a source.
	ErrNilSource = errors.New("cons: nil source")
)

func validateSize(op string, size int) error {
	if size < 1 {
		return errors.Wrapf(ErrInvalidSize, "%s: size %d", op, size)
	}
	return nil
}

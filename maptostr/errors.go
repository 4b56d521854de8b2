package maptostr

import "github.com/pkg/errors"

var (
	// ErrInvalidArgumentCount is returned by Format when it does not receive exactly one argument.
	ErrInvalidArgumentCount = errors.New("expects single argument")
	// ErrInvalidSource is returned when the source is missing or cannot be read as key/value entries.
	ErrInvalidSource = errors.New("invalid source")
	// ErrUnknownOption is returned when an options document names a field Options does not have.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidOption is returned when an options document carries a field of the wrong shape.
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidDelimiter is returned by StrToMap when a delimiter it splits on is empty.
	ErrInvalidDelimiter = errors.New("invalid delimiter")
)

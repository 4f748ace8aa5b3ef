package growth

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks an argument outside the formula's domain.
var ErrInvalidParameter = errors.New("growth: invalid parameter")

// growthErrorf prefixes the method name and wraps ErrInvalidParameter.
func growthErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidParameter)
}

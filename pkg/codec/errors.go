package codec

import (
	"fmt"
	"reflect"
)

// ConfigurationError reports that a factory claimed a type but cannot build a
// converter for it. It signals a programming error, not bad input.
type ConfigurationError struct {
	Type   reflect.Type
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("codec: cannot build converter for %v: %s", e.Type, e.Reason)
}

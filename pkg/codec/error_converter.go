package codec

import (
	"encoding/json"
	"reflect"
)

// ErrorMessage is the error produced when decoding a value of the error
// interface type. It carries the message that was encoded.
type ErrorMessage string

func (m ErrorMessage) Error() string {
	return string(m)
}

var errorType = reflect.TypeFor[error]()

var errorConverterInstance = &errorConverter{}

// errorConverter encodes the error interface as its message string.
type errorConverter struct{}

func (c *errorConverter) Type() reflect.Type {
	return errorType
}

func (c *errorConverter) Encode(_ *Engine, v reflect.Value) ([]byte, error) {
	if v.IsNil() {
		return []byte("null"), nil
	}
	return json.Marshal(v.Interface().(error).Error())
}

func (c *errorConverter) Decode(_ *Engine, data []byte, dst reflect.Value) error {
	if isNull(data) {
		dst.Set(reflect.Zero(errorType))
		return nil
	}
	var msg string
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	dst.Set(reflect.ValueOf(ErrorMessage(msg)))
	return nil
}

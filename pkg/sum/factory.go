package sum

import (
	"reflect"

	"github.com/ib-77/sumwire/pkg/codec"
)

type optionFactory struct{}

// OptionFactory claims every instantiation of Option.
func OptionFactory() codec.Factory {
	return optionFactory{}
}

func (optionFactory) CanConvert(t reflect.Type) bool {
	return isShape(t, optionShapeType)
}

func (optionFactory) NewConverter(t reflect.Type) (codec.Converter, error) {
	return converterFor(t)
}

type resultFactory struct{}

// ResultFactory claims every instantiation of Result.
func ResultFactory() codec.Factory {
	return resultFactory{}
}

func (resultFactory) CanConvert(t reflect.Type) bool {
	return isShape(t, resultShapeType)
}

func (resultFactory) NewConverter(t reflect.Type) (codec.Converter, error) {
	return converterFor(t)
}

func converterFor(t reflect.Type) (codec.Converter, error) {
	c, err := newVariantConverter(t)
	if err != nil {
		return nil, err
	}
	return c, nil
}

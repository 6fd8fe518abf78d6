package codec

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// registry holds the factories of an engine and one converter cache per
// factory. It is shared by every engine derived through Without.
type registry struct {
	factories []Factory
	caches    []sync.Map // reflect.Type -> Converter
	log       *zap.Logger
}

func newRegistry(factories []Factory, log *zap.Logger) *registry {
	return &registry{
		factories: factories,
		caches:    make([]sync.Map, len(factories)),
		log:       log,
	}
}

// converter returns the cached converter of factory i for t, building it on
// first use. Concurrent builders may race, but LoadOrStore makes all of them
// return the first stored instance. Build failures are not cached.
func (r *registry) converter(i int, t reflect.Type) (Converter, error) {
	if c, ok := r.caches[i].Load(t); ok {
		return c.(Converter), nil
	}

	f := r.factories[i]
	c, err := f.NewConverter(t)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &ConfigurationError{Type: t, Reason: fmt.Sprintf("factory %T returned no converter", f)}
	}

	actual, loaded := r.caches[i].LoadOrStore(t, c)
	if !loaded {
		r.log.Debug("converter built",
			zap.Stringer("type", t),
			zap.String("factory", fmt.Sprintf("%T", f)))
	}
	return actual.(Converter), nil
}

// TypeFactory returns a factory that serves the single converter c for
// exactly c.Type().
func TypeFactory(c Converter) Factory {
	return typeFactory{c: c}
}

type typeFactory struct {
	c Converter
}

func (f typeFactory) CanConvert(t reflect.Type) bool {
	return t == f.c.Type()
}

func (f typeFactory) NewConverter(reflect.Type) (Converter, error) {
	return f.c, nil
}

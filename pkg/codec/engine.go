package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"go.uber.org/zap"
)

// Converter encodes and decodes values of one concrete Go type.
//
// Converters are compared by identity when an engine excludes them, so
// implementations should be pointer types.
type Converter interface {
	// Type returns the Go type handled by the converter.
	Type() reflect.Type
	// Encode returns the JSON form of v, which has type Type().
	Encode(e *Engine, v reflect.Value) ([]byte, error)
	// Decode parses data into dst, a settable value of type Type(). dst must
	// be left untouched when an error is returned.
	Decode(e *Engine, data []byte, dst reflect.Value) error
}

// Factory builds converters for an open family of types.
type Factory interface {
	// CanConvert reports whether t belongs to the family.
	CanConvert(t reflect.Type) bool
	// NewConverter builds the converter for t. It is only called when
	// CanConvert(t) is true. A failure here is a programming error and is
	// reported as a *ConfigurationError.
	NewConverter(t reflect.Type) (Converter, error)
}

// Engine is an immutable serialization configuration. The zero value is not
// usable; build engines with New.
type Engine struct {
	registry *registry
	excluded []Converter
	settings Settings
	log      *zap.Logger
}

type config struct {
	factories []Factory
	settings  Settings
	log       *zap.Logger
}

// Option configures an Engine built by New.
type Option func(*config)

// WithFactories appends converter factories. Earlier factories win when more
// than one claims a type.
func WithFactories(factories ...Factory) Option {
	return func(c *config) { c.factories = append(c.factories, factories...) }
}

// WithSettings replaces the engine settings.
func WithSettings(s Settings) Option {
	return func(c *config) { c.settings = s }
}

// WithLogger sets the logger used for debug events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// New builds an Engine. The converter for the error interface is always
// registered after the caller's factories.
func New(opts ...Option) *Engine {
	cfg := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	factories := make([]Factory, 0, len(cfg.factories)+1)
	factories = append(factories, cfg.factories...)
	factories = append(factories, TypeFactory(errorConverterInstance))

	return &Engine{
		registry: newRegistry(factories, cfg.log),
		settings: cfg.settings,
		log:      cfg.log,
	}
}

// Settings returns the decoding settings shared by every converter.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Logger returns the logger for debug events, never nil.
func (e *Engine) Logger() *zap.Logger {
	return e.log
}

// Without returns a copy of e in which the converter c is never selected.
// The copy shares the registry and its cache, so every other converter keeps
// its identity. The receiver is not modified.
func (e *Engine) Without(c Converter) *Engine {
	if c == nil || e.Excludes(c) {
		return e
	}
	excluded := make([]Converter, 0, len(e.excluded)+1)
	excluded = append(excluded, e.excluded...)
	excluded = append(excluded, c)
	return &Engine{
		registry: e.registry,
		excluded: excluded,
		settings: e.settings,
		log:      e.log,
	}
}

// Excludes reports whether c has been switched off by Without.
func (e *Engine) Excludes(c Converter) bool {
	for _, x := range e.excluded {
		if x == c {
			return true
		}
	}
	return false
}

// ConverterFor resolves the converter for t. A nil converter with a nil error
// means no factory claims t and the encoding/json fallback applies.
func (e *Engine) ConverterFor(t reflect.Type) (Converter, error) {
	for i, f := range e.registry.factories {
		if !f.CanConvert(t) {
			continue
		}
		c, err := e.registry.converter(i, t)
		if err != nil {
			return nil, err
		}
		if e.Excludes(c) {
			continue
		}
		return c, nil
	}
	return nil, nil
}

// Marshal encodes v using its dynamic type.
func (e *Engine) Marshal(v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	rv := reflect.ValueOf(v)
	return e.EncodeValue(rv.Type(), rv)
}

// Unmarshal decodes data into the value pointed to by v.
func (e *Engine) Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("codec: Unmarshal expects a non-nil pointer, got %T", v)
	}
	return e.DecodeValue(data, rv.Elem())
}

// Encode encodes v using the static type T, which matters when T is an
// interface type.
func Encode[T any](e *Engine, v T) ([]byte, error) {
	return e.EncodeValue(reflect.TypeFor[T](), reflect.ValueOf(&v).Elem())
}

// Decode decodes data into a new T.
func Decode[T any](e *Engine, data []byte) (T, error) {
	var v T
	err := e.DecodeValue(data, reflect.ValueOf(&v).Elem())
	return v, err
}

// EncodeValue encodes v as a value of type t.
func (e *Engine) EncodeValue(t reflect.Type, v reflect.Value) ([]byte, error) {
	c, err := e.ConverterFor(t)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c.Encode(e, v)
	}

	switch t.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return []byte("null"), nil
		}
		elem := v.Elem()
		return e.EncodeValue(elem.Type(), elem)
	case reflect.Pointer:
		handled, err := e.handles(t.Elem())
		if err != nil {
			return nil, err
		}
		if handled {
			if v.IsNil() {
				return []byte("null"), nil
			}
			return e.EncodeValue(t.Elem(), v.Elem())
		}
	}

	return json.Marshal(v.Interface())
}

// DecodeValue decodes data into dst, which must be settable. dst is only
// written when decoding succeeds.
func (e *Engine) DecodeValue(data []byte, dst reflect.Value) error {
	if !dst.CanSet() {
		return fmt.Errorf("codec: cannot decode into unsettable %v", dst.Type())
	}
	t := dst.Type()

	c, err := e.ConverterFor(t)
	if err != nil {
		return err
	}
	if c != nil {
		return c.Decode(e, data, dst)
	}

	if t.Kind() == reflect.Pointer {
		handled, err := e.handles(t.Elem())
		if err != nil {
			return err
		}
		if handled {
			if isNull(data) {
				dst.Set(reflect.Zero(t))
				return nil
			}
			fresh := reflect.New(t.Elem())
			if err := e.DecodeValue(data, fresh.Elem()); err != nil {
				return err
			}
			dst.Set(fresh)
			return nil
		}
	}

	fresh := reflect.New(t)
	if err := e.decodeFallback(data, fresh.Interface()); err != nil {
		return err
	}
	dst.Set(fresh.Elem())
	return nil
}

func (e *Engine) handles(t reflect.Type) (bool, error) {
	c, err := e.ConverterFor(t)
	return c != nil, err
}

func (e *Engine) decodeFallback(data []byte, ptr any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if e.settings.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if e.settings.UseNumber {
		dec.UseNumber()
	}
	if err := dec.Decode(ptr); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("codec: unexpected data after top-level value")
	}
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

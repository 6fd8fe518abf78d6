package sum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/ib-77/sumwire/pkg/codec"
	"go.uber.org/zap"
)

// variantConverter serves one Option or Result instantiation. Payloads are
// handed back to the engine with the converter itself excluded.
type variantConverter struct {
	typ    reflect.Type
	layout Layout
	zero   shape
	// heads[i] is the encoded object prefix up to and including the
	// discriminator of case i.
	heads      [2][]byte
	payloadKey []byte
}

func newVariantConverter(t reflect.Type) (*variantConverter, error) {
	if !isShape(t, shapeType) {
		return nil, &codec.ConfigurationError{Type: t, Reason: "not an Option or Result instantiation"}
	}
	s := reflect.Zero(t).Interface().(shape)
	layout := s.sumLayout()
	for _, kase := range layout.Cases {
		if kase.PayloadType == nil {
			continue
		}
		if reason := unsupportedPayload(kase.PayloadType); reason != "" {
			return nil, &codec.ConfigurationError{
				Type:   t,
				Reason: fmt.Sprintf("%s payload %v %s", kase.Token, kase.PayloadType, reason),
			}
		}
	}

	c := &variantConverter{typ: t, layout: layout, zero: s}
	for i, kase := range layout.Cases {
		c.heads[i] = []byte("{" + quote(layout.Discriminator) + ":" + quote(kase.Token))
	}
	c.payloadKey = []byte("," + quote(layout.Payload) + ":")
	return c, nil
}

func (c *variantConverter) Type() reflect.Type {
	return c.typ
}

func (c *variantConverter) Encode(e *codec.Engine, v reflect.Value) ([]byte, error) {
	s, ok := v.Interface().(shape)
	if !ok {
		return nil, fmt.Errorf("sum: converter for %v cannot encode %v", c.typ, v.Type())
	}
	index, payload := s.sumSplit()
	kase := c.layout.Cases[index]

	out := append([]byte(nil), c.heads[index]...)
	if kase.PayloadType != nil {
		body, err := e.Without(c).EncodeValue(kase.PayloadType, payload)
		if err != nil {
			return nil, err
		}
		out = append(out, c.payloadKey...)
		out = append(out, body...)
	}
	return append(out, '}'), nil
}

func (c *variantConverter) Decode(e *codec.Engine, data []byte, dst reflect.Value) error {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("sum: %v expects a JSON object: %w", c.typ, err)
	}

	field := c.layout.Discriminator
	raw, ok := record[field]
	if !ok {
		return &MissingDiscriminatorError{Type: c.typ, Field: field}
	}
	index := c.caseIndex(raw)
	if index < 0 {
		return &UnknownDiscriminatorError{Type: c.typ, Field: field, Token: string(bytes.TrimSpace(raw))}
	}

	settings := e.Settings()
	if settings.DisallowUnknownFields {
		for key := range record {
			if key != field && key != c.layout.Payload {
				return fmt.Errorf("sum: decoding %v: unknown field %q", c.typ, key)
			}
		}
	}

	kase := c.layout.Cases[index]
	body, hasPayload := record[c.layout.Payload]

	if kase.PayloadType == nil {
		if hasPayload {
			if settings.StrictAbsent {
				return &UnexpectedPayloadError{Type: c.typ, Field: c.layout.Payload, Token: kase.Token}
			}
			e.Logger().Debug("ignoring payload of payload-less variant",
				zap.Stringer("type", c.typ),
				zap.String("token", kase.Token))
		}
		dst.Set(c.zero.sumJoin(index, reflect.Value{}))
		return nil
	}

	if !hasPayload {
		return &MissingPayloadError{Type: c.typ, Field: c.layout.Payload, Token: kase.Token}
	}
	if isNull(body) && !nullable(kase.PayloadType) {
		return &NullPayloadError{
			Type:        c.typ,
			Field:       c.layout.Payload,
			Token:       kase.Token,
			PayloadType: kase.PayloadType,
		}
	}

	payload := reflect.New(kase.PayloadType).Elem()
	if err := e.Without(c).DecodeValue(body, payload); err != nil {
		return err
	}
	dst.Set(c.zero.sumJoin(index, payload))
	return nil
}

func (c *variantConverter) caseIndex(raw json.RawMessage) int {
	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return -1
	}
	for i, kase := range c.layout.Cases {
		if kase.Token == token {
			return i
		}
	}
	return -1
}

func unsupportedPayload(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return "has no JSON representation"
	case reflect.Interface:
		if t.NumMethod() > 0 && t != errorType {
			return "is an interface with no concrete type to decode into"
		}
	}
	return ""
}

func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	}
	return false
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

var errorType = reflect.TypeFor[error]()

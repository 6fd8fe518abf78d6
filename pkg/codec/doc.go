// Package codec is a small JSON serialization engine with a pluggable set of
// converter factories.
//
// An Engine asks its factories, in registration order, whether they can
// convert a type. The first match builds a Converter for that exact type; the
// converter is cached per factory so every later call observes the same
// instance. Types no factory claims are handled by encoding/json.
//
// Key operations:
// - New/WithFactories/WithSettings/WithLogger: build an immutable Engine
// - Marshal/Unmarshal: encode by dynamic type, decode into a pointer
// - Encode/Decode: generic entry points that keep the static type
// - EncodeValue/DecodeValue: reflection entry points used by converters
// - Without: copy of the engine with one converter instance switched off,
//   used by converters that hand their payload back to the engine
// - SettingsFromEnv: load Settings from SUMWIRE_* environment variables
package codec

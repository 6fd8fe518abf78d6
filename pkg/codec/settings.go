package codec

import (
	"errors"

	"github.com/joeshaw/envdecode"
)

// Settings tune decoding. The zero value is the lenient default.
type Settings struct {
	// DisallowUnknownFields rejects object keys that the target type does not
	// declare, both in fallback decoding and in sum type wire records.
	DisallowUnknownFields bool `env:"SUMWIRE_DISALLOW_UNKNOWN_FIELDS,default=false"`
	// UseNumber decodes numbers held in interface values as json.Number.
	UseNumber bool `env:"SUMWIRE_USE_NUMBER,default=false"`
	// StrictAbsent rejects a payload field that accompanies a payload-less
	// variant instead of ignoring it.
	StrictAbsent bool `env:"SUMWIRE_STRICT_ABSENT,default=false"`
}

// SettingsFromEnv reads Settings from SUMWIRE_* environment variables.
// Unset variables keep their defaults.
func SettingsFromEnv() (Settings, error) {
	var s Settings
	if err := envdecode.Decode(&s); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Settings{}, err
	}
	return s, nil
}

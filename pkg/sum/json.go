package sum

import (
	"sync"

	"github.com/ib-77/sumwire/pkg/codec"
	"go.uber.org/zap"
)

var (
	defaultOnce   sync.Once
	defaultEngine *codec.Engine
)

// DefaultEngine returns the engine used by the json.Marshaler and
// json.Unmarshaler methods of Option and Result. It is built on first use
// with both sum factories, settings read from SUMWIRE_* environment
// variables and the global zap logger.
func DefaultEngine() *codec.Engine {
	defaultOnce.Do(func() {
		settings, err := codec.SettingsFromEnv()
		if err != nil {
			zap.L().Warn("ignoring malformed sumwire settings", zap.Error(err))
			settings = codec.Settings{}
		}
		defaultEngine = NewEngine(codec.WithSettings(settings), codec.WithLogger(zap.L()))
	})
	return defaultEngine
}

// NewEngine builds an engine with OptionFactory and ResultFactory registered
// ahead of any factories given in opts.
func NewEngine(opts ...codec.Option) *codec.Engine {
	all := make([]codec.Option, 0, len(opts)+1)
	all = append(all, codec.WithFactories(OptionFactory(), ResultFactory()))
	all = append(all, opts...)
	return codec.New(all...)
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	return codec.Encode(DefaultEngine(), o)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	v, err := codec.Decode[Option[T]](DefaultEngine(), data)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (r Result[V, E]) MarshalJSON() ([]byte, error) {
	return codec.Encode(DefaultEngine(), r)
}

func (r *Result[V, E]) UnmarshalJSON(data []byte) error {
	v, err := codec.Decode[Result[V, E]](DefaultEngine(), data)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

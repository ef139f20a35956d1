package layered

import (
	"github.com/go-viper/mapstructure/v2"
)

// Decode populates out from a merged tree using mapstructure tags. Strings
// convert to durations, comma separated strings to slices, and scalars are
// weakly typed so environment values fit numeric and boolean fields.
func Decode(target string, tree map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return &DecodeError{Target: target, Err: err}
	}

	if err := decoder.Decode(tree); err != nil {
		return &DecodeError{Target: target, Err: err}
	}
	return nil
}

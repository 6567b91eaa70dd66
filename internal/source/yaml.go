package source

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	appErrors "selectbox/internal/errors"
	"selectbox/internal/option"
)

const optionsKey = "options"

// FromYAMLFile reads the list under the top-level "options" key. Each entry
// is either a mapping with id and label or a bare string used as both.
//
//	options:
//	  - {id: 1, label: Red}
//	  - Blue
func FromYAMLFile(path string) (option.List, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, fmt.Sprintf("read %s", path), err)
	}
	if !v.IsSet(optionsKey) {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("%s has no %q list", path, optionsKey), nil)
	}
	entries, err := cast.ToSliceE(v.Get(optionsKey))
	if err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("%s: %q is not a list", path, optionsKey), err)
	}

	opts := make(option.List, 0, len(entries))
	for i, entry := range entries {
		opt, err := decodeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, err)
		}
		opts = append(opts, opt)
	}
	return finish(opts)
}

func decodeEntry(entry any) (option.Option, error) {
	if s, ok := entry.(string); ok {
		return option.Option{ID: option.StringID(s), DisplayString: s}, nil
	}
	fields, err := cast.ToStringMapE(entry)
	if err != nil {
		return option.Option{}, appErrors.New(appErrors.CodeParseFailed, "expected a string or a mapping", err)
	}
	id, err := option.ParseID(fields["id"])
	if err != nil {
		return option.Option{}, err
	}
	label, err := cast.ToStringE(fields["label"])
	if err != nil {
		return option.Option{}, appErrors.New(appErrors.CodeParseFailed, "label", err)
	}
	if label == "" {
		label = id.String()
	}
	return option.Option{ID: id, DisplayString: label}, nil
}

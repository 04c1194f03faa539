package config

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

// Resolve deep-merges override over defaults and validates the result.
//
// Leaves are matched by field name. Every non-nil override leaf replaces the
// corresponding default leaf; nil leaves keep the default, so setting one
// button flag never touches its siblings. The result is total because
// defaults is total and merging only replaces values.
//
// Resolve has no side effects: the same inputs always give the same output.
func Resolve(defaults AppConfig, override PartialAppConfig) (AppConfig, error) {
	resolved := defaults

	dst := reflect.ValueOf(&resolved).Elem()
	src := reflect.ValueOf(override)
	for _, leaf := range schema().leaves {
		value := fieldByNames(src, leaf.names)
		if value.IsNil() {
			continue
		}
		fieldByNames(dst, leaf.names).Set(value.Elem())
	}

	if err := resolved.Validate(); err != nil {
		return AppConfig{}, fmt.Errorf("error validating resolved config: %w", err)
	}

	return resolved, nil
}

// MergeOverrides combines override layers into one. Layers are applied in
// order: a non-nil leaf of a later layer wins over the same leaf of an
// earlier one; nil leaves never erase anything.
func MergeOverrides(layers ...PartialAppConfig) (PartialAppConfig, error) {
	var merged PartialAppConfig
	for i, layer := range layers {
		if err := mergo.Merge(&merged, layer, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return PartialAppConfig{}, fmt.Errorf("error merging override layer %d: %w", i, err)
		}
	}

	return merged, nil
}

// ToOverride returns a total override carrying every leaf of c. Resolving it
// against any defaults yields c again.
func (c AppConfig) ToOverride() PartialAppConfig {
	var override PartialAppConfig

	src := reflect.ValueOf(c)
	dst := reflect.ValueOf(&override).Elem()
	for _, leaf := range schema().leaves {
		value := fieldByNames(src, leaf.names)
		ptr := reflect.New(value.Type())
		ptr.Elem().Set(value)
		fieldByNames(dst, leaf.names).Set(ptr)
	}

	return override
}

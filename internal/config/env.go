// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix starts the name of every environment variable that overrides a
// configuration leaf. Every variable carrying it must name a schema leaf.
const EnvPrefix = "CONNECTLY_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [RuntimeConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// envIndex pairs the schema leaves with the environment variable names
// caarlos0/env derives for them from the env and envPrefix tags of
// [PartialAppConfig].
type envIndex struct {
	names  []string // aligned with schemaIndex.leaves
	byName map[string]*schemaNode
}

var envSchema = sync.OnceValue(func() *envIndex {
	params, err := env.GetFieldParamsWithOptions(&PartialAppConfig{}, overrideEnvOptions(map[string]string{}))
	if err != nil {
		panic(fmt.Sprintf("config: reading env tags: %v", err))
	}

	leaves := schema().leaves
	if len(params) != len(leaves) {
		panic(fmt.Sprintf("config: %d env variables for %d leaves", len(params), len(leaves)))
	}

	idx := &envIndex{
		names:  make([]string, len(leaves)),
		byName: make(map[string]*schemaNode, len(leaves)),
	}
	for i, leaf := range leaves {
		if tag := structFieldByNames(reflect.TypeFor[PartialAppConfig](), leaf.names).Tag.Get("env"); tag != params[i].OwnKey {
			panic(fmt.Sprintf("config: env variable %s does not belong to %s", params[i].Key, leaf.path))
		}
		idx.names[i] = params[i].Key
		idx.byName[params[i].Key] = leaf
	}
	return idx
})

func overrideEnvOptions(environment map[string]string) env.Options {
	return env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	}
}

func structFieldByNames(t reflect.Type, names []string) reflect.StructField {
	var field reflect.StructField
	for _, name := range names {
		field, _ = t.FieldByName(name)
		t = field.Type
	}
	return field
}

// ParseOverrideEnv builds an override from CONNECTLY_* entries of environ
// (in os.Environ form, "KEY=value").
//
// Names come from the env and envPrefix tags of [PartialAppConfig], e.g.
// CONNECTLY_BRAND_APP_NAME or CONNECTLY_BUTTONS_CHAT_SHOW_MAX_BTN, and values
// are parsed by caarlos0/env. A prefixed variable that names no leaf yields
// an [*UnknownKeyError]; a value that does not parse yields a
// [*SchemaViolationError]. Errors carry the variable name as their path.
// A variable set to the empty string is treated as unset.
func ParseOverrideEnv(environ []string) (PartialAppConfig, error) {
	idx := envSchema()

	entries := make([]string, 0)
	for _, entry := range environ {
		if strings.HasPrefix(entry, EnvPrefix) {
			entries = append(entries, entry)
		}
	}
	// environ order is unspecified; sort for stable error output
	slices.Sort(entries)

	var errs []error
	vars := make(map[string]string, len(entries))
	for _, entry := range entries {
		name, value, _ := strings.Cut(entry, "=")
		if _, ok := idx.byName[name]; !ok {
			errs = append(errs, &UnknownKeyError{Path: name})
			continue
		}
		vars[name] = value
	}

	var override PartialAppConfig
	if err := env.ParseWithOptions(&override, overrideEnvOptions(vars)); err != nil {
		errs = append(errs, envViolations(idx, vars, err)...)
	}

	if len(errs) > 0 {
		return PartialAppConfig{}, errors.Join(errs...)
	}

	return override, nil
}

// envViolations attributes a failed parse to the variables that caused it.
// caarlos0/env names Go fields in its errors, and those repeat across views,
// so each variable is parsed on its own.
func envViolations(idx *envIndex, vars map[string]string, parseErr error) []error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		var scratch PartialAppConfig
		if err := env.ParseWithOptions(&scratch, overrideEnvOptions(map[string]string{name: vars[name]})); err != nil {
			errs = append(errs, &SchemaViolationError{
				Path:     name,
				Expected: idx.byName[name].kind.String(),
				Actual:   strconv.Quote(vars[name]),
			})
		}
	}
	if len(errs) == 0 {
		errs = append(errs, fmt.Errorf("%w: %w", ErrSchemaViolation, parseErr))
	}
	return errs
}

package config

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ParseOverride converts a generic decoded document (as produced by a JSON,
// YAML or TOML decoder) into a typed override.
//
// Keys are matched case-sensitively against the schema. A key the schema does
// not declare yields an [*UnknownKeyError]; a value of the wrong type yields
// a [*SchemaViolationError]. Null values are treated as absent. All problems
// in the document are reported together.
func ParseOverride(tree map[string]any) (PartialAppConfig, error) {
	var override PartialAppConfig

	var errs []error
	parseGroup(schema().root, tree, reflect.ValueOf(&override).Elem(), &errs)
	if len(errs) > 0 {
		return PartialAppConfig{}, errors.Join(errs...)
	}

	return override, nil
}

func parseGroup(node *schemaNode, doc map[string]any, dst reflect.Value, errs *[]error) {
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		value := doc[key]

		child, ok := node.children[key]
		if !ok {
			*errs = append(*errs, &UnknownKeyError{Path: joinPath(node.path, key)})
			continue
		}
		if value == nil {
			continue
		}

		field := dst.FieldByName(child.names[len(child.names)-1])
		switch child.kind {
		case kindGroup:
			sub, ok := value.(map[string]any)
			if !ok {
				*errs = append(*errs, typeMismatch(child, value))
				continue
			}
			parseGroup(child, sub, field, errs)
		case kindString:
			s, ok := value.(string)
			if !ok {
				*errs = append(*errs, typeMismatch(child, value))
				continue
			}
			field.Set(reflect.ValueOf(&s))
		case kindBool:
			b, ok := value.(bool)
			if !ok {
				*errs = append(*errs, typeMismatch(child, value))
				continue
			}
			field.Set(reflect.ValueOf(&b))
		}
	}
}

func typeMismatch(node *schemaNode, value any) error {
	return &SchemaViolationError{
		Path:     node.path,
		Expected: node.kind.String(),
		Actual:   describeType(value),
	}
}

func describeType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case float64, float32, int, int64, int32, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// SetOverride builds an override from "path=value" assignments, as given to
// the --set command-line flag (e.g. "buttons.chat.showMaxBtn=false").
// Boolean leaves accept the values understood by [strconv.ParseBool].
// A later assignment to the same path wins. Assigning to a group path such
// as buttons.chat is a type mismatch, as it is in a document.
func SetOverride(assignments []string) (PartialAppConfig, error) {
	idx := schema()
	tree := make(map[string]any)

	var errs []error
	for _, assignment := range assignments {
		path, raw, ok := strings.Cut(assignment, "=")
		path = strings.TrimSpace(path)
		if !ok || path == "" {
			errs = append(errs, &SchemaViolationError{
				Path:   assignment,
				Reason: "expected path=value",
				Actual: strconv.Quote(assignment),
			})
			continue
		}

		node, ok := idx.byPath[path]
		if !ok {
			errs = append(errs, &UnknownKeyError{Path: path})
			continue
		}

		var value any = raw
		switch node.kind {
		case kindGroup:
			errs = append(errs, &SchemaViolationError{
				Path:     path,
				Expected: kindGroup.String(),
				Actual:   strconv.Quote(raw),
			})
			continue
		case kindBool:
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				errs = append(errs, &SchemaViolationError{
					Path:     path,
					Expected: kindBool.String(),
					Actual:   strconv.Quote(raw),
				})
				continue
			}
			value = b
		}

		insertLeaf(tree, strings.Split(node.path, "."), value)
	}

	if len(errs) > 0 {
		return PartialAppConfig{}, errors.Join(errs...)
	}

	return ParseOverride(tree)
}

func insertLeaf(tree map[string]any, keys []string, value any) {
	for _, key := range keys[:len(keys)-1] {
		next, ok := tree[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			tree[key] = next
		}
		tree = next
	}
	tree[keys[len(keys)-1]] = value
}

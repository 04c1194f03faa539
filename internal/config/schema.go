package config

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

type leafKind int

const (
	kindGroup leafKind = iota
	kindString
	kindBool
)

func (k leafKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindBool:
		return "boolean"
	default:
		return "object"
	}
}

// schemaNode is one position of the typed configuration tree.
type schemaNode struct {
	key   string   // document key
	path  string   // dotted path from the root
	names []string // Go field names from the root
	kind  leafKind

	children map[string]*schemaNode
}

// schemaIndex is the schema derived once from [PartialAppConfig] and checked
// against [AppConfig]. Merging, override parsing and environment lookup all
// go through it, so an unknown key can never reach a resolved value.
type schemaIndex struct {
	root   *schemaNode
	leaves []*schemaNode
	byPath map[string]*schemaNode
}

var schema = sync.OnceValue(func() *schemaIndex {
	idx := &schemaIndex{
		byPath: make(map[string]*schemaNode),
	}
	idx.root = idx.walk(reflect.TypeFor[PartialAppConfig](), reflect.TypeFor[AppConfig](), nil, "", "")
	return idx
})

// walk panics when the override tree and the resolved tree disagree: that is
// a programming error, caught by the first test that touches the schema.
func (idx *schemaIndex) walk(partial, resolved reflect.Type, names []string, key, path string) *schemaNode {
	node := &schemaNode{
		key:      key,
		path:     path,
		names:    names,
		kind:     kindGroup,
		children: make(map[string]*schemaNode, partial.NumField()),
	}

	for i := 0; i < partial.NumField(); i++ {
		field := partial.Field(i)
		childKey, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if childKey == "" {
			panic(fmt.Sprintf("config: %s.%s has no json key", partial.Name(), field.Name))
		}

		counterpart, ok := resolved.FieldByName(field.Name)
		if !ok {
			panic(fmt.Sprintf("config: %s.%s has no counterpart in %s", partial.Name(), field.Name, resolved.Name()))
		}

		childNames := append(slices.Clone(names), field.Name)
		childPath := joinPath(path, childKey)

		var child *schemaNode
		switch {
		case field.Type.Kind() == reflect.Struct && counterpart.Type.Kind() == reflect.Struct:
			child = idx.walk(field.Type, counterpart.Type, childNames, childKey, childPath)
		case field.Type.Kind() == reflect.Pointer && field.Type.Elem() == counterpart.Type:
			child = &schemaNode{
				key:   childKey,
				path:  childPath,
				names: childNames,
				kind:  leafKindOf(counterpart.Type),
			}
			idx.leaves = append(idx.leaves, child)
		default:
			panic(fmt.Sprintf("config: %s.%s (%s) does not mirror %s", partial.Name(), field.Name, field.Type, counterpart.Type))
		}

		node.children[childKey] = child
		idx.byPath[childPath] = child
	}

	return node
}

func leafKindOf(t reflect.Type) leafKind {
	switch t.Kind() {
	case reflect.String:
		return kindString
	case reflect.Bool:
		return kindBool
	default:
		panic(fmt.Sprintf("config: unsupported leaf type %s", t))
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// fieldByNames follows Go field names from v, which must be a struct value.
func fieldByNames(v reflect.Value, names []string) reflect.Value {
	for _, name := range names {
		v = v.FieldByName(name)
	}
	return v
}

// KeyInfo describes one configurable leaf.
type KeyInfo struct {
	// Path is the dotted document path, e.g. buttons.chat.showMaxBtn.
	Path string
	// Env is the full environment variable name.
	Env string
	// Type is "string" or "boolean".
	Type string
}

// Keys lists every leaf of the schema in declaration order.
func Keys() []KeyInfo {
	leaves := schema().leaves
	names := envSchema().names
	keys := make([]KeyInfo, 0, len(leaves))
	for i, leaf := range leaves {
		keys = append(keys, KeyInfo{
			Path: leaf.path,
			Env:  names[i],
			Type: leaf.kind.String(),
		})
	}
	return keys
}

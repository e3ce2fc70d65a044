package snconfig

import (
	"encoding/json"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	yamlUnmarshalerType = reflect.TypeOf((*yaml.Unmarshaler)(nil)).Elem()
)

// fillMissing copies the top-level fields of def whose keys are absent from
// the decoded document into dst. Fields present in the document are left as
// decoded, so defaults never merge into maps, slices or nested structs read
// from the file. Types with their own unmarshaler decode as a whole and are
// left alone.
func fillMissing[T any](codec Codec, data []byte, dst *T, def T) error {
	rv := reflect.ValueOf(dst).Elem()
	if rv.Kind() != reflect.Struct || customDecoder(rv.Type()) {
		return nil
	}

	keys, err := codec.TopLevelKeys(data)
	if err != nil {
		return err
	}

	defVal := reflect.ValueOf(def)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		key, ok := fieldKey(field, codec.TagName())
		if !ok || keyPresent(keys, key, codec.TagName()) {
			continue
		}
		rv.Field(i).Set(defVal.Field(i))
	}
	return nil
}

func customDecoder(t reflect.Type) bool {
	ptr := reflect.PointerTo(t)
	return ptr.Implements(jsonUnmarshalerType) || ptr.Implements(yamlUnmarshalerType)
}

// fieldKey returns the document key a codec uses for field, following the
// encoding/json and yaml.v3 naming rules.
func fieldKey(field reflect.StructField, tag string) (string, bool) {
	name, opts, _ := strings.Cut(field.Tag.Get(tag), ",")
	switch {
	case name == "-", strings.Contains(opts, "inline"):
		return "", false
	case name == "" && field.Anonymous:
		// Embedded fields are flattened into the parent object.
		return "", false
	case name != "":
		return name, true
	case tag == "yaml":
		return strings.ToLower(field.Name), true
	default:
		return field.Name, true
	}
}

// keyPresent matches keys the way the codec does: encoding/json folds case,
// yaml.v3 does not.
func keyPresent(keys []string, key, tag string) bool {
	for _, k := range keys {
		if k == key || (tag == "json" && strings.EqualFold(k, key)) {
			return true
		}
	}
	return false
}

// Package querystring encodes structs into URL query strings, preserving
// struct field order. net/url's Values.Encode sorts keys alphabetically,
// which would scramble the conventional t/id/apikey parameter order of
// Newznab download links.
package querystring

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Encode renders a struct into a query string using `url` field tags.
// Fields without a tag (or tagged "-") are skipped; a ",omitempty" suffix
// skips zero values.
func Encode(v interface{}) (string, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", fmt.Errorf("querystring: Encode() expects struct input, got %v", rv.Kind())
	}

	var sb strings.Builder
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		tag := rt.Field(i).Tag.Get("url")
		if tag == "" || tag == "-" {
			continue
		}

		parts := strings.Split(tag, ",")
		name := parts[0]
		if len(parts) > 1 && parts[1] == "omitempty" && isZero(field) {
			continue
		}

		value, err := encodeValue(field)
		if err != nil {
			return "", fmt.Errorf("querystring: field %s: %w", name, err)
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(value))
	}

	return sb.String(), nil
}

func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	}
	return false
}

func encodeValue(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	}
	return "", fmt.Errorf("unsupported type %v", v.Kind())
}

package models

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	MinCategory Category = 1
	MaxCategory Category = 9

	// UnclassifiedKey is the grouping key for indicators whose category is
	// outside [MinCategory, MaxCategory].
	UnclassifiedKey   = "nao-definido"
	UnclassifiedLabel = "Não definido"
)

// Category is the OEO code of an indicator. Zero means unclassified, which
// only happens for documents written before categories were validated.
type Category int

func (c Category) Valid() bool {
	return c >= MinCategory && c <= MaxCategory
}

// Key is the grouping key: "1".."9", or UnclassifiedKey.
func (c Category) Key() string {
	if !c.Valid() {
		return UnclassifiedKey
	}
	return strconv.Itoa(int(c))
}

func (c Category) Label() string {
	if !c.Valid() {
		return UnclassifiedLabel
	}
	return "OEO " + strconv.Itoa(int(c))
}

// ParseCategory converts v to a category. ok is false when v is not an
// integer or is outside the valid range.
func ParseCategory(v any) (Category, bool) {
	var n int64
	switch x := v.(type) {
	case Category:
		n = int64(x)
	case int:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case float64:
		if x != math.Trunc(x) || x < float64(MinCategory) || x > float64(MaxCategory) {
			return 0, false
		}
		n = int64(x)
	case string:
		trimmed := strings.TrimSpace(x)
		parsed, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			// Integral literals such as "4.0" or "4e0".
			f, ferr := strconv.ParseFloat(trimmed, 64)
			if ferr != nil {
				return 0, false
			}
			return ParseCategory(f)
		}
		n = parsed
	case FlexString:
		return ParseCategory(string(x))
	case *string:
		if x == nil {
			return 0, false
		}
		return ParseCategory(*x)
	default:
		return 0, false
	}

	c := Category(n)
	if int64(c) != n || !c.Valid() {
		return 0, false
	}
	return c, true
}

func (c Category) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int32(c))
}

// UnmarshalBSONValue accepts numbers and numeric strings. Anything that
// does not parse decodes as unclassified instead of failing the whole read.
func (c *Category) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	var v any
	switch t {
	case bsontype.Int32:
		v = raw.Int32()
	case bsontype.Int64:
		v = raw.Int64()
	case bsontype.Double:
		v = raw.Double()
	case bsontype.String:
		v = raw.StringValue()
	default:
		*c = 0
		return nil
	}

	parsed, ok := ParseCategory(v)
	if !ok {
		*c = 0
		return nil
	}
	*c = parsed
	return nil
}

// FlexString decodes a JSON string or number into text. Numbers keep their
// literal form, so 99.9 becomes "99.9".
type FlexString string

var errFlexString = errors.New("value must be a string or a number")

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return errFlexString
	case bytes.Equal(trimmed, []byte("null")):
		*s = ""
		return nil
	case trimmed[0] == '"':
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	if _, err := strconv.ParseFloat(string(trimmed), 64); err != nil {
		return errFlexString
	}
	*s = FlexString(trimmed)
	return nil
}

func (s *FlexString) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

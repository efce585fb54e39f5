// Package display turns decoded wallet messages into flattened objects for human review.
//
// Parsed values keep the structure of their JSON source: Scalar (including null),
// ScalarList, ObjectList, List for arrays mixing the two or holding arrays, and *Object.
// Objects keep field insertion order so that the rendered output follows the message's
// field order.
package display

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type Value interface {
	isValue()
}

// Scalar holds a string, bool, json.Number or a JSON null.
type Scalar struct {
	v any
}

type ScalarList []Scalar

type ObjectList []*Object

// List is an array whose elements are not all scalars or all objects.
type List []Value

// Object is an insertion-ordered mapping from field name to Value.
type Object struct {
	keys   []string
	values map[string]Value
}

func (Scalar) isValue()     {}
func (ScalarList) isValue() {}
func (ObjectList) isValue() {}
func (List) isValue()       {}
func (*Object) isValue()    {}

func String(s string) Scalar {
	return Scalar{v: s}
}

func Bool(b bool) Scalar {
	return Scalar{v: b}
}

func Number(n json.Number) Scalar {
	return Scalar{v: n}
}

func Null() Scalar {
	return Scalar{}
}

func Uint(n uint64) Scalar {
	return Scalar{v: json.Number(strconv.FormatUint(n, 10))}
}

func Strings(ss ...string) ScalarList {
	list := make(ScalarList, 0, len(ss))
	for _, s := range ss {
		list = append(list, String(s))
	}
	return list
}

func (s Scalar) Raw() any {
	return s.v
}

func (s Scalar) IsNull() bool {
	return s.v == nil
}

func (s Scalar) Text() string {
	switch v := s.v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v)
}

func NewObject() *Object {
	return &Object{values: map[string]Value{}}
}

// Set adds or replaces a field. A replaced field keeps its original position.
func (o *Object) Set(key string, v Value) *Object {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Text returns the text of a scalar field, empty if the field is missing or not a scalar.
func (o *Object) Text(key string) string {
	v, ok := o.values[key]
	if !ok {
		return ""
	}
	s, ok := v.(Scalar)
	if !ok {
		return ""
	}
	return s.Text()
}

func (o *Object) Section(key string) (*Object, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}
	obj, ok := v.(*Object)
	return obj, ok
}

func (o *Object) Keys() []string {
	return append([]string{}, o.keys...)
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

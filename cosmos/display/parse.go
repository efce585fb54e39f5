package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	errorsmod "cosmossdk.io/errors"

	"github.com/dan13ram/wallet-msg-service/common"
)

// ParseObject parses a JSON object into the classified value model.
func ParseObject(data []byte) (*Object, error) {
	v, err := ParseValue(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, errorsmod.Wrap(common.ErrDecode, "expected a JSON object")
	}
	return obj, nil
}

// ParseValue parses any JSON document without losing structure: nulls become Null
// scalars, arrays of scalars (including the empty array) become a ScalarList, arrays
// of objects an ObjectList and any other array a List.
func ParseValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseNext(dec)
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrDecode, "invalid JSON: %s", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errorsmod.Wrap(common.ErrDecode, "invalid JSON: trailing data")
	}
	return v, nil
}

func parseNext(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}
		v, err := parseNext(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	var elems []Value
	for dec.More() {
		v, err := parseNext(dec)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return classifyArray(elems), nil
}

func classifyArray(elems []Value) Value {
	scalars := make(ScalarList, 0, len(elems))
	objects := make(ObjectList, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case Scalar:
			scalars = append(scalars, v)
		case *Object:
			objects = append(objects, v)
		}
	}

	switch {
	case len(scalars) == len(elems):
		return scalars
	case len(objects) == len(elems):
		return objects
	}

	return List(elems)
}

func (l ScalarList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Scalar(l))
}

func (l ObjectList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]*Object(l))
}

func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Value(l))
}

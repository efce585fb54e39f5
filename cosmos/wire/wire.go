// Package wire holds the protobuf field helpers shared by the message types that are not
// generated by cosmos-sdk (cosmwasm, provenance marker and msgfees).
package wire

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/protobuf/encoding/protowire"
)

func AppendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// AppendMessage writes an embedded message. Unlike AppendBytes it keeps empty messages,
// which matters for elements of a repeated message field.
func AppendMessage(b []byte, num protowire.Number, bz []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, bz)
}

func AppendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	return AppendVarint(b, num, 1)
}

// AppendPackedVarints writes a packed repeated scalar field, the proto3 default encoding.
func AppendPackedVarints(b []byte, num protowire.Number, vs []uint64) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// AppendCoin writes a non-nullable coin; repeated coins call it once per element.
func AppendCoin(b []byte, num protowire.Number, coin sdk.Coin) ([]byte, error) {
	bz, err := coin.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal coin: %w", err)
	}
	return AppendMessage(b, num, bz), nil
}

// Field is a single decoded field. Bytes holds length-delimited values and Value holds
// varint and fixed32 values, depending on Type.
type Field struct {
	Num   protowire.Number
	Type  protowire.Type
	Bytes []byte
	Value uint64
}

// Fields splits a message into its fields, in wire order.
func Fields(b []byte) ([]Field, error) {
	var fields []Field
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		field := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			field.Value = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			field.Bytes = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			if typ == protowire.Fixed32Type {
				v, _ := protowire.ConsumeFixed32(b)
				field.Value = uint64(v)
			}
			b = b[n:]
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// Varints decodes a repeated scalar field in either packed or unpacked form.
func (f Field) Varints() ([]uint64, error) {
	if f.Type == protowire.VarintType {
		return []uint64{f.Value}, nil
	}
	if f.Type != protowire.BytesType {
		return nil, fmt.Errorf("field %d: unexpected wire type %d", f.Num, f.Type)
	}
	var vs []uint64
	b := f.Bytes
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		vs = append(vs, v)
		b = b[n:]
	}
	return vs, nil
}

func (f Field) Coin() (sdk.Coin, error) {
	var coin sdk.Coin
	if f.Type != protowire.BytesType {
		return coin, fmt.Errorf("field %d: unexpected wire type %d", f.Num, f.Type)
	}
	if err := coin.Unmarshal(f.Bytes); err != nil {
		return coin, fmt.Errorf("field %d: %w", f.Num, err)
	}
	return coin, nil
}

func (f Field) Str() (string, error) {
	if f.Type != protowire.BytesType {
		return "", fmt.Errorf("field %d: unexpected wire type %d", f.Num, f.Type)
	}
	return string(f.Bytes), nil
}

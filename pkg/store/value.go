package store

import (
	"fmt"
	"math/big"
)

// ValueKind tags the concrete type held by a Value.
type ValueKind int

//go:generate go tool stringer -type=ValueKind -trimprefix=Kind

const (
	KindNull ValueKind = iota
	KindString
	KindInt
	KindBool
	KindBytes
	KindBigInt
	KindBigDecimal
	KindList
)

// Value is a boxed value as stored in and retrieved from the record store.
// Values are immutable once constructed.
type Value struct {
	kind   ValueKind
	str    string
	i      int32
	b      bool
	bytes  []byte
	bigInt *big.Int
	bigDec *big.Float
	list   []*Value
}

// NullValue returns the null box.
func NullValue() *Value { return &Value{kind: KindNull} }

// FromString boxes a string.
func FromString(s string) *Value { return &Value{kind: KindString, str: s} }

// FromInt boxes a 32-bit integer.
func FromInt(i int32) *Value { return &Value{kind: KindInt, i: i} }

// FromBool boxes a boolean.
func FromBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// FromBytes boxes a byte string.
func FromBytes(b []byte) *Value { return &Value{kind: KindBytes, bytes: b} }

// FromBigInt boxes an arbitrary-precision integer.
func FromBigInt(i *big.Int) *Value { return &Value{kind: KindBigInt, bigInt: i} }

// FromBigDecimal boxes an arbitrary-precision decimal.
func FromBigDecimal(d *big.Float) *Value { return &Value{kind: KindBigDecimal, bigDec: d} }

// FromList boxes a list of already-boxed values.
func FromList(vs []*Value) *Value { return &Value{kind: KindList, list: vs} }

// FromStringSlice boxes a list of strings.
func FromStringSlice(ss []string) *Value {
	vs := make([]*Value, len(ss))
	for i, s := range ss {
		vs[i] = FromString(s)
	}

	return FromList(vs)
}

// FromIntSlice boxes a list of 32-bit integers.
func FromIntSlice(is []int32) *Value {
	vs := make([]*Value, len(is))
	for idx, i := range is {
		vs[idx] = FromInt(i)
	}

	return FromList(vs)
}

// FromBoolSlice boxes a list of booleans.
func FromBoolSlice(bs []bool) *Value {
	vs := make([]*Value, len(bs))
	for i, b := range bs {
		vs[i] = FromBool(b)
	}

	return FromList(vs)
}

// FromBytesSlice boxes a list of byte strings.
func FromBytesSlice(bs [][]byte) *Value {
	vs := make([]*Value, len(bs))
	for i, b := range bs {
		vs[i] = FromBytes(b)
	}

	return FromList(vs)
}

// FromBigIntSlice boxes a list of arbitrary-precision integers.
func FromBigIntSlice(is []*big.Int) *Value {
	vs := make([]*Value, len(is))
	for idx, i := range is {
		vs[idx] = FromBigInt(i)
	}

	return FromList(vs)
}

// FromBigDecimalSlice boxes a list of arbitrary-precision decimals.
func FromBigDecimalSlice(ds []*big.Float) *Value {
	vs := make([]*Value, len(ds))
	for i, d := range ds {
		vs[i] = FromBigDecimal(d)
	}

	return FromList(vs)
}

// Kind returns the kind tag. A nil Value counts as null.
func (v *Value) Kind() ValueKind {
	if v == nil {
		return KindNull
	}

	return v.kind
}

// IsNull reports whether the value is absent or holds the null box.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

func (v *Value) mustBe(k ValueKind) {
	if v.Kind() != k {
		panic(fmt.Sprintf("store: cannot unbox %s value as %s", v.Kind(), k))
	}
}

// Str unboxes a string value.
func (v *Value) Str() string {
	v.mustBe(KindString)
	return v.str
}

// Int unboxes a 32-bit integer value.
func (v *Value) Int() int32 {
	v.mustBe(KindInt)
	return v.i
}

// Bool unboxes a boolean value.
func (v *Value) Bool() bool {
	v.mustBe(KindBool)
	return v.b
}

// Bytes unboxes a byte string value.
func (v *Value) Bytes() []byte {
	v.mustBe(KindBytes)
	return v.bytes
}

// BigInt unboxes an arbitrary-precision integer value.
func (v *Value) BigInt() *big.Int {
	v.mustBe(KindBigInt)
	return v.bigInt
}

// BigDecimal unboxes an arbitrary-precision decimal value.
func (v *Value) BigDecimal() *big.Float {
	v.mustBe(KindBigDecimal)
	return v.bigDec
}

// List unboxes a list value into its boxed elements.
func (v *Value) List() []*Value {
	v.mustBe(KindList)
	return v.list
}

// StrSlice unboxes a list of strings.
func (v *Value) StrSlice() []string {
	list := v.List()

	out := make([]string, len(list))
	for i, el := range list {
		out[i] = el.Str()
	}

	return out
}

// IntSlice unboxes a list of 32-bit integers.
func (v *Value) IntSlice() []int32 {
	list := v.List()

	out := make([]int32, len(list))
	for i, el := range list {
		out[i] = el.Int()
	}

	return out
}

// BoolSlice unboxes a list of booleans.
func (v *Value) BoolSlice() []bool {
	list := v.List()

	out := make([]bool, len(list))
	for i, el := range list {
		out[i] = el.Bool()
	}

	return out
}

// BytesSlice unboxes a list of byte strings.
func (v *Value) BytesSlice() [][]byte {
	list := v.List()

	out := make([][]byte, len(list))
	for i, el := range list {
		out[i] = el.Bytes()
	}

	return out
}

// BigIntSlice unboxes a list of arbitrary-precision integers.
func (v *Value) BigIntSlice() []*big.Int {
	list := v.List()

	out := make([]*big.Int, len(list))
	for i, el := range list {
		out[i] = el.BigInt()
	}

	return out
}

// BigDecimalSlice unboxes a list of arbitrary-precision decimals.
func (v *Value) BigDecimalSlice() []*big.Float {
	list := v.List()

	out := make([]*big.Float, len(list))
	for i, el := range list {
		out[i] = el.BigDecimal()
	}

	return out
}

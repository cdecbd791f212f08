package compiler

import (
	"fmt"
	"strconv"
)

// ValueKind enumerates the dynamic types a ZenLang value can have.
type ValueKind int

const (
	KindUndefined ValueKind = iota
	KindNumber
	KindString
	KindFunction
	KindObject
	KindPattern
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNumber:    "number",
	KindString:    "string",
	KindFunction:  "function",
	KindObject:    "object",
	KindPattern:   "pattern",
}

func (k ValueKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is a tagged variant over the kinds above. Only the field matching
// Kind is meaningful.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindString:
		return strconv.Quote(v.Str)
	default:
		return v.Kind.String()
	}
}

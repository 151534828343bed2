package fastjson

// Kind is the discriminant of a Value's tagged union.
// The zero Kind is never stored on a live Value; a nil *Value stands for
// JSON null instead (see the Value doc comment).
type Kind uint8

const (
	invalidKind Kind = iota
	Bool
	Int
	Double
	String
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "boolean"
	case Int:
		return "int"
	case Double:
		return "double"
	case String:
		return "string"
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	default:
		return "null"
	}
}

package plc

import "fmt"

// ConstShape classifies the surface shape of a literal-constant body. The
// body text itself stays opaque at this layer; a later type-directed parser
// interprets it.
type ConstShape uint8

const (
	// ShapeParens is the empty body: ()
	ShapeParens ConstShape = iota
	// ShapeSingleQuoted is a body delimited by single quotes: 'c'
	ShapeSingleQuoted
	// ShapeDoubleQuoted is a body delimited by double quotes: "text"
	ShapeDoubleQuoted
	// ShapeBare is an unquoted run: 42, #abcd, True
	ShapeBare
)

func (s ConstShape) String() string {
	switch s {
	case ShapeParens:
		return "parens"
	case ShapeSingleQuoted:
		return "single-quoted"
	case ShapeDoubleQuoted:
		return "double-quoted"
	case ShapeBare:
		return "bare"
	}
	panic(fmt.Errorf("unknown const shape: %d", uint8(s)))
}

// render wraps a raw body in its shape's delimiters.
func (s ConstShape) render(body string) string {
	switch s {
	case ShapeParens:
		return "()"
	case ShapeSingleQuoted:
		return "'" + body + "'"
	case ShapeDoubleQuoted:
		return `"` + body + `"`
	case ShapeBare:
		return body
	}
	panic(fmt.Errorf("unknown const shape: %d", uint8(s)))
}

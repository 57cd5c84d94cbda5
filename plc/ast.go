package plc

import (
	"math/big"
	"strings"
)

// Term is a node of the untyped term language. The set of variants is
// closed; consumers dispatch exhaustively.
type Term interface {
	TermPos() Pos
	pretty(sb *strings.Builder)
}

type Var struct {
	At     Pos
	Name   string
	Handle Unique
}

type LamAbs struct {
	At     Pos
	Name   string
	Handle Unique
	Body   Term
}

type Apply struct {
	At  Pos
	Fn  Term
	Arg Term
}

// Con is a literal constant: builtin type name plus the raw body and its
// shape. The body stays uninterpreted here.
type Con struct {
	At     Pos
	TyName string
	Shape  ConstShape
	Body   string
}

// ConTy is a type-level con with no literal body, e.g. (con integer).
type ConTy struct {
	At     Pos
	TyName string
}

type Builtin struct {
	At   Pos
	Name string
}

type ErrorTerm struct {
	At Pos
}

type Force struct {
	At   Pos
	Body Term
}

type Delay struct {
	At   Pos
	Body Term
}

func (t *Var) TermPos() Pos       { return t.At }
func (t *LamAbs) TermPos() Pos    { return t.At }
func (t *Apply) TermPos() Pos     { return t.At }
func (t *Con) TermPos() Pos       { return t.At }
func (t *ConTy) TermPos() Pos     { return t.At }
func (t *Builtin) TermPos() Pos   { return t.At }
func (t *ErrorTerm) TermPos() Pos { return t.At }
func (t *Force) TermPos() Pos     { return t.At }
func (t *Delay) TermPos() Pos     { return t.At }

// Version is the three-component program version, arbitrary precision like
// every natural in the language.
type Version struct {
	Major *big.Int
	Minor *big.Int
	Patch *big.Int
}

func (v Version) String() string {
	return v.Major.String() + "." + v.Minor.String() + "." + v.Patch.String()
}

type Program struct {
	At      Pos
	Version Version
	Body    Term
}

func (p *Program) String() string {
	var sb strings.Builder
	sb.WriteString("(program ")
	sb.WriteString(p.Version.String())
	sb.WriteString(" ")
	p.Body.pretty(&sb)
	sb.WriteString(")")
	return sb.String()
}

func (t *Var) pretty(sb *strings.Builder) {
	sb.WriteString(t.Name)
}

func (t *LamAbs) pretty(sb *strings.Builder) {
	sb.WriteString("(lam ")
	sb.WriteString(t.Name)
	sb.WriteString(" ")
	t.Body.pretty(sb)
	sb.WriteString(")")
}

func (t *Apply) pretty(sb *strings.Builder) {
	sb.WriteString("[")
	t.Fn.pretty(sb)
	sb.WriteString(" ")
	t.Arg.pretty(sb)
	sb.WriteString("]")
}

func (t *Con) pretty(sb *strings.Builder) {
	sb.WriteString("(con ")
	sb.WriteString(t.TyName)
	sb.WriteString(" ")
	sb.WriteString(t.Shape.render(t.Body))
	sb.WriteString(")")
}

func (t *ConTy) pretty(sb *strings.Builder) {
	sb.WriteString("(con ")
	sb.WriteString(t.TyName)
	sb.WriteString(")")
}

func (t *Builtin) pretty(sb *strings.Builder) {
	sb.WriteString("(builtin ")
	sb.WriteString(t.Name)
	sb.WriteString(")")
}

func (t *ErrorTerm) pretty(sb *strings.Builder) {
	sb.WriteString("(error)")
}

func (t *Force) pretty(sb *strings.Builder) {
	sb.WriteString("(force ")
	t.Body.pretty(sb)
	sb.WriteString(")")
}

func (t *Delay) pretty(sb *strings.Builder) {
	sb.WriteString("(delay ")
	t.Body.pretty(sb)
	sb.WriteString(")")
}

// Pretty renders a term back to concrete syntax.
func Pretty(t Term) string {
	var sb strings.Builder
	t.pretty(&sb)
	return sb.String()
}

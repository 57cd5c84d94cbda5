package plc

import "fmt"

// Keyword is one of the reserved words of the language. The set is closed:
// the scanner recognizes exactly these spellings and nothing else.
type Keyword uint8

const (
	KwAbs Keyword = iota
	KwLam
	KwIfix
	KwFun
	KwAll
	KwType
	KwProgram
	KwCon
	KwIwrap
	KwBuiltin
	KwUnwrap
	KwError
	KwForce
	KwDelay
)

// Keywords returns all keywords in declaration order.
func Keywords() []Keyword {
	return []Keyword{
		KwAbs,
		KwLam,
		KwIfix,
		KwFun,
		KwAll,
		KwType,
		KwProgram,
		KwCon,
		KwIwrap,
		KwBuiltin,
		KwUnwrap,
		KwError,
		KwForce,
		KwDelay,
	}
}

// String returns the canonical source spelling.
func (k Keyword) String() string {
	switch k {
	case KwAbs:
		return "abs"
	case KwLam:
		return "lam"
	case KwIfix:
		return "ifix"
	case KwFun:
		return "fun"
	case KwAll:
		return "all"
	case KwType:
		return "type"
	case KwProgram:
		return "program"
	case KwCon:
		return "con"
	case KwIwrap:
		return "iwrap"
	case KwBuiltin:
		return "builtin"
	case KwUnwrap:
		return "unwrap"
	case KwError:
		return "error"
	case KwForce:
		return "force"
	case KwDelay:
		return "delay"
	}
	panic(fmt.Errorf("unknown keyword: %d", uint8(k)))
}

// keywordNames is derived from Keywords and String, so lookup and rendering
// cannot drift apart.
var keywordNames = func() map[string]Keyword {
	m := make(map[string]Keyword)
	for _, kw := range Keywords() {
		m[kw.String()] = kw
	}
	return m
}()

// KeywordByName maps a spelling back to its keyword.
func KeywordByName(name string) (Keyword, bool) {
	kw, ok := keywordNames[name]
	return kw, ok
}

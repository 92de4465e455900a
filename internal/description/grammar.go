package description

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The text format, one item per line (line breaks are not significant):
//
//	3
//	{0,1}
//	Q0={0:[Q1]; 1:[Q0,Q2]}
//	Q1={e:[Q2]}
//	Q2={}
//	=Q0
//	{Q2}
type document struct {
	Count     int          `parser:"@Int"`
	Alphabet  []string     `parser:"'{' ( @( Int | Symbol ) ( ',' @( Int | Symbol ) )* )? '}'"`
	States    []*stateLine `parser:"@@*"`
	Start     string       `parser:"'=' @State"`
	Accepting []string     `parser:"'{' ( @State ( ',' @State )* )? '}'"`
}

type stateLine struct {
	Pos         lexer.Position
	Name        string        `parser:"@State '=' '{'"`
	Transitions []*transition `parser:"( @@ ( ( ';' | ',' ) @@ )* )? '}'"`
}

type transition struct {
	Pos     lexer.Position
	Symbol  string   `parser:"@( Int | Symbol )"`
	Targets []string `parser:"':' '[' ( @State ( ',' @State )* )? ']'"`
}

var formatLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "State", Pattern: `Q[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[{}\[\],;:=]`},
	{Name: "Symbol", Pattern: `[^\s{}\[\],;:=]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[document](
	participle.Lexer(formatLexer),
	participle.Elide("Whitespace"),
)

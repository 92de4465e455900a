// Package codegen turns a DFA into Go source: a matcher function that walks
// the input rune by rune through a switch on the current state.
package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"automata/internal/automaton"
)

var (
	ErrUnsupportedSymbol = errors.New("symbol is not a single rune")
	ErrInvalidName       = errors.New("not a valid Go identifier")
)

// Options name the generated package and prefix the generated identifiers.
type Options struct {
	Package string
	Name    string
}

func (o Options) validate() error {
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q: %w", o.Package, ErrInvalidName)
	}
	if o.Name != "" && !token.IsIdentifier(o.Name) {
		return fmt.Errorf("name %q: %w", o.Name, ErrInvalidName)
	}
	return nil
}

// FuncName is the name of the generated matcher.
func (o Options) FuncName() string { return o.Name + "MatchString" }

// ConstName is the name of the generated state count constant.
func (o Options) ConstName() string { return o.Name + "States" }

// Generate renders d as a Go file. Each symbol of d must be exactly one
// rune.
func Generate(d *automaton.DFA, opts Options) (*jen.File, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for _, sym := range d.Alphabet() {
		if utf8.RuneCountInString(sym) != 1 {
			return nil, fmt.Errorf("%q: %w", sym, ErrUnsupportedSymbol)
		}
	}

	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by automata. DO NOT EDIT.")

	f.Commentf("%s is the number of states of the automaton behind %s.", opts.ConstName(), opts.FuncName())
	f.Const().Id(opts.ConstName()).Op("=").Lit(d.Len())
	f.Line()

	f.Commentf("%s reports whether input is in the language of the automaton.", opts.FuncName())
	f.Func().Id(opts.FuncName()).Params(jen.Id("input").String()).Bool().Block(matchBody(d)...)
	return f, nil
}

func matchBody(d *automaton.DFA) []jen.Code {
	if len(d.Transitions()) == 0 {
		if !d.IsAccepting(d.Start()) {
			return []jen.Code{jen.Return(jen.False())}
		}
		return []jen.Code{jen.Return(jen.Id("input").Op("==").Lit(""))}
	}
	return []jen.Code{
		jen.Id("state").Op(":=").Lit(int(d.Start())),
		jen.For(jen.List(jen.Id("_"), jen.Id("r")).Op(":=").Range().Id("input")).Block(
			jen.Switch(jen.Id("state")).BlockFunc(func(g *jen.Group) {
				for _, s := range d.States() {
					g.Case(jen.Lit(int(s))).Block(stateBody(d, s)...)
				}
				g.Default().Block(jen.Return(jen.False()))
			}),
		),
		acceptCheck(d),
	}
}

// stateBody moves to the next state on r, or rejects when s has no move
// for it.
func stateBody(d *automaton.DFA, s automaton.State) []jen.Code {
	var cases []jen.Code
	for _, sym := range d.Alphabet() {
		to, ok := d.Next(s, sym)
		if !ok {
			continue
		}
		r, _ := utf8.DecodeRuneInString(sym)
		cases = append(cases, jen.Case(jen.LitRune(r)).Block(
			jen.Id("state").Op("=").Lit(int(to)),
		))
	}
	if len(cases) == 0 {
		return []jen.Code{jen.Return(jen.False())}
	}
	cases = append(cases, jen.Default().Block(jen.Return(jen.False())))
	return []jen.Code{jen.Switch(jen.Id("r")).Block(cases...)}
}

func acceptCheck(d *automaton.DFA) jen.Code {
	accepting := d.Accepting()
	switch len(accepting) {
	case 0:
		return jen.Return(jen.False())
	case 1:
		return jen.Return(jen.Id("state").Op("==").Lit(int(accepting[0])))
	}
	ids := make([]jen.Code, len(accepting))
	for i, s := range accepting {
		ids[i] = jen.Lit(int(s))
	}
	return jen.Switch(jen.Id("state")).Block(
		jen.Case(ids...).Block(jen.Return(jen.True())),
		jen.Default().Block(jen.Return(jen.False())),
	)
}

// Write generates the matcher for d and saves it to path.
func Write(d *automaton.DFA, opts Options, path string) error {
	f, err := Generate(d, opts)
	if err != nil {
		return err
	}
	return f.Save(path)
}

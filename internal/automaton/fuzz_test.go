package automaton

import "testing"

func FuzzEquivalence(f *testing.F) {
	f.Add("0*", "0000")
	f.Add("(0+1)*", "")
	f.Add("01", "10")
	f.Add("(0+10)*(1+11)(0+01)*", "10110")
	f.Add("(0+11*00)*1*", "0100")
	f.Add("a(b+c)*a", "abca")

	f.Fuzz(func(t *testing.T, expr, input string) {
		if len(expr) > 64 {
			return
		}
		n, err := Compile(expr)
		if err != nil {
			return
		}
		d, err := ToDFA(n)
		if err != nil {
			t.Fatalf("ToDFA(%q): %v", expr, err)
		}
		m, err := Minimize(d)
		if err != nil {
			t.Fatalf("Minimize(%q): %v", expr, err)
		}

		want := n.Accept(input)
		if got := d.Accept(input); got != want {
			t.Fatalf("%q on %q: nfa %v, dfa %v", expr, input, want, got)
		}
		if got := m.Accept(input); got != want {
			t.Fatalf("%q on %q: nfa %v, minimal %v", expr, input, want, got)
		}
	})
}

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Compile("(0+10)*(1+11)(0+01)*"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMinimize(b *testing.B) {
	d := mustDFA(b, "((a+b)(a+b)(a+b))*(ab+ba)*")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Minimize(d); err != nil {
			b.Fatal(err)
		}
	}
}

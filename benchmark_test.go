package selector

import "testing"

// buildFull assembles a selector exercising every category once.
func buildFull(tb testing.TB) Builder {
	tb.Helper()
	b := New()
	var err error
	for _, op := range []func(Builder) (Builder, error){
		func(b Builder) (Builder, error) { return b.Element("div") },
		func(b Builder) (Builder, error) { return b.ID("app") },
		func(b Builder) (Builder, error) { return b.Class("box") },
		func(b Builder) (Builder, error) { return b.Attr("draggable") },
		func(b Builder) (Builder, error) { return b.PseudoClass("hover") },
		func(b Builder) (Builder, error) { return b.PseudoElement("before") },
	} {
		if b, err = op(b); err != nil {
			tb.Fatalf("build: %v", err)
		}
	}
	return b
}

func BenchmarkBuilder_Build(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = buildFull(b).Render()
	}
}

func BenchmarkBuilder_Render(b *testing.B) {
	sel := buildFull(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sel.Render()
	}
}

func BenchmarkCombine(b *testing.B) {
	first := buildFull(b)
	second, err := New().Element("table")
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Combine(first, Child, second).Render()
	}
}

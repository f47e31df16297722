package textfile

import (
	"testing"
)

// FuzzRecipeParser feeds random input to the parser to detect panics.
//
// Run with: go test -fuzz=FuzzRecipeParser -fuzztime=30s
func FuzzRecipeParser(f *testing.F) {
	f.Add([]byte(pannkakorFile))
	f.Add([]byte("[Recept]\nA\n[Recept]\nB\n[Ingredienser]\n1;2;3\n"))
	f.Add([]byte("[Recept]\r\nA\r\n[Instruktioner]\r\nx\r\n"))

	f.Add([]byte(``))
	f.Add([]byte("\n\n\n"))
	f.Add([]byte("text before marker"))
	f.Add([]byte("[Ingredienser]\n1;2;3\n"))
	f.Add([]byte("[Recept]\nA\n[Ingredienser]\n;;;;\n"))
	f.Add([]byte{0xff, 0xfe, '\n', '['})
	f.Add([]byte("\uFEFF[Recept]\nA\n"))

	parser := NewRecipeParser()

	f.Fuzz(func(t *testing.T, data []byte) {
		recipes, err := parser.ParseBytes(data)
		if err != nil {
			if recipes != nil {
				t.Fatalf("partial result returned with error %v", err)
			}
			return
		}

		// A successful parse re-serializes and re-parses to the same recipes
		var again []string
		for _, r := range recipes {
			again = append(again, Serialize(r)...)
		}
		reparsed, err := parser.Parse(again)
		if err != nil {
			t.Fatalf("re-parse failed: %v", err)
		}
		if len(reparsed) != len(recipes) {
			t.Fatalf("re-parse returned %d recipes, want %d", len(reparsed), len(recipes))
		}
	})
}

package relevance

import "testing"

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func TestScore_BoundsAlwaysHold(t *testing.T) {
	contexts := []Context{
		{},
		{Term: "a", Word: "a", TextScore: fptr(1), WordIndex: iptr(0), TotalWords: iptr(100)},
		{Term: "x", Word: "completely-unrelated-and-rather-long-candidate-word"},
		{Term: "yoga", Word: "yoga", Phonetic: "yoga", TextScore: fptr(5)}, // metric clamped to 1
		{Term: "yoga", Word: "zzz", TextScore: fptr(-3)},                   // metric clamped to 0
	}
	for i, ctx := range contexts {
		b := Score(ctx)
		if b.Total < 0 || b.Total > 100 {
			t.Errorf("case %d: total %d out of [0,100]", i, b.Total)
		}
	}
}

func TestScore_ExactBeatsPrefix(t *testing.T) {
	exact := Score(Context{Term: "dharma", Word: "dharma"})
	prefix := Score(Context{Term: "dharma", Word: "dharmazastra"})
	if exact.ExactMatchBonus != 50 {
		t.Fatalf("exact bonus = %d; want 50", exact.ExactMatchBonus)
	}
	if prefix.PrefixMatchBonus != 30 || prefix.ExactMatchBonus != 0 {
		t.Fatalf("prefix breakdown = %+v", prefix)
	}
	if exact.Total < prefix.Total {
		t.Fatalf("exact (%d) must not score below prefix (%d)", exact.Total, prefix.Total)
	}
}

func TestScore_DiacriticInsensitiveExact(t *testing.T) {
	b := Score(Context{Term: "krsna", Word: "kṛṣṇa"})
	if b.ExactMatchBonus != 50 {
		t.Fatalf("diacritic-folded equality should be exact, got %+v", b)
	}
}

func TestScore_PhoneticExact(t *testing.T) {
	b := Score(Context{Term: "namaste", Word: "नमस्ते", Phonetic: "namaste"})
	if b.ExactMatchBonus != 50 {
		t.Fatalf("phonetic equality should be exact, got %+v", b)
	}
}

func TestScore_TextScoreScaling(t *testing.T) {
	if b := Score(Context{Term: "a", Word: "b"}); b.TextScore != 20 {
		t.Errorf("default text score = %d; want 20", b.TextScore)
	}
	if b := Score(Context{Term: "a", Word: "b", TextScore: fptr(1)}); b.TextScore != 40 {
		t.Errorf("full metric = %d; want 40", b.TextScore)
	}
	if b := Score(Context{Term: "a", Word: "b", TextScore: fptr(0.5)}); b.TextScore != 20 {
		t.Errorf("half metric = %d; want 20", b.TextScore)
	}
}

func TestScore_PositionBonus(t *testing.T) {
	top := Score(Context{Term: "x", Word: "y", WordIndex: iptr(5), TotalWords: iptr(100)})
	mid := Score(Context{Term: "x", Word: "y", WordIndex: iptr(20), TotalWords: iptr(100)})
	tail := Score(Context{Term: "x", Word: "y", WordIndex: iptr(90), TotalWords: iptr(100)})
	if top.PositionBonus != 10 || mid.PositionBonus != 5 || tail.PositionBonus != 0 {
		t.Fatalf("position bonuses = %d/%d/%d; want 10/5/0",
			top.PositionBonus, mid.PositionBonus, tail.PositionBonus)
	}
}

func TestScore_LengthPenalty(t *testing.T) {
	long := Score(Context{Term: "om", Word: "an-extraordinarily-long-compound-word"})
	if long.LengthPenalty != -5 {
		t.Fatalf("length penalty = %d; want -5", long.LengthPenalty)
	}
	short := Score(Context{Term: "om", Word: "omkara"})
	if short.LengthPenalty != 0 {
		t.Fatalf("short candidate penalized: %+v", short)
	}
}

func TestScore_ScriptBonus(t *testing.T) {
	same := Score(Context{Term: "नमः", Word: "नमस्ते"})
	if same.ScriptBonus != 5 {
		t.Fatalf("shared script bonus = %d; want 5", same.ScriptBonus)
	}
	cross := Score(Context{Term: "namaste", Word: "नमस्ते"})
	if cross.ScriptBonus != 0 {
		t.Fatalf("cross-script bonus = %d; want 0", cross.ScriptBonus)
	}
	mixed := Score(Context{Term: "नमः om", Word: "नमः om"})
	if mixed.ScriptBonus != 0 {
		t.Fatalf("mixed script must not earn the bonus, got %+v", mixed)
	}
}

func TestCategorize(t *testing.T) {
	cases := map[int]string{
		100: CategoryExcellent,
		90:  CategoryExcellent,
		89:  CategoryGood,
		70:  CategoryGood,
		69:  CategoryFair,
		50:  CategoryFair,
		49:  CategoryPoor,
		0:   CategoryPoor,
	}
	for total, want := range cases {
		if got := Categorize(total); got != want {
			t.Errorf("Categorize(%d) = %q; want %q", total, got, want)
		}
	}
}

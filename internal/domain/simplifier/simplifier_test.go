package simplifier

import (
	"reflect"
	"testing"
)

func TestSimplifyExactMatch(t *testing.T) {
	s := New(NewLexicon(map[string]string{"menggunakan": "pakai"}, nil))
	got := s.Simplify("Saya menggunakan komputer.")
	if got.Text != "Saya pakai komputer." {
		t.Fatalf("Simplify() = %q; want %q", got.Text, "Saya pakai komputer.")
	}
	want := []DisplayToken{
		{Index: 0, Word: "Saya", Text: "Saya "},
		{Index: 1, Word: "pakai", Text: "pakai "},
		{Index: 2, Word: "komputer.", Text: "komputer."},
	}
	if !reflect.DeepEqual(got.Tokens, want) {
		t.Errorf("Simplify() tokens = %+v; want %+v", got.Tokens, want)
	}
}

func TestSimplifyDropsCasingAndPunctuationOfReplacedToken(t *testing.T) {
	s := New(NewLexicon(map[string]string{"menggunakan": "pakai"}, nil))
	if got := s.Simplify("Kami MENGGUNAKAN, alat").Text; got != "Kami pakai alat" {
		t.Errorf("Simplify() = %q; want %q", got, "Kami pakai alat")
	}
}

func TestSimplifyPrefixFallback(t *testing.T) {
	lex := NewLexicon(map[string]string{"gunakan": "pakai"}, []string{"me", "meng"})
	s := New(lex)
	if got := s.Simplify("Kami menggunakan alat.").Text; got != "Kami pakai alat." {
		t.Errorf("Simplify() = %q; want %q", got, "Kami pakai alat.")
	}
}

func TestSimplifyPrefixFallbackNeedsLongWord(t *testing.T) {
	lex := NewLexicon(map[string]string{"beli": "ambil"}, []string{"di"})
	s := New(lex)
	if got := s.Simplify("Buku dibeli.").Text; got != "Buku dibeli." {
		t.Errorf("Simplify() = %q; want unchanged", got)
	}
}

func TestSimplifyPunctuationOnlyToken(t *testing.T) {
	s := New(NewLexicon(map[string]string{"halo": "hai", "": "kosong"}, nil))
	if got := s.Simplify("Halo - dunia").Text; got != "hai - dunia" {
		t.Errorf("Simplify() = %q; want %q", got, "hai - dunia")
	}
}

func TestSimplifyKeepsIrregularSpacing(t *testing.T) {
	s := New(NewLexicon(map[string]string{"menggunakan": "pakai"}, nil))
	if got := s.Simplify("Saya  menggunakan   alat").Text; got != "Saya  pakai   alat" {
		t.Errorf("Simplify() = %q; want %q", got, "Saya  pakai   alat")
	}
}

func TestSimplifyEmpty(t *testing.T) {
	got := New(nil).Simplify("")
	if got.Text != "" || len(got.Tokens) != 0 {
		t.Errorf("Simplify(\"\") = %+v; want empty result", got)
	}
}

func TestSimplifyEmptyLexiconSplitting(t *testing.T) {
	s := New(NewLexicon(nil, nil))
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short sentence untouched", "Saya pakai komputer.", "Saya pakai komputer."},
		{"conjunction split", "Saya makan nasi dan minum teh.", "Saya makan nasi. dan minum teh."},
		{"conjunction list order wins", "Dia pergi karena hujan dan angin.", "Dia pergi karena hujan. dan angin."},
		{"later conjunction used when first absent", "Dia pulang cepat karena hujan.", "Dia pulang cepat. karena hujan."},
		{"midpoint split", "Perpustakaan kota buka setiap hari Senin.", "Perpustakaan kota buka. setiap hari Senin."},
		{"no space after midpoint", "Ya ketidakbertanggungjawaban.", "Ya ketidakbertanggungjawaban."},
		{"between thresholds without conjunction", "Rumah kami besar!", "Rumah kami besar!"},
		{"unterminated fragment", "Saya makan nasi dan minum teh", "Saya makan nasi dan minum teh"},
		{"capitalised conjunction", "Saya makan nasi Dan minum teh.", "Saya makan nasi. Dan minum teh."},
		{"upper-case conjunction", "Hari ini hujan TETAPI kami pergi.", "Hari ini hujan. TETAPI kami pergi."},
		{"only one split", "Saya makan nasi dan minum teh dan kopi.", "Saya makan nasi. dan minum teh dan kopi."},
		{"blank prefix before conjunction skipped", "Saya makan. dan minum teh hangat sekali.", "Saya makan. dan minum teh. hangat sekali."},
		{"terminator runs kept", "Benarkah itu terjadi kemarin sore?!", "Benarkah itu terjadi?! kemarin sore?!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Simplify(tt.in).Text; got != tt.want {
				t.Errorf("Simplify(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSimplifyThresholdOptions(t *testing.T) {
	s := New(nil, WithSplitThreshold(100), WithMidpointThreshold(100))
	in := "Saya makan nasi dan minum teh."
	if got := s.Simplify(in).Text; got != in {
		t.Errorf("Simplify() = %q; want unchanged %q", got, in)
	}

	s = New(nil, WithConjunctions(), WithMidpointThreshold(100))
	if got := s.Simplify("Saya makan nasi dan minum."); got.Text != "Saya makan nasi dan minum." {
		t.Errorf("Simplify() = %q; want unchanged", got.Text)
	}
}

func TestSimplifyDeterministic(t *testing.T) {
	lex := NewLexicon(map[string]string{"menggunakan": "pakai", "memerlukan": "perlu"}, []string{"me", "meng"})
	s := New(lex)
	in := "Kami menggunakan alat karena memerlukan bantuan. Mereka juga menggunakan mobil!"
	first := s.Simplify(in)
	for i := 0; i < 5; i++ {
		if got := s.Simplify(in); !reflect.DeepEqual(got, first) {
			t.Fatalf("Simplify() run %d = %+v; want %+v", i, got, first)
		}
	}
}

func TestSimplifyTokensRoundTrip(t *testing.T) {
	s := New(NewLexicon(map[string]string{"menggunakan": "pakai"}, nil))
	for _, in := range []string{
		"Saya menggunakan komputer.",
		"Saya  makan nasi dan minum teh hangat!",
		" awal spasi",
		"akhir spasi ",
	} {
		res := s.Simplify(in)
		if got := Join(res.Tokens); got != res.Text {
			t.Errorf("Join(Simplify(%q).Tokens) = %q; want %q", in, got, res.Text)
		}
	}
}

func TestAnalyze(t *testing.T) {
	s := New(nil)
	got := s.Analyze("Halo, DUNIA (baru)")
	want := []Token{
		{Surface: "Halo,", Cleaned: "halo"},
		{Surface: "DUNIA", Cleaned: "dunia"},
		{Surface: "(baru)", Cleaned: "baru"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %+v; want %+v", got, want)
	}
}

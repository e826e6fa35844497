package transducer

import (
	"testing"

	"github.com/npillmayer/hangul/internal/tracing"
	"github.com/npillmayer/hangul/jamo"
)

func TestComposeCompat(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	cases := [][2]string{
		{"ㄱㅏㄴㅏㄷㅏ", "가나다"},
		{"ㅎㅏㄴㄱㅡㄹ", "한글"},
		{"ㄷㅏㄹㄱ", "닭"},
		{"ㄷㅏㄹㄱㅇㅣ", "닭이"},
		{"ㄷㅏㄹㄱㅣ", "달기"},
		{"ㄱㅏㅂㅅ", "값"},
		{"ㅇㅗㅏ", "와"},
		{"ㄱㅜㅔㄴ", "궨"},
		{"ㅇㅏㄴㅈㅏ", "안자"},
		{"ㄷㅏㄺㅏ", "달가"},
		{"ㄱㄱㅏ", "ㄱ가"},
		{"ㅏ", "ㅏ"},
		{"ㄱ", "ㄱ"},
		{"ㄳ", "ㄳ"},
		{"ㄱㅏㄱㄱㄱ", "갂ㄱ"},
		{"ㅎㅏㄴ-ㄱㅡㄹ, ok", "한-글, ok"},
		{"", ""},
	}
	for _, c := range cases {
		in, expected := c[0], c[1]
		if out := ComposeCompatString(in); out != expected {
			t.Errorf("expected %q to compose to %q, have %q (%U)", in, expected, out, []rune(out))
		}
	}
}

func TestResolveCompat(t *testing.T) {
	out := ResolveCompat([]rune("ㄱㅏㄱ"))
	expected := []rune{0x1100, 0x1161, 0x11A8}
	if string(out) != string(expected) {
		t.Errorf("expected %U, have %U", expected, out)
	}
	out = ResolveCompat([]rune{0x1100, 'ㅏ', 'ㄴ'}) // mixed conjoining and compatibility input
	expected = []rune{0x1100, 0x1161, 0x11AB}
	if string(out) != string(expected) {
		t.Errorf("expected %U, have %U", expected, out)
	}
}

func TestDecomposeCompat(t *testing.T) {
	if out := DecomposeCompatString("값을 봐"); out != "ㄱㅏㅄㅇㅡㄹ ㅂㅘ" {
		t.Errorf("expected 'ㄱㅏㅄㅇㅡㄹ ㅂㅘ', have %q", out)
	}
}

func TestCompatRoundTrip(t *testing.T) {
	for s := jamo.SBase; s <= jamo.SLast; s++ {
		in := []rune{s, 0xC544, s} // 아 has no trail and a silent lead
		out := ComposeCompat(DecomposeCompat(in))
		if string(out) != string(in) {
			t.Fatalf("compatibility round trip of %q failed, have %q", string(in), string(out))
		}
	}
}

package hangul

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestConvert(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for i, c := range []struct {
		input     string
		decompose bool
		compat    bool
		expected  string
	}{
		{"\u1100\u1161\u1102\u1161\u1103\u1161", false, false, "가나다"},
		{"각 ok", true, false, "\u1100\u1161\u11A8 ok"},
		{"ㄷㅏㄹㄱ", false, true, "닭"},
		{"닭", true, true, "ㄷㅏㄺ"},
		{"", false, false, ""},
		{"hello", true, true, "hello"},
	} {
		out := Convert(c.input, c.decompose, c.compat)
		if out != c.expected {
			t.Errorf("test #%d: expected %q, have %q", i, c.expected, out)
		}
	}
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	text := "다람쥐 헌 쳇바퀴에 타고파"
	if out := Compose(Decompose(text)); out != text {
		t.Errorf("expected %q, have %q", text, out)
	}
	if out := ComposeCompat(DecomposeCompat(text)); out != text {
		t.Errorf("expected %q from compatibility round trip, have %q", text, out)
	}
}

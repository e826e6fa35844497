package ucd

import (
	"strings"
	"testing"

	"github.com/npillmayer/hangul/internal/testdata"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("# comment\n\n000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	var items []*Item
	if err := Parse(input, func(item *Item) { items = append(items, item) }); err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 data item, have %d", len(items))
	}
	item := items[0]
	t.Logf("item = %v", item)
	if item.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", item.Field(1))
	}
	from, to := item.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if item.LineNo != 3 {
		t.Errorf("expected item on line 3, is on line %d", item.LineNo)
	}
	if !strings.HasPrefix(item.Comment, "Cc") {
		t.Errorf("expected comment to start with 'Cc', is %q", item.Comment)
	}
}

func TestParseError(t *testing.T) {
	err := Parse(strings.NewReader("XYZ; bad"), func(*Item) {})
	if err == nil {
		t.Errorf("expected hex decoding error for 'XYZ', have none")
	}
	err = Parse(strings.NewReader("0020..0010; reversed"), func(*Item) {})
	if err == nil {
		t.Errorf("expected error for reversed range, have none")
	}
}

func TestParseJamoFile(t *testing.T) {
	r, err := testdata.UCDReader("Jamo.txt")
	if err != nil {
		t.Fatal(err)
	}
	cnt := 0
	err = Parse(r, func(item *Item) {
		cnt++
		if from, to := item.Range(); from != to {
			t.Errorf("Jamo.txt should list single code-points, have %v", item)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if cnt != 19+21+27 {
		t.Errorf("expected %d jamo in Jamo.txt, have %d", 19+21+27, cnt)
	}
}

package clipboard

import (
	"testing"
)

func TestInit_RemembersResult(t *testing.T) {
	first := Init()
	second := Init()
	if (first == nil) != (second == nil) {
		t.Errorf("Init results differ: %v then %v", first, second)
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	if err := Init(); err != nil {
		t.Skipf("no clipboard available: %v", err)
	}

	if err := WriteText("hello from the test"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	got, err := ReadText()
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "hello from the test" {
		t.Errorf("ReadText = %q", got)
	}
}

func TestWriteText_FailsWithoutClipboard(t *testing.T) {
	if Init() == nil {
		t.Skip("clipboard available")
	}
	if err := WriteText("x"); err == nil {
		t.Error("expected an error when the clipboard cannot be initialized")
	}
}

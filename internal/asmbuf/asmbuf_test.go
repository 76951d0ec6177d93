package asmbuf

import (
	"strings"
	"testing"
)

func TestEmitFormatsOperands(t *testing.T) {
	b := New()
	b.Emit("PUSHI", "7")
	b.Emit("STOP")
	want := []string{"PUSHI 7", "STOP"}
	got := b.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLabelAppendsColon(t *testing.T) {
	b := New()
	b.Label("loop_1")
	if got := b.Lines()[0]; got != "loop_1:" {
		t.Fatalf("expected loop_1:, got %q", got)
	}
}

func TestWriteToProducesTrailingNewlinePerLine(t *testing.T) {
	b := New()
	b.Emit("STOP")
	var sb strings.Builder
	if _, err := b.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "STOP\n" {
		t.Fatalf("expected %q, got %q", "STOP\n", sb.String())
	}
}

func TestDumpNumbersLines(t *testing.T) {
	b := New()
	b.Emit("PUSHI", "1")
	b.Emit("STOP")
	var sb strings.Builder
	b.Dump(&sb)
	out := sb.String()
	if !strings.Contains(out, "1  PUSHI 1") || !strings.Contains(out, "2  STOP") {
		t.Fatalf("unexpected dump output: %q", out)
	}
}

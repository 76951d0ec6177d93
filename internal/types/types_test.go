package types

import "testing"

func TestScalarSize(t *testing.T) {
	for _, typ := range []*Type{IntegerType, BooleanType, StringType, RealType} {
		if typ.Size() != 1 {
			t.Fatalf("%s: expected size 1, got %d", typ, typ.Size())
		}
	}
}

func TestArraySize(t *testing.T) {
	arr := NewArray(1, 3, IntegerType)
	if arr.Size() != 3 {
		t.Fatalf("expected size 3, got %d", arr.Size())
	}
	if !arr.IsArray() {
		t.Fatalf("expected IsArray() true")
	}
}

func TestArrayString(t *testing.T) {
	arr := NewArray(0, 9, RealType)
	want := "array[0..9] of real"
	if got := arr.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestIsReal(t *testing.T) {
	if !RealType.IsReal() {
		t.Fatalf("RealType.IsReal() should be true")
	}
	if IntegerType.IsReal() {
		t.Fatalf("IntegerType.IsReal() should be false")
	}
}

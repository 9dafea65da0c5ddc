package yatta

import (
	"encoding/json"
	"testing"
)

func TestNumberUnmarshalInt(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte("42"), &n); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !n.IsInt() {
		t.Error("Expected integral number")
	}
	if n.String() != "42" {
		t.Errorf("Expected \"42\", got %q", n.String())
	}
}

func TestNumberUnmarshalFloat(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte("0.5"), &n); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if n.IsInt() {
		t.Error("Expected fractional number")
	}
	if n.String() != "0.5" {
		t.Errorf("Expected \"0.5\", got %q", n.String())
	}
}

func TestNumberUnmarshalNull(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte("null"), &n); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !n.IsInt() || n.String() != "0" {
		t.Errorf("Expected integral zero, got %q", n.String())
	}
}

func TestNumberTimesPreservesForm(t *testing.T) {
	if got := Int(7).Times(100).String(); got != "700" {
		t.Errorf("Expected \"700\", got %q", got)
	}
	if got := Float(0.25).Times(100).String(); got != "25" {
		t.Errorf("Expected \"25\", got %q", got)
	}
}

func TestNumberStringNoTrailingZeros(t *testing.T) {
	if got := Float(1.5).String(); got != "1.5" {
		t.Errorf("Expected \"1.5\", got %q", got)
	}
	if got := Float(3).String(); got != "3" {
		t.Errorf("Expected \"3\", got %q", got)
	}
}

func TestNumberMarshalRoundTrip(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte("0.125"), &n); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "0.125" {
		t.Errorf("Expected \"0.125\", got %q", string(data))
	}
}

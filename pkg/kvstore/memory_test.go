package kvstore

import (
	"bytes"
	"testing"
)

func TestMemoryMissingKey(t *testing.T) {
	m := NewMemory()

	v, err := m.Get("nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v != nil {
		t.Errorf("Get() on missing key = %v, want nil", v)
	}
}

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()

	if err := m.Set("tasks", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, err := m.Get("tasks")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(v, []byte(`[]`)) {
		t.Errorf("Get() = %q, want %q", v, `[]`)
	}

	// returned slice must be a copy
	v[0] = 'x'
	again, _ := m.Get("tasks")
	if !bytes.Equal(again, []byte(`[]`)) {
		t.Errorf("stored value mutated through returned slice")
	}
}

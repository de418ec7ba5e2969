package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceString(t *testing.T) {
	assert.Equal(t, "MONOTONIC", Monotonic.String())
	assert.Equal(t, "PROCESS_CPU", ProcessCPU.String())
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		value    string
		expected Source
		ok       bool
	}{
		{"MONOTONIC", Monotonic, true},
		{"monotonic", Monotonic, true},
		{"Process_Cpu", ProcessCPU, true},
		{"wall", Monotonic, false},
		{"", Monotonic, false},
	}

	for _, test := range tests {
		source, ok := ParseSource(test.value)
		assert.Equal(t, test.ok, ok)
		assert.Equal(t, test.expected, source)
	}
}

func TestMonotonicIsNonDecreasing(t *testing.T) {
	read := Monotonic.Func()

	previous := read()
	for i := 0; i < 1000; i++ {
		current := read()
		assert.True(t, current >= previous)
		previous = current
	}
}

func TestProcessCPUIsNonDecreasing(t *testing.T) {
	read := ProcessCPU.Func()

	previous := read()
	for i := 0; i < 1000; i++ {
		current := read()
		assert.True(t, current >= previous)
		previous = current
	}
}

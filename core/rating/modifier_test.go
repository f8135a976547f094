// Package rating - Modifier composition tests
package rating

import (
	"testing"

	"fieldops-cost/core/types"
)

func TestComposeModifiersEmpty(t *testing.T) {
	scale := ComposeModifiers(nil)
	if !scale.Equal(dec("1")) {
		t.Errorf("Expected 1 for no modifiers, got %s", scale)
	}
}

func TestComposeModifiersMultiplicative(t *testing.T) {
	// +25% and +50% compose to x1.875, not x1.75
	mods := []types.Modifier{
		{ID: "rush", Multiplier: dec("1.25")},
		{ID: "hazard", Multiplier: dec("1.5")},
	}

	scale := ComposeModifiers(mods)
	if !scale.Equal(dec("1.875")) {
		t.Errorf("Expected 1.875, got %s", scale)
	}
}

func TestComposeModifiersCommutative(t *testing.T) {
	forward := []types.Modifier{
		{ID: "a", Multiplier: dec("1.25")},
		{ID: "b", Multiplier: dec("0.9")},
	}
	reversed := []types.Modifier{forward[1], forward[0]}

	if !ComposeModifiers(forward).Equal(ComposeModifiers(reversed)) {
		t.Errorf("Composition depends on order: %s vs %s",
			ComposeModifiers(forward), ComposeModifiers(reversed))
	}
}

func TestComposeModifiersDiscount(t *testing.T) {
	mods := []types.Modifier{{ID: "repeat", Multiplier: dec("0.9")}}

	scale := ComposeModifiers(mods)
	if !scale.Equal(dec("0.9")) {
		t.Errorf("Expected 0.9, got %s", scale)
	}
}

func TestComposeModifiersZeroIsUnset(t *testing.T) {
	// A zero multiplier is coerced missing input, not "multiply by zero"
	mods := []types.Modifier{
		{ID: "blank", Multiplier: dec("0")},
		{ID: "rush", Multiplier: dec("1.25")},
	}

	scale := ComposeModifiers(mods)
	if !scale.Equal(dec("1.25")) {
		t.Errorf("Expected zero multiplier to be skipped, got %s", scale)
	}
}

package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_RequiresStructurePath(t *testing.T) {
	t.Parallel()

	// --- Act ---
	_, err := NewConfig(Config{})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "StructurePath is a required configuration field")
}

func TestNewConfig_RejectsFlatWithLayers(t *testing.T) {
	t.Parallel()

	// --- Act ---
	_, err := NewConfig(Config{StructurePath: "net.hcl", Flat: true, Layers: true})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "flat dialect cannot load the layer fragment library")
}

func TestNewConfig_KeepsProvidedValues(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	in := Config{
		StructurePath: "models/net.hcl",
		Layers:        true,
		CheckBinary:   true,
		AtomicsSpec:   "+conv_layer",
		LogFormat:     "json",
		LogLevel:      "debug",
	}

	// --- Act ---
	config, err := NewConfig(in)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, &in, config)
}

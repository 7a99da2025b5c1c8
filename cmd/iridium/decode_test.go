package main

import (
	"bytes"
	"testing"

	"github.com/Regentag/iridium-go/internal/classify"
	"github.com/Regentag/iridium-go/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFilterSetEmptyIsNil(t *testing.T) {
	assert.Nil(t, typeFilterSet(nil))
}

func TestTypeFilterSetBuildsLookup(t *testing.T) {
	set := typeFilterSet([]string{"LW", "RA"})
	assert.True(t, set[classify.TypeLW])
	assert.True(t, set[classify.TypeRA])
	assert.False(t, set[classify.TypeMS])
}

func TestRunDecodeHandlesUnparseableLineWithoutEmitErrors(t *testing.T) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runDecodeFromReader(cmd, bytes.NewBufferString("not a valid burst line\n"), config.Options{})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunDecodeEmitsErrorLineWhenRequested(t *testing.T) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runDecodeFromReader(cmd, bytes.NewBufferString("not a valid burst line\n"), config.Options{EmitErrors: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ERR: burst:")
}

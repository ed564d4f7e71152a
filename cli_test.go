package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewRootCommandParsesFlags(t *testing.T) {
	cmd := newRootCommand()

	var captured *runOptions
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path, err := cmd.Flags().GetStringArray("path")
		assert.NoError(t, err)
		eval, err := cmd.Flags().GetString("eval")
		assert.NoError(t, err)
		verbose, err := cmd.Flags().GetBool("verbose")
		assert.NoError(t, err)
		captured = &runOptions{searchPaths: path, eval: eval, verbose: verbose}
		return nil
	}
	cmd.SetArgs([]string{"--path", "/a", "--path", "/b", "-c", "(add 1 1)", "-v"})
	cmd.SetOut(new(bytes.Buffer))

	assert.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"/a", "/b"}, captured.searchPaths)
	assert.Equal(t, "(add 1 1)", captured.eval)
	assert.True(t, captured.verbose)
}

func TestEvaluateSourceRunsFormsInOrder(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)
	assert.NoError(t, interp.registerIntrinsics(nil, nil))

	var out bytes.Buffer
	err = interp.evaluateSource(&out, []byte(`
		(let x 1)
		(let y 2)
	`))
	assert.NoError(t, err)

	env := interp.modules.null.module().environment
	got, ok := interp.tableLookup(env, interp.internString("y"))
	assert.True(t, ok)
	assert.Equal(t, int64(2), got.AsInteger())
}

func TestEvaluateSourcePropagatesReaderErrors(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	var out bytes.Buffer
	err = interp.evaluateSource(&out, []byte("(a b"))
	assert.Error(t, err)
}

func TestEvaluateSourcePropagatesEvaluatorErrors(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	var out bytes.Buffer
	err = interp.evaluateSource(&out, []byte("unbound-name"))
	assert.Error(t, err)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestLinuxSystemCallGetpid(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	args := interp.sliceToList([]Value{Integer(int64(unix.SYS_GETPID))})
	result, err := linuxSystemCall(interp, interp.modules.null.heap, interp.modules.null.module().environment, args, Nil)
	assert.NoError(t, err)
	assert.True(t, result.IsInteger())
	assert.Greater(t, result.AsInteger(), int64(0))
}

func TestLinuxSystemCallRejectsTooManyArguments(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	args := interp.sliceToList([]Value{
		Integer(0), Integer(1), Integer(2), Integer(3), Integer(4), Integer(5), Integer(6), Integer(7),
	})
	_, err = linuxSystemCall(interp, interp.modules.null.heap, interp.modules.null.module().environment, args, Nil)
	assert.Error(t, err)
}

func TestReadAuxiliaryVectorProducesATableOfIntegers(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	aux := interp.readAuxiliaryVector()
	assert.True(t, aux.IsTable())
}

func TestRegisterLinuxModuleBindsArgvEnvAuxval(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	env := interp.newTable(8, Nil).heap
	assert.NoError(t, registerLinuxModule(interp, env, []string{"lone", "script.ln"}, []string{"HOME=/root"}))

	argv, ok := interp.tableLookup(env, interp.internString("argv"))
	assert.True(t, ok)
	assert.True(t, argv.IsVector())
	assert.Equal(t, 2, vectorCount(argv.heap))

	envVal, ok := interp.tableLookup(env, interp.internString("env"))
	assert.True(t, ok)
	assert.Equal(t, 1, vectorCount(envVal.heap))

	_, ok = interp.tableLookup(env, interp.internString("auxval"))
	assert.True(t, ok)
}

package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestImportExportAcrossModules(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	producerName := interp.internString("producer")
	producer := interp.moduleForName(producerName)
	mod := producer.heap.module()

	valueName := interp.internString("shared-value")
	assert.NoError(t, interp.tableInsert(mod.environment, valueName, Integer(123)))
	assert.NoError(t, interp.exportSymbol(producer.heap, valueName))
	mod.initialized = true

	consumer := interp.newModule(interp.internString("consumer"))
	assert.NoError(t, interp.importSymbols(consumer.heap, producer.heap, Nil))

	got, ok := interp.tableLookup(consumer.heap.module().environment, valueName)
	assert.True(t, ok)
	assert.Equal(t, int64(123), got.AsInteger())
}

func TestImportSymbolsWithExplicitNameList(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	producer := interp.moduleForName(interp.internString("producer2"))
	mod := producer.heap.module()

	wanted := interp.internString("wanted")
	unwanted := interp.internString("unwanted")
	assert.NoError(t, interp.tableInsert(mod.environment, wanted, Integer(1)))
	assert.NoError(t, interp.tableInsert(mod.environment, unwanted, Integer(2)))

	consumer := interp.newModule(interp.internString("consumer2"))
	assert.NoError(t, interp.importSymbols(consumer.heap, producer.heap, interp.sliceToList([]Value{wanted})))

	_, ok := interp.tableLookup(consumer.heap.module().environment, wanted)
	assert.True(t, ok)
	_, ok = interp.tableLookup(consumer.heap.module().environment, unwanted)
	assert.False(t, ok)
}

func TestExportSymbolDeduplicates(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	mod := interp.newModule(interp.internString("m"))
	sym := interp.internString("x")

	assert.NoError(t, interp.exportSymbol(mod.heap, sym))
	assert.NoError(t, interp.exportSymbol(mod.heap, sym))

	assert.Equal(t, 1, vectorCount(mod.heap.module().exports))
}

func TestModuleForNameIsStableAcrossCalls(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	name := interp.internString("stable")
	a := interp.moduleForName(name)
	b := interp.moduleForName(name)
	assert.True(t, identicalValue(a, b))
}

func TestIntrinsicModulesAreRegisteredAndExported(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)
	assert.NoError(t, interp.registerIntrinsics([]string{"lone"}, []string{"HOME=/root"}))

	mathModule := interp.moduleForName(interp.internString("math"))
	addSym := interp.internString("add")
	got, ok := interp.tableLookup(mathModule.heap.module().environment, addSym)
	assert.True(t, ok)
	assert.True(t, got.IsPrimitive())

	exports := mathModule.heap.module().exports
	found := false
	for i := 0; i < vectorCount(exports); i++ {
		if identicalValue(vectorGet(exports, i), addSym) {
			found = true
		}
	}
	assert.True(t, found, "add should be exported from the math module")
}

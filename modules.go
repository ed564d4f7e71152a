package main

import (
	"os"
	"path/filepath"
)

// registerImportExport installs the only two bindings
// modules.topLevelEnvironment carries (spec §4.J): `import` and `export`.
// Every module's environment chains to this table via prototype, so both
// are visible everywhere without needing to be explicitly imported
// themselves.
func registerImportExport(interp *Interp) {
	importName := interp.internString("import")
	exportName := interp.internString("export")

	importPrim := interp.newPrimitive(importName, primitiveImport, FunctionFlags{evaluateArguments: false})
	exportPrim := interp.newPrimitive(exportName, primitiveExport, FunctionFlags{evaluateArguments: false})

	_ = interp.tableInsert(interp.modules.topLevelEnvironment, importName, importPrim)
	_ = interp.tableInsert(interp.modules.topLevelEnvironment, exportName, exportPrim)
}

// primitiveImport implements `(import module-name symbol...)`. With no
// symbols given, every name the target module has exported is imported
// (spec §4.J "import(module, other, symbols?)").
func primitiveImport(interp *Interp, module *Cell, env *Cell, args Value, closure Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok || len(items) < 1 || !items[0].IsSymbol() {
		return Nil, fatalErrorf(ErrEvaluator, "import: expected (import module-name symbol...)")
	}

	other, err := interp.moduleLoad(items[0])
	if err != nil {
		return Nil, err
	}

	symbols := Nil
	if len(items) > 1 {
		symbols = interp.sliceToList(items[1:])
	}
	if err := interp.importSymbols(module, other.heap, symbols); err != nil {
		return Nil, err
	}
	return Nil, nil
}

// primitiveExport implements `(export symbol...)`, marking each symbol as
// exported from the calling module (spec §4.J "export(module, symbol)").
func primitiveExport(interp *Interp, module *Cell, env *Cell, args Value, closure Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok {
		return Nil, fatalErrorf(ErrEvaluator, "export: improper argument list")
	}
	for _, item := range items {
		if !item.IsSymbol() {
			return Nil, fatalErrorf(ErrEvaluator, "export: expected a symbol")
		}
		if err := interp.exportSymbol(module, item); err != nil {
			return Nil, err
		}
	}
	return Nil, nil
}

// moduleLoad resolves name to its Module value, loading and evaluating
// its source exactly once (spec §4.J "module_load"). The module is
// pre-registered, and initialized is set, before its body runs, so a
// cyclic import sees the partially-populated environment instead of
// recursing forever (spec §5 "Ordering").
func (interp *Interp) moduleLoad(name Value) (Value, error) {
	moduleValue := interp.moduleForName(name)
	mod := moduleValue.heap.module()
	if mod.initialized {
		return moduleValue, nil
	}
	mod.initialized = true

	source, err := interp.findModuleSource(name)
	if err != nil {
		return Nil, err
	}

	forms, err := interp.readAll(source)
	if err != nil {
		return Nil, err
	}
	for _, form := range forms {
		if _, err := interp.eval(moduleValue.heap, mod.environment, form); err != nil {
			return Nil, err
		}
	}
	return moduleValue, nil
}

// findModuleSource looks up name on the module search path first
// (`<dir>/<name>.ln`, in path order), then falls back to the executable's
// own embedded segment (spec §4.J "module_load: search path file lookup
// ..., embedded-bytes fallback").
func (interp *Interp) findModuleSource(name Value) ([]byte, error) {
	fileName := string(symbolBytes(name)) + ".ln"

	count := vectorCount(interp.modules.path.heap)
	for i := 0; i < count; i++ {
		dir := vectorGet(interp.modules.path.heap, i)
		if !dir.IsText() {
			continue
		}
		candidate := filepath.Join(string(textBytes(dir)), fileName)
		content, err := os.ReadFile(candidate)
		if err == nil {
			return content, nil
		}
	}

	if content, ok := interp.loadEmbeddedModule(string(symbolBytes(name))); ok {
		return content, nil
	}

	return nil, fatalErrorf(ErrEvaluator, "module not found on search path or embedded segment: %s", string(symbolBytes(name)))
}

// addSearchPathDirectory appends dir to the module search path (spec §6
// "module search path ... from CLI flags ... optionally from
// environment").
func (interp *Interp) addSearchPathDirectory(dir string) error {
	text, err := interp.newOwnedText([]byte(dir))
	if err != nil {
		return err
	}
	return interp.vectorAppend(interp.modules.path.heap, text)
}

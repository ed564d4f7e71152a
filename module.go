package main

// newModuleEnvironmentCapacity and newModuleExportsCapacity are taken
// verbatim from original_source/source/lone/value/module.c, which the
// distilled spec leaves unspecified: every module's environment starts as
// a 64-entry table, and its exports vector starts at 16 entries.
const (
	newModuleEnvironmentCapacity = 64
	newModuleExportsCapacity     = 16
)

// newModule allocates a Module value whose environment chains, via
// prototype, to modules.topLevelEnvironment (spec §4.J "module_for_name").
func (interp *Interp) newModule(name Value) Value {
	environment := interp.newTable(newModuleEnvironmentCapacity, HeapValue(interp.modules.topLevelEnvironment))
	exports := interp.newVector(newModuleExportsCapacity)
	return HeapValue(interp.heap.allocate(HeapModule, &ModuleData{
		name:        name,
		environment: environment.heap,
		exports:     exports.heap,
	}))
}

// moduleForName returns the module interned under name in modules.loaded,
// creating and registering it first if absent (spec §4.J
// "module_for_name"). A module is inserted into modules.loaded *before*
// its body is evaluated elsewhere (module_load), so that cyclic imports
// terminate at the partially-initialized module (spec §5 "Ordering").
func (interp *Interp) moduleForName(name Value) Value {
	if existing, ok := interp.tableLookup(interp.modules.loaded, name); ok {
		return existing
	}
	module := interp.newModule(name)
	_ = interp.tableInsert(interp.modules.loaded, name, module)
	return module
}

// exportSymbol appends symbol to module.exports, deduplicated (spec §4.J
// "export(module, symbol)").
func (interp *Interp) exportSymbol(module *Cell, symbol Value) error {
	exports := module.module().exports
	for i := 0; i < vectorCount(exports); i++ {
		if identicalValue(vectorGet(exports, i), symbol) {
			return nil
		}
	}
	return interp.vectorAppend(exports, symbol)
}

// importSymbols copies bindings for the given symbols (or, if symbols is
// Nil, every exported symbol) from other's environment into module's
// environment (spec §4.J "import(module, other, symbols?)").
func (interp *Interp) importSymbols(module, other *Cell, symbols Value) error {
	var names []Value
	if symbols.IsNil() {
		exports := other.module().exports
		for i := 0; i < vectorCount(exports); i++ {
			names = append(names, vectorGet(exports, i))
		}
	} else {
		items, ok := listToSlice(symbols)
		if !ok {
			return fatalErrorf(ErrEvaluator, "import: symbols must be a list")
		}
		names = items
	}

	for _, name := range names {
		value, ok := interp.tableLookup(other.module().environment, name)
		if !ok {
			return fatalErrorf(ErrEvaluator, "import: symbol not bound in source module")
		}
		if err := interp.tableInsert(module.module().environment, name, value); err != nil {
			return err
		}
	}
	return nil
}

package main

// EmbeddedSegment describes the byte range of this process's own
// executable image that carries interpreter-readable payload (spec
// §4.L "Embedded segment loader", §4.J "module_load embedded fallback").
// data is the full slab read from the PT_LONE program header; run and
// modules locate sub-ranges within it.
type EmbeddedSegment struct {
	data    []byte
	run     segmentRange          // the top-level script to run with no arguments (spec §6)
	modules map[string]segmentRange
}

// segmentRange is a (start . size) pair into EmbeddedSegment.data.
type segmentRange struct {
	start uint64
	size  uint64
}

func (s segmentRange) slice(data []byte) ([]byte, error) {
	if s.start > uint64(len(data)) || s.size > uint64(len(data))-s.start {
		return nil, fatalErrorf(ErrSystem, "embedded segment range [%d,%d) exceeds segment of length %d", s.start, s.start+s.size, len(data))
	}
	return data[s.start : s.start+s.size], nil
}

// loadEmbeddedModule returns the source bytes for name from the embedded
// segment, if present (spec §4.J "module_load ... embedded-bytes
// fallback").
func (interp *Interp) loadEmbeddedModule(name string) ([]byte, bool) {
	if interp.modules.embedded == nil {
		return nil, false
	}
	r, ok := interp.modules.embedded.modules[name]
	if !ok {
		return nil, false
	}
	bytes, err := r.slice(interp.modules.embedded.data)
	if err != nil {
		return nil, false
	}
	return bytes, true
}

// loadEmbeddedRun returns the bytes of the embedded top-level run script,
// if this executable was built with one (spec §6 "run with no
// arguments: evaluate the run script embedded in the executable").
func (interp *Interp) loadEmbeddedRun() ([]byte, bool) {
	if interp.modules.embedded == nil || interp.modules.embedded.run.size == 0 {
		return nil, false
	}
	bytes, err := interp.modules.embedded.run.slice(interp.modules.embedded.data)
	if err != nil {
		return nil, false
	}
	return bytes, true
}

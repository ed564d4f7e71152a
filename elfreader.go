package main

import (
	"encoding/binary"
	"os"
)

// ptLone is the custom ELF program header type lone's own linker step
// stamps onto the final executable to carry the embedded data/modules/run
// descriptor table (spec §4.L). It has no registered meaning to the
// kernel or to readelf; the value is the ASCII bytes "lone" read as a
// big-endian uint32, the same "tag the header with readable bytes"
// convention the teacher uses for its own ELF magic constants in elf.go.
const ptLone = 0x6c6f6e65

// elf64Phdr mirrors the fixed 56-byte Elf64_Phdr layout the teacher's own
// elf_complete.go writes by hand; reading it back with encoding/binary is
// the natural inverse of that writer (spec DOMAIN STACK: "stdlib-is-the-
// idiom case").
type elf64Phdr struct {
	Type   uint32
	Flags  uint32
	Offset uint64
	VAddr  uint64
	PAddr  uint64
	FileSz uint64
	MemSz  uint64
	Align  uint64
}

const elf64PhdrSize = 56

// loadEmbeddedSegmentFromExecutable scans the currently running
// executable's own program header table for a PT_LONE entry and, if
// found, parses its descriptor table. Absence is not an error: most
// invocations run against files or stdin and carry no embedded payload.
func loadEmbeddedSegmentFromExecutable() (*EmbeddedSegment, error) {
	path, err := os.Executable()
	if err != nil {
		return nil, nil
	}
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	return parseEmbeddedSegment(image)
}

func parseEmbeddedSegment(image []byte) (*EmbeddedSegment, error) {
	if len(image) < 64 || string(image[:4]) != "\x7fELF" {
		return nil, nil
	}
	if image[4] != 2 { // ELFCLASS64 only
		return nil, nil
	}
	if image[5] == 2 { // ELFDATA2MSB
		return nil, nil // big-endian targets are out of scope
	}
	var endian binary.ByteOrder = binary.LittleEndian

	phoff := endian.Uint64(image[32:40])
	phentsize := endian.Uint16(image[54:56])
	phnum := endian.Uint16(image[56:58])

	for i := 0; i < int(phnum); i++ {
		base := int(phoff) + i*int(phentsize)
		if base+elf64PhdrSize > len(image) {
			break
		}
		var hdr elf64Phdr
		hdr.Type = endian.Uint32(image[base : base+4])
		hdr.Flags = endian.Uint32(image[base+4 : base+8])
		hdr.Offset = endian.Uint64(image[base+8 : base+16])
		hdr.VAddr = endian.Uint64(image[base+16 : base+24])
		hdr.PAddr = endian.Uint64(image[base+24 : base+32])
		hdr.FileSz = endian.Uint64(image[base+32 : base+40])
		hdr.MemSz = endian.Uint64(image[base+40 : base+48])
		hdr.Align = endian.Uint64(image[base+48 : base+56])

		if hdr.Type != ptLone {
			continue
		}
		if hdr.Offset+hdr.FileSz > uint64(len(image)) {
			return nil, fatalErrorf(ErrSystem, "PT_LONE segment exceeds executable image bounds")
		}
		return parseDescriptorTable(image[hdr.Offset : hdr.Offset+hdr.FileSz])
	}
	return nil, nil
}

// parseDescriptorTable decodes the fixed-layout header lone's linker step
// writes at the start of the PT_LONE segment:
//
//	runStart   uint64
//	runSize    uint64
//	moduleCount uint64
//	[moduleCount]{ nameLen uint64, name [nameLen]byte, start uint64, size uint64 }
//	data ...(the remainder: every range above indexes into this slice)
func parseDescriptorTable(segment []byte) (*EmbeddedSegment, error) {
	const headerMin = 24
	if len(segment) < headerMin {
		return nil, fatalErrorf(ErrSystem, "PT_LONE segment too short for descriptor header")
	}
	endian := binary.LittleEndian
	runStart := endian.Uint64(segment[0:8])
	runSize := endian.Uint64(segment[8:16])
	moduleCount := endian.Uint64(segment[16:24])

	pos := 24
	modules := make(map[string]segmentRange, moduleCount)
	for i := uint64(0); i < moduleCount; i++ {
		if pos+8 > len(segment) {
			return nil, fatalErrorf(ErrSystem, "PT_LONE descriptor table truncated")
		}
		nameLen := endian.Uint64(segment[pos : pos+8])
		pos += 8
		if uint64(pos)+nameLen+16 > uint64(len(segment)) {
			return nil, fatalErrorf(ErrSystem, "PT_LONE descriptor table truncated")
		}
		name := string(segment[pos : pos+int(nameLen)])
		pos += int(nameLen)
		start := endian.Uint64(segment[pos : pos+8])
		size := endian.Uint64(segment[pos+8 : pos+16])
		pos += 16
		modules[name] = segmentRange{start: start, size: size}
	}

	data := segment[pos:]
	return &EmbeddedSegment{
		data:    data,
		run:     segmentRange{start: runStart, size: runSize},
		modules: modules,
	}, nil
}

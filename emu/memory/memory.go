/*
 * PSX - Memory bus.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package memory

import (
	"github.com/rcornwell/PSX/emu/bios"
	"github.com/rcornwell/PSX/util/debug"
)

// Memory control register values the BIOS is expected to program.
const (
	expansion1Base uint32 = 0x1f000000
	expansion2Base uint32 = 0x1f802000
)

// Backing stores, one per region kind. Kernel segment mirrors of a kind
// resolve here through the same slice, so they always alias.
type memState struct {
	ram        []byte // 2 MiB main RAM.
	expansion1 []byte // 8 MiB expansion region 1.
	scratchpad []byte // 1 KiB data cache used as fast RAM.
	hwRegs     []byte // 8 KiB hardware registers.
	rom        *bios.Bios
	ioPorts    []byte // 512 B I/O ports.
	ramSize    []byte // RAM_SIZE register.
	cacheCtl   []byte // Cache control register.
}

var sysMem memState

// Initialize allocates all backing stores zeroed at their final sizes and
// installs a blank ROM.
func Initialize() {
	sysMem.ram = make([]byte, 2048*1024)
	sysMem.expansion1 = make([]byte, 8192*1024)
	sysMem.scratchpad = make([]byte, 1024)
	sysMem.hwRegs = make([]byte, 8*1024)
	sysMem.rom = bios.Blank()
	sysMem.ioPorts = make([]byte, 512)
	sysMem.ramSize = make([]byte, 4)
	sysMem.cacheCtl = make([]byte, 4)
}

// LoadBios installs the ROM image.
func LoadBios(rom *bios.Bios) {
	sysMem.rom = rom
}

// Read a little endian word from a backing store.
func loadSlice(data []byte, offset uint32) uint32 {
	return uint32(data[offset]) |
		uint32(data[offset+1])<<8 |
		uint32(data[offset+2])<<16 |
		uint32(data[offset+3])<<24
}

// Write a little endian word to a backing store.
func storeSlice(data []byte, offset uint32, word uint32) {
	data[offset] = byte(word)
	data[offset+1] = byte(word >> 8)
	data[offset+2] = byte(word >> 16)
	data[offset+3] = byte(word >> 24)
}

// Load32 reads a word from the bus. The address must be word aligned and
// fall inside a mapped region.
func Load32(addr uint32) (uint32, error) {
	if addr%4 != 0 {
		return 0, AlignmentError{Addr: addr}
	}

	offset, kind, ok := resolve(addr)
	if !ok {
		return 0, UnmappedError{Addr: addr}
	}

	switch kind {
	case regionRAM:
		return loadSlice(sysMem.ram, offset), nil
	case regionExpansion1:
		return loadSlice(sysMem.expansion1, offset), nil
	case regionScratchpad:
		return loadSlice(sysMem.scratchpad, offset), nil
	case regionHwRegs:
		return loadSlice(sysMem.hwRegs, offset), nil
	case regionBios:
		return sysMem.rom.Load32(offset), nil
	case regionIoPorts:
		return loadSlice(sysMem.ioPorts, offset), nil
	case regionMemCtl:
		return memControlLoad(offset), nil
	case regionRAMSize:
		return loadSlice(sysMem.ramSize, offset), nil
	default:
		return loadSlice(sysMem.cacheCtl, offset), nil
	}
}

// Store32 writes a word to the bus. Stores to the ROM are dropped; the
// memory control registers validate the value written.
func Store32(addr uint32, word uint32) error {
	if addr%4 != 0 {
		return AlignmentError{Addr: addr, Store: true}
	}

	offset, kind, ok := resolve(addr)
	if !ok {
		return UnmappedError{Addr: addr, Store: true}
	}

	switch kind {
	case regionRAM:
		storeSlice(sysMem.ram, offset, word)
	case regionExpansion1:
		storeSlice(sysMem.expansion1, offset, word)
	case regionScratchpad:
		storeSlice(sysMem.scratchpad, offset, word)
	case regionHwRegs:
		storeSlice(sysMem.hwRegs, offset, word)
	case regionBios:
		// ROM is read only, writes are dropped.
	case regionIoPorts:
		storeSlice(sysMem.ioPorts, offset, word)
	case regionMemCtl:
		return memControlStore(offset, word)
	case regionRAMSize:
		storeSlice(sysMem.ramSize, offset, word)
	default:
		storeSlice(sysMem.cacheCtl, offset, word)
	}
	return nil
}

// Reads of the memory control region return the canonical base addresses.
func memControlLoad(offset uint32) uint32 {
	switch offset {
	case 0:
		return expansion1Base
	case 4:
		return expansion2Base
	default:
		return 0
	}
}

// The expansion base registers only accept their fixed values; everything
// else in the region is unhandled.
func memControlStore(offset uint32, word uint32) error {
	switch offset {
	case 0:
		if word != expansion1Base {
			return DeviceError{Offset: offset, Value: word}
		}
	case 4:
		if word != expansion2Base {
			return DeviceError{Offset: offset, Value: word}
		}
	default:
		return DeviceError{Offset: offset, Value: word}
	}
	debug.Debugf("IO", "memcontrol write %02x <- %08x", offset, word)
	return nil
}

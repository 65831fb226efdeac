/*
 * PSX - Memory region table.
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

// Region kinds. Each kind selects a backing store or device handler; the
// three kernel segment mirrors of a kind share one backing store.
const (
	regionRAM = 1 + iota
	regionExpansion1
	regionScratchpad
	regionHwRegs
	regionBios
	regionIoPorts
	regionMemCtl
	regionRAMSize
	regionCacheCtl
)

// A guest address range mapped to a device kind. Ranges are half open,
// [base, base+length).
type region struct {
	base   uint32 // First guest address of the region.
	length uint32 // Region length in bytes.
	kind   int    // Device kind.
}

// In-region offset of an address, or false if the address is outside.
func (r region) contains(addr uint32) (uint32, bool) {
	if addr >= r.base && addr-r.base < r.length {
		return addr - r.base, true
	}
	return 0, false
}

// The region table is an ordered policy list: the first matching entry wins.
// Memory control, RAM size and cache control sit inside the hardware
// register and I/O port ranges and must stay ahead of them.
var regions = [19]region{
	{0x1f801000, 0x24, regionMemCtl},
	{0x1f801060, 0x4, regionRAMSize},
	{0xfffe0130, 0x4, regionCacheCtl},

	// KUSEG, KSEG0 and KSEG1 mirrors of each backing store.
	{0x00000000, 0x200000, regionRAM},
	{0x80000000, 0x200000, regionRAM},
	{0xa0000000, 0x200000, regionRAM},

	{0x1f000000, 0x800000, regionExpansion1},
	{0x9f000000, 0x800000, regionExpansion1},
	{0xbf000000, 0x800000, regionExpansion1},

	{0x1f800000, 0x400, regionScratchpad},
	{0x9f800000, 0x400, regionScratchpad},
	{0xbf800000, 0x400, regionScratchpad},

	{0x1f801000, 0x2000, regionHwRegs},
	{0x9f801000, 0x2000, regionHwRegs},
	{0xbf801000, 0x2000, regionHwRegs},

	{0x1fc00000, 0x80000, regionBios},
	{0x9fc00000, 0x80000, regionBios},
	{0xbfc00000, 0x80000, regionBios},

	{0xfffe0000, 0x200, regionIoPorts},
}

// Find the owning region for an address. Returns the in-region offset and
// the device kind, or ok false for an unmapped address.
func resolve(addr uint32) (uint32, int, bool) {
	for _, r := range regions {
		if offset, ok := r.contains(addr); ok {
			return offset, r.kind, true
		}
	}
	return 0, 0, false
}

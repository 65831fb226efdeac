/*
 * PSX - Memory bus error values.
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

import "fmt"

// AlignmentError reports a word access that is not on a word boundary.
type AlignmentError struct {
	Addr  uint32 // Offending guest address.
	Store bool   // True for store, false for load.
}

func (e AlignmentError) Error() string {
	if e.Store {
		return fmt.Sprintf("STORE32_UNALIGNED_WORD_BOUNDARY (into 0x%x)", e.Addr)
	}
	return fmt.Sprintf("LOAD32_UNALIGNED_WORD_BOUNDARY (from 0x%x)", e.Addr)
}

// UnmappedError reports an access outside every region in the table.
type UnmappedError struct {
	Addr  uint32 // Offending guest address.
	Store bool   // True for store, false for load.
}

func (e UnmappedError) Error() string {
	if e.Store {
		return fmt.Sprintf("STORE32_PERIPHERAL_NOT_FOUND (into 0x%x)", e.Addr)
	}
	return fmt.Sprintf("LOAD32_PERIPHERAL_NOT_FOUND (from 0x%x)", e.Addr)
}

// DeviceError reports a rejected write to the memory control registers.
type DeviceError struct {
	Offset uint32 // Offset within the memory control region.
	Value  uint32 // Value the guest tried to store.
}

func (e DeviceError) Error() string {
	switch e.Offset {
	case 0:
		return fmt.Sprintf("STORE32_BAD_EXPANSION_1_BASE_ADDRESS (0x%x)", e.Value)
	case 4:
		return fmt.Sprintf("STORE32_BAD_EXPANSION_2_BASE_ADDRESS (0x%x)", e.Value)
	default:
		return fmt.Sprintf("STORE32_UNHANDLED_MEMCONTROL_WRITE (0x%x)", e.Value)
	}
}

/*
 * PSX - CPU definitions for the R3000A.
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

package cpu

import "github.com/rcornwell/PSX/emu/decoder"

const (
	// ResetVector is the BIOS entry point in the uncached kernel segment.
	ResetVector uint32 = 0xbfc00000

	// SR bit 16, IsC. While set, stores go to the isolated data cache
	// and must not reach the bus.
	srIsolateCache uint32 = 0x00010000

	// COP0 register numbers.
	cop0Status uint32 = 12

	// Link register for JAL.
	linkRegister uint32 = 31
)

// Instruction handler. pc is the address the instruction was fetched from.
type handler func(inst decoder.Instruction, pc uint32) error

type cpuState struct {
	PC    uint32     // Program counter.
	gpr   [32]uint32 // General purpose registers, gpr[0] wired to zero.
	sr    uint32     // COP0 status register.
	delay uint32     // Word following PC, latched for the branch delay slot.

	inSlot bool // Currently executing out of the delay slot.
	trace  bool // Print each executed instruction.

	table map[int]handler
}

var sysCPU cpuState

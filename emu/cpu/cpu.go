/*
 * PSX - R3000A execution engine.
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

import (
	"fmt"

	"github.com/rcornwell/PSX/emu/decoder"
	dis "github.com/rcornwell/PSX/emu/disassemble"
	mem "github.com/rcornwell/PSX/emu/memory"
)

/*
   The R3000A in the PlayStation is a 32 bit little endian MIPS I core with
   32 general purpose registers, a system coprocessor (COP0) and no TLB in
   use. Register 0 always reads as zero. Branches and jumps have a single
   architectural delay slot: the instruction after the branch executes
   before control transfers.

   The engine models the delay slot by latching the word following the
   advanced PC on every cycle. A control transfer handler first executes
   the latched word, then moves the PC to the target.
*/

// InitializeCPU resets the processor to its power on state.
func InitializeCPU() {
	sysCPU.createTable()
	sysCPU.PC = ResetVector
	sysCPU.sr = 0
	sysCPU.delay = 0
	sysCPU.inSlot = false
	for i := range sysCPU.gpr {
		sysCPU.gpr[i] = 0
	}
}

// SetTrace enables per instruction trace output.
func SetTrace(enable bool) {
	sysCPU.trace = enable
}

// PC returns the current program counter.
func PC() uint32 {
	return sysCPU.PC
}

// SetPC moves the program counter.
func SetPC(addr uint32) {
	sysCPU.PC = addr
}

// Status returns the COP0 status register.
func Status() uint32 {
	return sysCPU.sr
}

// Register returns one general purpose register.
func Register(num uint32) uint32 {
	return sysCPU.reg(num & 0x1f)
}

// SetRegister writes one general purpose register. Writes to register 0
// are discarded.
func SetRegister(num uint32, value uint32) {
	sysCPU.setReg(num&0x1f, value)
}

// Read a register.
func (cpu *cpuState) reg(num uint32) uint32 {
	return cpu.gpr[num]
}

// Write a register. All register writes funnel through here so the
// register 0 invariant holds everywhere.
func (cpu *cpuState) setReg(num uint32, value uint32) {
	cpu.gpr[num] = value
	cpu.gpr[0] = 0
}

// CycleCPU executes one instruction: fetch, advance, latch the delay slot
// word, dispatch. Errors from fetch or execution are fatal to the run loop.
func CycleCPU() error {
	pc := sysCPU.PC

	word, err := mem.Load32(pc)
	if err != nil {
		return err
	}
	sysCPU.PC = pc + 4

	// Speculatively capture the follow-on word for the delay slot.
	sysCPU.delay, err = mem.Load32(sysCPU.PC)
	if err != nil {
		return err
	}

	return sysCPU.execute(decoder.Decode(word), pc)
}

// Decode and run a single instruction. pc is the fetch address, used in
// diagnostics.
func (cpu *cpuState) execute(inst decoder.Instruction, pc uint32) error {
	if inst.Form == decoder.FormE {
		return UnknownInstructionError{Word: inst.Raw, PC: pc}
	}

	fn, ok := cpu.table[inst.Op]
	if !ok {
		return UnimplementedError{Mnemonic: dis.Mnemonic(inst.Op), Word: inst.Raw, PC: pc}
	}
	if err := fn(inst, pc); err != nil {
		return err
	}

	if cpu.trace {
		fmt.Println(dis.Disassemble(inst))
	}
	return nil
}

// Execute the latched delay slot word, then transfer control. A transfer
// issued from inside the slot moves the PC directly; running the latch
// again would re-enter the same word.
func (cpu *cpuState) transfer(target uint32) error {
	if cpu.inSlot {
		cpu.PC = target
		return nil
	}

	cpu.inSlot = true
	err := cpu.execute(decoder.Decode(cpu.delay), cpu.PC)
	cpu.inSlot = false
	if err != nil {
		return err
	}

	cpu.PC = target
	return nil
}

// Sign extend a 16 bit immediate field.
func sext16(imm uint32) uint32 {
	return uint32(int32(int16(imm)))
}

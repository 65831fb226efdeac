/*
 * PSX - R3000A instruction handlers.
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
	"log/slog"

	"github.com/rcornwell/PSX/emu/decoder"
	mem "github.com/rcornwell/PSX/emu/memory"
	op "github.com/rcornwell/PSX/emu/opcodemap"
	"github.com/rcornwell/PSX/util/debug"
)

// Build the dispatch table. Decoded mnemonics without an entry here report
// an unimplemented instruction fault.
func (cpu *cpuState) createTable() {
	cpu.table = map[int]handler{
		op.OpNop:   cpu.opNop,
		op.OpLui:   cpu.opLui,
		op.OpOri:   cpu.opOri,
		op.OpOr:    cpu.opOr,
		op.OpSll:   cpu.opSll,
		op.OpSrl:   cpu.opSrl,
		op.OpAddi:  cpu.opAddi,
		op.OpAddiu: cpu.opAddiu,
		op.OpSw:    cpu.opSw,
		op.OpJ:     cpu.opJ,
		op.OpJal:   cpu.opJal,
		op.OpJr:    cpu.opJr,
		op.OpJalr:  cpu.opJalr,
		op.OpBeq:   cpu.opBeq,
		op.OpBne:   cpu.opBne,
		op.OpBlez:  cpu.opBlez,
		op.OpMtc0:  cpu.opMtc0,
	}
}

func (cpu *cpuState) opNop(_ decoder.Instruction, _ uint32) error {
	return nil
}

// LUI places the immediate in the upper half of rt.
func (cpu *cpuState) opLui(inst decoder.Instruction, _ uint32) error {
	cpu.setReg(inst.Rt, inst.Imm<<16)
	return nil
}

// ORI uses the zero extended immediate.
func (cpu *cpuState) opOri(inst decoder.Instruction, _ uint32) error {
	cpu.setReg(inst.Rt, cpu.reg(inst.Rs)|inst.Imm)
	return nil
}

func (cpu *cpuState) opOr(inst decoder.Instruction, _ uint32) error {
	cpu.setReg(inst.Rd, cpu.reg(inst.Rs)|cpu.reg(inst.Rt))
	return nil
}

func (cpu *cpuState) opSll(inst decoder.Instruction, _ uint32) error {
	cpu.setReg(inst.Rd, cpu.reg(inst.Rt)<<inst.Shamt)
	return nil
}

// Logical right shift.
func (cpu *cpuState) opSrl(inst decoder.Instruction, _ uint32) error {
	cpu.setReg(inst.Rd, cpu.reg(inst.Rt)>>inst.Shamt)
	return nil
}

// ADDI traps on signed overflow.
func (cpu *cpuState) opAddi(inst decoder.Instruction, pc uint32) error {
	src := int32(cpu.reg(inst.Rs))
	imm := int32(sext16(inst.Imm))
	sum := src + imm
	if (src >= 0 && imm >= 0 && sum < 0) || (src < 0 && imm < 0 && sum >= 0) {
		return OverflowError{PC: pc}
	}
	cpu.setReg(inst.Rt, uint32(sum))
	return nil
}

// ADDIU wraps and never traps.
func (cpu *cpuState) opAddiu(inst decoder.Instruction, _ uint32) error {
	cpu.setReg(inst.Rt, cpu.reg(inst.Rs)+sext16(inst.Imm))
	return nil
}

// SW stores rt at rs plus the sign extended offset. While the data cache
// is isolated the store stays in the cache and never reaches the bus.
func (cpu *cpuState) opSw(inst decoder.Instruction, _ uint32) error {
	addr := cpu.reg(inst.Rs) + sext16(inst.Imm)
	if cpu.sr&srIsolateCache != 0 {
		slog.Warn(fmt.Sprintf("SW_CACHE_ISOLATED (into 0x%x)", addr))
		return nil
	}
	debug.Debugf("MEM", "store %08x <- %08x", addr, cpu.reg(inst.Rt))
	return mem.Store32(addr, cpu.reg(inst.Rt))
}

// Jump target: top nibble of the post fetch PC with the shifted 26 bit
// field below it.
func (cpu *cpuState) jumpTarget(inst decoder.Instruction) uint32 {
	return (cpu.PC & 0xf0000000) | inst.Target<<2
}

func (cpu *cpuState) opJ(inst decoder.Instruction, _ uint32) error {
	return cpu.transfer(cpu.jumpTarget(inst))
}

// JAL links the post fetch PC in $31 before the slot runs, so the slot
// sees the return address.
func (cpu *cpuState) opJal(inst decoder.Instruction, _ uint32) error {
	cpu.setReg(linkRegister, cpu.PC)
	return cpu.transfer(cpu.jumpTarget(inst))
}

func (cpu *cpuState) opJr(inst decoder.Instruction, _ uint32) error {
	return cpu.transfer(cpu.reg(inst.Rs))
}

func (cpu *cpuState) opJalr(inst decoder.Instruction, _ uint32) error {
	target := cpu.reg(inst.Rs)
	cpu.setReg(inst.Rd, cpu.PC)
	return cpu.transfer(target)
}

// Branch target: post fetch PC plus the sign extended offset in words.
func (cpu *cpuState) branchTarget(inst decoder.Instruction) uint32 {
	return cpu.PC + sext16(inst.Imm)<<2
}

func (cpu *cpuState) opBeq(inst decoder.Instruction, _ uint32) error {
	if cpu.reg(inst.Rs) == cpu.reg(inst.Rt) {
		return cpu.transfer(cpu.branchTarget(inst))
	}
	return nil
}

func (cpu *cpuState) opBne(inst decoder.Instruction, _ uint32) error {
	if cpu.reg(inst.Rs) != cpu.reg(inst.Rt) {
		return cpu.transfer(cpu.branchTarget(inst))
	}
	return nil
}

func (cpu *cpuState) opBlez(inst decoder.Instruction, _ uint32) error {
	if int32(cpu.reg(inst.Rs)) <= 0 {
		return cpu.transfer(cpu.branchTarget(inst))
	}
	return nil
}

// MTC0 only reaches the status register; moves to any other system
// coprocessor register fault.
func (cpu *cpuState) opMtc0(inst decoder.Instruction, pc uint32) error {
	if inst.Rs != cop0Status {
		return Cop0RegisterError{Reg: inst.Rs, PC: pc}
	}
	cpu.sr = cpu.reg(inst.Rt)
	return nil
}

/*
 * PSX - CPU test cases.
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
	"errors"
	"math/rand"
	"testing"

	"github.com/rcornwell/PSX/emu/bios"
	"github.com/rcornwell/PSX/emu/memory"
)

// Reset the machine with the given words at the start of the ROM.
func setup(t *testing.T, words ...uint32) {
	t.Helper()
	memory.Initialize()
	InitializeCPU()

	image := make([]byte, bios.ImageSize)
	for i, word := range words {
		image[i*4] = byte(word)
		image[i*4+1] = byte(word >> 8)
		image[i*4+2] = byte(word >> 16)
		image[i*4+3] = byte(word >> 24)
	}
	rom, err := bios.New(image)
	if err != nil {
		t.Fatal(err)
	}
	memory.LoadBios(rom)
}

// Run count instructions, all of which must succeed.
func run(t *testing.T, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		if err := CycleCPU(); err != nil {
			t.Fatalf("Cycle %d failed: %v", i, err)
		}
	}
}

// Register 0 stays zero for any write.
func TestRegisterZero(t *testing.T) {
	setup(t)

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		SetRegister(rnd.Uint32(), rnd.Uint32())
		if Register(0) != 0 {
			t.Fatal("Register 0 modified")
		}
	}

	// Through an instruction as well.
	setup(t, 0x3400ffff) // ori $0, $0, 0xffff
	run(t, 1)
	if Register(0) != 0 {
		t.Error("Register 0 modified by ORI")
	}
}

// Reset state.
func TestReset(t *testing.T) {
	setup(t)
	if PC() != ResetVector {
		t.Errorf("Reset PC not correct got: %08x expected: %08x", PC(), ResetVector)
	}
	if Status() != 0 {
		t.Errorf("Reset SR not zero got: %08x", Status())
	}
	for i := uint32(0); i < 32; i++ {
		if Register(i) != 0 {
			t.Errorf("Register %d not zero got: %08x", i, Register(i))
		}
	}
}

// LUI then ORI composes a 32 bit constant.
func TestLuiOri(t *testing.T) {
	setup(t,
		0x3c081f80, // lui $8, 0x1f80
		0x35081010, // ori $8, $8, 0x1010
	)
	run(t, 2)
	if r := Register(8); r != 0x1f801010 {
		t.Errorf("LUI/ORI not correct got: %08x expected: %08x", r, 0x1f801010)
	}
}

// Shift and OR register forms.
func TestShiftOr(t *testing.T) {
	setup(t,
		0x34090042, // ori $9, $0, 0x42
		0x00094a00, // sll $9, $9, 8
		0x00094a02, // srl $9, $9, 8
		0x01205025, // or $10, $9, $0
	)
	run(t, 2)
	if r := Register(9); r != 0x4200 {
		t.Errorf("SLL not correct got: %08x expected: %08x", r, 0x4200)
	}
	run(t, 1)
	if r := Register(9); r != 0x42 {
		t.Errorf("SRL not correct got: %08x expected: %08x", r, 0x42)
	}
	run(t, 1)
	if r := Register(10); r != 0x42 {
		t.Errorf("OR not correct got: %08x expected: %08x", r, 0x42)
	}
}

// Store word to RAM and read it back.
func TestStoreWord(t *testing.T) {
	setup(t, 0xac010000) // sw $1, 0x0($0)
	SetRegister(1, 0x00000100)
	run(t, 1)

	r, err := memory.Load32(0)
	if err != nil {
		t.Fatalf("Load32 failed: %v", err)
	}
	if r != 0x00000100 {
		t.Errorf("SW not correct got: %08x expected: %08x", r, 0x00000100)
	}
}

// ADDI traps on signed overflow, ADDIU wraps.
func TestAddOverflow(t *testing.T) {
	setup(t, 0x20220001) // addi $2, $1, 1
	SetRegister(1, 0x7fffffff)

	err := CycleCPU()
	var ovfErr OverflowError
	if !errors.As(err, &ovfErr) {
		t.Errorf("ADDI should overflow got: %v", err)
	}
	if Register(2) != 0 {
		t.Errorf("ADDI wrote on overflow got: %08x", Register(2))
	}

	setup(t, 0x24220001) // addiu $2, $1, 1
	SetRegister(1, 0x7fffffff)
	run(t, 1)
	if r := Register(2); r != 0x80000000 {
		t.Errorf("ADDIU not correct got: %08x expected: %08x", r, 0x80000000)
	}

	// Negative immediates sign extend.
	setup(t, 0x2422ffff) // addiu $2, $1, -1
	SetRegister(1, 5)
	run(t, 1)
	if r := Register(2); r != 4 {
		t.Errorf("ADDIU negative not correct got: %08x expected: %08x", r, 4)
	}
}

// Unconditional jump executes its delay slot before transferring.
func TestJumpDelaySlot(t *testing.T) {
	setup(t,
		0x0bf00100, // j 0xbfc00400
		0x34090042, // ori $9, $0, 0x42
	)
	run(t, 1)

	if r := Register(9); r != 0x42 {
		t.Errorf("Delay slot skipped got: %08x expected: %08x", r, 0x42)
	}
	if PC() != 0xbfc00400 {
		t.Errorf("Jump target not correct got: %08x expected: %08x", PC(), 0xbfc00400)
	}
}

// JAL links the post fetch PC in $31.
func TestJal(t *testing.T) {
	setup(t,
		0x0ff00100, // jal 0xbfc00400
		0x00000000, // nop
	)
	run(t, 1)

	if r := Register(31); r != ResetVector+4 {
		t.Errorf("JAL link not correct got: %08x expected: %08x", r, ResetVector+4)
	}
	if PC() != 0xbfc00400 {
		t.Errorf("JAL target not correct got: %08x expected: %08x", PC(), 0xbfc00400)
	}
}

// JR transfers to a register, JALR also links.
func TestJrJalr(t *testing.T) {
	setup(t,
		0x01000008, // jr $8
		0x00000000, // nop
	)
	SetRegister(8, 0xbfc10000)
	run(t, 1)
	if PC() != 0xbfc10000 {
		t.Errorf("JR target not correct got: %08x expected: %08x", PC(), 0xbfc10000)
	}

	setup(t,
		0x0100f809, // jalr $8
		0x00000000, // nop
	)
	SetRegister(8, 0xbfc10000)
	run(t, 1)
	if PC() != 0xbfc10000 {
		t.Errorf("JALR target not correct got: %08x expected: %08x", PC(), 0xbfc10000)
	}
	if r := Register(31); r != ResetVector+4 {
		t.Errorf("JALR link not correct got: %08x expected: %08x", r, ResetVector+4)
	}
}

// Conditional branches: taken runs the slot then moves, not taken falls
// through to the slot as the next instruction.
func TestBranches(t *testing.T) {
	// bne taken, backwards.
	setup(t,
		0x34090001, // ori $9, $0, 1
		0x1520fffe, // bne $9, $0, -2
		0x340a0055, // ori $10, $0, 0x55
	)
	run(t, 2)
	if r := Register(10); r != 0x55 {
		t.Errorf("Branch delay slot skipped got: %08x", r)
	}
	// Post fetch PC of the branch is 0xbfc00008, offset -2 words.
	if PC() != 0xbfc00000 {
		t.Errorf("BNE target not correct got: %08x expected: %08x", PC(), 0xbfc00000)
	}

	// bne not taken.
	setup(t,
		0x14000002, // bne $0, $0, +2
		0x340a0055, // ori $10, $0, 0x55
	)
	run(t, 1)
	if PC() != ResetVector+4 {
		t.Errorf("BNE should fall through got: %08x", PC())
	}
	run(t, 1)
	if r := Register(10); r != 0x55 {
		t.Errorf("Fall through slot not executed got: %08x", r)
	}

	// beq taken.
	setup(t,
		0x10000004, // beq $0, $0, +4
		0x00000000, // nop
	)
	run(t, 1)
	if PC() != 0xbfc00014 {
		t.Errorf("BEQ target not correct got: %08x expected: %08x", PC(), 0xbfc00014)
	}

	// blez taken on zero and negative, not taken on positive.
	setup(t,
		0x18200004, // blez $1, +4
		0x00000000, // nop
	)
	run(t, 1)
	if PC() != 0xbfc00014 {
		t.Errorf("BLEZ on zero not taken got: %08x", PC())
	}

	setup(t,
		0x18200004, // blez $1, +4
		0x00000000, // nop
	)
	SetRegister(1, 0x80000000)
	run(t, 1)
	if PC() != 0xbfc00014 {
		t.Errorf("BLEZ on negative not taken got: %08x", PC())
	}

	setup(t,
		0x18200004, // blez $1, +4
		0x00000000, // nop
	)
	SetRegister(1, 1)
	run(t, 1)
	if PC() != ResetVector+4 {
		t.Errorf("BLEZ on positive taken got: %08x", PC())
	}
}

// A failing delay slot aborts the branch.
func TestDelaySlotError(t *testing.T) {
	setup(t,
		0x0bf00100, // j 0xbfc00400
		0x20220001, // addi $2, $1, 1 in the slot, will overflow
	)
	SetRegister(1, 0x7fffffff)

	err := CycleCPU()
	var ovfErr OverflowError
	if !errors.As(err, &ovfErr) {
		t.Errorf("Slot overflow not surfaced got: %v", err)
	}
	if PC() == 0xbfc00400 {
		t.Error("Branch taken despite slot fault")
	}
}

// MTC0 to the status register, and the cache isolation store suppression.
func TestCacheIsolate(t *testing.T) {
	setup(t,
		0x3c010001, // lui $1, 0x0001
		0x40816000, // mtc0 $1, $12
		0xac000000, // sw $0, 0x0($0)
	)

	// The RAM word starts at zero and must still read zero after the
	// isolated store, with no fault raised.
	if err := memory.Store32(0, 0); err != nil {
		t.Fatal(err)
	}
	run(t, 3)

	if Status() != 0x00010000 {
		t.Errorf("SR not correct got: %08x expected: %08x", Status(), 0x00010000)
	}
	r, err := memory.Load32(0)
	if err != nil {
		t.Fatalf("Load32 failed: %v", err)
	}
	if r != 0 {
		t.Errorf("Isolated store reached memory got: %08x", r)
	}
}

// MTC0 to any other register faults.
func TestMtc0Unhandled(t *testing.T) {
	setup(t, 0x40816800) // mtc0 $1, $13
	err := CycleCPU()

	var copErr Cop0RegisterError
	if !errors.As(err, &copErr) {
		t.Fatalf("MTC0 $13 should fault got: %v", err)
	}
	if copErr.Reg != 13 {
		t.Errorf("Fault register not correct got: %d expected: 13", copErr.Reg)
	}
}

// Unknown and unimplemented encodings are separate faults carrying the
// fetch address.
func TestBadInstructions(t *testing.T) {
	setup(t, 0xfc000000)
	err := CycleCPU()
	var unkErr UnknownInstructionError
	if !errors.As(err, &unkErr) {
		t.Fatalf("Expected unknown instruction got: %v", err)
	}
	if unkErr.PC != ResetVector || unkErr.Word != 0xfc000000 {
		t.Errorf("Unknown fault fields not correct: %+v", unkErr)
	}

	setup(t, 0x8c280004) // lw $8, 0x4($1), decoded but not implemented
	err = CycleCPU()
	var unimpErr UnimplementedError
	if !errors.As(err, &unimpErr) {
		t.Fatalf("Expected unimplemented instruction got: %v", err)
	}
	if unimpErr.Mnemonic != "lw" || unimpErr.PC != ResetVector {
		t.Errorf("Unimplemented fault fields not correct: %+v", unimpErr)
	}
}

// Fetch faults: unaligned PC and the speculative slot fetch running off
// the end of the mapped ROM.
func TestFetchFaults(t *testing.T) {
	setup(t)
	SetPC(0xbfc00001)
	err := CycleCPU()
	var alignErr memory.AlignmentError
	if !errors.As(err, &alignErr) {
		t.Errorf("Unaligned fetch should fail got: %v", err)
	}

	setup(t)
	SetPC(0xbfc7fffc) // Last ROM word, slot fetch lands past the ROM.
	err = CycleCPU()
	var unmapErr memory.UnmappedError
	if !errors.As(err, &unmapErr) {
		t.Errorf("Slot fetch past ROM should fail got: %v", err)
	}
}

/*
 * PSX - R3000A instruction decoder.
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

package decoder

import (
	op "github.com/rcornwell/PSX/emu/opcodemap"
)

/*
   The R3000A uses fixed 32 bit instructions in three primary layouts, plus
   the coprocessor move/ALU layout:

    R format:  (Register to register, opcode 0, selected by funct).

      +--------+-------+-------+-------+-------+--------+
      | opcode |  rs   |  rt   |  rd   | shamt | funct  |
      |  31:26 | 25:21 | 20:16 | 15:11 | 10:6  |  5:0   |
      +--------+-------+-------+-------+-------+--------+

    I format:  (Immediate).

      +--------+-------+-------+------------------------+
      | opcode |  rs   |  rt   |     immediate          |
      |  31:26 | 25:21 | 20:16 |        15:0            |
      +--------+-------+-------+------------------------+

    J format:  (Jump).

      +--------+----------------------------------------+
      | opcode |              target                    |
      |  31:26 |               25:0                     |
      +--------+----------------------------------------+

    F format:  (Coprocessor, opcode 0x10/0x11, selected by fmt and funct).

      +--------+-------+-------+-------+-------+--------+
      | opcode |  fmt  |  rt   |  rs   |  rd   | funct  |
      |  31:26 | 25:21 | 20:16 | 15:11 | 10:6  |  5:0   |
      +--------+-------+-------+-------+-------+--------+
*/

// Instruction forms.
const (
	FormR = 1 + iota // Register to register.
	FormI            // Immediate.
	FormJ            // Jump.
	FormF            // Coprocessor.
	FormE            // Unrecognized encoding.
)

// A classified instruction. Operand fields are filled according to Form;
// Raw always holds the original word.
type Instruction struct {
	Form   int    // Instruction layout.
	Op     int    // Mnemonic, from opcodemap.
	Rs     uint32 // Source register.
	Rt     uint32 // Target register.
	Rd     uint32 // Destination register.
	Shamt  uint32 // Shift amount.
	Imm    uint32 // Raw 16 bit immediate field, not sign extended.
	Target uint32 // 26 bit jump target field.
	Raw    uint32 // Original word.
}

// Build a register form instruction from a word.
func newR(mnemonic int, word uint32) Instruction {
	return Instruction{
		Form:  FormR,
		Op:    mnemonic,
		Rs:    (word >> 21) & 0x1f,
		Rt:    (word >> 16) & 0x1f,
		Rd:    (word >> 11) & 0x1f,
		Shamt: (word >> 6) & 0x1f,
		Raw:   word,
	}
}

// Build an immediate form instruction from a word.
func newI(mnemonic int, word uint32) Instruction {
	return Instruction{
		Form: FormI,
		Op:   mnemonic,
		Rs:   (word >> 21) & 0x1f,
		Rt:   (word >> 16) & 0x1f,
		Imm:  word & 0xffff,
		Raw:  word,
	}
}

// Build a jump form instruction from a word.
func newJ(mnemonic int, word uint32) Instruction {
	return Instruction{
		Form:   FormJ,
		Op:     mnemonic,
		Target: word & 0x3ffffff,
		Raw:    word,
	}
}

// Build a coprocessor form instruction from a word. The register fields sit
// one slot lower than the R layout: rt in 20:16, rs in 15:11, rd in 10:6.
func newF(mnemonic int, word uint32) Instruction {
	return Instruction{
		Form: FormF,
		Op:   mnemonic,
		Rt:   (word >> 16) & 0x1f,
		Rs:   (word >> 11) & 0x1f,
		Rd:   (word >> 6) & 0x1f,
		Raw:  word,
	}
}

// Build an unrecognized instruction carrying the raw word for diagnostics.
func newE(word uint32) Instruction {
	return Instruction{Form: FormE, Op: op.OpUnknown, Raw: word}
}

// SPECIAL group, selected by the funct field.
var specialMap = map[uint32]int{
	0x00: op.OpSll,
	0x02: op.OpSrl,
	0x08: op.OpJr,
	0x09: op.OpJalr,
	0x0c: op.OpSyscall,
	0x0d: op.OpBreak,
	0x10: op.OpMfhi,
	0x12: op.OpMflo,
	0x18: op.OpMult,
	0x1a: op.OpDiv,
	0x20: op.OpAdd,
	0x21: op.OpAddu,
	0x22: op.OpSub,
	0x23: op.OpSubu,
	0x24: op.OpAnd,
	0x25: op.OpOr,
	0x26: op.OpXor,
	0x27: op.OpNor,
	0x2a: op.OpSlt,
	0x2b: op.OpSltu,
}

// Immediate and load/store opcodes.
var immediateMap = map[uint32]int{
	0x04: op.OpBeq,
	0x05: op.OpBne,
	0x06: op.OpBlez,
	0x08: op.OpAddi,
	0x09: op.OpAddiu,
	0x0a: op.OpSlti,
	0x0b: op.OpSltiu,
	0x0c: op.OpAndi,
	0x0d: op.OpOri,
	0x0f: op.OpLui,
	0x20: op.OpLb,
	0x21: op.OpLh,
	0x23: op.OpLw,
	0x24: op.OpLbu,
	0x25: op.OpLhu,
	0x28: op.OpSb,
	0x29: op.OpSh,
	0x2b: op.OpSw,
	0x31: op.OpLwc1,
	0x35: op.OpLdc1,
}

// COP1 arithmetic and moves, selected by funct then fmt.
var cop1Map = map[[2]uint32]int{
	{0x00, 0x10}: op.OpAdds,
	{0x00, 0x11}: op.OpAddd,
	{0x02, 0x10}: op.OpMuls,
	{0x02, 0x11}: op.OpMuld,
	{0x03, 0x10}: op.OpDivs,
	{0x03, 0x11}: op.OpDivd,
	{0x06, 0x10}: op.OpMovs,
	{0x06, 0x11}: op.OpMovd,
	{0x20, 0x11}: op.OpCvtsd,
	{0x21, 0x14}: op.OpCvtdw,
}

// Decode classifies a raw word. It is pure and total: every word yields
// some instruction, unrecognized encodings come back as FormE.
func Decode(word uint32) Instruction {
	if word == 0 {
		return newR(op.OpNop, word)
	}

	opcode := word >> 26
	funct := word & 0x3f
	fmt := (word >> 21) & 0x1f

	switch opcode {
	case 0x00:
		mnemonic, ok := specialMap[funct]
		if !ok {
			return newE(word)
		}
		return newR(mnemonic, word)

	case 0x10: // COP0. Only the MTC0 form is recognized.
		if fmt == 0x04 {
			return newF(op.OpMtc0, word)
		}
		return newE(word)

	case 0x11: // COP1.
		if mnemonic, ok := cop1Map[[2]uint32{funct, fmt}]; ok {
			return newF(mnemonic, word)
		}
		switch fmt {
		case 0x00:
			return newF(op.OpMfc1, word)
		case 0x04:
			return newF(op.OpMtc1, word)
		}
		return newE(word)

	case 0x02:
		return newJ(op.OpJ, word)

	case 0x03:
		return newJ(op.OpJal, word)
	}

	if mnemonic, ok := immediateMap[opcode]; ok {
		return newI(mnemonic, word)
	}
	return newE(word)
}

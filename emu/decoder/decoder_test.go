/*
 * PSX - Instruction decoder test cases.
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
	"math/rand"
	"testing"

	op "github.com/rcornwell/PSX/emu/opcodemap"
)

// Zero word always decodes as NOP.
func TestDecodeNop(t *testing.T) {
	inst := Decode(0)
	if inst.Form != FormR || inst.Op != op.OpNop {
		t.Errorf("Zero word not NOP got form: %d op: %d", inst.Form, inst.Op)
	}
	if inst.Rs != 0 || inst.Rt != 0 || inst.Rd != 0 || inst.Shamt != 0 {
		t.Errorf("NOP fields not zero: %+v", inst)
	}
}

// Immediate form field extraction.
func TestDecodeImmediate(t *testing.T) {
	tests := []struct {
		word uint32
		op   int
		rs   uint32
		rt   uint32
		imm  uint32
	}{
		{0x3c081f80, op.OpLui, 0, 8, 0x1f80},   // lui $8, 0x1f80
		{0x35081010, op.OpOri, 8, 8, 0x1010},   // ori $8, $8, 0x1010
		{0xac010000, op.OpSw, 0, 1, 0x0000},    // sw $1, 0x0($0)
		{0x24220001, op.OpAddiu, 1, 2, 0x0001}, // addiu $2, $1, 0x1
		{0x20220001, op.OpAddi, 1, 2, 0x0001},  // addi $2, $1, 0x1
		{0x1443fffd, op.OpBne, 2, 3, 0xfffd},   // bne $2, $3, -3
		{0x8c280004, op.OpLw, 1, 8, 0x0004},    // lw $8, 0x4($1)
	}

	for _, test := range tests {
		inst := Decode(test.word)
		if inst.Form != FormI {
			t.Errorf("Word %08x wrong form got: %d expected: %d", test.word, inst.Form, FormI)
			continue
		}
		if inst.Op != test.op {
			t.Errorf("Word %08x wrong op got: %d expected: %d", test.word, inst.Op, test.op)
		}
		if inst.Rs != test.rs || inst.Rt != test.rt || inst.Imm != test.imm {
			t.Errorf("Word %08x wrong fields got: rs=%d rt=%d imm=%04x expected: rs=%d rt=%d imm=%04x",
				test.word, inst.Rs, inst.Rt, inst.Imm, test.rs, test.rt, test.imm)
		}
	}
}

// Register form field extraction.
func TestDecodeRegister(t *testing.T) {
	tests := []struct {
		word  uint32
		op    int
		rs    uint32
		rt    uint32
		rd    uint32
		shamt uint32
	}{
		{0x00221820, op.OpAdd, 1, 2, 3, 0},  // add $3, $1, $2
		{0x00221821, op.OpAddu, 1, 2, 3, 0}, // addu $3, $1, $2
		{0x00221825, op.OpOr, 1, 2, 3, 0},   // or $3, $1, $2
		{0x00094a00, op.OpSll, 0, 9, 9, 8},  // sll $9, $9, 8
		{0x00094a02, op.OpSrl, 0, 9, 9, 8},  // srl $9, $9, 8
		{0x01000008, op.OpJr, 8, 0, 0, 0},   // jr $8
		{0x0100f809, op.OpJalr, 8, 0, 31, 0},
		{0x0022182a, op.OpSlt, 1, 2, 3, 0},
		{0x0022182b, op.OpSltu, 1, 2, 3, 0},
	}

	for _, test := range tests {
		inst := Decode(test.word)
		if inst.Form != FormR {
			t.Errorf("Word %08x wrong form got: %d expected: %d", test.word, inst.Form, FormR)
			continue
		}
		if inst.Op != test.op {
			t.Errorf("Word %08x wrong op got: %d expected: %d", test.word, inst.Op, test.op)
		}
		if inst.Rs != test.rs || inst.Rt != test.rt || inst.Rd != test.rd || inst.Shamt != test.shamt {
			t.Errorf("Word %08x wrong fields: %+v", test.word, inst)
		}
	}
}

// Jump form keeps the 26 bit target.
func TestDecodeJump(t *testing.T) {
	inst := Decode(0x08000000 | 0x2f00100)
	if inst.Form != FormJ || inst.Op != op.OpJ {
		t.Errorf("J wrong form/op: %+v", inst)
	}
	if inst.Target != 0x2f00100 {
		t.Errorf("J wrong target got: %07x expected: %07x", inst.Target, 0x2f00100)
	}

	inst = Decode(0x0c000000 | 0x0000040)
	if inst.Form != FormJ || inst.Op != op.OpJal {
		t.Errorf("JAL wrong form/op: %+v", inst)
	}
}

// COP0 moves decode to MTC0 with the coprocessor register in Rs.
func TestDecodeCop0(t *testing.T) {
	inst := Decode(0x40816000) // mtc0 $1, $12
	if inst.Form != FormF || inst.Op != op.OpMtc0 {
		t.Errorf("MTC0 wrong form/op: %+v", inst)
	}
	if inst.Rt != 1 || inst.Rs != 12 {
		t.Errorf("MTC0 wrong fields got: rt=%d rs=%d expected: rt=1 rs=12", inst.Rt, inst.Rs)
	}

	// MFC0 form is not handled, should come back unknown.
	inst = Decode(0x40016000)
	if inst.Form != FormE {
		t.Errorf("MFC0 should be unknown got form: %d", inst.Form)
	}
}

// COP1 decode table.
func TestDecodeCop1(t *testing.T) {
	tests := []struct {
		word uint32
		op   int
	}{
		{0x46000000, op.OpAdds},  // add.s, fmt 0x10 funct 0
		{0x46200000, op.OpAddd},  // add.d, fmt 0x11 funct 0
		{0x46000002, op.OpMuls},  // mul.s
		{0x46200002, op.OpMuld},  // mul.d
		{0x46000003, op.OpDivs},  // div.s
		{0x46200003, op.OpDivd},  // div.d
		{0x46000006, op.OpMovs},  // mov.s
		{0x46200006, op.OpMovd},  // mov.d
		{0x46200020, op.OpCvtsd}, // cvt.s.d
		{0x46800021, op.OpCvtdw}, // cvt.d.w
		{0x44010000, op.OpMfc1},  // mfc1 $1, $f0
		{0x44810000, op.OpMtc1},  // mtc1 $1, $f0
	}

	for _, test := range tests {
		inst := Decode(test.word)
		if inst.Form != FormF || inst.Op != test.op {
			t.Errorf("Word %08x wrong decode got form: %d op: %d expected op: %d",
				test.word, inst.Form, inst.Op, test.op)
		}
	}
}

// Unknown encodings carry the raw word.
func TestDecodeUnknown(t *testing.T) {
	words := []uint32{
		0xfc000000, // opcode 0x3f
		0x00000039, // SPECIAL, bad funct
		0x48000000, // COP2 (GTE), not decoded
		0x41000000, // COP0, fmt 0x08
	}
	for _, word := range words {
		inst := Decode(word)
		if inst.Form != FormE || inst.Op != op.OpUnknown {
			t.Errorf("Word %08x should be unknown got: %+v", word, inst)
		}
		if inst.Raw != word {
			t.Errorf("Unknown word not preserved got: %08x expected: %08x", inst.Raw, word)
		}
	}
}

// Decode is total and pure: any word yields a valid form, and decoding
// the same word twice gives the same result.
func TestDecodeTotal(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 100000; i++ {
		word := rnd.Uint32()
		inst := Decode(word)
		if inst.Form < FormR || inst.Form > FormE {
			t.Fatalf("Word %08x bad form: %d", word, inst.Form)
		}
		if inst.Raw != word {
			t.Fatalf("Word %08x raw not preserved: %08x", word, inst.Raw)
		}
		if inst != Decode(word) {
			t.Fatalf("Word %08x decode not stable", word)
		}
	}
}

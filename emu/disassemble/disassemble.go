/*
 * PSX - R3000A disassembler.
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

package disassemble

import (
	"fmt"

	"github.com/rcornwell/PSX/emu/decoder"
	op "github.com/rcornwell/PSX/emu/opcodemap"
)

// Operand layouts.
const (
	tyNone   = 1 + iota
	tyRdRsRt // add $rd, $rs, $rt
	tyRdRtSh // sll $rd, $rt, shamt
	tyRsRt   // mult $rs, $rt
	tyRs     // jr $rs
	tyRd     // mfhi $rd
	tyRdRs   // jalr $rd, $rs
	tyRtRsIm // addiu $rt, $rs, imm
	tyRtIm   // lui $rt, imm
	tyBranch // bne $rs, $rt, offset
	tyBrZero // blez $rs, offset
	tyMem    // lw $rt, offset($rs)
	tyJump   // j target
	tyCop0   // mtc0 $rt, $n
	tyCop1   // mfc1 $rt, $fn
	tyFpu    // add.s $fd, $fs, $ft
)

type opcode struct {
	opName string // Mnemonic string.
	opType int    // Operand layout.
}

var opMap = map[int]opcode{
	op.OpNop:     {"nop", tyNone},
	op.OpSll:     {"sll", tyRdRtSh},
	op.OpSrl:     {"srl", tyRdRtSh},
	op.OpJr:      {"jr", tyRs},
	op.OpJalr:    {"jalr", tyRdRs},
	op.OpSyscall: {"syscall", tyNone},
	op.OpBreak:   {"break", tyNone},
	op.OpMfhi:    {"mfhi", tyRd},
	op.OpMflo:    {"mflo", tyRd},
	op.OpMult:    {"mult", tyRsRt},
	op.OpDiv:     {"div", tyRsRt},
	op.OpAdd:     {"add", tyRdRsRt},
	op.OpAddu:    {"addu", tyRdRsRt},
	op.OpSub:     {"sub", tyRdRsRt},
	op.OpSubu:    {"subu", tyRdRsRt},
	op.OpAnd:     {"and", tyRdRsRt},
	op.OpOr:      {"or", tyRdRsRt},
	op.OpXor:     {"xor", tyRdRsRt},
	op.OpNor:     {"nor", tyRdRsRt},
	op.OpSlt:     {"slt", tyRdRsRt},
	op.OpSltu:    {"sltu", tyRdRsRt},
	op.OpBeq:     {"beq", tyBranch},
	op.OpBne:     {"bne", tyBranch},
	op.OpBlez:    {"blez", tyBrZero},
	op.OpAddi:    {"addi", tyRtRsIm},
	op.OpAddiu:   {"addiu", tyRtRsIm},
	op.OpSlti:    {"slti", tyRtRsIm},
	op.OpSltiu:   {"sltiu", tyRtRsIm},
	op.OpAndi:    {"andi", tyRtRsIm},
	op.OpOri:     {"ori", tyRtRsIm},
	op.OpLui:     {"lui", tyRtIm},
	op.OpLb:      {"lb", tyMem},
	op.OpLh:      {"lh", tyMem},
	op.OpLw:      {"lw", tyMem},
	op.OpLbu:     {"lbu", tyMem},
	op.OpLhu:     {"lhu", tyMem},
	op.OpSb:      {"sb", tyMem},
	op.OpSh:      {"sh", tyMem},
	op.OpSw:      {"sw", tyMem},
	op.OpLwc1:    {"lwc1", tyMem},
	op.OpLdc1:    {"ldc1", tyMem},
	op.OpJ:       {"j", tyJump},
	op.OpJal:     {"jal", tyJump},
	op.OpMtc0:    {"mtc0", tyCop0},
	op.OpMfc1:    {"mfc1", tyCop1},
	op.OpMtc1:    {"mtc1", tyCop1},
	op.OpAdds:    {"add.s", tyFpu},
	op.OpAddd:    {"add.d", tyFpu},
	op.OpMuls:    {"mul.s", tyFpu},
	op.OpMuld:    {"mul.d", tyFpu},
	op.OpDivs:    {"div.s", tyFpu},
	op.OpDivd:    {"div.d", tyFpu},
	op.OpMovs:    {"mov.s", tyFpu},
	op.OpMovd:    {"mov.d", tyFpu},
	op.OpCvtsd:   {"cvt.s.d", tyFpu},
	op.OpCvtdw:   {"cvt.d.w", tyFpu},
}

// Mnemonic returns the bare mnemonic string for an opcodemap identifier.
func Mnemonic(mnemonic int) string {
	entry, ok := opMap[mnemonic]
	if !ok {
		return "unknown"
	}
	return entry.opName
}

// Disassemble formats one decoded instruction in canonical MIPS form.
func Disassemble(inst decoder.Instruction) string {
	entry, ok := opMap[inst.Op]
	if !ok {
		return fmt.Sprintf(".word 0x%08x", inst.Raw)
	}

	switch entry.opType {
	case tyRdRsRt:
		return fmt.Sprintf("%s $%d, $%d, $%d", entry.opName, inst.Rd, inst.Rs, inst.Rt)
	case tyRdRtSh:
		return fmt.Sprintf("%s $%d, $%d, %d", entry.opName, inst.Rd, inst.Rt, inst.Shamt)
	case tyRsRt:
		return fmt.Sprintf("%s $%d, $%d", entry.opName, inst.Rs, inst.Rt)
	case tyRs:
		return fmt.Sprintf("%s $%d", entry.opName, inst.Rs)
	case tyRd:
		return fmt.Sprintf("%s $%d", entry.opName, inst.Rd)
	case tyRdRs:
		return fmt.Sprintf("%s $%d, $%d", entry.opName, inst.Rd, inst.Rs)
	case tyRtRsIm:
		return fmt.Sprintf("%s $%d, $%d, 0x%x", entry.opName, inst.Rt, inst.Rs, inst.Imm)
	case tyRtIm:
		return fmt.Sprintf("%s $%d, 0x%x", entry.opName, inst.Rt, inst.Imm)
	case tyBranch:
		return fmt.Sprintf("%s $%d, $%d, 0x%x", entry.opName, inst.Rs, inst.Rt, inst.Imm)
	case tyBrZero:
		return fmt.Sprintf("%s $%d, 0x%x", entry.opName, inst.Rs, inst.Imm)
	case tyMem:
		return fmt.Sprintf("%s $%d, 0x%x($%d)", entry.opName, inst.Rt, inst.Imm, inst.Rs)
	case tyJump:
		return fmt.Sprintf("%s 0x%x", entry.opName, inst.Target<<2)
	case tyCop0:
		return fmt.Sprintf("%s $%d, $%d", entry.opName, inst.Rt, inst.Rs)
	case tyCop1:
		return fmt.Sprintf("%s $%d, $f%d", entry.opName, inst.Rt, inst.Rs)
	case tyFpu:
		return fmt.Sprintf("%s $f%d, $f%d, $f%d", entry.opName, inst.Rd, inst.Rs, inst.Rt)
	default:
		return entry.opName
	}
}

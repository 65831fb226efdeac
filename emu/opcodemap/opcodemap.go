/*
 * PSX - R3000A mnemonic definitions.
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

package opcodemap

// Mnemonic identifiers shared by the decoder, the CPU dispatch table and the
// disassembler. Values are arbitrary; the raw encodings live in the decoder.
const (
	OpUnknown = iota

	// Register form, SPECIAL group.
	OpNop
	OpSll
	OpSrl
	OpJr
	OpJalr
	OpSyscall
	OpBreak
	OpMfhi
	OpMflo
	OpMult
	OpDiv
	OpAdd
	OpAddu
	OpSub
	OpSubu
	OpAnd
	OpOr
	OpXor
	OpNor
	OpSlt
	OpSltu

	// Immediate form.
	OpBeq
	OpBne
	OpBlez
	OpAddi
	OpAddiu
	OpSlti
	OpSltiu
	OpAndi
	OpOri
	OpLui
	OpLb
	OpLh
	OpLw
	OpLbu
	OpLhu
	OpSb
	OpSh
	OpSw
	OpLwc1
	OpLdc1

	// Jump form.
	OpJ
	OpJal

	// Coprocessor form.
	OpMtc0
	OpMfc1
	OpMtc1
	OpAdds
	OpAddd
	OpMuls
	OpMuld
	OpDivs
	OpDivd
	OpMovs
	OpMovd
	OpCvtsd
	OpCvtdw
)

/*
 * PSX - Disassembler test cases.
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
	"testing"

	"github.com/rcornwell/PSX/emu/decoder"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		word uint32
		text string
	}{
		{0x00000000, "nop"},
		{0x3c081f80, "lui $8, 0x1f80"},
		{0x35081010, "ori $8, $8, 0x1010"},
		{0xac010000, "sw $1, 0x0($0)"},
		{0x8c280004, "lw $8, 0x4($1)"},
		{0x24220001, "addiu $2, $1, 0x1"},
		{0x00221820, "add $3, $1, $2"},
		{0x00094a00, "sll $9, $9, 8"},
		{0x1443fffd, "bne $2, $3, 0xfffd"},
		{0x01000008, "jr $8"},
		{0x08000040, "j 0x100"},
		{0x40816000, "mtc0 $1, $12"},
		{0x46200000, "add.d $f0, $f0, $f0"},
		{0xfc000000, ".word 0xfc000000"},
	}

	for _, test := range tests {
		text := Disassemble(decoder.Decode(test.word))
		if text != test.text {
			t.Errorf("Word %08x not correct got: %q expected: %q", test.word, text, test.text)
		}
	}
}

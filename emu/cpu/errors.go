/*
 * PSX - CPU error values.
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

import "fmt"

// UnknownInstructionError reports an encoding the decoder cannot classify.
type UnknownInstructionError struct {
	Word uint32 // Raw instruction word.
	PC   uint32 // Address the word was fetched from.
}

func (e UnknownInstructionError) Error() string {
	return fmt.Sprintf("UNKNOWN_INSTRUCTION (0x%08x at 0x%x)", e.Word, e.PC)
}

// UnimplementedError reports a decoded instruction with no handler.
type UnimplementedError struct {
	Mnemonic string // Instruction mnemonic.
	Word     uint32 // Raw instruction word.
	PC       uint32 // Address the word was fetched from.
}

func (e UnimplementedError) Error() string {
	return fmt.Sprintf("UNIMPLEMENTED_INSTRUCTION %s (0x%08x at 0x%x)", e.Mnemonic, e.Word, e.PC)
}

// OverflowError reports signed overflow on a trapping add.
type OverflowError struct {
	PC uint32 // Address the instruction was fetched from.
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("ARITHMETIC_OVERFLOW (at 0x%x)", e.PC)
}

// Cop0RegisterError reports a move to a system coprocessor register other
// than the status register.
type Cop0RegisterError struct {
	Reg uint32 // COP0 register number.
	PC  uint32 // Address the instruction was fetched from.
}

func (e Cop0RegisterError) Error() string {
	return fmt.Sprintf("UNHANDLED_COP0_REGISTER %d (at 0x%x)", e.Reg, e.PC)
}

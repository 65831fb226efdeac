/*
 * PSX - Monitor commands.
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

package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rcornwell/PSX/emu/core"
	cpu "github.com/rcornwell/PSX/emu/cpu"
	"github.com/rcornwell/PSX/emu/decoder"
	dis "github.com/rcornwell/PSX/emu/disassemble"
	mem "github.com/rcornwell/PSX/emu/memory"
)

var cmdList = []cmd{
	{name: "start", min: 3, process: start},
	{name: "continue", min: 1, process: start},
	{name: "stop", min: 3, process: stop},
	{name: "step", min: 3, process: step},
	{name: "registers", min: 1, process: registers},
	{name: "examine", min: 1, process: examine},
	{name: "deposit", min: 2, process: deposit},
	{name: "pc", min: 2, process: setPC},
	{name: "quit", min: 1, process: quit},
}

// Let the CPU free run.
func start(_ *cmdLine, core *core.Core) (bool, error) {
	slog.Debug("Command Start")
	core.SendStart()
	return false, nil
}

// Halt the CPU between instructions.
func stop(_ *cmdLine, core *core.Core) (bool, error) {
	slog.Debug("Command Stop")
	core.SendStop()
	return false, nil
}

// Execute instructions one at a time, printing each before it runs.
// Only valid while the machine is halted.
func step(line *cmdLine, core *core.Core) (bool, error) {
	if core.Running() {
		return false, errors.New("machine is running, stop it first")
	}

	count := uint32(1)
	if value, ok := line.getNumber(); ok {
		count = value
	}

	for i := uint32(0); i < count; i++ {
		pc := cpu.PC()
		word, err := mem.Load32(pc)
		if err != nil {
			return false, err
		}
		fmt.Printf("%08x: %s\n", pc, dis.Disassemble(decoder.Decode(word)))
		if err := cpu.CycleCPU(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// Print the processor state.
func registers(_ *cmdLine, core *core.Core) (bool, error) {
	if core.Running() {
		return false, errors.New("machine is running, stop it first")
	}

	fmt.Printf("PC: %08x  SR: %08x\n", cpu.PC(), cpu.Status())
	for i := uint32(0); i < 32; i += 4 {
		fmt.Printf("$%-2d %08x  $%-2d %08x  $%-2d %08x  $%-2d %08x\n",
			i, cpu.Register(i), i+1, cpu.Register(i+1),
			i+2, cpu.Register(i+2), i+3, cpu.Register(i+3))
	}
	return false, nil
}

// Display words of memory through the bus.
func examine(line *cmdLine, core *core.Core) (bool, error) {
	if core.Running() {
		return false, errors.New("machine is running, stop it first")
	}

	addr, ok := line.getNumber()
	if !ok {
		return false, errors.New("examine needs an address")
	}
	count := uint32(1)
	if value, ok := line.getNumber(); ok {
		count = value
	}

	for i := uint32(0); i < count; i++ {
		word, err := mem.Load32(addr + i*4)
		if err != nil {
			return false, err
		}
		fmt.Printf("%08x: %08x\n", addr+i*4, word)
	}
	return false, nil
}

// Store one word through the bus.
func deposit(line *cmdLine, core *core.Core) (bool, error) {
	if core.Running() {
		return false, errors.New("machine is running, stop it first")
	}

	addr, ok := line.getNumber()
	if !ok {
		return false, errors.New("deposit needs an address")
	}
	value, ok := line.getNumber()
	if !ok {
		return false, errors.New("deposit needs a value")
	}
	return false, mem.Store32(addr, value)
}

// Print or move the program counter.
func setPC(line *cmdLine, core *core.Core) (bool, error) {
	if core.Running() {
		return false, errors.New("machine is running, stop it first")
	}

	if value, ok := line.getNumber(); ok {
		cpu.SetPC(value)
	}
	fmt.Printf("PC: %08x\n", cpu.PC())
	return false, nil
}

// Leave the monitor and shut down.
func quit(_ *cmdLine, _ *core.Core) (bool, error) {
	slog.Debug("Command Quit")
	return true, nil
}

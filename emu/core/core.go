/*
 * PSX - Emulator core run loop.
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

package core

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	cpu "github.com/rcornwell/PSX/emu/cpu"
	"github.com/rcornwell/PSX/emu/master"
)

type Core struct {
	wg      sync.WaitGroup
	done    chan struct{}      // Signal to shut down the emulator.
	fatal   chan error         // First fatal CPU error.
	running atomic.Bool        // CPU free running or halted.
	master  chan master.Packet // Messages from frontends.
}

// Create instance of the emulator core.
func NewCPU(master chan master.Packet) *Core {
	return &Core{
		master: master,
		done:   make(chan struct{}),
		fatal:  make(chan error, 1),
	}
}

// Start runs the CPU until shut down. While halted the loop blocks
// waiting for packets, so monitor commands own the machine state.
func (core *Core) Start() {
	core.wg.Add(1)
	defer core.wg.Done()
	cpu.InitializeCPU()

	for {
		if core.running.Load() {
			if err := cpu.CycleCPU(); err != nil {
				slog.Error(err.Error())
				core.running.Store(false)
				select {
				case core.fatal <- err:
				default:
				}
			}
			select {
			case <-core.done:
				slog.Info("Shutdown CPU core")
				return
			case packet := <-core.master:
				core.processPacket(packet)
			default:
			}
			continue
		}

		select {
		case <-core.done:
			slog.Info("Shutdown CPU core")
			return
		case packet := <-core.master:
			core.processPacket(packet)
		}
	}
}

// Stop a running core.
func (core *Core) Stop() {
	close(core.done)
	done := make(chan struct{})
	go func() {
		core.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(time.Second):
		slog.Warn("Timed out waiting for CPU to finish.")
		return
	}
}

// Fatal delivers the first fatal CPU error.
func (core *Core) Fatal() <-chan error {
	return core.fatal
}

// Running reports whether the CPU is free running.
func (core *Core) Running() bool {
	return core.running.Load()
}

// SendStart asks the core to let the CPU free run.
func (core *Core) SendStart() {
	core.master <- master.Packet{Msg: master.Start}
}

// SendStop asks the core to halt the CPU.
func (core *Core) SendStop() {
	core.master <- master.Packet{Msg: master.Stop}
}

// Process a packet sent to the core.
func (core *Core) processPacket(packet master.Packet) {
	switch packet.Msg {
	case master.Start:
		core.running.Store(true)
	case master.Stop:
		core.running.Store(false)
	}
}

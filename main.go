/*
 * PSX - Main process.
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

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"
	"github.com/rcornwell/PSX/command/reader"
	config "github.com/rcornwell/PSX/config/configparser"
	"github.com/rcornwell/PSX/emu/bios"
	"github.com/rcornwell/PSX/emu/core"
	cpu "github.com/rcornwell/PSX/emu/cpu"
	"github.com/rcornwell/PSX/emu/master"
	mem "github.com/rcornwell/PSX/emu/memory"
	"github.com/rcornwell/PSX/util/debug"
	logger "github.com/rcornwell/PSX/util/logger"
)

var Logger *slog.Logger

func main() {
	optBios := getopt.StringLong("bios", 'b', "", "BIOS ROM image")
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Trace each instruction")
	optMonitor := getopt.BoolLong("monitor", 'm', "Interactive monitor")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, *optDebug))
	slog.SetDefault(Logger)

	Logger.Info("PSX Started")

	biosPath := *optBios
	config.RegisterOption("BIOS", func(value string) error {
		if biosPath == "" {
			biosPath = value
		}
		return nil
	})

	if *optConfig != "" {
		if err := config.LoadConfigFile(*optConfig); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}

	if biosPath == "" {
		Logger.Error("Please specify a BIOS ROM image")
		os.Exit(1)
	}

	mem.Initialize()
	rom, err := bios.Load(biosPath)
	if err != nil {
		Logger.Error("Failed to load bios: " + err.Error())
		os.Exit(1)
	}
	mem.LoadBios(rom)

	cpu.SetTrace(*optDebug || debug.Active("INST"))

	masterChannel := make(chan master.Packet)

	// Create new routine to run the CPU.
	c := core.NewCPU(masterChannel)
	go c.Start()

	// With a monitor the machine starts halted and the console owns it.
	if *optMonitor {
		reader.ConsoleReader(c)
		Logger.Info("Shutting down CPU")
		c.Stop()
		return
	}

	// Free run until a fatal error or a quit signal.
	c.SendStart()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		Logger.Info("Got quit signal")
		c.Stop()
	case err := <-c.Fatal():
		c.Stop()
		Logger.Error("Machine stopped: " + err.Error())
		os.Exit(1)
	}
}

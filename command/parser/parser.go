/*
 * PSX - Monitor command parser.
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
	"strconv"
	"strings"
	"unicode"

	core "github.com/rcornwell/PSX/emu/core"
)

type cmd struct {
	name    string // Command name.
	min     int    // Minimum match size.
	process func(*cmdLine, *core.Core) (bool, error)
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

// Execute the command line given.
func ProcessCommand(commandLine string, core *core.Core) (bool, error) {
	line := cmdLine{line: commandLine}
	command := line.getWord()
	if command == "" {
		return false, nil
	}

	match := matchList(command)
	if len(match) == 0 {
		return false, errors.New("command not found: " + command)
	}

	if len(match) > 1 {
		return false, errors.New("unique command not found: " + command)
	}

	return match[0].process(&line, core)
}

// Called to complete a command line, during line editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	matchList := matchList(name)
	matches := make([]string, len(matchList))
	for i, m := range matchList {
		matches[i] = m.name
	}

	return matches
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) > len(match.name) {
		return false
	}
	for l := 0; l < len(command); l++ {
		if match.name[l] != command[l] {
			return false
		}
	}
	return len(command) >= match.min
}

// Check if command matches one of the commands.
func matchList(command string) []cmd {
	matches := []cmd{}
	if command == "" {
		return matches
	}
	for _, c := range cmdList {
		if matchCommand(c, command) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Skip forward over line until none whitespace character found.
func (line *cmdLine) skipSpace() {
	for line.pos < len(line.line) {
		if !unicode.IsSpace(rune(line.line[line.pos])) {
			return
		}
		line.pos++
	}
}

// Check if at end of line.
func (line *cmdLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}
	return line.line[line.pos] == '#'
}

// Get next whitespace separated word, lower cased.
func (line *cmdLine) getWord() string {
	line.skipSpace()
	if line.isEOL() {
		return ""
	}

	value := ""
	for line.pos < len(line.line) {
		by := line.line[line.pos]
		if unicode.IsSpace(rune(by)) || by == '#' {
			break
		}
		value += string(by)
		line.pos++
	}
	return strings.ToLower(value)
}

// Get a hexadecimal argument, with or without a 0x prefix.
func (line *cmdLine) getNumber() (uint32, bool) {
	word := line.getWord()
	if word == "" {
		return 0, false
	}
	word = strings.TrimPrefix(word, "0x")
	value, err := strconv.ParseUint(word, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(value), true
}

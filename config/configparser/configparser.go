/*
 * PSX - Configuration file parser.
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

package configparser

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <option> <whitespace> <value>
 * <option> ::= <string>
 * <value> ::= <string> | '"' *(<letter> | <whitespace>) '"'
 *
 * Options are registered by the packages that consume them, from init
 * functions or during startup.
 */

// Option processing routine.
type optionDef struct {
	process func(value string) error
}

var options = map[string]optionDef{}

var lineNumber int

// RegisterOption should be called before LoadConfigFile.
func RegisterOption(name string, fn func(value string) error) {
	name = strings.ToUpper(name)
	slog.Debug("Registering option: " + name)
	options[name] = optionDef{process: fn}
}

// Process one configuration line.
func parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name := line
	value := ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		name = line[:i]
		value = strings.TrimSpace(line[i+1:])
	}
	value = strings.Trim(value, "\"")

	option, ok := options[strings.ToUpper(name)]
	if !ok {
		return fmt.Errorf("line %d: unknown option: %s", lineNumber, name)
	}
	if err := option.process(value); err != nil {
		return fmt.Errorf("line %d: %w", lineNumber, err)
	}
	return nil
}

// LoadConfigFile reads a configuration file, processing each registered
// option as it is seen.
func LoadConfigFile(fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNumber = 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		if err := parseLine(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

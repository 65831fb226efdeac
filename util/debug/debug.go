/*
 * PSX - Debug output helpers.
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

package debug

import (
	"fmt"
	"log/slog"
	"strings"

	config "github.com/rcornwell/PSX/config/configparser"
)

// Debug modules that can be enabled from the configuration file.
var debugOption = map[string]bool{
	"INST": false, // Instruction execution trace.
	"MEM":  false, // Memory access diagnostics.
	"IO":   false, // Device register writes.
}

// Active reports whether debug output for a module is enabled.
func Active(module string) bool {
	return debugOption[module]
}

// SetOption enables one debug module.
func SetOption(module string) error {
	module = strings.ToUpper(strings.TrimSpace(module))
	if _, ok := debugOption[module]; !ok {
		return fmt.Errorf("unknown debug option: %s", module)
	}
	debugOption[module] = true
	return nil
}

// Generic debug message, dropped unless the module is enabled.
func Debugf(module string, format string, a ...interface{}) {
	if debugOption[module] {
		slog.Debug(module + ": " + fmt.Sprintf(format, a...))
	}
}

// Register the DEBUG configuration option.
func init() {
	config.RegisterOption("DEBUG", func(value string) error {
		for _, module := range strings.Split(value, ",") {
			if err := SetOption(module); err != nil {
				return err
			}
		}
		return nil
	})
}

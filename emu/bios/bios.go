/*
 * PSX - BIOS ROM image.
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

package bios

import (
	"fmt"
	"os"
)

// ImageSize is the size of every PlayStation BIOS ROM, 512 KiB.
const ImageSize = 512 * 1024

// Bios holds the boot ROM. The image is installed once and never written.
type Bios struct {
	data []byte
}

// New wraps a ROM image, which must be exactly ImageSize bytes.
func New(image []byte) (*Bios, error) {
	if len(image) != ImageSize {
		return nil, fmt.Errorf("INVALID_BIOS_SIZE (%d bytes, expected %d)", len(image), ImageSize)
	}
	return &Bios{data: image}, nil
}

// Load reads a ROM image from a file.
func Load(path string) (*Bios, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(image)
}

// Blank returns an all zero image, used before a ROM is installed.
func Blank() *Bios {
	return &Bios{data: make([]byte, ImageSize)}
}

// Load32 reads a little endian word. Offset must be word aligned and in
// range, the memory bus guarantees both.
func (b *Bios) Load32(offset uint32) uint32 {
	return uint32(b.data[offset]) |
		uint32(b.data[offset+1])<<8 |
		uint32(b.data[offset+2])<<16 |
		uint32(b.data[offset+3])<<24
}

//go:build mage

package main

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// countNonBlank counts lines in r that contain something other than whitespace.
func countNonBlank(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			n++
		}
	}
	return n, scanner.Err()
}

// countWords counts whitespace-separated tokens in data.
func countWords(data []byte) int {
	return len(strings.FieldsFunc(string(data), unicode.IsSpace))
}

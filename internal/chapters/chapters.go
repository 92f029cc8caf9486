// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chapters extracts chapter headings from markdown documents.
// A chapter heading is a line that starts with a single '#', optional
// whitespace, and the word "Chapter" in any letter case.
package chapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

const keyword = "chapter"

// isSpace matches Unicode whitespace plus the information separators
// U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsChapterHeading reports whether line is a chapter heading line: '#' at
// column one, any whitespace, then "chapter" in any case not followed by
// a letter, digit or underscore. "Chapters" and "Chapterñ" do not match.
func IsChapterHeading(line string) bool {
	rest, ok := strings.CutPrefix(line, "#")
	if !ok {
		return false
	}
	rest = strings.TrimLeftFunc(rest, isSpace)
	if len(rest) < len(keyword) || !strings.EqualFold(rest[:len(keyword)], keyword) {
		return false
	}
	next, size := utf8.DecodeRuneInString(rest[len(keyword):])
	return size == 0 || !isWordRune(next)
}

// Title derives the chapter title from a heading line: trim, drop one
// leading '#', trim again. Further '#' characters are kept.
func Title(line string) string {
	s := strings.TrimFunc(line, isSpace)
	s = strings.TrimPrefix(s, "#")
	return strings.TrimFunc(s, isSpace)
}

// Scan reads r line by line and returns the titles of all chapter
// heading lines in document order. Lines end at "\n", "\r\n" or a lone
// "\r" and have no length limit. It returns an empty, non-nil slice
// when nothing matches. On a read error it returns nil and the error.
func Scan(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	titles := []string{}
	for {
		chunk, err := br.ReadString('\n')
		if chunk != "" {
			for _, line := range strings.Split(strings.TrimSuffix(chunk, "\n"), "\r") {
				if IsChapterHeading(line) {
					titles = append(titles, Title(line))
				}
			}
		}
		if err == io.EOF {
			return titles, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Extract opens the file at path, scans it for chapter headings, and
// writes "Extracted N chapters from <path>" to w. Failures are returned
// as *Error with KindFileNotFound or KindIOFailure; no partial result is
// returned alongside an error.
func Extract(path string, w io.Writer) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- caller-provided document path
	if err != nil {
		return nil, newError(path, err)
	}
	defer f.Close()

	titles, err := Scan(f)
	if err != nil {
		return nil, newError(path, err)
	}

	fmt.Fprintf(w, "Extracted %d chapters from %s\n", len(titles), path)
	return titles, nil
}

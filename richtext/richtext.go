// File: richtext.go
// Title: Attributed Strings
// Description: Attributed string model, HTML conversion and lipgloss
//              rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Lists, preformatted text and rendering

package richtext

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attributes of a run of text
type Attributes struct {
	Bold      bool
	Italic    bool
	Underline bool
	Code      bool
	Link      string
	Heading   int // 1 to 6, 0 outside headings
}

// IsPlain reports whether no attribute is set
func (a Attributes) IsPlain() bool {
	return a == Attributes{}
}

// Run is a byte range [Start, End) of the text sharing attributes
type Run struct {
	Start, End int
	Attributes
}

// AttributedString is text with attribute runs covering it completely
type AttributedString struct {
	text string
	runs []Run
}

// String returns the plain text
func (s *AttributedString) String() string {
	return s.text
}

// Len returns the text length in bytes
func (s *AttributedString) Len() int {
	return len(s.text)
}

// Runs returns a copy of the attribute runs in order
func (s *AttributedString) Runs() []Run {
	out := make([]Run, len(s.runs))
	copy(out, s.runs)
	return out
}

// Text returns the text covered by r
func (s *AttributedString) Text(r Run) string {
	return s.text[r.Start:r.End]
}

var (
	linkColor    = lipgloss.Color("#3B82F6")
	codeColor    = lipgloss.Color("#F59E0B")
	headingColor = lipgloss.Color("#8B5CF6")
)

func (a Attributes) style() lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(a.Bold || a.Heading > 0).
		Italic(a.Italic).
		Underline(a.Underline || a.Link != "")
	switch {
	case a.Link != "":
		s = s.Foreground(linkColor)
	case a.Code:
		s = s.Foreground(codeColor)
	case a.Heading > 0:
		s = s.Foreground(headingColor)
	}
	return s
}

// Render styles every run for the terminal. Lines are rendered separately so
// that no padding is introduced.
func (s *AttributedString) Render() string {
	var b strings.Builder
	for _, r := range s.runs {
		text := s.Text(r)
		if r.IsPlain() {
			b.WriteString(text)
			continue
		}
		style := r.style()
		for i, line := range strings.Split(text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}

// FromHTML converts an HTML fragment or document. It reports false for
// input that is not valid UTF-8 or that the tokenizer rejects.
func FromHTML(src string) (*AttributedString, bool) {
	if !utf8.ValidString(src) {
		return nil, false
	}

	var bl builder
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return nil, false
			}
			return bl.finish(), true
		case html.TextToken:
			bl.text(string(z.Text()))
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			bl.start(atom.Lookup(name), attrs(z, hasAttr))
		case html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			a := atom.Lookup(name)
			bl.start(a, attrs(z, hasAttr))
			bl.end(a)
		case html.EndTagToken:
			name, _ := z.TagName()
			bl.end(atom.Lookup(name))
		}
	}
}

func attrs(z *html.Tokenizer, more bool) map[string]string {
	if !more {
		return nil
	}
	out := make(map[string]string)
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		out[string(key)] = string(val)
	}
	return out
}

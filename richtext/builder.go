// File: builder.go
// Title: HTML Text Builder
// Description: Tracks open elements while tokens are converted into text
//              and attribute runs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Lists and preformatted text

package richtext

import (
	"strings"

	"golang.org/x/net/html/atom"
)

type builder struct {
	b    strings.Builder
	runs []Run

	bold, italic, underline, code int
	links                         []string
	headings                      []int
	pre                           int
	skip                          int
}

// block elements start and end on their own line
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Section: true, atom.Article: true,
	atom.Header: true, atom.Footer: true, atom.Nav: true, atom.Aside: true,
	atom.Blockquote: true, atom.Pre: true, atom.Ul: true, atom.Ol: true,
	atom.Li: true, atom.Table: true, atom.Tr: true, atom.Hr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// elements whose content is never displayed
var hiddenElements = map[atom.Atom]bool{
	atom.Head: true, atom.Script: true, atom.Style: true, atom.Title: true, atom.Template: true,
}

var headingLevels = map[atom.Atom]int{
	atom.H1: 1, atom.H2: 2, atom.H3: 3, atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

func (bl *builder) attrs() Attributes {
	a := Attributes{
		Bold:      bl.bold > 0,
		Italic:    bl.italic > 0,
		Underline: bl.underline > 0,
		Code:      bl.code > 0,
	}
	if n := len(bl.links); n > 0 {
		a.Link = bl.links[n-1]
	}
	if n := len(bl.headings); n > 0 {
		a.Heading = bl.headings[n-1]
	}
	return a
}

func (bl *builder) write(s string, a Attributes) {
	if s == "" {
		return
	}
	start := bl.b.Len()
	bl.b.WriteString(s)
	if n := len(bl.runs); n > 0 && bl.runs[n-1].End == start && bl.runs[n-1].Attributes == a {
		bl.runs[n-1].End = bl.b.Len()
		return
	}
	bl.runs = append(bl.runs, Run{Start: start, End: bl.b.Len(), Attributes: a})
}

func (bl *builder) lastByte() byte {
	s := bl.b.String()
	if s == "" {
		return '\n'
	}
	return s[len(s)-1]
}

func (bl *builder) newline() {
	if bl.b.Len() > 0 && bl.lastByte() != '\n' {
		bl.write("\n", Attributes{})
	}
}

func (bl *builder) text(s string) {
	if bl.skip > 0 {
		return
	}
	if bl.pre > 0 {
		bl.write(s, bl.attrs())
		return
	}

	collapsed := strings.Join(strings.Fields(s), " ")
	if s != "" && isSpace(s[0]) {
		collapsed = " " + collapsed
	}
	if len(s) > 1 && isSpace(s[len(s)-1]) && collapsed != " " {
		collapsed += " "
	}
	if last := bl.lastByte(); last == ' ' || last == '\n' || last == '\t' {
		collapsed = strings.TrimLeft(collapsed, " ")
	}
	bl.write(collapsed, bl.attrs())
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (bl *builder) start(a atom.Atom, attrs map[string]string) {
	if hiddenElements[a] {
		bl.skip++
		return
	}
	if bl.skip > 0 {
		return
	}
	if blockElements[a] {
		bl.newline()
	}

	switch a {
	case atom.B, atom.Strong:
		bl.bold++
	case atom.I, atom.Em, atom.Cite:
		bl.italic++
	case atom.U, atom.Ins:
		bl.underline++
	case atom.Code, atom.Kbd, atom.Samp:
		bl.code++
	case atom.Pre:
		bl.pre++
		bl.code++
	case atom.A:
		bl.links = append(bl.links, attrs["href"])
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		bl.headings = append(bl.headings, headingLevels[a])
	case atom.Br:
		bl.write("\n", Attributes{})
	case atom.Li:
		bl.write("• ", Attributes{})
	case atom.Img:
		if alt := attrs["alt"]; alt != "" {
			bl.text(alt)
		}
	case atom.Td, atom.Th:
		if last := bl.lastByte(); last != '\n' && last != '\t' {
			bl.write("\t", Attributes{})
		}
	}
}

func (bl *builder) end(a atom.Atom) {
	if hiddenElements[a] {
		if bl.skip > 0 {
			bl.skip--
		}
		return
	}
	if bl.skip > 0 {
		return
	}

	switch a {
	case atom.B, atom.Strong:
		bl.bold = max(bl.bold-1, 0)
	case atom.I, atom.Em, atom.Cite:
		bl.italic = max(bl.italic-1, 0)
	case atom.U, atom.Ins:
		bl.underline = max(bl.underline-1, 0)
	case atom.Code, atom.Kbd, atom.Samp:
		bl.code = max(bl.code-1, 0)
	case atom.Pre:
		bl.pre = max(bl.pre-1, 0)
		bl.code = max(bl.code-1, 0)
	case atom.A:
		if n := len(bl.links); n > 0 {
			bl.links = bl.links[:n-1]
		}
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		if n := len(bl.headings); n > 0 {
			bl.headings = bl.headings[:n-1]
		}
	}

	if blockElements[a] {
		bl.newline()
	}
}

// finish trims trailing whitespace and clips the runs to the text
func (bl *builder) finish() *AttributedString {
	text := strings.TrimRight(bl.b.String(), " \t\n")
	runs := make([]Run, 0, len(bl.runs))
	for _, r := range bl.runs {
		if r.Start >= len(text) {
			break
		}
		if r.End > len(text) {
			r.End = len(text)
		}
		runs = append(runs, r)
	}
	return &AttributedString{text: text, runs: runs}
}

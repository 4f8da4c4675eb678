// File: doc.go
// Title: Rich Text Package Documentation
// Description: HTML to attributed text conversion and terminal rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial package documentation

/*
Package richtext converts HTML fragments into attributed text.

FromHTML keeps the visible text of a document and records attribute runs
for inline formatting (bold, italic, underline, code, links and headings).
Block elements start new lines, whitespace collapses the way a browser
collapses it outside <pre>, and entities are decoded.

	s, ok := richtext.FromHTML("<p>Hello <b>world</b></p>")
	if ok {
		fmt.Println(s.String()) // Hello world
		fmt.Println(s.Render()) // styled for the terminal
	}

Run offsets are byte offsets into String().
*/
package richtext

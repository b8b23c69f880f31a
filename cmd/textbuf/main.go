// Package main is a small interactive demo of the textbuf editing
// contract: a terminal text area whose every keystroke goes through
// the TextBuffer operations.
//
// Keys: arrows move, Backspace/Delete remove characters, Ctrl-W and
// Alt-D remove words, Ctrl-U and Ctrl-K remove to the paragraph start
// and end, Shift-Tab decreases indentation, Ctrl-Q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textbuf/boundary"
	"github.com/dshills/textbuf/buffer"
	"github.com/dshills/textbuf/cursor"
	"github.com/dshills/textbuf/layout"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		limit int
		fixed bool
	)
	flag.IntVar(&limit, "limit", 0, "Maximum number of characters (0 = unlimited)")
	flag.BoolVar(&fixed, "fixed", false, "Use the fixed-capacity String64 storage")
	flag.Parse()

	var buf buffer.TextBuffer
	if fixed {
		s64 := buffer.NewString64()
		buf = &s64
	} else {
		buf = new(buffer.String)
	}
	if args := flag.Args(); len(args) > 0 {
		buffer.ReplaceWith(buf, strings.Join(args, " "))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	ed := &editor{
		screen: screen,
		buf:    buf,
		limit:  charLimit(limit),
	}
	ed.loop()
	return 0
}

func charLimit(limit int) int {
	if limit <= 0 {
		return buffer.NoCharLimit
	}
	return limit
}

type editor struct {
	screen tcell.Screen
	buf    buffer.TextBuffer
	cur    cursor.CCursor
	limit  int
}

func (e *editor) loop() {
	for {
		e.draw()
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			if !e.handleKey(ev) {
				return
			}
		}
	}
}

func (e *editor) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return false
	case tcell.KeyLeft:
		e.cur = e.cur.Sub(1)
	case tcell.KeyRight:
		if e.cur.Index < buffer.CharCount(e.buf) {
			e.cur = e.cur.Add(1)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.cur = buffer.DeletePreviousChar(e.buf, e.cur)
	case tcell.KeyDelete:
		e.cur = buffer.DeleteNextChar(e.buf, e.cur)
	case tcell.KeyCtrlW:
		e.cur = buffer.DeletePreviousWord(e.buf, e.cur)
	case tcell.KeyCtrlU:
		e.cur = buffer.DeleteParagraphBeforeCursor(e.buf, e.layout(), e.selection())
	case tcell.KeyCtrlK:
		e.cur = buffer.DeleteParagraphAfterCursor(e.buf, e.layout(), e.selection())
	case tcell.KeyBacktab:
		buffer.DecreaseIndentation(e.buf, &e.cur)
	case tcell.KeyEnter:
		buffer.InsertTextAt(e.buf, &e.cur, "\n", e.limit)
	case tcell.KeyTab:
		buffer.InsertTextAt(e.buf, &e.cur, "\t", e.limit)
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			if ev.Rune() == 'd' {
				e.cur = buffer.DeleteNextWord(e.buf, e.cur)
			}
			break
		}
		buffer.InsertTextAt(e.buf, &e.cur, string(ev.Rune()), e.limit)
	}
	return true
}

func (e *editor) layout() *layout.Plain {
	return layout.NewPlain(e.buf.String())
}

// selection resolves the current cursor into a collapsed selection
// carrying its paragraph position, which the paragraph deletes need.
func (e *editor) selection() cursor.Selection {
	c := e.layout().CursorAt(e.cur.Index)
	c.CCursor.PreferNextRow = e.cur.PreferNextRow
	return cursor.CursorSelection(c)
}

func (e *editor) draw() {
	e.screen.Clear()
	e.drawStatus()

	style := tcell.StyleDefault
	for y, line := range strings.Split(e.buf.String(), "\n") {
		x := 0
		for _, g := range boundary.Graphemes(line) {
			if g == "\t" {
				x += buffer.TabSize
				continue
			}
			r := []rune(g)
			e.screen.SetContent(x, y+1, r[0], r[1:], style)
			x += boundary.StringWidth(g)
		}
	}

	col, row := e.cursorPosition()
	e.screen.ShowCursor(col, row+1)
	e.screen.Show()
}

func (e *editor) drawStatus() {
	text := e.buf.String()
	msg := fmt.Sprintf(" chars=%d bytes=%d cursor=%d | ^Q quit ^W word ^U/^K paragraph S-Tab unindent",
		buffer.CharCount(e.buf), len(text), e.cur.Index)

	style := tcell.StyleDefault.Reverse(true)
	width, _ := e.screen.Size()
	x := 0
	for _, r := range msg {
		e.screen.SetContent(x, 0, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		e.screen.SetContent(x, 0, ' ', nil, style)
	}
}

// cursorPosition converts the character cursor into screen cells:
// the paragraph number is the row, and the column is the display
// width of the line prefix before the cursor, with tabs expanded.
func (e *editor) cursorPosition() (col, row int) {
	text := e.buf.String()
	lay := layout.NewPlain(text)
	c := lay.CursorAt(e.cur.Index)
	start := lay.ParagraphStart(c.PCursor.Paragraph)

	prefix := boundary.SliceCharRange(text, start.CCursor.Index, e.cur.Index)
	for _, g := range boundary.Graphemes(prefix) {
		if g == "\t" {
			col += buffer.TabSize
			continue
		}
		col += boundary.StringWidth(g)
	}
	return col, c.PCursor.Paragraph
}

package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/input"
)

// hostCommand is a key handled by the host instead of the paddles
type hostCommand uint8

const (
	cmdNone hostCommand = iota
	cmdQuit
	cmdPause
	cmdRestart
)

// command classifies host control keys; control keys shadow paddle bindings
func command(ev *tcell.EventKey) hostCommand {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			return cmdQuit
		case ' ':
			return cmdPause
		case 'r':
			return cmdRestart
		}
	}
	return cmdNone
}

// keyName maps a terminal key to its input name, "" when unmapped
func keyName(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if r == ' ' {
			return input.KeySpace
		}
		if unicode.IsPrint(r) {
			return input.Key(string(r))
		}
	}
	return ""
}

package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/pong/input"
)

// keyCodes maps input key names to ebiten keys
var keyCodes = map[input.Key]ebiten.Key{
	input.KeyUp:   ebiten.KeyArrowUp,
	input.KeyDown: ebiten.KeyArrowDown,
	"left":        ebiten.KeyArrowLeft,
	"right":       ebiten.KeyArrowRight,
	"a":           ebiten.KeyA,
	"b":           ebiten.KeyB,
	"c":           ebiten.KeyC,
	"d":           ebiten.KeyD,
	"e":           ebiten.KeyE,
	"f":           ebiten.KeyF,
	"g":           ebiten.KeyG,
	"h":           ebiten.KeyH,
	"i":           ebiten.KeyI,
	"j":           ebiten.KeyJ,
	"k":           ebiten.KeyK,
	"l":           ebiten.KeyL,
	"m":           ebiten.KeyM,
	"n":           ebiten.KeyN,
	"o":           ebiten.KeyO,
	"p":           ebiten.KeyP,
	"t":           ebiten.KeyT,
	"u":           ebiten.KeyU,
	"v":           ebiten.KeyV,
	"w":           ebiten.KeyW,
	"x":           ebiten.KeyX,
	"y":           ebiten.KeyY,
	"z":           ebiten.KeyZ,
	"s":           ebiten.KeyS,
}

// bindKeys resolves paddle key names; names without an ebiten key
// (including q and r, which the host reserves) are skipped
func bindKeys(names ...string) map[ebiten.Key]input.Key {
	bindings := make(map[ebiten.Key]input.Key, len(names))
	for _, name := range names {
		k := input.Key(name)
		if code, ok := keyCodes[k]; ok {
			bindings[code] = k
		}
	}
	return bindings
}

// reseedKeys presses every bound key that is physically held
func reseedKeys(keys *input.KeySet, bindings map[ebiten.Key]input.Key, held func(ebiten.Key) bool) {
	for code, name := range bindings {
		if held(code) {
			keys.Press(name)
		}
	}
}

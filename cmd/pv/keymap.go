package main

import (
	"os"

	"golang.org/x/mobile/event/key"

	"dasa.cc/porter/pixelsort"
)

type KeyProc struct {
	Func func()
	Cond func(key.Event) bool
}

func KeyPressed(ev key.Event) bool  { return ev.Direction != key.DirRelease }
func KeyReleased(ev key.Event) bool { return ev.Direction == key.DirRelease }

var keymap = map[key.Code]KeyProc{
	key.Code1: {Func: func() { setBy(pixelsort.Luminance) }, Cond: KeyReleased},
	key.Code2: {Func: func() { setBy(pixelsort.Hue) }, Cond: KeyReleased},
	key.Code3: {Func: func() { setBy(pixelsort.Saturation) }, Cond: KeyReleased},

	key.CodeLeftArrow:  {Func: func() { stepLo(-1) }, Cond: KeyPressed},
	key.CodeRightArrow: {Func: func() { stepLo(+1) }, Cond: KeyPressed},
	key.CodeDownArrow:  {Func: func() { stepHi(-1) }, Cond: KeyPressed},
	key.CodeUpArrow:    {Func: func() { stepHi(+1) }, Cond: KeyPressed},

	key.CodeA: {Func: func() { stepLo(-10) }, Cond: KeyPressed},
	key.CodeD: {Func: func() { stepLo(+10) }, Cond: KeyPressed},
	key.CodeS: {Func: func() { stepHi(-10) }, Cond: KeyPressed},
	key.CodeW: {Func: func() { stepHi(+10) }, Cond: KeyPressed},

	key.CodeR: {Func: reset, Cond: KeyReleased},

	key.CodeN: {Func: func() { cycle(1) }, Cond: KeyReleased},
	key.CodeP: {Func: func() { cycle(-1) }, Cond: KeyReleased},

	key.CodeReturnEnter: {Func: save, Cond: KeyReleased},

	key.CodeEscape: {
		Func: func() { os.Exit(0) },
		Cond: KeyReleased,
	},
}

// handle reports whether ev changed state and the frame needs repainting.
func handle(ev key.Event) bool {
	kp, ok := keymap[ev.Code]
	if !ok {
		return false
	}
	if kp.Cond != nil && !kp.Cond(ev) {
		return false
	}
	kp.Func()
	return true
}

package main

import (
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"dasa.cc/porter/pixelsort"
)

var completer = readline.NewPrefixCompleter(
	readline.PcItem("by",
		readline.PcItem("luminance"),
		readline.PcItem("hue"),
		readline.PcItem("saturation"),
	),
	readline.PcItem("lo"),
	readline.PcItem("hi"),
	readline.PcItem("show"),
	readline.PcItem("sort"),
	readline.PcItem("exit"),
)

// shell runs an interactive tuning loop over the same pipeline the flags
// drive. Threshold edits clamp against each other and the active property's
// domain rather than erroring, the way the preview sliders behave.
func shell(by pixelsort.By, lo, hi uint16) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "porter: ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	log.SetOutput(rl.Stderr())

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		} else if err == io.EOF {
			return
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit":
			return
		case "show":
			log.Printf("%v %v:%v", by, lo, hi)
		case "by":
			if len(args) != 2 {
				log.Println("usage: by luminance|hue|saturation")
				continue
			}
			p, err := pixelsort.ParseBy(args[1])
			if err != nil {
				log.Println(err)
				continue
			}
			by = p
			if hi > by.Max() {
				hi = by.Max()
			}
			if lo > hi {
				lo = hi
			}
		case "lo":
			if n, ok := number(args); ok {
				lo = clamp(n, 0, int(hi))
			}
		case "hi":
			if n, ok := number(args); ok {
				hi = clamp(n, int(lo), int(by.Max()))
			}
		case "sort":
			if len(args) == 1 {
				log.Println("usage: sort [images]")
				continue
			}
			for _, path := range args[1:] {
				if err := process(path, by, lo, hi); err != nil {
					log.Printf("%s: %v", path, err)
				}
			}
		default:
			log.Printf("unknown command %q", args[0])
		}
	}
}

func number(args []string) (int, bool) {
	if len(args) != 2 {
		log.Printf("usage: %s n", args[0])
		return 0, false
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		log.Println(err)
		return 0, false
	}
	return n, true
}

func clamp(v, lo, hi int) uint16 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return uint16(v)
}

// Command cellterm-demo is a minimal "type to place cells" program: it
// opens the terminal, echoes every printable character you type at a
// moving cursor position, and quits on Ctrl-C or 'q'.
package main

import (
	"log"
	"os"

	"cellterm"
)

func main() {
	s := cellterm.New(os.Stdout, os.Stdin).WithInputMode(cellterm.InputEsc)
	if err := s.Init(); err != nil {
		log.Fatal(err)
	}
	defer s.Shutdown()

	x, y := 0, 0
	for {
		ev, status := s.PollEvent()
		if status != cellterm.EventDelivered {
			continue
		}

		switch ev.Type {
		case cellterm.EventResize:
			x, y = 0, 0
		case cellterm.EventKey:
			switch {
			case ev.Key == cellterm.KeyCtrlC || ev.Ch == 'q':
				return
			case ev.Key == cellterm.KeyEnter:
				x, y = 0, y+1
			case ev.Ch != 0:
				s.ChangeCell(x, y, ev.Ch, cellterm.ColorGreen, cellterm.ColorBlack)
				x++
			}
		}

		if x >= s.Width() {
			x, y = 0, y+1
		}
		if y >= s.Height() {
			y = 0
		}

		if err := s.Present(); err != nil {
			log.Fatal(err)
		}
	}
}

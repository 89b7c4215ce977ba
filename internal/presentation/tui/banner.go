package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the markov ASCII banner with a cool blue gradient.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String("                      _             ").Foreground(p.Color("#38bdf8"))
	s2 := termenv.String("  _ __ ___   __ _ _ _| | _______   __").Foreground(p.Color("#60a5fa"))
	s3 := termenv.String(" | '_ ` _ \\ / _` | '__| |/ / _ \\ \\ / /").Foreground(p.Color("#818cf8"))
	s4 := termenv.String(" | | | | | | (_| | |  |   < (_) \\ V / ").Foreground(p.Color("#a78bfa"))
	s5 := termenv.String(" |_| |_| |_|\\__,_|_|  |_|\\_\\___/ \\_/  ").Foreground(p.Color("#c084fc"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}

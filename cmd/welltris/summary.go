package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/plus3/welltris/well"
)

var (
	emph = color.New(color.FgBlue, color.Bold).SprintFunc()
	warn = color.New(color.FgYellow, color.Bold).SprintFunc()
)

func printSummary(w io.Writer, h well.History) {
	if h.Rounds == 0 {
		fmt.Fprintln(w, warn("No rounds played."))
		return
	}

	fmt.Fprintf(w, "Played %s %s.\n", emph(h.Rounds), english.PluralWord(h.Rounds, "round", ""))
	fmt.Fprintf(w, "Last score: %s\n", emph(humanize.Comma(int64(h.LastScore))))
	fmt.Fprintf(w, "Best score: %s\n", emph(humanize.Comma(int64(h.BestScore))))
}

package optkit

import (
	"fmt"
	"io"
	"strings"
)

// WriteHelp renders a GNU-style usage summary for the given options.
func WriteHelp(w io.Writer, info Info, opts []Option) {
	if len(info.Synopses) > 0 {
		fmt.Fprintf(w, "Usage: %s %s\n", info.Program, info.Synopses[0])
		for _, synopsis := range info.Synopses[1:] {
			fmt.Fprintf(w, "   or: %s %s\n", info.Program, synopsis)
		}
	} else {
		fmt.Fprintf(w, "Usage: %s [OPTION]... ARG...\n", info.Program)
	}

	fmt.Fprintf(w, "\n%s\n", info.Description)

	if len(opts) == 0 {
		return
	}

	fmt.Fprintf(w, "\nOptions:\n")

	labels := make([]string, len(opts))
	width := 0
	for i, opt := range opts {
		var b strings.Builder

		if opt.ShortName != 0 {
			fmt.Fprintf(&b, "-%c", opt.ShortName)
			if opt.LongName != "" {
				b.WriteString(", ")
			}
		} else {
			b.WriteString("    ")
		}
		if opt.LongName != "" {
			b.WriteString("--")
			b.WriteString(opt.LongName)
		}
		if opt.Flags.Has(FlagTakesArg) {
			b.WriteString("=ARG")
		}

		labels[i] = b.String()
		if len(labels[i]) > width {
			width = len(labels[i])
		}
	}

	for i, opt := range opts {
		padding := strings.Repeat(" ", width-len(labels[i]))
		fmt.Fprintf(w, "  %s%s  %s\n", labels[i], padding, opt.Description)
	}
}

// WriteVersion renders the program's version banner.
func WriteVersion(w io.Writer, info Info) {
	fmt.Fprintf(w, "%s %s\n", info.Program, info.Version)
	if info.Author != "" {
		fmt.Fprintf(w, "Copyright (C) %d %s\n", info.Year, info.Author)
	}
	if info.VersionExtra != "" {
		fmt.Fprint(w, info.VersionExtra)
	}
}

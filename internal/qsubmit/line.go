/**
 * Copyright (c) 2024 The qsubmit Authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package qsubmit

import (
	"strings"
)

type LineProcessor interface {
	Process(line string, out *[]string) error
}

// markerProcessor replaces a marker line with the generated array line.
// The match is full-line string equality, not a substring or pattern.
type markerProcessor struct {
	generated string
}

func (m *markerProcessor) Process(line string, out *[]string) error {
	*out = append(*out, m.generated)
	return nil
}

// defaultProcessor passes template lines through unchanged.
type defaultProcessor struct {
}

func (d *defaultProcessor) Process(line string, out *[]string) error {
	*out = append(*out, line)
	return nil
}

// RenderCommandArray builds the shell array assignment embedded into the
// generated script, e.g. `cmd=( "train.py" "cnn" "lr=0.01" )`.
//
// In the default mode each argument is wrapped in literal double quotes
// with no escaping; an argument containing a double quote corrupts the
// line. This reproduces the historical output byte for byte, which
// consumers may depend on. With shellEscape set, arguments are
// single-quoted with POSIX escaping instead.
func RenderCommandArray(name string, args []string, shellEscape bool) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("=( ")
	for _, arg := range args {
		if shellEscape {
			b.WriteString(shellQuote(arg))
		} else {
			b.WriteString("\"")
			b.WriteString(arg)
			b.WriteString("\"")
		}
		b.WriteString(" ")
	}
	b.WriteString(")")
	return b.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

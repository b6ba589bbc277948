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
	"testing"
)

func TestRenderCommandArray(t *testing.T) {
	testCases := []struct {
		name        string
		arrayName   string
		args        []string
		shellEscape bool
		want        string
	}{
		{
			name:      "command with arguments",
			arrayName: "cmd",
			args:      []string{"train.py", "cnn", "lr=0.01"},
			want:      `cmd=( "train.py" "cnn" "lr=0.01" )`,
		},
		{
			name:      "no arguments",
			arrayName: "cmd",
			args:      nil,
			want:      `cmd=( )`,
		},
		{
			name:      "single argument",
			arrayName: "cmd",
			args:      []string{"hostname"},
			want:      `cmd=( "hostname" )`,
		},
		{
			name:      "custom array name",
			arrayName: "jobcmd",
			args:      []string{"run.sh"},
			want:      `jobcmd=( "run.sh" )`,
		},
		{
			// Known fragility of the plain format: embedded double
			// quotes are not escaped and corrupt the line.
			name:      "embedded double quote is kept literally",
			arrayName: "cmd",
			args:      []string{`say "hi"`},
			want:      `cmd=( "say "hi"" )`,
		},
		{
			name:        "shell escape quotes safely",
			arrayName:   "cmd",
			args:        []string{"it's", "a b"},
			shellEscape: true,
			want:        `cmd=( 'it'\''s' 'a b' )`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderCommandArray(tc.arrayName, tc.args, tc.shellEscape)
			if got != tc.want {
				t.Errorf("got %q, wanted %q", got, tc.want)
			}
		})
	}
}

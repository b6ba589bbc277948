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

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tilde with path",
			input: "~/qsub.sh",
			want:  filepath.Join(HomeDir(), "qsub.sh"),
		},
		{
			name:  "bare tilde",
			input: "~",
			want:  HomeDir(),
		},
		{
			name:  "absolute path unchanged",
			input: "/etc/qsubmit.yaml",
			want:  "/etc/qsubmit.yaml",
		},
		{
			name:  "relative path unchanged",
			input: "qsub.sh",
			want:  "qsub.sh",
		},
		{
			name:  "tilde user form unchanged",
			input: "~other/qsub.sh",
			want:  "~other/qsub.sh",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExpandHome(tc.input); got != tc.want {
				t.Errorf("got %q, wanted %q", got, tc.want)
			}
		})
	}
}

func TestRemoveFileIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if ok := RemoveFileIfExists(path); !ok {
		t.Error("expected removal of an existing file to succeed")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists after removal")
	}

	// A missing file is not an error.
	if ok := RemoveFileIfExists(path); !ok {
		t.Error("expected removal of a missing file to be a no-op")
	}
}

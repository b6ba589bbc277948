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
	"QsubmitFrontEnd/internal/util"
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// AssembleScript reads the template line by line and writes the output
// file, substituting every line equal to marker with the generated array
// line. Zero or multiple marker lines are accepted as-is: zero means the
// command never appears in the output, multiple means it is duplicated.
func AssembleScript(templatePath, outputPath, marker, arrayName string, args []string, shellEscape bool) error {
	file, err := os.Open(templatePath)
	if err != nil {
		return util.WrapQsubErr(util.ErrorIO, "Failed to read the template file", err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Errorf("Failed to close %s.", file.Name())
		}
	}(file)

	markerProc := &markerProcessor{
		generated: RenderCommandArray(arrayName, args, shellEscape),
	}
	defaultProc := &defaultProcessor{}

	lines := make([]string, 0)
	markerHits := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var processor LineProcessor
		if scanner.Text() == marker {
			processor = markerProc
			markerHits++
		} else {
			processor = defaultProc
		}
		if err := processor.Process(scanner.Text(), &lines); err != nil {
			return util.WrapQsubErr(util.ErrorIO, "Failed to process the template file", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return util.WrapQsubErr(util.ErrorIO, "Failed to read the template file", err)
	}

	log.Debugf("Template %s: %d line(s), %d marker hit(s)", templatePath, len(lines), markerHits)

	// An empty template stays empty instead of gaining a newline.
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return util.WrapQsubErr(util.ErrorIO, "Failed to write the output file", err)
	}

	return nil
}

// SplitOptions splits the scheduler options string on whitespace, the way
// the invoking shell would word-split an unquoted variable.
func SplitOptions(options string) []string {
	return strings.Fields(options)
}

// InvocationLine is the audit line echoed to stdout before submission.
func InvocationLine(qsubBin, options, outputPath string) string {
	argv := append(SplitOptions(options), outputPath)
	return qsubBin + " " + strings.Join(argv, " ")
}

// Submit echoes the invocation and runs the submission program with the
// word-split options plus the output file path. The child inherits the
// standard streams, and its exit code is propagated verbatim.
func Submit(qsubBin, options, outputPath string) error {
	fmt.Println(InvocationLine(qsubBin, options, outputPath))

	argv := append(SplitOptions(options), outputPath)
	cmd := exec.Command(qsubBin, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// No diagnostic of our own beyond what the program printed.
			return &util.QsubError{Code: exitErr.ExitCode()}
		}
		return util.WrapQsubErr(util.ErrorExecuteFailed,
			fmt.Sprintf("Failed to run %s", qsubBin), err)
	}

	return nil
}

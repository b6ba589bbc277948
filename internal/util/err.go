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
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type QsubCmdError = int

// general
const (
	ErrorSuccess       QsubCmdError = 0
	ErrorExecuteFailed QsubCmdError = 1
	ErrorCmdArg        QsubCmdError = 2
	ErrorIO            QsubCmdError = 3
)

// QsubError carries the process exit code along with an optional message.
// When the submission program itself fails, Code holds its verbatim exit
// code so the wrapper exits with the same status.
type QsubError struct {
	Code    QsubCmdError
	Message string
}

func (e *QsubError) Error() string {
	return e.Message
}

func NewQsubErr(code QsubCmdError, message string) *QsubError {
	return &QsubError{Code: code, Message: message}
}

func WrapQsubErr(code QsubCmdError, message string, err error) *QsubError {
	return &QsubError{Code: code, Message: message + ": " + err.Error()}
}

// RunAndHandleExit executes the root command and converts the returned
// error into a process exit code.
func RunAndHandleExit(cmd *cobra.Command) {
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err == nil {
		os.Exit(ErrorSuccess)
	}

	var qsubErr *QsubError
	if errors.As(err, &qsubErr) {
		if qsubErr.Message != "" {
			log.Error(qsubErr.Message)
		}
		os.Exit(qsubErr.Code)
	}

	log.Error(err)
	os.Exit(ErrorExecuteFailed)
}

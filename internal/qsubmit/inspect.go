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
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags]",
	Short: "Show resolved paths and template status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		templateStatus := "ok"
		markerCount := "-"
		count, err := CountMarkerLines(config.TemplatePath, config.Marker)
		if err != nil {
			templateStatus = "unreadable"
		} else {
			markerCount = strconv.Itoa(count)
		}

		qsubStatus := "not found in PATH"
		if path, err := exec.LookPath(config.QsubBin); err == nil {
			qsubStatus = path
		}

		table := tablewriter.NewWriter(os.Stdout)
		util.SetBorderlessTable(table)
		table.SetHeader([]string{"ITEM", "VALUE", "STATUS"})
		table.AppendBulk([][]string{
			{"Template", config.TemplatePath, templateStatus},
			{"Marker", config.Marker, markerCount + " occurrence(s)"},
			{"Output", config.OutputPath, ""},
			{"QsubBin", config.QsubBin, qsubStatus},
		})
		table.Render()

		return nil
	},
}

// CountMarkerLines scans the template and counts lines exactly equal to
// the marker token.
func CountMarkerLines(templatePath, marker string) (int, error) {
	file, err := os.Open(templatePath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if scanner.Text() == marker {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", templatePath, err)
	}
	return count, nil
}

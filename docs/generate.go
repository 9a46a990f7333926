/*
 * Nuts docket
 * Copyright (C) 2026. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/nuts-foundation/nuts-docket/configuration"
	"github.com/nuts-foundation/nuts-docket/engine"
)

func main() {
	if err := generateConfigOptionsDocs("README_options.rst", engine.NewSigningEngine().FlagSet); err != nil {
		logrus.Fatal(err)
	}
}

func generateConfigOptionsDocs(fileName string, flags *pflag.FlagSet) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeOptionsTable(f, flags)
}

// writeOptionsTable writes an rst table with one row per flag, sorted on key
func writeOptionsTable(w io.Writer, flags *pflag.FlagSet) error {
	rows := [][3]string{{"Key", "Default", "Description"}}
	flags.VisitAll(func(f *pflag.Flag) {
		rows = append(rows, [3]string{f.Name, f.DefValue, f.Usage})
	})
	sort.Slice(rows[1:], func(i, j int) bool {
		return rows[i+1][0] < rows[j+1][0]
	})

	widths := [3]int{}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	border := fmt.Sprintf("%s %s %s\n", strings.Repeat("=", widths[0]), strings.Repeat("=", widths[1]), strings.Repeat("=", widths[2]))

	var b strings.Builder
	b.WriteString(".. table:: Signing config options (env prefix " + configuration.EnvPrefix + "_)\n\n")
	b.WriteString(border)
	for i, row := range rows {
		fmt.Fprintf(&b, "%-*s %-*s %s\n", widths[0], row[0], widths[1], row[1], row[2])
		if i == 0 {
			b.WriteString(border)
		}
	}
	b.WriteString(border)
	_, err := io.WriteString(w, b.String())
	return err
}

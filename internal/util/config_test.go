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

func TestParseConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if config.QsubBin != "qsub" {
		t.Errorf("got QsubBin %q, wanted %q", config.QsubBin, "qsub")
	}
	if config.Marker != "###CMD###" {
		t.Errorf("got Marker %q, wanted %q", config.Marker, "###CMD###")
	}
	if config.ArrayName != "cmd" {
		t.Errorf("got ArrayName %q, wanted %q", config.ArrayName, "cmd")
	}
	if config.TemplatePath != filepath.Join(HomeDir(), "qsub_template.sh") {
		t.Errorf("got TemplatePath %q, wanted it under the home directory", config.TemplatePath)
	}
	if config.OutputPath != filepath.Join(HomeDir(), "qsub.sh") {
		t.Errorf("got OutputPath %q, wanted it under the home directory", config.OutputPath)
	}
}

func TestParseConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `TemplatePath: /opt/cluster/template.sh
Marker: "%%RUN%%"
QsubBin: /usr/local/bin/qsub
LogLevel: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if config.TemplatePath != "/opt/cluster/template.sh" {
		t.Errorf("got TemplatePath %q", config.TemplatePath)
	}
	if config.Marker != "%%RUN%%" {
		t.Errorf("got Marker %q", config.Marker)
	}
	if config.QsubBin != "/usr/local/bin/qsub" {
		t.Errorf("got QsubBin %q", config.QsubBin)
	}
	if config.LogLevel != "debug" {
		t.Errorf("got LogLevel %q", config.LogLevel)
	}
	// Unset keys keep their defaults.
	if config.ArrayName != "cmd" {
		t.Errorf("got ArrayName %q, wanted default %q", config.ArrayName, "cmd")
	}
}

func TestParseConfigExpandsHome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("OutputPath: ~/jobs/qsub.sh\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	want := filepath.Join(HomeDir(), "jobs", "qsub.sh")
	if config.OutputPath != want {
		t.Errorf("got OutputPath %q, wanted %q", config.OutputPath, want)
	}
}

func TestParseConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ParseConfig(path); err == nil {
		t.Error("expected an error for a malformed config file")
	}
}

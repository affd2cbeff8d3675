// Copyright 2025 go-accel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-accel/accel"
	"github.com/ajroetker/go-accel/accel/contrib/conformance"
)

// errCasesFailed is returned by run when the report is not OK. The report
// has already been written, so main only sets the exit status.
var errCasesFailed = errors.New("conformance cases failed")

type runFlags struct {
	revision int
	filter   string
	format   string
	logLevel string
	verbose  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "accelconf",
		Short:         "Run the accel conformance suite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newRunCmd(), newListCmd(), newInfoCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the cases and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuite(cmd, &f)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&f.revision, "revision", -1, "behave as this API revision (default: "+accel.RevisionEnv+" or the current revision)")
	flags.StringVar(&f.filter, "run", "", "only run cases whose full name matches this regexp")
	flags.StringVar(&f.format, "format", "text", "report format: text or json")
	flags.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "shorthand for --log-level=debug")
	return cmd
}

func runSuite(cmd *cobra.Command, f *runFlags) error {
	if f.format != "text" && f.format != "json" {
		return fmt.Errorf("unknown --format %q, want text or json", f.format)
	}
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level, f.format == "json")
	if err != nil {
		return err
	}
	accel.SetLogger(logger)

	opts := []conformance.RunOption{conformance.WithLogger(logger)}
	if f.filter != "" {
		re, err := regexp.Compile(f.filter)
		if err != nil {
			return fmt.Errorf("invalid --run pattern: %w", err)
		}
		opts = append(opts, conformance.WithFilter(re))
	}
	if f.revision >= 0 {
		if accel.Revision(f.revision) > accel.CurrentRevision {
			return fmt.Errorf("--revision %d is newer than the current revision %s", f.revision, accel.CurrentRevision)
		}
		opts = append(opts, conformance.WithRevision(accel.Revision(f.revision)))
	}

	report := conformance.AccelerateSuite().Run(opts...)
	if f.format == "json" {
		err = report.WriteJSON(cmd.OutOrStdout())
	} else {
		err = report.WriteText(cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}
	if !report.OK() {
		return errCasesFailed
	}
	return nil
}

// newLogger builds the slog logger for a run. JSON reports get JSON logs so
// both streams can be machine-read.
func newLogger(w io.Writer, level string, json bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the case names and their minimum revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := conformance.AccelerateSuite()
			var b strings.Builder
			for _, c := range s.Cases() {
				fmt.Fprintf(&b, "%s.%s\t%s\n", s.Name(), c.Name, c.MinRevision)
			}
			_, err := io.WriteString(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and API revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dispatch:  %s\n", accel.CurrentName())
			fmt.Fprintf(w, "width:     %d bytes\n", accel.CurrentWidth())
			fmt.Fprintf(w, "fma:       %t\n", accel.HasFMA())
			fmt.Fprintf(w, "no-simd:   %t\n", accel.NoSimdEnv())
			fmt.Fprintf(w, "revision:  %s (current %s)\n", accel.SupportedRevision(), accel.CurrentRevision)
			return nil
		},
	}
}

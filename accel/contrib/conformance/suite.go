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

package conformance

import (
	"fmt"
	"log/slog"
	"regexp"
	"runtime/debug"
	"time"

	"github.com/ajroetker/go-accel/accel"
)

// Case is a registered test case.
type Case struct {
	Name        string
	MinRevision accel.Revision // 0 means always available
	Fn          func(*T)
}

// Suite is an ordered set of named cases.
type Suite struct {
	name  string
	cases []Case
	names map[string]bool
}

// NewSuite returns an empty suite. Case names are reported as
// "<suite>.<case>".
func NewSuite(name string) *Suite {
	return &Suite{name: name, names: make(map[string]bool)}
}

// Name returns the suite name.
func (s *Suite) Name() string {
	return s.name
}

// Test registers a case that runs on every revision. It panics if name is
// already registered.
func (s *Suite) Test(name string, fn func(*T)) {
	s.add(Case{Name: name, Fn: fn})
}

// Group registers the cases added by register behind min. When the suite
// runs below min the cases are reported as skipped.
func (s *Suite) Group(min accel.Revision, register func(g *Group)) {
	register(&Group{suite: s, min: min})
}

func (s *Suite) add(c Case) {
	if s.names[c.Name] {
		panic(fmt.Sprintf("conformance: duplicate case %q in suite %q", c.Name, s.name))
	}
	s.names[c.Name] = true
	s.cases = append(s.cases, c)
}

// Cases returns the registered cases in registration order.
func (s *Suite) Cases() []Case {
	return append([]Case(nil), s.cases...)
}

// Group registers cases that share a minimum revision.
type Group struct {
	suite *Suite
	min   accel.Revision
}

// Test registers a case in the group.
func (g *Group) Test(name string, fn func(*T)) {
	g.suite.add(Case{Name: name, MinRevision: g.min, Fn: fn})
}

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	filter   *regexp.Regexp
	logger   *slog.Logger
	revision accel.Revision
	override bool
}

// WithFilter runs only cases whose full name matches re.
func WithFilter(re *regexp.Regexp) RunOption {
	return func(c *runConfig) { c.filter = re }
}

// WithLogger sends case progress to l instead of accel.Logger().
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) { c.logger = l }
}

// WithRevision runs as if the platform supported rev, instead of asking
// accel.SupportedRevision. It overrides ACCEL_REVISION for the whole run.
func WithRevision(rev accel.Revision) RunOption {
	return func(c *runConfig) {
		c.revision = rev
		c.override = true
	}
}

// Run executes the cases sequentially and returns the report. The
// supported revision is determined once, before the first case, and pinned
// with accel.SetSupportedRevision until Run returns. Runs that pin different
// revisions must not overlap.
func (s *Suite) Run(opts ...RunOption) *Report {
	cfg := runConfig{logger: accel.Logger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.override {
		cfg.revision = accel.SupportedRevision()
	}
	// Gated library calls made by the cases see the same revision.
	restore := accel.SetSupportedRevision(cfg.revision)
	defer restore()

	log := cfg.logger.With("suite", s.name)
	log.Info("suite started", "cases", len(s.cases), "revision", cfg.revision.String(),
		"dispatch", accel.CurrentName())

	report := &Report{Suite: s.name, Revision: cfg.revision}
	start := time.Now()
	for _, c := range s.cases {
		full := s.name + "." + c.Name
		if cfg.filter != nil && !cfg.filter.MatchString(full) {
			continue
		}
		var res Result
		if c.MinRevision > cfg.revision {
			res = Result{
				Name:   full,
				Status: Skipped,
				Reason: fmt.Sprintf("requires %s, running as %s", c.MinRevision, cfg.revision),
			}
		} else {
			res = runCase(full, c.Fn, log)
		}
		log.Info("case finished", "case", full, "status", res.Status.String(), "duration", res.Duration)
		report.Results = append(report.Results, res)
	}
	report.Duration = time.Since(start)

	counts := report.Counts()
	log.Info("suite finished", "passed", counts[Passed], "failed", counts[Failed],
		"crashed", counts[Crashed], "skipped", counts[Skipped], "duration", report.Duration)
	return report
}

// runCase runs fn and turns an uncontained panic into a Crashed result.
func runCase(name string, fn func(*T), log *slog.Logger) (res Result) {
	t := newT(name, log)
	start := time.Now()
	defer func() {
		res.Name = name
		res.Duration = time.Since(start)
		res.Failures = t.failures
		res.FaultsCaught = t.faults
		if r := recover(); r != nil {
			res.Status = Crashed
			res.Reason = fmt.Sprint(r)
			log.Error("unexpected fault", "case", name, "fault", res.Reason, "stack", string(debug.Stack()))
			return
		}
		if t.Failed() {
			res.Status = Failed
			return
		}
		res.Status = Passed
	}()
	fn(t)
	return res
}

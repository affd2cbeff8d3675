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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ajroetker/go-accel/accel"
)

// Status is the outcome of one case.
type Status int

const (
	Passed Status = iota
	Failed        // at least one check failed
	Crashed       // panicked outside ExpectFault
	Skipped       // below the case's minimum revision
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Crashed:
		return "crashed"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText encodes the status name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of one case.
type Result struct {
	Name         string        `json:"name"`
	Status       Status        `json:"status"`
	Failures     []string      `json:"failures,omitempty"`
	Reason       string        `json:"reason,omitempty"` // crash value or skip reason
	FaultsCaught int           `json:"faults_caught,omitempty"`
	Duration     time.Duration `json:"duration_ns"`
}

// Report collects the results of one suite run.
type Report struct {
	Suite    string         `json:"suite"`
	Revision accel.Revision `json:"revision"`
	Results  []Result       `json:"results"`
	Duration time.Duration  `json:"duration_ns"`
}

// Counts returns the number of results per status.
func (r *Report) Counts() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, res := range r.Results {
		counts[res.Status]++
	}
	return counts
}

// OK reports whether no case failed or crashed. Skipped cases do not count
// against the run.
func (r *Report) OK() bool {
	counts := r.Counts()
	return counts[Failed] == 0 && counts[Crashed] == 0
}

// Result returns the result for the full case name, if it ran.
func (r *Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// WriteText writes the report in a line-per-case layout.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, res := range r.Results {
		fmt.Fprintf(&b, "[ RUN      ] %s\n", res.Name)
		for _, f := range res.Failures {
			for _, line := range strings.Split(strings.TrimRight(f, "\n"), "\n") {
				fmt.Fprintf(&b, "    %s\n", line)
			}
		}
		switch res.Status {
		case Passed:
			fmt.Fprintf(&b, "[       OK ] %s\n", res.Name)
		case Failed:
			fmt.Fprintf(&b, "[     FAIL ] %s\n", res.Name)
		case Crashed:
			fmt.Fprintf(&b, "    fault: %s\n", res.Reason)
			fmt.Fprintf(&b, "[    CRASH ] %s\n", res.Name)
		case Skipped:
			fmt.Fprintf(&b, "[  SKIPPED ] %s (%s)\n", res.Name, res.Reason)
		}
	}
	c := r.Counts()
	fmt.Fprintf(&b, "%s: %d passed, %d failed, %d crashed, %d skipped (%s)\n",
		r.Suite, c[Passed], c[Failed], c[Crashed], c[Skipped], r.Revision)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Package diagnose checks that the launcher's prerequisites are in place.
package diagnose

import (
	"os"
	"os/exec"
)

// Check is the outcome of a single prerequisite check.
type Check struct {
	Name     string
	OK       bool
	Required bool
	Detail   string
}

// Status renders the check result for display.
func (c Check) Status() string {
	switch {
	case c.OK:
		return "ok"
	case c.Required:
		return "FAIL"
	default:
		return "missing"
	}
}

// CheckExecutable looks name up on PATH.
func CheckExecutable(name string, required bool) Check {
	path, err := exec.LookPath(name)
	if err != nil {
		return Check{Name: name, Required: required, Detail: "not found on PATH"}
	}
	return Check{Name: name, OK: true, Required: required, Detail: path}
}

// CheckFile reports whether path exists and is a regular file.
func CheckFile(name, path string, required bool) Check {
	info, err := os.Stat(path)
	ok := err == nil && info.Mode().IsRegular()
	return Check{Name: name, OK: ok, Required: required, Detail: path}
}

// CheckDir reports whether path exists and is a directory.
func CheckDir(name, path string, required bool) Check {
	info, err := os.Stat(path)
	ok := err == nil && info.IsDir()
	return Check{Name: name, OK: ok, Required: required, Detail: path}
}

// Report is an ordered set of checks.
type Report struct {
	Checks []Check
}

// Add appends checks to the report.
func (r *Report) Add(checks ...Check) {
	r.Checks = append(r.Checks, checks...)
}

// Failed reports whether any required check did not pass.
func (r *Report) Failed() bool {
	for _, c := range r.Checks {
		if c.Required && !c.OK {
			return true
		}
	}
	return false
}

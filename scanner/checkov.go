package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/hmezali/iacscan/types"
)

// DefaultBinary is the checkov executable looked up on PATH unless
// CHECKOV_BIN overrides it.
const DefaultBinary = "checkov"

// ErrNotInstalled reports that the checkov executable could not be located.
var ErrNotInstalled = errors.New("checkov executable not found")

// Request holds the validated inputs for a single checkov run.
type Request struct {
	Path         string
	Framework    types.Framework
	Severity     types.Severity
	Format       types.Format
	ExtraFlags   string
	LicenseCheck bool
}

// Checkov invokes the external checkov scanner as a child process.
type Checkov struct {
	Binary string
	Runner Runner
}

func New() *Checkov {
	binary := DefaultBinary
	if b := os.Getenv("CHECKOV_BIN"); b != "" {
		binary = b
	}
	return &Checkov{Binary: binary, Runner: OSRunner{}}
}

// BuildArgs constructs the checkov argument list. The target flag depends on
// whether the path is a directory or a regular file. Extra flags are split on
// whitespace and appended verbatim; there is no shell-style quoting.
func (c *Checkov) BuildArgs(req Request) ([]string, error) {
	info, err := os.Stat(req.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: the specified path %q does not exist", types.ErrInvalidPath, req.Path)
	}

	target := "-f"
	if info.IsDir() {
		target = "-d"
	}

	args := []string{
		target, req.Path,
		"--framework", string(req.Framework),
		"--severity", string(req.Severity),
		"--output", string(req.Format),
	}
	if extra := strings.Fields(req.ExtraFlags); len(extra) > 0 {
		args = append(args, extra...)
	}
	return args, nil
}

// Scan runs checkov once and returns its captured streams and exit code.
// A non-zero scanner exit is reported through Result, not through err.
func (c *Checkov) Scan(ctx context.Context, req Request) (Result, error) {
	args, err := c.BuildArgs(req)
	if err != nil {
		return Result{}, err
	}

	log.Debugf("checkov command: %s %s", c.Binary, strings.Join(args, " "))

	res, err := c.Runner.Run(ctx, c.Binary, args...)
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return res, ErrNotInstalled
		}
		return res, err
	}
	return res, nil
}

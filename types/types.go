package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPath      = errors.New("invalid path")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidSeverity  = errors.New("invalid severity")
	ErrInvalidFramework = errors.New("invalid framework")
)

// Format is the wrapper's own output mode, passed through to checkov.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat accepts any casing and normalizes to lower case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q (supported formats are: json, text)", ErrInvalidFormat, s)
}

// Severity is the minimum finding severity to report.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Severities lists the valid severities in ascending order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

func ParseSeverity(s string) (Severity, error) {
	for _, sev := range Severities {
		if s == string(sev) {
			return sev, nil
		}
	}
	return "", fmt.Errorf("%w: %q (choose from LOW, MEDIUM, HIGH, CRITICAL)", ErrInvalidSeverity, s)
}

// Framework identifies the IaC language checkov should scan.
type Framework string

const (
	FrameworkTerraform      Framework = "terraform"
	FrameworkCloudFormation Framework = "cloudformation"
	FrameworkKubernetes     Framework = "kubernetes"
)

var Frameworks = []Framework{FrameworkTerraform, FrameworkCloudFormation, FrameworkKubernetes}

func ParseFramework(s string) (Framework, error) {
	for _, fw := range Frameworks {
		if s == string(fw) {
			return fw, nil
		}
	}
	return "", fmt.Errorf("%w: %q (choose from terraform, cloudformation, kubernetes)", ErrInvalidFramework, s)
}

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
)

// Parameter describes a single tunable value exposed by a puzzle.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a puzzle.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// String lists every parameter as an indented "key=value  label" line.
func (s ParameterSnapshot) String() string {
	var b strings.Builder
	for _, g := range s.Groups {
		fmt.Fprintf(&b, "  [%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(&b, "    %s=%s\t%s\n", p.Key, p.Value, p.Label)
		}
	}
	return b.String()
}

// IntParam describes an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

// IntFromMap overwrites *dst with cfg[key] when it parses as an integer no
// smaller than min. Missing or invalid values leave *dst untouched.
func IntFromMap(cfg map[string]string, key string, min int, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

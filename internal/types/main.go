package types

import (
	"fmt"
	"strings"
)

// ClickType limits which kind of 1-Click applications a query returns.
type ClickType string

const (
	ClickTypeDroplet    ClickType = "droplet"
	ClickTypeKubernetes ClickType = "kubernetes"
)

// ClickTypes lists the accepted values for the `type` parameter.
var ClickTypes = []ClickType{ClickTypeDroplet, ClickTypeKubernetes}

// ParseClickType validates a raw `type` parameter against the allowed choices.
func ParseClickType(s string) (ClickType, error) {
	switch ClickType(s) {
	case ClickTypeDroplet, ClickTypeKubernetes:
		return ClickType(s), nil
	}
	return "", fmt.Errorf("invalid type %q (choices: %s, %s)", s, ClickTypeDroplet, ClickTypeKubernetes)
}

// Label returns the capitalized form used in result messages ("Droplet", "Kubernetes").
func (t ClickType) Label() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// OneClick is a single entry in the marketplace catalog.
type OneClick struct {
	Slug string `json:"slug" yaml:"slug"`
	Type string `json:"type" yaml:"type"`
}

// QueryDefinition describes a single catalog query (similar to an Ansible task).
type QueryDefinition struct {
	Name   string `json:"name"           yaml:"name"`
	Module string `json:"module"         yaml:"module"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ErrorDetail carries a structured API error back to the caller. The JSON
// keys, including the space in "Status Code", match the DigitalOcean
// collection's error dictionary.
type ErrorDetail struct {
	Message    string `json:"Message"`
	Reason     string `json:"Reason"`
	StatusCode int    `json:"Status Code"`
}

// ModuleResult is what each module returns.
type ModuleResult struct {
	QueryName string       `json:"query_name,omitempty"`
	Module    string       `json:"module,omitempty"`
	Changed   bool         `json:"changed"`
	Failed    bool         `json:"failed,omitempty"`
	Msg       string       `json:"msg"`
	OneClicks []OneClick   `json:"one_clicks,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
}

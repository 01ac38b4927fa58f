// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/models"
)

// FlagParser provides common flag extraction patterns.
// Every parse error wraps cli.ErrInvalidInput.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseID extracts a positive id from a flag
func (p *FlagParser) ParseID(flagName string) (int, error) {
	id, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse %s flag: %v", cli.ErrInvalidInput, flagName, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: --%s must be greater than 0", cli.ErrInvalidInput, flagName)
	}
	return id, nil
}

// ParseIDOptional extracts an id flag, returning 0 when it was not set
func (p *FlagParser) ParseIDOptional(flagName string) (int, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return 0, nil
	}
	return p.ParseID(flagName)
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse %s flag: %v", cli.ErrInvalidInput, flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: --%s is required", cli.ErrInvalidInput, flagName)
	}
	return value, nil
}

// ParseState extracts and validates a work item state flag.
// An unset flag yields "" without an error.
func (p *FlagParser) ParseState(flagName string) (models.State, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse %s flag: %v", cli.ErrInvalidInput, flagName, err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	state, err := models.ParseState(raw)
	if err != nil {
		return "", fmt.Errorf("%w: --%s: %v", cli.ErrInvalidInput, flagName, err)
	}
	return state, nil
}

// ExclusiveFlags fails when more than one of the named flags was set
func (p *FlagParser) ExclusiveFlags(names ...string) error {
	var set []string
	for _, name := range names {
		if p.cmd.Flags().Changed(name) {
			set = append(set, "--"+name)
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("%w: %s cannot be combined", cli.ErrInvalidInput, strings.Join(set, " and "))
	}
	return nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

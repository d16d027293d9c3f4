// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// ProgramValidator requires a command line with at least a program name.
func ProgramValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if len(strings.Fields(s)) == 0 {
		return errors.New("must name a program")
	}
	return nil
}

// PatternValidator requires every exclude pattern to be a valid glob.
func PatternValidator(value any) error {
	patterns, ok := value.([]string)
	if !ok {
		return errors.New("must be a list of patterns")
	}
	for _, p := range patterns {
		if _, err := filepath.Match(strings.TrimSuffix(p, "/"), ""); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", p, err)
		}
	}
	return nil
}

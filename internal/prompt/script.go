package prompt

import (
	"context"
	"fmt"
)

// Script is a canned Prompter for tests. Each call consumes the next step and
// fails loudly when the conversation diverges from the expectation.
type Script struct {
	Inputs        []string
	Selections    []int
	Confirmations []bool

	inputIdx   int
	selectIdx  int
	confirmIdx int

	// Messages records every prompt message in call order so tests can
	// assert on what the user was shown.
	Messages []string
}

var _ Prompter = (*Script)(nil)

func (s *Script) Input(_ context.Context, message string) (string, error) {
	s.Messages = append(s.Messages, message)
	if s.inputIdx >= len(s.Inputs) {
		return "", fmt.Errorf("unexpected Input prompt: %q", message)
	}
	answer := s.Inputs[s.inputIdx]
	s.inputIdx++
	return answer, nil
}

func (s *Script) Select(_ context.Context, message string, options []string) (int, error) {
	s.Messages = append(s.Messages, message)
	if s.selectIdx >= len(s.Selections) {
		return 0, fmt.Errorf("unexpected Select prompt: %q", message)
	}
	choice := s.Selections[s.selectIdx]
	s.selectIdx++
	if choice < 0 || choice >= len(options) {
		return 0, fmt.Errorf("scripted choice %d out of range for %d options", choice, len(options))
	}
	return choice, nil
}

func (s *Script) Confirm(_ context.Context, message string) (bool, error) {
	s.Messages = append(s.Messages, message)
	if s.confirmIdx >= len(s.Confirmations) {
		return false, fmt.Errorf("unexpected Confirm prompt: %q", message)
	}
	answer := s.Confirmations[s.confirmIdx]
	s.confirmIdx++
	return answer, nil
}

// Package graphcycle implements generic directed-graph cycle detection used to
// reject schemas whose conditional fields (transitively) depend on themselves.
package graphcycle

import "fmt"

type visitState uint8

const (
	stateVisiting visitState = iota + 1
	stateDone
)

// MissingPolicy controls behavior when a referenced node is missing.
type MissingPolicy uint8

const (
	MissingPolicyIgnore MissingPolicy = iota
	MissingPolicyError
)

// CycleError reports a cycle and the path that closed it.
type CycleError[K comparable] struct {
	Key  K
	Path []K
}

// Error returns the error string.
func (e CycleError[K]) Error() string {
	return fmt.Sprintf("cycle detected at %v", e.Key)
}

// MissingError reports a missing referenced node.
type MissingError[K comparable] struct {
	From K
	Key  K
}

// Error returns the error string.
func (e MissingError[K]) Error() string {
	return fmt.Sprintf("missing node %v referenced from %v", e.Key, e.From)
}

// Config configures generic cycle detection traversal.
type Config[K comparable] struct {
	Exists  func(K) bool
	Next    func(K) []K
	Starts  []K
	Missing MissingPolicy
}

// Detect walks directed edges from Starts and reports the first cycle or
// missing reference. The CycleError path starts and ends at the offending key.
func Detect[K comparable](cfg Config[K]) error {
	if cfg.Next == nil {
		return fmt.Errorf("cycle detect: next function is nil")
	}
	states := make(map[K]visitState, len(cfg.Starts))

	var zero K
	var stack []K
	var visit func(key, from K, hasFrom bool) error
	visit = func(key, from K, hasFrom bool) error {
		switch states[key] {
		case stateVisiting:
			return CycleError[K]{Key: key, Path: cyclePath(stack, key)}
		case stateDone:
			return nil
		}

		exists := true
		if cfg.Exists != nil {
			exists = cfg.Exists(key)
		}
		if !exists {
			if cfg.Missing == MissingPolicyIgnore {
				return nil
			}
			if !hasFrom {
				from = zero
			}
			return MissingError[K]{From: from, Key: key}
		}

		states[key] = stateVisiting
		stack = append(stack, key)
		for _, next := range cfg.Next(key) {
			if err := visit(next, key, true); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		states[key] = stateDone
		return nil
	}

	for _, start := range cfg.Starts {
		if err := visit(start, zero, false); err != nil {
			return err
		}
	}

	return nil
}

// cyclePath slices the visit stack from the first occurrence of key and closes
// the loop by appending key again.
func cyclePath[K comparable](stack []K, key K) []K {
	for i, k := range stack {
		if k == key {
			out := make([]K, 0, len(stack)-i+1)
			out = append(out, stack[i:]...)
			return append(out, key)
		}
	}
	return []K{key, key}
}

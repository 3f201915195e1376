package graphcycle

import (
	"errors"
	"testing"
)

func TestDetectCycle(t *testing.T) {
	graph := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	}
	err := Detect(Config[string]{
		Starts:  []string{"a"},
		Missing: MissingPolicyError,
		Exists: func(n string) bool {
			_, ok := graph[n]
			return ok
		},
		Next: func(n string) []string { return graph[n] },
	})
	var cycleErr CycleError[string]
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	if len(cycleErr.Path) < 2 || cycleErr.Path[0] != cycleErr.Path[len(cycleErr.Path)-1] {
		t.Fatalf("expected closed cycle path, got %v", cycleErr.Path)
	}
}

func TestDetectAcyclic(t *testing.T) {
	graph := map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
		"c": nil,
	}
	err := Detect(Config[string]{
		Starts: []string{"a"},
		Next:   func(n string) []string { return graph[n] },
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestDetectMissing(t *testing.T) {
	graph := map[string][]string{"a": {"ghost"}}
	exists := func(n string) bool {
		_, ok := graph[n]
		return ok
	}
	next := func(n string) []string { return graph[n] }

	err := Detect(Config[string]{
		Starts:  []string{"a"},
		Missing: MissingPolicyError,
		Exists:  exists,
		Next:    next,
	})
	var missingErr MissingError[string]
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingError, got %v", err)
	}
	if missingErr.From != "a" || missingErr.Key != "ghost" {
		t.Fatalf("unexpected missing edge %v -> %v", missingErr.From, missingErr.Key)
	}

	if err := Detect(Config[string]{
		Starts:  []string{"a"},
		Missing: MissingPolicyIgnore,
		Exists:  exists,
		Next:    next,
	}); err != nil {
		t.Fatalf("ignore policy should pass, got %v", err)
	}
}

func TestDetectSharedNodeNotACycle(t *testing.T) {
	// Diamond: two paths reach d; revisiting a finished node is not a cycle.
	graph := map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d"},
		"d": nil,
	}
	err := Detect(Config[string]{
		Starts: []string{"a"},
		Next:   func(n string) []string { return graph[n] },
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

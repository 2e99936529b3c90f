package mapper

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type sourceItem struct {
	ID   uint
	Name string
}

type targetItem struct {
	Label string
}

// =============================================================================
// MapSlice Tests
// =============================================================================

func TestMapSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []string
	}{
		{
			name:  "nil input returns nil",
			input: nil,
			want:  nil,
		},
		{
			name:  "empty slice returns empty slice",
			input: []int{},
			want:  []string{},
		},
		{
			name:  "maps all elements in order",
			input: []int{1, 2, 3},
			want:  []string{"n1", "n2", "n3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSlice(tt.input, func(i int) string { return fmt.Sprintf("n%d", i) })

			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected non-nil result")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d elements, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("element %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

// =============================================================================
// MapSliceWithError Tests
// =============================================================================

func TestMapSliceWithError(t *testing.T) {
	tests := []struct {
		name        string
		input       []int
		mapFunc     func(int) (string, error)
		want        []string
		wantErr     bool
		errContains string
	}{
		{
			name:    "nil input returns nil",
			input:   nil,
			mapFunc: func(i int) (string, error) { return fmt.Sprintf("%d", i), nil },
			want:    nil,
		},
		{
			name:    "empty slice returns empty slice",
			input:   []int{},
			mapFunc: func(i int) (string, error) { return fmt.Sprintf("%d", i), nil },
			want:    []string{},
		},
		{
			name:    "successful mapping",
			input:   []int{1, 2, 3},
			mapFunc: func(i int) (string, error) { return fmt.Sprintf("n%d", i), nil },
			want:    []string{"n1", "n2", "n3"},
		},
		{
			name:  "middle element fails",
			input: []int{1, 2, 3},
			mapFunc: func(i int) (string, error) {
				if i == 2 {
					return "", errors.New("bad element 2")
				}
				return fmt.Sprintf("n%d", i), nil
			},
			wantErr:     true,
			errContains: "bad element 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapSliceWithError(tt.input, tt.mapFunc)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				if got != nil {
					t.Errorf("expected nil result on error, got %v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d elements, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("element %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

// =============================================================================
// MapSlicePtrWithID Tests
// =============================================================================

func TestMapSlicePtrWithID(t *testing.T) {
	getID := func(s *sourceItem) uint { return s.ID }

	t.Run("nil input returns nil", func(t *testing.T) {
		got, err := MapSlicePtrWithID(nil, func(s *sourceItem) (*targetItem, error) {
			return &targetItem{Label: s.Name}, nil
		}, getID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("skips nil elements", func(t *testing.T) {
		input := []*sourceItem{{ID: 1, Name: "a"}, nil, {ID: 2, Name: "b"}}
		got, err := MapSlicePtrWithID(input, func(s *sourceItem) (*targetItem, error) {
			return &targetItem{Label: s.Name}, nil
		}, getID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 elements, got %d", len(got))
		}
		if got[0].Label != "a" || got[1].Label != "b" {
			t.Errorf("unexpected mapping: %+v", got)
		}
	})

	t.Run("skips nil outputs", func(t *testing.T) {
		input := []*sourceItem{{ID: 1, Name: "a"}, {ID: 2, Name: "skip"}}
		got, err := MapSlicePtrWithID(input, func(s *sourceItem) (*targetItem, error) {
			if s.Name == "skip" {
				return nil, nil
			}
			return &targetItem{Label: s.Name}, nil
		}, getID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 element, got %d", len(got))
		}
	})

	t.Run("error includes item ID", func(t *testing.T) {
		input := []*sourceItem{{ID: 1, Name: "a"}, {ID: 42, Name: "boom"}}
		_, err := MapSlicePtrWithID(input, func(s *sourceItem) (*targetItem, error) {
			if s.Name == "boom" {
				return nil, errors.New("mapping exploded")
			}
			return &targetItem{Label: s.Name}, nil
		}, getID)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "42") {
			t.Errorf("expected error to mention item ID 42, got %q", err.Error())
		}
		if !strings.Contains(err.Error(), "mapping exploded") {
			t.Errorf("expected wrapped cause, got %q", err.Error())
		}
	})
}

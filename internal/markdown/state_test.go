package markdown

import "testing"

// modes counts how many block modes a state is in.
func modes(s State) int {
	n := 0
	for _, on := range []bool{s.InCodeBlock, s.InTable, s.InList} {
		if on {
			n++
		}
	}
	return n
}

func TestState_ModesMutuallyExclusive(t *testing.T) {
	t.Parallel()

	docs := [][]string{
		{"- a", "| A |", "```", "x", "```", "1. b", "| B |", "|---|", "| 1 |"},
		{"| A |", "```go", "code", "```", "- item", "```", "```"},
		{"1. a", "- b", "| c |", "- d", "---", "text"},
	}

	for _, doc := range docs {
		var s State
		for i, line := range doc {
			s, _ = s.Step(line)
			if modes(s) > 1 {
				t.Fatalf("after line %d %q: state in %d modes: %+v", i, line, modes(s), s)
			}
		}
	}
}

func TestState_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start State
		line  string
		want  State
	}{
		{
			name: "fence opens code block with language",
			line: "```rust",
			want: State{InCodeBlock: true, CodeLanguage: "rust"},
		},
		{
			name:  "fence closes code block",
			start: State{InCodeBlock: true, CodeLanguage: "rust"},
			line:  "```",
			want:  State{},
		},
		{
			name: "table row opens header",
			line: "| a |",
			want: State{InTable: true, HeaderOpen: true},
		},
		{
			name:  "separator closes header",
			start: State{InTable: true, HeaderOpen: true},
			line:  "|---|",
			want:  State{InTable: true},
		},
		{
			name:  "blank line ends table",
			start: State{InTable: true},
			line:  "",
			want:  State{},
		},
		{
			name: "list item opens list",
			line: "- a",
			want: State{InList: true, List: ListUnordered},
		},
		{
			name:  "ordered item switches list kind",
			start: State{InList: true, List: ListUnordered},
			line:  "3. c",
			want:  State{InList: true, List: ListOrdered},
		},
		{
			name:  "rule keeps list open",
			start: State{InList: true, List: ListUnordered},
			line:  "***",
			want:  State{InList: true, List: ListUnordered},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _ := tt.start.Step(tt.line)
			if got != tt.want {
				t.Errorf("Step(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestState_StepDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	start := State{InList: true, List: ListOrdered}
	_, _ = start.Step("")
	if !start.InList || start.List != ListOrdered {
		t.Errorf("receiver mutated: %+v", start)
	}
}

func TestState_Finish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		state      State
		closeFence bool
		want       string
	}{
		{"nothing open", State{}, false, ""},
		{"open list", State{InList: true, List: ListOrdered}, false, "</ol>"},
		{"open table body", State{InTable: true}, false, "</tbody>\n</table>"},
		{"open table header", State{InTable: true, HeaderOpen: true}, false, "</thead>\n</table>"},
		{"open fence kept", State{InCodeBlock: true}, false, ""},
		{"open fence closed", State{InCodeBlock: true}, true, "</code></pre>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Render(tt.state.Finish(tt.closeFence)); got != tt.want {
				t.Errorf("Finish() = %q, want %q", got, tt.want)
			}
		})
	}
}

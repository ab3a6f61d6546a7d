package msgfmt

import "testing"

func TestCleanupMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "emphasis",
			in:   "**bold** and *em* and `code`",
			want: "bold and em and code",
		},
		{
			name: "heading",
			in:   "# Heading\ntext",
			want: "Heading\ntext",
		},
		{
			name: "deep heading",
			in:   "###### Deep\nbody",
			want: "Deep\nbody",
		},
		{
			name: "double underscore",
			in:   "__strong__ words",
			want: "strong words",
		},
		{
			name: "heading mid-text line untouched",
			in:   "a # b",
			want: "a # b",
		},
		{
			name: "unpaired markers untouched",
			in:   "2 * 3 = 6",
			want: "2 * 3 = 6",
		},
		{
			name: "trims whitespace",
			in:   "  plain  ",
			want: "plain",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanupMarkdown(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

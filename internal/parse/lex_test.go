package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple command",
			input: "prog --a=3 --b=4",
			want:  []string{"prog", "--a=3", "--b=4"},
		},
		{
			name:  "quoted arguments",
			input: `prog --name="hello world"`,
			want:  []string{"prog", "--name=hello world"},
		},
		{
			name:  "multiple quotes",
			input: `prog "first quote" 'second quote'`,
			want:  []string{"prog", "first quote", "second quote"},
		},
		{
			name:  "escaped quotes",
			input: `prog \"hello\"`,
			want:  []string{"prog", `"hello"`},
		},
		{
			name:  "multiple spaces",
			input: "prog   arg1    arg2",
			want:  []string{"prog", "arg1", "arg2"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:    "unterminated quote",
			input:   `prog "open`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

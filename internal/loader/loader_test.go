package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
)

func TestLoadProcesses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []core.ProcessSpec
	}{
		{
			name:  "with header and priority",
			input: "id,arrival,burst,priority\n1,0,4,2\n2,0,3,1\n",
			want: []core.ProcessSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 4, Priority: 2},
				{ID: 2, ArrivalTime: 0, BurstTime: 3, Priority: 1},
			},
		},
		{
			name:  "no header, mixed widths",
			input: "1,0,5\n2, 1, 3, 4\n",
			want: []core.ProcessSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 5},
				{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 4},
			},
		},
		{
			name:  "blank ids numbered by position",
			input: "# comment\n,0,5\n,2,8\n",
			want: []core.ProcessSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 5},
				{ID: 2, ArrivalTime: 2, BurstTime: 8},
			},
		},
		{
			name:  "empty",
			input: "",
			want:  []core.ProcessSpec{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadProcesses(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadProcessesMalformed(t *testing.T) {
	for _, input := range []string{
		"1,0\n",
		"1,0,5,1,9\n",
		"1,0,x\n",
	} {
		_, err := LoadProcesses(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformedRow, "input %q", input)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processes.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,0,5\n2,1,3\n3,2,8\n"), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

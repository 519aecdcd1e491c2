package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCalculatorArgs is the declaration set of the add-two-numbers demo and
// exercises every declaration feature at once: plain and required flags,
// required, defaulted and restricted valued options.
func newCalculatorArgs(t *testing.T) *Args {
	t.Helper()
	args, err := New(
		NewFlag("version", "v", "Display version information"),
		NewFlag("please", "p", "You have to ask nicely").Require(),
		NewArg("number-a", "a", "First number").Require(),
		NewArg("number-b", "b", "Second number").WithDefault("4"),
		NewArg("operation", "o", "Operation to perform", "add", "subtract").WithDefault("add"),
	)
	require.NoError(t, err)
	return args
}

func TestCalculatorScenario(t *testing.T) {
	type want struct {
		ok       bool
		numberA  int
		numberB  int
		op       string
		errorMsg string
	}
	tests := []struct {
		name   string
		tokens []string
		want   want
	}{
		{
			name:   "full command line",
			tokens: []string{"-p", "-a", "3", "-b", "5", "--operation", "add"},
			want:   want{ok: true, numberA: 3, numberB: 5, op: "add"},
		},
		{
			name:   "defaults fill the gaps",
			tokens: []string{"-p", "-a", "3"},
			want:   want{ok: true, numberA: 3, numberB: 4, op: "add"},
		},
		{
			name:   "long forms are aliases",
			tokens: []string{"--please", "--number-a", "3", "--number-b", "5"},
			want:   want{ok: true, numberA: 3, numberB: 5, op: "add"},
		},
		{
			name:   "missing required flag",
			tokens: []string{"-a", "3"},
			want:   want{errorMsg: "please is required but was not set"},
		},
		{
			name:   "missing required option",
			tokens: []string{"-p"},
			want:   want{errorMsg: "number-a is required but was not set"},
		},
		{
			name:   "operation outside allow-list",
			tokens: []string{"-p", "-a", "3", "-o", "divide"},
			want:   want{errorMsg: "value divide for argument -o isn't one of the options"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := newCalculatorArgs(t)
			err := args.ParseTokens(tt.tokens)

			if !tt.want.ok {
				require.Error(t, err)
				assert.EqualError(t, err, tt.want.errorMsg)
				return
			}

			require.NoError(t, err)
			a, err := args.GetAsInt("number-a")
			require.NoError(t, err)
			b, err := args.GetAsInt("number-b")
			require.NoError(t, err)
			assert.Equal(t, tt.want.numberA, a)
			assert.Equal(t, tt.want.numberB, b)
			assert.Equal(t, tt.want.op, args.Get("operation"))
			assert.True(t, args.IsSet("please"))
		})
	}
}

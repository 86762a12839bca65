package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/piecewise/internal/domain"
	domainmocks "github.com/mouse-blink/piecewise/internal/domain/mocks"
	m "github.com/mouse-blink/piecewise/internal/model"
)

func TestEvalCmd_NegativeArguments(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newEvalCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Eval", domain.EvalArgs{Function: m.FunctionCalculate, Args: []int{5, -3}}).Return(nil)

	cmd.SetArgs([]string{"eval", "calculate", "5", "-3"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestParseEvalArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    domain.EvalArgs
		wantErr string
	}{
		{
			name: "func",
			args: []string{"func", "8", "5", "2"},
			want: domain.EvalArgs{Function: m.FunctionFunc, Args: []int{8, 5, 2}},
		},
		{
			name: "case insensitive",
			args: []string{"Calculate", "-5", "-3"},
			want: domain.EvalArgs{Function: m.FunctionCalculate, Args: []int{-5, -3}},
		},
		{name: "unknown function", args: []string{"sqrt", "4"}, wantErr: `unknown function "sqrt"`},
		{name: "too few", args: []string{"func", "1", "2"}, wantErr: "func takes 3 arguments, got 2"},
		{name: "too many", args: []string{"calculate", "1", "2", "3"}, wantErr: "calculate takes 2 arguments, got 3"},
		{name: "not a number", args: []string{"calculate", "1", "two"}, wantErr: `argument "two"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEvalArgs(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/piecewise/internal/domain"
	domainmocks "github.com/mouse-blink/piecewise/internal/domain/mocks"
	m "github.com/mouse-blink/piecewise/internal/model"
)

func TestRunCmd_TestMode(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Test", mock.MatchedBy(func(args domain.TestArgs) bool {
		return args.Threads == 2 &&
			args.ShardIndex == 0 &&
			args.TotalShardCount == 1 &&
			args.Reports == m.Path(".piecewise-reports")
	})).Return(nil)

	cmd.SetArgs([]string{"run", "--parallel", "2"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_WithSharding(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Test", mock.MatchedBy(func(args domain.TestArgs) bool {
		return args.ShardIndex == 1 && args.TotalShardCount == 3
	})).Return(nil)

	cmd.SetArgs([]string{"run", "--shard", "1/3"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Test", mock.MatchedBy(func(args domain.TestArgs) bool {
		return len(args.Exclude) == 2 &&
			args.Exclude[0] == "^calculate/property/" &&
			args.Exclude[1] == "/0[1-3]$"
	})).Return(nil)

	cmd.SetArgs([]string{"run", "-x", "^calculate/property/", "-x", "/0[1-3]$"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_InvalidShardDoesNotRun(t *testing.T) {
	for _, shard := range []string{"3/3", "1-3", "-1/2"} {
		t.Run(shard, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			cmd := newRootCmd()
			cmd.AddCommand(newRunCmd())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			originalWorkflow := workflow
			workflow = mockWorkflow
			defer func() { workflow = originalWorkflow }()

			cmd.SetArgs([]string{"run", "--shard=" + shard})
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid --shard")
		})
	}
}

func TestRunCmd_RejectsPositionalArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"run", "./..."})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	parallelFlag := cmd.Flags().Lookup("parallel")
	assert.NotNil(t, parallelFlag)
	shardFlag := cmd.Flags().Lookup("shard")
	assert.NotNil(t, shardFlag)
}

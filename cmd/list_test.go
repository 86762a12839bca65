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

func TestListCmd_Estimate(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Estimate", mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return len(args.Criteria) == 1 && args.Criteria[0] == m.CriterionCondition &&
			len(args.Functions) == 0
	})).Return(nil)

	cmd.SetArgs([]string{"list", "--criterion", "condition"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
}

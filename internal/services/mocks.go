package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/commitwise/internal/models"
)

type (
	MockCommitGenerator struct {
		mock.Mock
	}

	MockConnectivityChecker struct {
		mock.Mock
	}
)

func (m *MockCommitGenerator) GenerateCommitMessage(ctx context.Context, description string, tone models.Tone) (*models.CommitResult, *models.TokenUsage, error) {
	args := m.Called(ctx, description, tone)
	var result *models.CommitResult
	if r := args.Get(0); r != nil {
		result = r.(*models.CommitResult)
	}
	var usage *models.TokenUsage
	if u := args.Get(1); u != nil {
		usage = u.(*models.TokenUsage)
	}
	return result, usage, args.Error(2)
}

func (m *MockConnectivityChecker) Ping(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/docking/internal/application/port/mocks"
	"github.com/bnema/docking/internal/application/usecase"
	"github.com/bnema/docking/internal/domain/entity"
)

func schemaFixture() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "dock.splitter_width",
			Type:        "float64",
			Default:     "8",
			Description: "Hit-test width of splitter strips",
			Range:       ">0",
			Section:     "Dock",
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     "Logging",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaFixture()).Once()
		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, schemaFixture(), result.Keys)
	})

	t.Run("filters by section", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaFixture()).Once()
		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "dock"})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, "dock.splitter_width", result.Keys[0].Key)
		assert.Empty(t, result.Keys[0].Values)
	})

	t.Run("handles empty schema", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{}).Once()
		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "Dock"})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})
}

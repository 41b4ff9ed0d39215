package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/shipfix-go/internal/application/fleet/commands"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
	"github.com/andrescamacho/shipfix-go/test/helpers"
)

func TestSelectVesselHandler_SelectsKnownVessel(t *testing.T) {
	// Arrange
	registry := fleet.NewSeededRegistry(helpers.SequentialVesselIDs())
	handler := commands.NewSelectVesselHandler(registry)

	// Act
	response, err := handler.Handle(context.Background(), &commands.SelectVesselCommand{VesselID: "bq-3"})

	// Assert
	require.NoError(t, err)
	selected := response.(*commands.SelectVesselResponse).Vessel
	require.NotNil(t, selected)
	assert.Equal(t, "bq-3", selected.ID)
}

func TestSelectVesselHandler_BlankIDClearsSelection(t *testing.T) {
	registry := fleet.NewSeededRegistry(helpers.SequentialVesselIDs())
	handler := commands.NewSelectVesselHandler(registry)
	_, hasSelection := registry.Selected()
	require.True(t, hasSelection)

	response, err := handler.Handle(context.Background(), &commands.SelectVesselCommand{VesselID: ""})

	require.NoError(t, err)
	assert.Nil(t, response.(*commands.SelectVesselResponse).Vessel)
	_, hasSelection = registry.Selected()
	assert.False(t, hasSelection)
	assert.True(t, registry.SelectedID().IsZero())
}

func TestSelectVesselHandler_UnknownIDResolvesToNothing(t *testing.T) {
	registry := fleet.NewSeededRegistry(helpers.SequentialVesselIDs())
	handler := commands.NewSelectVesselHandler(registry)

	response, err := handler.Handle(context.Background(), &commands.SelectVesselCommand{VesselID: "ghost"})

	require.NoError(t, err)
	assert.Nil(t, response.(*commands.SelectVesselResponse).Vessel)
	assert.Equal(t, "ghost", registry.SelectedID().String())
}

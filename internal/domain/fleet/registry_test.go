package fleet_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

func sequentialIDs() fleet.IDGenerator {
	n := 0
	return func() fleet.VesselID {
		n++
		return fleet.MustNewVesselIDFromString(fmt.Sprintf("new-%d", n))
	}
}

func newSeeded(t *testing.T) *fleet.VesselRegistry {
	t.Helper()
	return fleet.NewSeededRegistry(sequentialIDs())
}

func validDraft() fleet.VesselDraft {
	return fleet.VesselDraft{
		Name:             "Estrella del Mar",
		RegistrationCode: "CHI-ANT-0001",
		HomePort:         "Antofagasta",
		Status:           fleet.StatusOperational,
		Lead1:            "Ana Torres",
	}
}

func names(vessels []fleet.Vessel) []string {
	out := make([]string, len(vessels))
	for i, v := range vessels {
		out[i] = v.Name()
	}
	return out
}

func strPtr(s string) *string { return &s }

func statusPtr(s fleet.OperationalStatus) *fleet.OperationalStatus { return &s }

func TestList_EmptyCriteriaReturnsWholeCollectionInOrder(t *testing.T) {
	// Arrange
	registry := newSeeded(t)

	// Act
	result := registry.List(fleet.FilterCriteria{})

	// Assert
	assert.Equal(t, []string{"Aurora del Sur", "Nanina", "Pacífica Austral", "Tridente Magallánico"}, names(result))
}

func TestList_QueryMatchesCaseInsensitively(t *testing.T) {
	registry := newSeeded(t)

	result := registry.List(fleet.FilterCriteria{Query: "nanina"})

	require.Len(t, result, 1)
	assert.Equal(t, "bq-2", result[0].ID().String())
}

func TestList_QueryMatchesRegistrationCodeAndLeads(t *testing.T) {
	registry := newSeeded(t)

	byCode := registry.List(fleet.FilterCriteria{Query: "chi-tal"})
	bySecondLead := registry.List(fleet.FilterCriteria{Query: "sofía"})
	trimmed := registry.List(fleet.FilterCriteria{Query: "  diego  "})

	assert.Equal(t, []string{"Pacífica Austral"}, names(byCode))
	assert.Equal(t, []string{"Nanina"}, names(bySecondLead))
	assert.Equal(t, []string{"Tridente Magallánico"}, names(trimmed))
}

func TestList_HomePortAndStatusAreConjunctive(t *testing.T) {
	registry := newSeeded(t)

	byStatus := registry.List(fleet.FilterCriteria{Status: statusPtr(fleet.StatusOperational)})
	byBoth := registry.List(fleet.FilterCriteria{
		HomePort: strPtr("Valparaíso"),
		Status:   statusPtr(fleet.StatusInPort),
	})

	assert.Equal(t, []string{"Aurora del Sur", "Nanina"}, names(byStatus))
	assert.Empty(t, byBoth)
}

func TestList_HomePortIsExactMatch(t *testing.T) {
	registry := newSeeded(t)

	assert.Empty(t, registry.List(fleet.FilterCriteria{HomePort: strPtr("valparaíso")}))
	assert.Len(t, registry.List(fleet.FilterCriteria{HomePort: strPtr("Valparaíso")}), 1)
}

func TestList_ReturnsCopies(t *testing.T) {
	registry := newSeeded(t)

	result := registry.List(fleet.FilterCriteria{Query: "nanina"})
	leads := result[0].TechnicalLeads()
	leads[0] = "Tampered"

	again := registry.List(fleet.FilterCriteria{Query: "nanina"})
	assert.Equal(t, "Marcos Popovich", again[0].PrimaryLead())
}

func TestListDistinctHomePorts_FirstAppearanceOrder(t *testing.T) {
	registry := newSeeded(t)
	draft := validDraft()
	draft.HomePort = "Talcahuano"
	_, err := registry.Create(draft)
	require.NoError(t, err)

	ports := registry.ListDistinctHomePorts()

	assert.Equal(t, []string{"Talcahuano", "Valparaíso", "Mar del Plata", "Punta Arenas"}, ports)
	assert.Equal(t, append([]string{fleet.AllOption}, ports...), registry.HomePortOptions())
}

func TestSelect_UnknownIDResolvesToNone(t *testing.T) {
	registry := newSeeded(t)

	selected, ok := registry.Selected()
	require.True(t, ok)
	assert.Equal(t, "bq-1", selected.ID().String())

	registry.Select(fleet.MustNewVesselIDFromString("ghost"))

	_, ok = registry.Selected()
	assert.False(t, ok)
	assert.Equal(t, "ghost", registry.SelectedID().String())
}

func TestValidateDraft_RulesAreOrdered(t *testing.T) {
	registry := newSeeded(t)

	tests := []struct {
		name   string
		mutate func(d *fleet.VesselDraft)
		code   fleet.ErrorCode
	}{
		{"empty name wins over everything", func(d *fleet.VesselDraft) { *d = fleet.VesselDraft{} }, fleet.CodeMissingName},
		{"blank name", func(d *fleet.VesselDraft) { d.Name = "   " }, fleet.CodeMissingName},
		{"missing code", func(d *fleet.VesselDraft) { d.RegistrationCode = " " }, fleet.CodeMissingRegistrationCode},
		{"missing port", func(d *fleet.VesselDraft) { d.HomePort = "" }, fleet.CodeMissingHomePort},
		{"missing primary lead", func(d *fleet.VesselDraft) { d.Lead1 = ""; d.Lead2 = "Luis" }, fleet.CodeMissingPrimaryLead},
		{"duplicate leads ignore case", func(d *fleet.VesselDraft) { d.Lead1 = "Ana"; d.Lead2 = "ana" }, fleet.CodeDuplicateLeads},
		{"duplicate code ignores case", func(d *fleet.VesselDraft) { d.RegistrationCode = "arg-mdp-1120" }, fleet.CodeDuplicateRegistrationCode},
		{"unknown status", func(d *fleet.VesselDraft) { d.Status = fleet.OperationalStatus(42) }, fleet.CodeInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := registry.ValidateDraft(draft, fleet.ModalCreate, fleet.VesselID{})

			require.Error(t, err)
			assert.Equal(t, tt.code, fleet.CodeOf(err))
		})
	}
}

func TestValidateDraft_ValidDraftPasses(t *testing.T) {
	registry := newSeeded(t)
	draft := validDraft()
	draft.Lead2 = "Luis Soto"

	assert.NoError(t, registry.ValidateDraft(draft, fleet.ModalCreate, fleet.VesselID{}))
}

func TestValidateDraft_EditExcludesOwnCode(t *testing.T) {
	registry := newSeeded(t)
	nanina := fleet.MustNewVesselIDFromString("bq-2")
	vessel, ok := registry.Get(nanina)
	require.True(t, ok)

	draft := vessel.ToDraft()

	assert.NoError(t, registry.ValidateDraft(draft, fleet.ModalEdit, nanina))
	assert.True(t, fleet.HasCode(
		registry.ValidateDraft(draft, fleet.ModalCreate, fleet.VesselID{}),
		fleet.CodeDuplicateRegistrationCode,
	))
}

func TestCreate_InsertsAtFrontAndSelects(t *testing.T) {
	// Arrange
	registry := newSeeded(t)
	draft := validDraft()
	draft.Name = "  Estrella del Mar  "
	draft.Lead2 = "   "

	// Act
	created, err := registry.Create(draft)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "new-1", created.ID().String())
	assert.Equal(t, "Estrella del Mar", created.Name())
	assert.Equal(t, []string{"Ana Torres"}, created.TechnicalLeads())
	assert.Equal(t, 5, registry.Len())

	all := registry.List(fleet.FilterCriteria{})
	assert.Equal(t, created.ID(), all[0].ID())

	selected, ok := registry.Selected()
	require.True(t, ok)
	assert.Equal(t, created.ID(), selected.ID())
}

func TestCreate_DuplicateCodeLeavesCollectionUnchanged(t *testing.T) {
	registry := newSeeded(t)
	draft := validDraft()
	draft.RegistrationCode = "ARG-MDP-1120"

	_, err := registry.Create(draft)

	require.Error(t, err)
	assert.True(t, fleet.HasCode(err, fleet.CodeDuplicateRegistrationCode))
	assert.Equal(t, 4, registry.Len())
	assert.Equal(t, "bq-1", registry.SelectedID().String())
}

func TestCreate_EmptyNameIsMissingName(t *testing.T) {
	registry := newSeeded(t)
	draft := validDraft()
	draft.Name = ""

	_, err := registry.Create(draft)

	var draftErr *fleet.ErrInvalidDraft
	require.ErrorAs(t, err, &draftErr)
	assert.Equal(t, fleet.CodeMissingName, draftErr.Code)
	assert.Equal(t, fleet.FieldName, draftErr.Field)
}

func TestUpdate_KeepsIDAndPosition(t *testing.T) {
	// Arrange
	registry := newSeeded(t)
	id := fleet.MustNewVesselIDFromString("bq-3")
	vessel, _ := registry.Get(id)
	draft := vessel.ToDraft()
	draft.Status = fleet.StatusOperational
	draft.Lead2 = "Pedro Silva"

	// Act
	updated, err := registry.Update(id, draft)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, updated.ID())
	assert.Equal(t, fleet.StatusOperational, updated.OperationalStatus())
	assert.Equal(t, []string{"Carla Rivas", "Pedro Silva"}, updated.TechnicalLeads())

	all := registry.List(fleet.FilterCriteria{})
	assert.Equal(t, id, all[2].ID())
	assert.Equal(t, id, registry.SelectedID())
}

func TestUpdate_UnknownIDIsNotFoundBeforeValidation(t *testing.T) {
	registry := newSeeded(t)

	_, err := registry.Update(fleet.MustNewVesselIDFromString("ghost"), fleet.VesselDraft{})

	var notFound *fleet.ErrVesselNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, fleet.CodeNotFound, fleet.CodeOf(err))
}

func TestUpdate_CodeOfAnotherVesselIsRejected(t *testing.T) {
	registry := newSeeded(t)
	id := fleet.MustNewVesselIDFromString("bq-1")
	vessel, _ := registry.Get(id)
	draft := vessel.ToDraft()
	draft.RegistrationCode = "chi-pmo-4478"

	_, err := registry.Update(id, draft)

	assert.True(t, fleet.HasCode(err, fleet.CodeDuplicateRegistrationCode))
	unchanged, _ := registry.Get(id)
	assert.Equal(t, "CHI-VAL-0921", unchanged.RegistrationCode())
}

func TestRemove_SelectedVesselMovesSelectionToFirst(t *testing.T) {
	registry := newSeeded(t)

	err := registry.Remove(fleet.MustNewVesselIDFromString("bq-1"))

	require.NoError(t, err)
	assert.Equal(t, 3, registry.Len())
	assert.Equal(t, "bq-2", registry.SelectedID().String())
}

func TestRemove_UnselectedVesselKeepsSelection(t *testing.T) {
	registry := newSeeded(t)

	require.NoError(t, registry.Remove(fleet.MustNewVesselIDFromString("bq-4")))

	assert.Equal(t, "bq-1", registry.SelectedID().String())
}

func TestRemove_OnlyVesselClearsSelection(t *testing.T) {
	vessel, err := fleet.ReconstructVessel(fleet.MustNewVesselIDFromString("solo"),
		"Solitario", "CHI-SOL-0001", "Iquique", fleet.StatusInPort, "Ana")
	require.NoError(t, err)
	registry, err := fleet.NewVesselRegistry(nil, vessel)
	require.NoError(t, err)
	registry.Select(vessel.ID())

	require.NoError(t, registry.Remove(vessel.ID()))

	assert.Equal(t, 0, registry.Len())
	assert.True(t, registry.SelectedID().IsZero())
	_, ok := registry.Selected()
	assert.False(t, ok)
}

func TestRemove_UnknownIDIsNotFound(t *testing.T) {
	registry := newSeeded(t)

	err := registry.Remove(fleet.MustNewVesselIDFromString("ghost"))

	assert.True(t, fleet.HasCode(err, fleet.CodeNotFound))
	assert.Equal(t, 4, registry.Len())
}

func TestNewVesselRegistry_RejectsDuplicateCodes(t *testing.T) {
	a, err := fleet.ReconstructVessel(fleet.MustNewVesselIDFromString("a"), "A", "X-1", "P", fleet.StatusOperational, "L")
	require.NoError(t, err)
	b, err := fleet.ReconstructVessel(fleet.MustNewVesselIDFromString("b"), "B", "x-1", "P", fleet.StatusOperational, "M")
	require.NoError(t, err)

	_, err = fleet.NewVesselRegistry(nil, a, b)

	assert.True(t, fleet.HasCode(err, fleet.CodeDuplicateRegistrationCode))
}

func TestCountByStatus(t *testing.T) {
	registry := newSeeded(t)

	counts := registry.CountByStatus()

	assert.Equal(t, 2, counts[fleet.StatusOperational])
	assert.Equal(t, 1, counts[fleet.StatusInPort])
	assert.Equal(t, 1, counts[fleet.StatusUnderRepair])
	assert.Equal(t, 0, counts[fleet.StatusOutOfService])
}

func TestNewVesselID_DefaultGeneratorIsUnique(t *testing.T) {
	registry, err := fleet.NewVesselRegistry(nil)
	require.NoError(t, err)

	first, err := registry.Create(validDraft())
	require.NoError(t, err)
	second := validDraft()
	second.RegistrationCode = "CHI-ANT-0002"
	other, err := registry.Create(second)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), other.ID())
	assert.Contains(t, first.ID().String(), "bq-")
}

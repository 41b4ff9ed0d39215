package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
	"github.com/andrescamacho/shipfix-go/test/helpers"
)

type vesselRegistryContext struct {
	registry *fleet.VesselRegistry
	form     *fleet.VesselForm
	listed   []fleet.Vessel
	before   []fleet.Vessel
	err      error
}

func (vrc *vesselRegistryContext) reset() {
	vrc.registry = nil
	vrc.form = nil
	vrc.listed = nil
	vrc.before = nil
	vrc.err = nil
}

func (vrc *vesselRegistryContext) useRegistry(registry *fleet.VesselRegistry) {
	vrc.registry = registry
	vrc.form = fleet.NewVesselForm(registry)
}

// snapshot remembers the collection so failed operations can be checked for side effects
func (vrc *vesselRegistryContext) snapshot() {
	vrc.before = vrc.registry.List(fleet.FilterCriteria{})
}

func (vrc *vesselRegistryContext) vesselID(id string) (fleet.VesselID, error) {
	return fleet.NewVesselIDFromString(id)
}

// Given

func (vrc *vesselRegistryContext) theSeedFleet() error {
	vrc.useRegistry(fleet.NewSeededRegistry(helpers.SequentialVesselIDs()))
	return nil
}

func (vrc *vesselRegistryContext) anEmptyFleet() error {
	registry, err := fleet.NewVesselRegistry(helpers.SequentialVesselIDs())
	if err != nil {
		return err
	}
	vrc.useRegistry(registry)
	return nil
}

func (vrc *vesselRegistryContext) theFollowingVessels(table *godog.Table) error {
	vessels := make([]fleet.Vessel, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		id, err := vrc.vesselID(getCellValue(table, row, "id"))
		if err != nil {
			return err
		}
		status := fleet.StatusOperational
		if raw := getCellValue(table, row, "status"); raw != "" {
			if status, err = fleet.ParseOperationalStatus(raw); err != nil {
				return err
			}
		}

		vessel, err := fleet.ReconstructVessel(
			id,
			getCellValue(table, row, "name"),
			getCellValue(table, row, "registration_code"),
			getCellValue(table, row, "home_port"),
			status,
			splitLeads(getCellValue(table, row, "leads"))...,
		)
		if err != nil {
			return err
		}
		vessels = append(vessels, vessel)
	}

	registry, err := fleet.NewVesselRegistry(helpers.SequentialVesselIDs(), vessels...)
	if err != nil {
		return err
	}
	vrc.useRegistry(registry)
	return nil
}

// When: registry operations

func (vrc *vesselRegistryContext) iListVesselsWithQuery(query string) error {
	criteria, err := fleet.NewFilterCriteria(query, fleet.AllOption, fleet.AllOption)
	if err != nil {
		return err
	}
	vrc.listed = vrc.registry.List(criteria)
	return nil
}

func (vrc *vesselRegistryContext) iListVesselsWithHomePortAndStatus(homePort, status string) error {
	criteria, err := fleet.NewFilterCriteria("", homePort, status)
	if err != nil {
		return err
	}
	vrc.listed = vrc.registry.List(criteria)
	return nil
}

func (vrc *vesselRegistryContext) iListAllVessels() error {
	vrc.listed = vrc.registry.List(fleet.FilterCriteria{})
	return nil
}

func draftFromTable(table *godog.Table, draft *fleet.VesselDraft) error {
	pairs, err := fieldTable(table)
	if err != nil {
		return err
	}
	for _, pair := range pairs {
		if err := draft.SetField(pair[0], pair[1]); err != nil {
			return err
		}
	}
	return nil
}

func (vrc *vesselRegistryContext) iCreateAVesselWith(table *godog.Table) error {
	var draft fleet.VesselDraft
	if err := draftFromTable(table, &draft); err != nil {
		return err
	}

	vrc.snapshot()
	_, vrc.err = vrc.registry.Create(draft)
	return nil
}

func (vrc *vesselRegistryContext) iUpdateVesselWith(id string, table *godog.Table) error {
	vesselID, err := vrc.vesselID(id)
	if err != nil {
		return err
	}

	var draft fleet.VesselDraft
	if current, ok := vrc.registry.Get(vesselID); ok {
		draft = current.ToDraft()
	}
	if err := draftFromTable(table, &draft); err != nil {
		return err
	}

	vrc.snapshot()
	_, vrc.err = vrc.registry.Update(vesselID, draft)
	return nil
}

func (vrc *vesselRegistryContext) iRemoveVessel(id string) error {
	vesselID, err := vrc.vesselID(id)
	if err != nil {
		return err
	}
	vrc.snapshot()
	vrc.err = vrc.registry.Remove(vesselID)
	return nil
}

func (vrc *vesselRegistryContext) iSelectVessel(id string) error {
	vesselID, err := vrc.vesselID(id)
	if err != nil {
		return err
	}
	vrc.registry.Select(vesselID)
	return nil
}

// When: form workflow

func (vrc *vesselRegistryContext) iOpenTheCreateForm() error {
	vrc.form.OpenCreate()
	return nil
}

func (vrc *vesselRegistryContext) iOpenTheEditFormFor(id string) error {
	vesselID, err := vrc.vesselID(id)
	if err != nil {
		return err
	}
	vrc.err = vrc.form.OpenEdit(vesselID)
	return nil
}

func (vrc *vesselRegistryContext) iSetTheFormFieldTo(field, value string) error {
	vrc.err = vrc.form.SetField(field, value)
	return nil
}

func (vrc *vesselRegistryContext) iSubmitTheForm() error {
	vrc.snapshot()
	_, vrc.err = vrc.form.Submit()
	return nil
}

func (vrc *vesselRegistryContext) iCloseTheForm() error {
	vrc.form.Close()
	return nil
}

// Then

func (vrc *vesselRegistryContext) theListedVesselsShouldBe(table *godog.Table) error {
	expected := singleColumn(table)
	actual := make([]string, 0, len(vrc.listed))
	for _, v := range vrc.listed {
		actual = append(actual, v.Name())
	}

	if strings.Join(expected, "|") != strings.Join(actual, "|") {
		return fmt.Errorf("expected vessels %v, got %v", expected, actual)
	}
	return nil
}

func (vrc *vesselRegistryContext) noVesselsShouldBeListed() error {
	if len(vrc.listed) != 0 {
		return fmt.Errorf("expected no vessels, got %d", len(vrc.listed))
	}
	return nil
}

func (vrc *vesselRegistryContext) theOperationShouldSucceed() error {
	if vrc.err != nil {
		return fmt.Errorf("expected success, got error: %v", vrc.err)
	}
	return nil
}

func (vrc *vesselRegistryContext) theOperationShouldFailWith(code string) error {
	if vrc.err == nil {
		return fmt.Errorf("expected error %s, got success", code)
	}
	if !fleet.HasCode(vrc.err, fleet.ErrorCode(code)) {
		return fmt.Errorf("expected error %s, got %v (code %q)", code, vrc.err, fleet.CodeOf(vrc.err))
	}
	return nil
}

func (vrc *vesselRegistryContext) theFleetShouldBeUnchanged() error {
	after := vrc.registry.List(fleet.FilterCriteria{})
	if len(after) != len(vrc.before) {
		return fmt.Errorf("expected %d vessels, got %d", len(vrc.before), len(after))
	}
	for i := range after {
		if after[i].String() != vrc.before[i].String() {
			return fmt.Errorf("vessel %d changed: %s -> %s", i, vrc.before[i], after[i])
		}
	}
	return nil
}

func (vrc *vesselRegistryContext) theFleetShouldHaveVessels(count int) error {
	if vrc.registry.Len() != count {
		return fmt.Errorf("expected %d vessels, got %d", count, vrc.registry.Len())
	}
	return nil
}

func (vrc *vesselRegistryContext) theFirstVesselShouldBeNamed(name string) error {
	all := vrc.registry.List(fleet.FilterCriteria{})
	if len(all) == 0 {
		return fmt.Errorf("fleet is empty")
	}
	if all[0].Name() != name {
		return fmt.Errorf("expected first vessel %q, got %q", name, all[0].Name())
	}
	return nil
}

func (vrc *vesselRegistryContext) theSelectedVesselShouldBe(name string) error {
	selected, ok := vrc.registry.Selected()
	if !ok {
		return fmt.Errorf("expected %q selected, nothing is selected (id %q)", name, vrc.registry.SelectedID())
	}
	if selected.Name() != name {
		return fmt.Errorf("expected %q selected, got %q", name, selected.Name())
	}
	return nil
}

func (vrc *vesselRegistryContext) noVesselShouldBeSelected() error {
	if _, ok := vrc.registry.Selected(); ok {
		return fmt.Errorf("expected no selection, got %s", vrc.registry.SelectedID())
	}
	return nil
}

func (vrc *vesselRegistryContext) theSelectedIDShouldBeEmpty() error {
	if !vrc.registry.SelectedID().IsZero() {
		return fmt.Errorf("expected empty selected id, got %s", vrc.registry.SelectedID())
	}
	return nil
}

func (vrc *vesselRegistryContext) vesselShouldHave(name string, table *godog.Table) error {
	var target *fleet.Vessel
	for _, v := range vrc.registry.List(fleet.FilterCriteria{}) {
		if v.Name() == name {
			v := v
			target = &v
			break
		}
	}
	if target == nil {
		return fmt.Errorf("vessel %q not found", name)
	}

	pairs, err := fieldTable(table)
	if err != nil {
		return err
	}
	for _, pair := range pairs {
		var actual string
		switch pair[0] {
		case "registration_code":
			actual = target.RegistrationCode()
		case "home_port":
			actual = target.HomePort()
		case "status":
			actual = target.OperationalStatus().Label()
		case "leads":
			actual = strings.Join(target.TechnicalLeads(), ", ")
		case "position":
			actual = fmt.Sprint(vrc.positionOf(target.ID()))
		default:
			return fmt.Errorf("unknown vessel attribute %q", pair[0])
		}
		if actual != pair[1] {
			return fmt.Errorf("vessel %q %s: expected %q, got %q", name, pair[0], pair[1], actual)
		}
	}
	return nil
}

func (vrc *vesselRegistryContext) positionOf(id fleet.VesselID) int {
	for i, v := range vrc.registry.List(fleet.FilterCriteria{}) {
		if v.ID().Equals(id) {
			return i + 1
		}
	}
	return 0
}

func (vrc *vesselRegistryContext) theHomePortOptionsShouldBe(table *godog.Table) error {
	expected := singleColumn(table)
	actual := vrc.registry.HomePortOptions()
	if strings.Join(expected, "|") != strings.Join(actual, "|") {
		return fmt.Errorf("expected home ports %v, got %v", expected, actual)
	}
	return nil
}

func (vrc *vesselRegistryContext) everyRegistrationCodeShouldBeUnique() error {
	seen := map[string]string{}
	for _, v := range vrc.registry.List(fleet.FilterCriteria{}) {
		key := strings.ToLower(v.RegistrationCode())
		if other, ok := seen[key]; ok {
			return fmt.Errorf("registration code %s shared by %s and %s", v.RegistrationCode(), other, v.Name())
		}
		seen[key] = v.Name()
	}
	return nil
}

func (vrc *vesselRegistryContext) everyVesselShouldHaveDistinctLeads() error {
	for _, v := range vrc.registry.List(fleet.FilterCriteria{}) {
		leads := v.TechnicalLeads()
		if len(leads) < 1 || len(leads) > 2 {
			return fmt.Errorf("%s has %d leads", v.Name(), len(leads))
		}
		if len(leads) == 2 && strings.EqualFold(leads[0], leads[1]) {
			return fmt.Errorf("%s has duplicate leads %v", v.Name(), leads)
		}
	}
	return nil
}

func (vrc *vesselRegistryContext) theFormModeShouldBe(mode string) error {
	if vrc.form.Mode().String() != mode {
		return fmt.Errorf("expected form mode %s, got %s", mode, vrc.form.Mode())
	}
	return nil
}

func (vrc *vesselRegistryContext) theFormShouldShowError(code string) error {
	if !fleet.HasCode(vrc.form.LastError(), fleet.ErrorCode(code)) {
		return fmt.Errorf("expected form error %s, got %v", code, vrc.form.LastError())
	}
	return nil
}

func (vrc *vesselRegistryContext) theFormFieldShouldBe(field, value string) error {
	draft := vrc.form.Draft()
	var actual string
	switch field {
	case fleet.FieldName:
		actual = draft.Name
	case fleet.FieldRegistrationCode:
		actual = draft.RegistrationCode
	case fleet.FieldHomePort:
		actual = draft.HomePort
	case fleet.FieldLead1:
		actual = draft.Lead1
	case fleet.FieldLead2:
		actual = draft.Lead2
	case fleet.FieldStatus:
		actual = draft.Status.Label()
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	if actual != value {
		return fmt.Errorf("form field %s: expected %q, got %q", field, value, actual)
	}
	return nil
}

// InitializeVesselRegistryScenario registers vessel registry and form steps
func InitializeVesselRegistryScenario(ctx *godog.ScenarioContext) {
	vrc := &vesselRegistryContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		vrc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^the seed fleet$`, vrc.theSeedFleet)
	ctx.Step(`^an empty fleet$`, vrc.anEmptyFleet)
	ctx.Step(`^the following vessels:$`, vrc.theFollowingVessels)

	// When: registry
	ctx.Step(`^I list vessels with query "([^"]*)"$`, vrc.iListVesselsWithQuery)
	ctx.Step(`^I list vessels with home port "([^"]*)" and status "([^"]*)"$`, vrc.iListVesselsWithHomePortAndStatus)
	ctx.Step(`^I list all vessels$`, vrc.iListAllVessels)
	ctx.Step(`^I create a vessel with:$`, vrc.iCreateAVesselWith)
	ctx.Step(`^I update vessel "([^"]*)" with:$`, vrc.iUpdateVesselWith)
	ctx.Step(`^I remove vessel "([^"]*)"$`, vrc.iRemoveVessel)
	ctx.Step(`^I select vessel "([^"]*)"$`, vrc.iSelectVessel)

	// When: form
	ctx.Step(`^I open the create form$`, vrc.iOpenTheCreateForm)
	ctx.Step(`^I open the edit form for "([^"]*)"$`, vrc.iOpenTheEditFormFor)
	ctx.Step(`^I set the form field "([^"]*)" to "([^"]*)"$`, vrc.iSetTheFormFieldTo)
	ctx.Step(`^I submit the form$`, vrc.iSubmitTheForm)
	ctx.Step(`^I close the form$`, vrc.iCloseTheForm)

	// Then
	ctx.Step(`^the listed vessels should be:$`, vrc.theListedVesselsShouldBe)
	ctx.Step(`^no vessels should be listed$`, vrc.noVesselsShouldBeListed)
	ctx.Step(`^the operation should succeed$`, vrc.theOperationShouldSucceed)
	ctx.Step(`^the operation should fail with "([^"]*)"$`, vrc.theOperationShouldFailWith)
	ctx.Step(`^the fleet should be unchanged$`, vrc.theFleetShouldBeUnchanged)
	ctx.Step(`^the fleet should have (\d+) vessels?$`, vrc.theFleetShouldHaveVessels)
	ctx.Step(`^the first vessel should be named "([^"]*)"$`, vrc.theFirstVesselShouldBeNamed)
	ctx.Step(`^the selected vessel should be "([^"]*)"$`, vrc.theSelectedVesselShouldBe)
	ctx.Step(`^no vessel should be selected$`, vrc.noVesselShouldBeSelected)
	ctx.Step(`^the selected id should be empty$`, vrc.theSelectedIDShouldBeEmpty)
	ctx.Step(`^vessel "([^"]*)" should have:$`, vrc.vesselShouldHave)
	ctx.Step(`^the home port options should be:$`, vrc.theHomePortOptionsShouldBe)
	ctx.Step(`^every registration code should be unique$`, vrc.everyRegistrationCodeShouldBeUnique)
	ctx.Step(`^every vessel should have one or two distinct technical leads$`, vrc.everyVesselShouldHaveDistinctLeads)
	ctx.Step(`^the form mode should be "([^"]*)"$`, vrc.theFormModeShouldBe)
	ctx.Step(`^the form should show error "([^"]*)"$`, vrc.theFormShouldShowError)
	ctx.Step(`^the form field "([^"]*)" should be "([^"]*)"$`, vrc.theFormFieldShouldBe)
}

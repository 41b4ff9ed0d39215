package fleet

import (
	"fmt"
	"strings"
)

// VesselRegistry owns the vessel collection and the current selection.
//
// It is the sole owner of vessel records: every mutation goes through Create,
// Update or Remove, and every read returns copies. A registry belongs to one UI
// session and is not safe for concurrent use.
type VesselRegistry struct {
	vessels    []Vessel
	selectedID VesselID
	newID      IDGenerator
}

// NewVesselRegistry creates a registry holding the given vessels in order.
// A nil idGen defaults to UUID-based ids. Returns an error if the initial
// vessels break a registry invariant.
func NewVesselRegistry(idGen IDGenerator, vessels ...Vessel) (*VesselRegistry, error) {
	if idGen == nil {
		idGen = NewVesselID
	}

	r := &VesselRegistry{
		vessels: make([]Vessel, 0, len(vessels)),
		newID:   idGen,
	}

	seenIDs := make(map[VesselID]struct{}, len(vessels))
	seenCodes := make(map[string]struct{}, len(vessels))
	for _, v := range vessels {
		if _, dup := seenIDs[v.id]; dup {
			return nil, fmt.Errorf("duplicate vessel id in initial collection: %s", v.id)
		}
		code := strings.ToLower(v.registrationCode)
		if _, dup := seenCodes[code]; dup {
			return nil, invalidDraft(CodeDuplicateRegistrationCode, FieldRegistrationCode,
				fmt.Sprintf("registration code %s appears more than once", v.registrationCode))
		}
		seenIDs[v.id] = struct{}{}
		seenCodes[code] = struct{}{}
		r.vessels = append(r.vessels, v.clone())
	}

	return r, nil
}

// List returns the vessels matching the criteria, in collection order
func (r *VesselRegistry) List(criteria FilterCriteria) []Vessel {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	result := make([]Vessel, 0, len(r.vessels))
	for _, v := range r.vessels {
		if v.matches(query, criteria) {
			result = append(result, v.clone())
		}
	}
	return result
}

// ListDistinctHomePorts returns each non-empty home port once, in order of first appearance
func (r *VesselRegistry) ListDistinctHomePorts() []string {
	seen := make(map[string]struct{}, len(r.vessels))
	ports := make([]string, 0, len(r.vessels))
	for _, v := range r.vessels {
		if v.homePort == "" {
			continue
		}
		if _, ok := seen[v.homePort]; ok {
			continue
		}
		seen[v.homePort] = struct{}{}
		ports = append(ports, v.homePort)
	}
	return ports
}

// HomePortOptions returns the home-port picker entries: AllOption followed by the distinct ports
func (r *VesselRegistry) HomePortOptions() []string {
	return append([]string{AllOption}, r.ListDistinctHomePorts()...)
}

// Get returns a copy of the vessel with the given id
func (r *VesselRegistry) Get(id VesselID) (Vessel, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Vessel{}, false
	}
	return r.vessels[idx].clone(), true
}

// Len returns the number of vessels in the collection
func (r *VesselRegistry) Len() int {
	return len(r.vessels)
}

// CountByStatus returns how many vessels are in each status
func (r *VesselRegistry) CountByStatus() map[OperationalStatus]int {
	counts := make(map[OperationalStatus]int, len(AllStatuses()))
	for _, status := range AllStatuses() {
		counts[status] = 0
	}
	for _, v := range r.vessels {
		counts[v.operationalStatus]++
	}
	return counts
}

// Select sets the highlighted vessel. Unknown ids are accepted; Selected then
// resolves to none.
func (r *VesselRegistry) Select(id VesselID) {
	r.selectedID = id
}

// SelectedID returns the raw selection, which may be zero or dangling
func (r *VesselRegistry) SelectedID() VesselID {
	return r.selectedID
}

// Selected resolves the current selection to a vessel
func (r *VesselRegistry) Selected() (Vessel, bool) {
	if r.selectedID.IsZero() {
		return Vessel{}, false
	}
	return r.Get(r.selectedID)
}

// ValidateDraft checks a draft without mutating state and returns the first failure.
// In ModalEdit mode the vessel identified by excludeID is ignored by the
// registration-code uniqueness check.
func (r *VesselRegistry) ValidateDraft(draft VesselDraft, mode ModalMode, excludeID VesselID) error {
	if err := draft.validateFields(); err != nil {
		return err
	}

	code := draft.normalizedCode()
	for _, v := range r.vessels {
		if mode == ModalEdit && v.id.Equals(excludeID) {
			continue
		}
		if strings.ToLower(v.registrationCode) == code {
			return invalidDraft(CodeDuplicateRegistrationCode, FieldRegistrationCode,
				fmt.Sprintf("another vessel already uses registration code %s", v.registrationCode))
		}
	}

	return draft.validateStatus()
}

// Create validates the draft and, on success, inserts the new vessel at the front
// of the collection and selects it.
func (r *VesselRegistry) Create(draft VesselDraft) (Vessel, error) {
	if err := r.ValidateDraft(draft, ModalCreate, VesselID{}); err != nil {
		return Vessel{}, err
	}

	vessel := draft.build(r.newID())
	r.vessels = append([]Vessel{vessel}, r.vessels...)
	r.selectedID = vessel.id

	return vessel.clone(), nil
}

// Update replaces every editable field of an existing vessel, keeping its id and
// position, and selects it.
func (r *VesselRegistry) Update(id VesselID, draft VesselDraft) (Vessel, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Vessel{}, &ErrVesselNotFound{ID: id}
	}

	if err := r.ValidateDraft(draft, ModalEdit, id); err != nil {
		return Vessel{}, err
	}

	r.vessels[idx] = draft.build(id)
	r.selectedID = id

	return r.vessels[idx].clone(), nil
}

// Remove deletes a vessel unconditionally. If it was selected, the selection moves
// to the first remaining vessel, or is cleared when none remain.
func (r *VesselRegistry) Remove(id VesselID) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return &ErrVesselNotFound{ID: id}
	}

	r.vessels = append(r.vessels[:idx], r.vessels[idx+1:]...)

	if r.selectedID.Equals(id) {
		r.selectedID = VesselID{}
		if len(r.vessels) > 0 {
			r.selectedID = r.vessels[0].id
		}
	}

	return nil
}

func (r *VesselRegistry) indexOf(id VesselID) int {
	if id.IsZero() {
		return -1
	}
	for i, v := range r.vessels {
		if v.id.Equals(id) {
			return i
		}
	}
	return -1
}

package fleet

// ModalMode is the state of the create/edit form
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalCreate
	ModalEdit
)

func (m ModalMode) String() string {
	switch m {
	case ModalClosed:
		return "CLOSED"
	case ModalCreate:
		return "CREATE"
	case ModalEdit:
		return "EDIT"
	default:
		return "UNKNOWN"
	}
}

// VesselForm drives the two-mode form workflow on top of a registry:
// Closed -> Create -> Closed and Closed -> Edit(id) -> Closed.
// The draft is only committed through Submit.
type VesselForm struct {
	registry *VesselRegistry
	mode     ModalMode
	editID   VesselID
	draft    VesselDraft
	lastErr  error
}

func NewVesselForm(registry *VesselRegistry) *VesselForm {
	return &VesselForm{registry: registry}
}

// OpenCreate opens the form with an empty draft
func (f *VesselForm) OpenCreate() {
	f.mode = ModalCreate
	f.editID = VesselID{}
	f.draft = VesselDraft{}
	f.lastErr = nil
}

// OpenEdit opens the form pre-filled from an existing vessel.
// An unknown id leaves the form untouched.
func (f *VesselForm) OpenEdit(id VesselID) error {
	vessel, ok := f.registry.Get(id)
	if !ok {
		return &ErrVesselNotFound{ID: id}
	}

	f.mode = ModalEdit
	f.editID = id
	f.draft = vessel.ToDraft()
	f.lastErr = nil
	return nil
}

// SetField updates one draft input
func (f *VesselForm) SetField(field, value string) error {
	if f.mode == ModalClosed {
		return ErrFormClosed
	}
	return f.draft.SetField(field, value)
}

// SetDraft replaces the whole draft
func (f *VesselForm) SetDraft(draft VesselDraft) error {
	if f.mode == ModalClosed {
		return ErrFormClosed
	}
	f.draft = draft
	return nil
}

// Submit validates and commits the draft. On failure the form stays open and
// remembers the error; on success it closes.
func (f *VesselForm) Submit() (Vessel, error) {
	var (
		vessel Vessel
		err    error
	)

	switch f.mode {
	case ModalCreate:
		vessel, err = f.registry.Create(f.draft)
	case ModalEdit:
		vessel, err = f.registry.Update(f.editID, f.draft)
	default:
		return Vessel{}, ErrFormClosed
	}

	if err != nil {
		f.lastErr = err
		return Vessel{}, err
	}

	f.Close()
	return vessel, nil
}

// Close discards the draft and returns to ModalClosed
func (f *VesselForm) Close() {
	f.mode = ModalClosed
	f.editID = VesselID{}
	f.draft = VesselDraft{}
	f.lastErr = nil
}

func (f *VesselForm) Mode() ModalMode {
	return f.mode
}

// EditID is the vessel being edited; zero unless Mode is ModalEdit
func (f *VesselForm) EditID() VesselID {
	return f.editID
}

func (f *VesselForm) Draft() VesselDraft {
	return f.draft
}

// LastError is the most recent Submit failure since the form was opened
func (f *VesselForm) LastError() error {
	return f.lastErr
}

func (f *VesselForm) IsOpen() bool {
	return f.mode != ModalClosed
}

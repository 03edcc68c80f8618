package segmented

// ChangeSource tells listeners what caused a selection change.
type ChangeSource int

const (
	ChangeSourceProgrammatic ChangeSource = iota // SetSelectedItem or ClearSelection
	ChangeSourcePointer                          // Pointer down or move over an item
	ChangeSourceItemsReset                       // SetItems reset the selection
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourcePointer:
		return "pointer"
	case ChangeSourceItemsReset:
		return "items_reset"
	default:
		return "programmatic"
	}
}

// SelectionChange describes one change of the selected item.
type SelectionChange struct {
	Previous    string
	HadPrevious bool
	Current     string
	HasCurrent  bool
	Source      ChangeSource
}

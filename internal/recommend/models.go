package recommend

// DefaultModelLabel is preselected in model pickers
const DefaultModelLabel = "grok-4-1-fast-reasoning (latest)"

// DefaultModelID is used for any label that is not in the table
const DefaultModelID = "grok-4-1-fast-reasoning"

type modelEntry struct {
	label string
	id    string
}

// Display order for pickers.
var modelTable = []modelEntry{
	{label: DefaultModelLabel, id: DefaultModelID},
	{label: "grok-4-fast-reasoning", id: "grok-4-fast-reasoning"},
	{label: "grok-4 (flagship)", id: "grok-4"},
	{label: "grok-code-fast-1", id: "grok-code-fast-1"},
}

var modelIndex = func() map[string]string {
	idx := make(map[string]string, len(modelTable))
	for _, m := range modelTable {
		idx[m.label] = m.id
	}
	return idx
}()

// ResolveModel maps a caller-facing label to the provider model identifier.
// Unknown labels resolve to DefaultModelID with known=false; stale picker
// values must not fail the request.
func ResolveModel(label string) (id string, known bool) {
	if id, ok := modelIndex[label]; ok {
		return id, true
	}
	return DefaultModelID, false
}

// ModelLabels returns the accepted labels in display order
func ModelLabels() []string {
	labels := make([]string, len(modelTable))
	for i, m := range modelTable {
		labels[i] = m.label
	}
	return labels
}

package generate

import "github.com/TFMV/sfseed/pkg/describe"

// DependentTables maps each dependent picklist field to the values legal
// for each of its controller's option indexes. Built once per model.
type DependentTables struct {
	byField map[string]*dependentEntry
}

type dependentEntry struct {
	controller string
	allowed    map[int][]string
}

// BuildDependentTables resolves every field with a controller reference.
// A field whose controller cannot be found in the model is left out of
// the tables entirely, which the generator treats as unconstrained.
func BuildDependentTables(m *describe.Model) *DependentTables {
	t := &DependentTables{byField: make(map[string]*dependentEntry)}

	for i := range m.Fields {
		f := &m.Fields[i]
		if f.ControllerName == "" || len(f.Picklist) == 0 {
			continue
		}
		controller, ok := m.Field(f.ControllerName)
		if !ok {
			continue
		}
		entry := &dependentEntry{
			controller: controller.Name,
			allowed:    make(map[int][]string),
		}
		for ci := range controller.Picklist {
			for _, opt := range f.Picklist {
				if describe.Allows(opt.ValidFor, ci) {
					entry.allowed[ci] = append(entry.allowed[ci], opt.Value)
				}
			}
		}
		t.byField[f.Name] = entry
	}

	return t
}

// Controller returns the controlling field name for a dependent field.
func (t *DependentTables) Controller(field string) (string, bool) {
	entry, ok := t.byField[field]
	if !ok {
		return "", false
	}
	return entry.controller, true
}

// Allowed returns the legal values for the dependent field when the
// controller's option at controllerIdx is selected.
func (t *DependentTables) Allowed(field string, controllerIdx int) []string {
	entry, ok := t.byField[field]
	if !ok {
		return nil
	}
	return entry.allowed[controllerIdx]
}

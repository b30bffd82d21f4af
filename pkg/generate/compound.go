package generate

import (
	"sort"
	"strings"

	"github.com/TFMV/sfseed/pkg/describe"
)

// Role identifies a component's job within a compound address group.
type Role string

const (
	RoleCountryCode Role = "CountryCode"
	RoleCountry     Role = "Country"
	RoleStateCode   Role = "StateCode"
	RoleState       Role = "State"
	RoleStreet      Role = "Street"
	RoleCity        Role = "City"
	RolePostalCode  Role = "PostalCode"
	RoleLatitude    Role = "Latitude"
	RoleLongitude   Role = "Longitude"
)

var knownRoles = map[Role]struct{}{
	RoleCountryCode: {},
	RoleCountry:     {},
	RoleStateCode:   {},
	RoleState:       {},
	RoleStreet:      {},
	RoleCity:        {},
	RolePostalCode:  {},
	RoleLatitude:    {},
	RoleLongitude:   {},
}

// compoundSuffix is trimmed from the compound field name to obtain the
// component name prefix (BillingAddress -> Billing -> BillingCity).
const compoundSuffix = "Address"

// CodeLabel pairs a picklist option value with its display label.
type CodeLabel struct {
	Code  string
	Label string
}

// CompoundGroup holds the static lookup tables for one address group.
// Country and State label components have no value of their own; their
// value is derived from the code selected for the row.
type CompoundGroup struct {
	Name   string // compound field name, e.g. "BillingAddress"
	Prefix string // component prefix, e.g. "Billing"

	// Countries is the country-code option order; it is the index space
	// for StatesByCountry.
	Countries []CodeLabel

	// StatesByCountry narrows the state options per country index using
	// the options' applicability masks.
	StatesByCountry map[int][]CodeLabel
}

// CompoundTables is the once-built compound group lookup for a model.
type CompoundTables struct {
	groups      map[string]*CompoundGroup
	roleByField map[string]fieldRole
}

type fieldRole struct {
	group *CompoundGroup
	role  Role
}

// BuildCompoundTables derives compound groups and their country/state
// tables from the model. Invoked once before row generation.
func BuildCompoundTables(m *describe.Model) *CompoundTables {
	t := &CompoundTables{
		groups:      make(map[string]*CompoundGroup),
		roleByField: make(map[string]fieldRole),
	}

	members := make(map[string][]*describe.FieldDefinition)
	for i := range m.Fields {
		f := &m.Fields[i]
		if f.CompoundGroup != "" && f.CompoundGroup != f.Name {
			members[f.CompoundGroup] = append(members[f.CompoundGroup], f)
		}
	}

	for groupName, fields := range members {
		prefix := strings.TrimSuffix(groupName, compoundSuffix)
		grp := &CompoundGroup{
			Name:            groupName,
			Prefix:          prefix,
			StatesByCountry: make(map[int][]CodeLabel),
		}

		var countryField, stateField *describe.FieldDefinition
		claimed := false
		for _, f := range fields {
			role := Role(strings.TrimPrefix(f.Name, prefix))
			if _, known := knownRoles[role]; !known {
				continue
			}
			t.roleByField[f.Name] = fieldRole{group: grp, role: role}
			claimed = true
			switch role {
			case RoleCountryCode:
				countryField = f
			case RoleStateCode:
				stateField = f
			}
		}
		if !claimed {
			continue
		}

		if countryField != nil {
			for _, opt := range countryField.Picklist {
				grp.Countries = append(grp.Countries, CodeLabel{Code: opt.Value, Label: opt.Label})
			}
		}
		if stateField != nil {
			for ci := range grp.Countries {
				for _, opt := range stateField.Picklist {
					if describe.Allows(opt.ValidFor, ci) {
						grp.StatesByCountry[ci] = append(grp.StatesByCountry[ci], CodeLabel{Code: opt.Value, Label: opt.Label})
					}
				}
			}
		}
		t.groups[groupName] = grp
	}

	return t
}

// Lookup returns the group and role a field plays, if any.
func (t *CompoundTables) Lookup(fieldName string) (*CompoundGroup, Role, bool) {
	fr, ok := t.roleByField[fieldName]
	if !ok {
		return nil, "", false
	}
	return fr.group, fr.role, true
}

// Group returns the group registered under the compound field name.
func (t *CompoundTables) Group(name string) (*CompoundGroup, bool) {
	g, ok := t.groups[name]
	return g, ok
}

// GroupNames returns the registered group names in sorted order, so
// callers consuming randomness per group do so in a stable order.
func (t *CompoundTables) GroupNames() []string {
	names := make([]string, 0, len(t.groups))
	for name := range t.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

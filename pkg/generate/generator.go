package generate

import (
	"math/rand"
	"strings"

	"github.com/TFMV/sfseed/pkg/describe"
)

// recordTypeIDField is the reference column that carries the selected
// record type for a row.
const recordTypeIDField = "RecordTypeId"

// Person-account field conventions. The business name field and the
// person identity fields are mutually exclusive per row.
const (
	businessNameField  = "Name"
	personPrefix       = "Person"
	personCustomSuffix = "__pc"
)

var personOnlyNames = map[string]struct{}{
	"LastName":   {},
	"FirstName":  {},
	"Salutation": {},
}

func isPersonOnly(name string) bool {
	if _, ok := personOnlyNames[name]; ok {
		return true
	}
	return strings.HasPrefix(name, personPrefix) || strings.HasSuffix(name, personCustomSuffix)
}

func isBusinessOnly(name string) bool {
	return name == businessNameField
}

// strategies dispatches a field type to its synthesis function. Types
// absent from the table (reference, location, other) resolve to an
// empty value instead of failing the row.
var strategies = map[describe.FieldType]func(*Synthesizer, *describe.FieldDefinition) string{
	describe.TypeString: func(s *Synthesizer, f *describe.FieldDefinition) string {
		return s.Text(f.Length, f.Nillable)
	},
	describe.TypeTextArea: func(s *Synthesizer, f *describe.FieldDefinition) string {
		return s.Text(f.Length, f.Nillable)
	},
	describe.TypePicklist: func(s *Synthesizer, f *describe.FieldDefinition) string {
		return s.Picklist(f.Picklist)
	},
	describe.TypeMultiPicklist: func(s *Synthesizer, f *describe.FieldDefinition) string {
		return s.MultiPicklist(f.Picklist)
	},
	describe.TypeDouble: func(s *Synthesizer, f *describe.FieldDefinition) string {
		return s.Numeric(f.Precision, f.Scale)
	},
	describe.TypeCurrency: func(s *Synthesizer, f *describe.FieldDefinition) string {
		return s.Numeric(f.Precision, f.Scale)
	},
	describe.TypePercent: func(s *Synthesizer, f *describe.FieldDefinition) string {
		return s.Numeric(f.Precision, f.Scale)
	},
	describe.TypeInt: func(s *Synthesizer, f *describe.FieldDefinition) string {
		return s.Numeric(f.Precision, f.Scale)
	},
	describe.TypePhone: func(s *Synthesizer, _ *describe.FieldDefinition) string {
		return s.Phone()
	},
	describe.TypeEmail: func(s *Synthesizer, _ *describe.FieldDefinition) string {
		return s.Email()
	},
	describe.TypeURL: func(s *Synthesizer, _ *describe.FieldDefinition) string {
		return s.URL()
	},
	describe.TypeDate: func(s *Synthesizer, _ *describe.FieldDefinition) string {
		return s.Date()
	},
	describe.TypeDateTime: func(s *Synthesizer, _ *describe.FieldDefinition) string {
		return s.DateTime()
	},
}

// Options controls row generation.
type Options struct {
	// SkipFields are always emitted empty.
	SkipFields []string

	// PersonRecordType is the developer name of the record type whose
	// rows are generated as person accounts. Empty disables the
	// person/business duality; every row is then a business row.
	PersonRecordType string
}

// Generator produces independent rows for one described object. The
// lookup tables are built once and never mutated, so a Generator may be
// shared across goroutines as long as each uses its own random source.
type Generator struct {
	model    *describe.Model
	compound *CompoundTables
	deps     *DependentTables
	synth    *Synthesizer
	rng      *rand.Rand
	opts     Options
	skip     map[string]struct{}
}

// New builds the static lookup tables for the model and returns a
// generator drawing randomness from rng.
func New(model *describe.Model, rng *rand.Rand, opts Options) *Generator {
	skip := make(map[string]struct{}, len(opts.SkipFields))
	for _, name := range opts.SkipFields {
		if name = strings.TrimSpace(name); name != "" {
			skip[name] = struct{}{}
		}
	}
	return &Generator{
		model:    model,
		compound: BuildCompoundTables(model),
		deps:     BuildDependentTables(model),
		synth:    NewSynthesizer(rng),
		rng:      rng,
		opts:     opts,
		skip:     skip,
	}
}

// Header returns the output column names in schema order.
func (g *Generator) Header() []string {
	return g.model.FieldNames()
}

// addressPick is the country/state selection recorded for one compound
// group for the duration of a single row.
type addressPick struct {
	country CodeLabel
	state   CodeLabel
}

// Row generates one complete row. Field resolution follows a fixed
// order: record type, variant, identity fields, compound country/state,
// remaining compound roles, dependent picklists, then everything else by
// declared type. No step ever fails; unresolvable values degrade to
// empty strings.
func (g *Generator) Row() map[string]string {
	row := make(map[string]string, len(g.model.Fields))

	rtID := ""
	person := false
	if n := len(g.model.RecordTypes); n > 0 {
		rt := g.model.RecordTypes[g.rng.Intn(n)]
		rtID = rt.RecordTypeID
		person = g.opts.PersonRecordType != "" && rt.DeveloperName == g.opts.PersonRecordType
	}

	picks := make(map[string]addressPick, len(g.compound.groups))
	for _, name := range g.compound.GroupNames() {
		grp, _ := g.compound.Group(name)
		var p addressPick
		if len(grp.Countries) > 0 {
			ci := g.rng.Intn(len(grp.Countries))
			p.country = grp.Countries[ci]
			if states := grp.StatesByCountry[ci]; len(states) > 0 {
				p.state = states[g.rng.Intn(len(states))]
			}
		}
		picks[name] = p
	}

	var deferred []*describe.FieldDefinition
	for i := range g.model.Fields {
		f := &g.model.Fields[i]
		if _, skip := g.skip[f.Name]; skip || !f.Createable {
			row[f.Name] = ""
			continue
		}
		if f.Name == recordTypeIDField {
			row[f.Name] = rtID
			continue
		}
		if person && isBusinessOnly(f.Name) {
			row[f.Name] = ""
			continue
		}
		if !person && isPersonOnly(f.Name) {
			row[f.Name] = ""
			continue
		}
		if grp, role, ok := g.compound.Lookup(f.Name); ok {
			row[f.Name] = g.compoundValue(f, grp, role, picks[grp.Name])
			continue
		}
		if _, ok := g.deps.Controller(f.Name); ok {
			deferred = append(deferred, f)
			continue
		}
		row[f.Name] = g.value(f)
	}

	// Dependent picklists resolve only after their controllers have a
	// value for this row. A controller may itself be dependent, so
	// resolution follows the dependency chain, not field order.
	pending := make(map[string]struct{}, len(deferred))
	for _, f := range deferred {
		pending[f.Name] = struct{}{}
	}
	for len(deferred) > 0 {
		var waiting []*describe.FieldDefinition
		for _, f := range deferred {
			ctrl, _ := g.deps.Controller(f.Name)
			if _, unresolved := pending[ctrl]; unresolved {
				waiting = append(waiting, f)
				continue
			}
			row[f.Name] = g.dependentValue(f, row)
			delete(pending, f.Name)
		}
		if len(waiting) == len(deferred) {
			// Controller cycle; resolve in field order via the fallback.
			for _, f := range waiting {
				row[f.Name] = g.dependentValue(f, row)
			}
			break
		}
		deferred = waiting
	}

	return row
}

// RowValues generates one row and returns its cells in header order.
func (g *Generator) RowValues() []string {
	row := g.Row()
	values := make([]string, len(g.model.Fields))
	for i := range g.model.Fields {
		values[i] = row[g.model.Fields[i].Name]
	}
	return values
}

func (g *Generator) value(f *describe.FieldDefinition) string {
	strategy, ok := strategies[f.Type]
	if !ok {
		return ""
	}
	return strategy(g.synth, f)
}

func (g *Generator) compoundValue(f *describe.FieldDefinition, grp *CompoundGroup, role Role, pick addressPick) string {
	switch role {
	case RoleCountryCode:
		return pick.country.Code
	case RoleCountry:
		// A label without its code cell would break the pairing.
		if g.suppressed(grp.Prefix + string(RoleCountryCode)) {
			return ""
		}
		return pick.country.Label
	case RoleStateCode:
		return pick.state.Code
	case RoleState:
		if g.suppressed(grp.Prefix + string(RoleStateCode)) {
			return ""
		}
		return pick.state.Label
	case RoleLatitude:
		return g.synth.Latitude()
	case RoleLongitude:
		return g.synth.Longitude()
	default:
		// Street, City and PostalCode are independent of the
		// country/state selection.
		return g.value(f)
	}
}

// suppressed reports whether a field exists in the schema yet never
// receives a value, because it is skipped or not createable.
func (g *Generator) suppressed(name string) bool {
	f, ok := g.model.Field(name)
	if !ok {
		return false
	}
	if _, skipped := g.skip[f.Name]; skipped {
		return true
	}
	return !f.Createable
}

func (g *Generator) dependentValue(f *describe.FieldDefinition, row map[string]string) string {
	ctrlName, _ := g.deps.Controller(f.Name)
	ctrl, ok := g.model.Field(ctrlName)
	if !ok {
		return g.synth.Picklist(f.Picklist)
	}
	// Controller value not among its own options (including skipped or
	// empty controllers) falls back to index 0.
	idx := 0
	if v := row[ctrl.Name]; v != "" {
		for i, opt := range ctrl.Picklist {
			if opt.Value == v {
				idx = i
				break
			}
		}
	}
	allowed := g.deps.Allowed(f.Name, idx)
	if len(allowed) == 0 {
		return ""
	}
	return allowed[g.rng.Intn(len(allowed))]
}

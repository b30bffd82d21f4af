package describe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoFields indicates the describe document carries no fields section.
var ErrNoFields = errors.New("describe result has no fields")

// ErrNoUsableFields indicates every field was removed by load-time
// filtering, leaving nothing to generate.
var ErrNoUsableFields = errors.New("no usable fields after filtering")

// systemFields are audit/system fields users never set directly.
var systemFields = map[string]struct{}{
	"IsDeleted":        {},
	"CreatedById":      {},
	"CreatedDate":      {},
	"LastModifiedById": {},
	"LastModifiedDate": {},
	"SystemModstamp":   {},
}

// masterTypeNames are record type display names excluded from selection.
var masterTypeNames = map[string]struct{}{
	"マスター":   {},
	"マスタ":    {},
	"Master": {},
}

type rawPicklistValue struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	ValidFor string `json:"validFor"`
}

type rawField struct {
	Name              string             `json:"name"`
	Label             string             `json:"label"`
	Type              string             `json:"type"`
	Length            int                `json:"length"`
	Precision         int                `json:"precision"`
	Scale             int                `json:"scale"`
	Nillable          bool               `json:"nillable"`
	Createable        bool               `json:"createable"`
	Calculated        bool               `json:"calculated"`
	PicklistValues    []rawPicklistValue `json:"picklistValues"`
	ControllerName    string             `json:"controllerName"`
	CompoundFieldName string             `json:"compoundFieldName"`
}

type rawRecordType struct {
	RecordTypeID  string `json:"recordTypeId"`
	DeveloperName string `json:"developerName"`
	Name          string `json:"name"`
	Active        bool   `json:"active"`
}

type describeDocument struct {
	Name            string          `json:"name"`
	Fields          []rawField      `json:"fields"`
	RecordTypeInfos []rawRecordType `json:"recordTypeInfos"`
}

// envelope matches the `sf ... --json` wrapper around a describe result.
type envelope struct {
	Result *describeDocument `json:"result"`
}

// Load parses a describe document (bare or wrapped in the CLI's JSON
// envelope), applies the load-time filters, and returns the model.
func Load(data []byte) (*Model, error) {
	var doc describeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse describe result: %w", err)
	}
	if doc.Fields == nil {
		var env envelope
		if err := json.Unmarshal(data, &env); err == nil && env.Result != nil {
			doc = *env.Result
		}
	}
	if doc.Fields == nil {
		return nil, ErrNoFields
	}

	m := &Model{
		Object: doc.Name,
		byName: make(map[string]*FieldDefinition),
	}

	for _, rf := range doc.Fields {
		if rf.Calculated {
			continue
		}
		if _, system := systemFields[rf.Name]; system {
			continue
		}
		fd := FieldDefinition{
			Name:           rf.Name,
			Label:          rf.Label,
			Type:           ParseFieldType(rf.Type),
			Length:         rf.Length,
			Precision:      rf.Precision,
			Scale:          rf.Scale,
			Nillable:       rf.Nillable,
			Createable:     rf.Createable,
			Calculated:     rf.Calculated,
			ControllerName: rf.ControllerName,
			CompoundGroup:  rf.CompoundFieldName,
		}
		for _, pv := range rf.PicklistValues {
			fd.Picklist = append(fd.Picklist, PicklistOption{
				Value:    pv.Value,
				Label:    pv.Label,
				ValidFor: pv.ValidFor,
			})
		}
		m.Fields = append(m.Fields, fd)
	}
	if len(m.Fields) == 0 {
		return nil, ErrNoUsableFields
	}
	for i := range m.Fields {
		m.byName[m.Fields[i].Name] = &m.Fields[i]
	}

	for _, rt := range doc.RecordTypeInfos {
		if !rt.Active {
			continue
		}
		if _, excluded := masterTypeNames[rt.Name]; excluded {
			continue
		}
		m.RecordTypes = append(m.RecordTypes, RecordTypeInfo{
			RecordTypeID:  rt.RecordTypeID,
			DeveloperName: rt.DeveloperName,
			Name:          rt.Name,
			Active:        rt.Active,
		})
	}

	return m, nil
}

// LoadFile reads and parses a describe document from disk.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read describe file: %w", err)
	}
	return Load(data)
}

// Package describe builds an in-memory model of a Salesforce object
// description as produced by `sf sobject describe`.
package describe

import "strings"

// FieldType is the closed set of field types the generator understands.
// Anything outside this set decodes to TypeOther and synthesizes to an
// empty value.
type FieldType int

const (
	TypeString FieldType = iota
	TypeTextArea
	TypePicklist
	TypeMultiPicklist
	TypeDouble
	TypeCurrency
	TypePercent
	TypeInt
	TypePhone
	TypeEmail
	TypeURL
	TypeDate
	TypeDateTime
	TypeReference
	TypeLocation
	TypeOther
)

var fieldTypeNames = map[FieldType]string{
	TypeString:        "string",
	TypeTextArea:      "textarea",
	TypePicklist:      "picklist",
	TypeMultiPicklist: "multipicklist",
	TypeDouble:        "double",
	TypeCurrency:      "currency",
	TypePercent:       "percent",
	TypeInt:           "int",
	TypePhone:         "phone",
	TypeEmail:         "email",
	TypeURL:           "url",
	TypeDate:          "date",
	TypeDateTime:      "datetime",
	TypeReference:     "reference",
	TypeLocation:      "location",
	TypeOther:         "other",
}

var fieldTypesByName = map[string]FieldType{
	"string":              TypeString,
	"textarea":            TypeTextArea,
	"picklist":            TypePicklist,
	"multipicklist":       TypeMultiPicklist,
	"multiselectpicklist": TypeMultiPicklist,
	"double":              TypeDouble,
	"currency":            TypeCurrency,
	"percent":             TypePercent,
	"int":                 TypeInt,
	"integer":             TypeInt,
	"phone":               TypePhone,
	"email":               TypeEmail,
	"url":                 TypeURL,
	"date":                TypeDate,
	"datetime":            TypeDateTime,
	"reference":           TypeReference,
	"location":            TypeLocation,
}

// ParseFieldType maps a describe wire type string to a FieldType.
func ParseFieldType(s string) FieldType {
	if t, ok := fieldTypesByName[strings.ToLower(s)]; ok {
		return t
	}
	return TypeOther
}

// String returns the wire name of the field type.
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return "other"
}

// IsNumeric reports whether the type belongs to the numeric family.
func (t FieldType) IsNumeric() bool {
	switch t {
	case TypeDouble, TypeCurrency, TypePercent, TypeInt:
		return true
	}
	return false
}

// PicklistOption is a single declared picklist value. Option order is
// significant: it is the index space used by dependent-picklist masks.
type PicklistOption struct {
	Value string
	Label string
	// ValidFor is the raw base64-encoded applicability mask against the
	// controlling field's option order. Decoded lazily by Allows.
	ValidFor string
}

// FieldDefinition is the immutable description of one field.
type FieldDefinition struct {
	Name       string
	Label      string
	Type       FieldType
	Length     int
	Precision  int
	Scale      int
	Nillable   bool
	Createable bool
	Calculated bool
	Picklist   []PicklistOption

	// ControllerName names the field that constrains this field's legal
	// picklist values, if any.
	ControllerName string

	// CompoundGroup is the compound field this field is a component of
	// (e.g. "BillingAddress" for BillingCity), if any.
	CompoundGroup string
}

// RecordTypeInfo describes one record type of the object.
type RecordTypeInfo struct {
	RecordTypeID  string
	DeveloperName string
	Name          string
	Active        bool
}

// Model is the filtered, immutable schema of one object.
type Model struct {
	Object      string
	Fields      []FieldDefinition
	RecordTypes []RecordTypeInfo

	byName map[string]*FieldDefinition
}

// Field looks up a field definition by name.
func (m *Model) Field(name string) (*FieldDefinition, bool) {
	f, ok := m.byName[name]
	return f, ok
}

// FieldNames returns the field names in schema order.
func (m *Model) FieldNames() []string {
	names := make([]string, len(m.Fields))
	for i := range m.Fields {
		names[i] = m.Fields[i].Name
	}
	return names
}

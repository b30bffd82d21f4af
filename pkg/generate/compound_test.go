package generate

import (
	"testing"

	"github.com/TFMV/sfseed/pkg/describe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// billingDescribe declares a BillingAddress compound group where US
// allows CA and NY while JP allows no states. Masks are base64 over the
// country option order: 0x80 = index 0 only.
const billingDescribe = `{
	"name": "Account",
	"fields": [
		{"name": "Name", "label": "Account Name", "type": "string", "length": 255, "createable": true},
		{"name": "BillingCountryCode", "label": "Billing Country Code", "type": "picklist", "nillable": true, "createable": true,
			"compoundFieldName": "BillingAddress",
			"picklistValues": [
				{"value": "US", "label": "United States"},
				{"value": "JP", "label": "Japan"}
			]},
		{"name": "BillingCountry", "label": "Billing Country", "type": "string", "nillable": true, "createable": true,
			"compoundFieldName": "BillingAddress"},
		{"name": "BillingStateCode", "label": "Billing State Code", "type": "picklist", "nillable": true, "createable": true,
			"compoundFieldName": "BillingAddress", "controllerName": "BillingCountryCode",
			"picklistValues": [
				{"value": "CA", "label": "California", "validFor": "gA=="},
				{"value": "NY", "label": "New York", "validFor": "gA=="}
			]},
		{"name": "BillingState", "label": "Billing State", "type": "string", "nillable": true, "createable": true,
			"compoundFieldName": "BillingAddress"},
		{"name": "BillingStreet", "label": "Billing Street", "type": "textarea", "length": 255, "nillable": true, "createable": true,
			"compoundFieldName": "BillingAddress"},
		{"name": "BillingCity", "label": "Billing City", "type": "string", "length": 40, "nillable": true, "createable": true,
			"compoundFieldName": "BillingAddress"},
		{"name": "BillingPostalCode", "label": "Billing Zip", "type": "string", "length": 20, "nillable": true, "createable": true,
			"compoundFieldName": "BillingAddress"},
		{"name": "BillingLatitude", "label": "Billing Latitude", "type": "double", "nillable": true, "createable": true,
			"compoundFieldName": "BillingAddress"},
		{"name": "BillingLongitude", "label": "Billing Longitude", "type": "double", "nillable": true, "createable": true,
			"compoundFieldName": "BillingAddress"},
		{"name": "FirstName", "label": "First Name", "type": "string", "length": 40, "nillable": true, "createable": true,
			"compoundFieldName": "Name"}
	]
}`

func loadModel(t *testing.T, doc string) *describe.Model {
	t.Helper()
	m, err := describe.Load([]byte(doc))
	require.NoError(t, err)
	return m
}

func TestBuildCompoundTables(t *testing.T) {
	m := loadModel(t, billingDescribe)
	tables := BuildCompoundTables(m)

	grp, ok := tables.Group("BillingAddress")
	require.True(t, ok)
	assert.Equal(t, "Billing", grp.Prefix)

	require.Len(t, grp.Countries, 2)
	assert.Equal(t, CodeLabel{Code: "US", Label: "United States"}, grp.Countries[0])
	assert.Equal(t, CodeLabel{Code: "JP", Label: "Japan"}, grp.Countries[1])

	us := grp.StatesByCountry[0]
	require.Len(t, us, 2)
	assert.Equal(t, CodeLabel{Code: "CA", Label: "California"}, us[0])
	assert.Equal(t, CodeLabel{Code: "NY", Label: "New York"}, us[1])

	assert.Empty(t, grp.StatesByCountry[1], "JP allows no states")
}

func TestCompoundRoleLookup(t *testing.T) {
	m := loadModel(t, billingDescribe)
	tables := BuildCompoundTables(m)

	for name, want := range map[string]Role{
		"BillingCountryCode": RoleCountryCode,
		"BillingCountry":     RoleCountry,
		"BillingStateCode":   RoleStateCode,
		"BillingState":       RoleState,
		"BillingStreet":      RoleStreet,
		"BillingCity":        RoleCity,
		"BillingPostalCode":  RolePostalCode,
		"BillingLatitude":    RoleLatitude,
		"BillingLongitude":   RoleLongitude,
	} {
		grp, role, ok := tables.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "BillingAddress", grp.Name)
		assert.Equal(t, want, role, name)
	}

	// FirstName belongs to the Name compound, which follows no address
	// role convention and is therefore not grouped.
	_, _, ok := tables.Lookup("FirstName")
	assert.False(t, ok)
	_, ok = tables.Group("Name")
	assert.False(t, ok)
}

package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dependentDescribe declares Region__c controlling City__c. Masks over
// the region option order: 0x80 = East only, 0x40 = West only,
// 0xC0 = both.
const dependentDescribe = `{
	"name": "Shop__c",
	"fields": [
		{"name": "Region__c", "label": "Region", "type": "picklist", "nillable": true, "createable": true,
			"picklistValues": [{"value": "East", "label": "East"}, {"value": "West", "label": "West"}]},
		{"name": "City__c", "label": "City", "type": "picklist", "nillable": true, "createable": true,
			"controllerName": "Region__c",
			"picklistValues": [
				{"value": "Tokyo", "label": "Tokyo", "validFor": "gA=="},
				{"value": "Osaka", "label": "Osaka", "validFor": "QA=="},
				{"value": "Nagoya", "label": "Nagoya", "validFor": "wA=="}
			]},
		{"name": "Orphan__c", "label": "Orphan", "type": "picklist", "nillable": true, "createable": true,
			"controllerName": "Missing__c",
			"picklistValues": [{"value": "x", "label": "x"}]}
	]
}`

func TestBuildDependentTables(t *testing.T) {
	m := loadModel(t, dependentDescribe)
	tables := BuildDependentTables(m)

	ctrl, ok := tables.Controller("City__c")
	require.True(t, ok)
	assert.Equal(t, "Region__c", ctrl)

	assert.Equal(t, []string{"Tokyo", "Nagoya"}, tables.Allowed("City__c", 0))
	assert.Equal(t, []string{"Osaka", "Nagoya"}, tables.Allowed("City__c", 1))
	assert.Empty(t, tables.Allowed("City__c", 2))
}

func TestUnresolvedControllerIsUnconstrained(t *testing.T) {
	m := loadModel(t, dependentDescribe)
	tables := BuildDependentTables(m)

	_, ok := tables.Controller("Orphan__c")
	assert.False(t, ok, "unknown controller leaves the field out of the tables")
	assert.Empty(t, tables.Allowed("Orphan__c", 0))
}

package models

// DefinitionTable identifies one category of content definitions inside the
// world-content database. The set is closed and fixed at build time: tables
// published upstream that do not correspond to one of these values are
// skipped during import.
type DefinitionTable string

const (
	ActivityTable         DefinitionTable = "Activity"
	ActivityModeTable     DefinitionTable = "ActivityMode"
	ActivityTypeTable     DefinitionTable = "ActivityType"
	ClassTable            DefinitionTable = "Class"
	DamageTypeTable       DefinitionTable = "DamageType"
	DestinationTable      DefinitionTable = "Destination"
	FactionTable          DefinitionTable = "Faction"
	GenderTable           DefinitionTable = "Gender"
	InventoryBucketTable  DefinitionTable = "InventoryBucket"
	InventoryItemTable    DefinitionTable = "InventoryItem"
	ItemTierTypeTable     DefinitionTable = "ItemTierType"
	LoreTable             DefinitionTable = "Lore"
	MilestoneTable        DefinitionTable = "Milestone"
	PlaceTable            DefinitionTable = "Place"
	ProgressionTable      DefinitionTable = "Progression"
	RaceTable             DefinitionTable = "Race"
	SandboxPerkTable      DefinitionTable = "SandboxPerk"
	StatTable             DefinitionTable = "Stat"
	TalentGridTable       DefinitionTable = "TalentGrid"
	VendorTable           DefinitionTable = "Vendor"
)

// tableNamePrefix and tableNameSuffix form the upstream naming convention for
// content tables inside the world-content database, e.g.
// "DestinyInventoryItemDefinition".
const (
	tableNamePrefix = "Destiny"
	tableNameSuffix = "Definition"
)

// TableName returns the SQL table name used for this category both in the
// staging database and in the local content store.
func (t DefinitionTable) TableName() string {
	return tableNamePrefix + string(t) + tableNameSuffix
}

// ParseDefinitionTable maps a raw SQL table name back to its category.
// The second return value is false when the name does not follow the
// Destiny<Category>Definition convention or the category is unknown.
func ParseDefinitionTable(tableName string) (DefinitionTable, bool) {
	if len(tableName) <= len(tableNamePrefix)+len(tableNameSuffix) {
		return "", false
	}
	if tableName[:len(tableNamePrefix)] != tableNamePrefix {
		return "", false
	}
	if tableName[len(tableName)-len(tableNameSuffix):] != tableNameSuffix {
		return "", false
	}

	candidate := DefinitionTable(tableName[len(tableNamePrefix) : len(tableName)-len(tableNameSuffix)])
	for _, known := range AllDefinitionTables() {
		if candidate == known {
			return candidate, true
		}
	}

	return "", false
}

// AllDefinitionTables returns every content category recognized by this
// build of the SDK.
func AllDefinitionTables() []DefinitionTable {
	return []DefinitionTable{
		ActivityTable,
		ActivityModeTable,
		ActivityTypeTable,
		ClassTable,
		DamageTypeTable,
		DestinationTable,
		FactionTable,
		GenderTable,
		InventoryBucketTable,
		InventoryItemTable,
		ItemTierTypeTable,
		LoreTable,
		MilestoneTable,
		PlaceTable,
		ProgressionTable,
		RaceTable,
		SandboxPerkTable,
		StatTable,
		TalentGridTable,
		VendorTable,
	}
}

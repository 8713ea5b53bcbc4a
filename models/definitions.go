package models

// DisplayProperties is the common presentation block shared by nearly every
// definition category: the localized name, flavor description, and icon path
// of the entity.
type DisplayProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	HasIcon     bool   `json:"hasIcon"`
}

// InventoryItemDefinition is the decoded payload of a row in
// DestinyInventoryItemDefinition: one weapon, armor piece, consumable, mod,
// or other inventory entity.
type InventoryItemDefinition struct {
	DisplayProperties DisplayProperties `json:"displayProperties"`
	Hash              uint32            `json:"hash"`
	ItemTypeName      string            `json:"itemTypeDisplayName,omitempty"`
	FlavorText        string            `json:"flavorText,omitempty"`
	TierTypeHash      uint32            `json:"tierTypeHash,omitempty"`
	ClassTypeHash     uint32            `json:"classType,omitempty"`
	DamageTypeHashes  []uint32          `json:"damageTypeHashes,omitempty"`
	Redacted          bool              `json:"redacted"`
}

// ActivityDefinition is the decoded payload of a row in
// DestinyActivityDefinition.
type ActivityDefinition struct {
	DisplayProperties  DisplayProperties `json:"displayProperties"`
	Hash               uint32            `json:"hash"`
	ActivityTypeHash   uint32            `json:"activityTypeHash"`
	DestinationHash    uint32            `json:"destinationHash,omitempty"`
	PlaceHash          uint32            `json:"placeHash,omitempty"`
	ActivityLightLevel int               `json:"activityLightLevel,omitempty"`
	IsPlaylist         bool              `json:"isPlaylist"`
	Redacted           bool              `json:"redacted"`
}

// ClassDefinition is the decoded payload of a row in DestinyClassDefinition.
type ClassDefinition struct {
	DisplayProperties DisplayProperties `json:"displayProperties"`
	Hash              uint32            `json:"hash"`
	ClassType         int               `json:"classType"`
}

// VendorDefinition is the decoded payload of a row in DestinyVendorDefinition.
type VendorDefinition struct {
	DisplayProperties     DisplayProperties `json:"displayProperties"`
	Hash                  uint32            `json:"hash"`
	VendorProgressionType int               `json:"vendorProgressionType,omitempty"`
	Enabled               bool              `json:"enabled"`
	Visible               bool              `json:"visible"`
}

// StatDefinition is the decoded payload of a row in DestinyStatDefinition.
type StatDefinition struct {
	DisplayProperties DisplayProperties `json:"displayProperties"`
	Hash              uint32            `json:"hash"`
	AggregationType   int               `json:"aggregationType"`
	HasComputedBlock  bool              `json:"hasComputedBlock"`
}

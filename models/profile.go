package models

import "time"

// MembershipType identifies the platform a Destiny account lives on.
type MembershipType int

const (
	MembershipXbox       MembershipType = 1
	MembershipPSN        MembershipType = 2
	MembershipSteam      MembershipType = 3
	MembershipStadia     MembershipType = 5
	MembershipEpic       MembershipType = 6
	MembershipBungieNext MembershipType = 254
)

// UserInfoCard is the compact platform-account summary Bungie returns from
// player searches and embeds inside profile responses.
type UserInfoCard struct {
	MembershipType              MembershipType `json:"membershipType"`
	MembershipID                string         `json:"membershipId"`
	DisplayName                 string         `json:"displayName"`
	BungieGlobalDisplayName     string         `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode int            `json:"bungieGlobalDisplayNameCode,omitempty"`
	CrossSaveOverride           MembershipType `json:"crossSaveOverride,omitempty"`
}

// ProfileComponent is the top-level profile data block (component 100).
type ProfileComponent struct {
	UserInfo       UserInfoCard `json:"userInfo"`
	DateLastPlayed time.Time    `json:"dateLastPlayed"`
	CharacterIDs   []string     `json:"characterIds"`
}

// CharacterComponent is the per-character data block (component 200).
type CharacterComponent struct {
	CharacterID    string    `json:"characterId"`
	MembershipID   string    `json:"membershipId"`
	ClassHash      uint32    `json:"classHash"`
	RaceHash       uint32    `json:"raceHash"`
	GenderHash     uint32    `json:"genderHash"`
	Light          int       `json:"light"`
	EmblemPath     string    `json:"emblemPath,omitempty"`
	DateLastPlayed time.Time `json:"dateLastPlayed"`
}

// ProfileResponse is the (partial) payload of Destiny2.GetProfile. Only the
// components the SDK exposes are modeled; unknown components are ignored
// during decoding.
type ProfileResponse struct {
	Profile struct {
		Data ProfileComponent `json:"data"`
	} `json:"profile"`
	Characters struct {
		Data map[string]CharacterComponent `json:"data"`
	} `json:"characters"`
}

// PlayerSearchRequest is the body of Destiny2.SearchDestinyPlayerByBungieName.
type PlayerSearchRequest struct {
	DisplayName     string `json:"displayName"`
	DisplayNameCode int    `json:"displayNameCode"`
}

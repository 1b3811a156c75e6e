package models

// PlayerIdentity ties a player handle to its platform membership
type PlayerIdentity struct {
	// Handle is the PSN name being tracked
	Handle string

	// MembershipID is the stable platform identifier for the handle
	MembershipID string
}

// PlayerRecord is one player's entry in a fireteam response
type PlayerRecord struct {
	Name   string  `json:"name"`
	Elo    float64 `json:"elo"`
	Kills  int     `json:"kills"`
	Deaths int     `json:"deaths"`
}

// FindPlayer returns the record whose name matches handle, or nil
func FindPlayer(records []*PlayerRecord, handle string) *PlayerRecord {
	for _, record := range records {
		if record != nil && record.Name == handle {
			return record
		}
	}
	return nil
}

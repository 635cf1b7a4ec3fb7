package redis

import "github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"

const keyPrefix = "waitlist:"

// eventTag returns the hash-tagged key prefix of an event: waitlist:{id}:
func eventTag(eventID string) string { return keyPrefix + "{" + eventID + "}:" }

// entryKey returns the Hash key of an entry: waitlist:{eventID}:entry:{entrantID}
func entryKey(eventID, entrantID string) string {
	return eventTag(eventID) + "entry:" + entrantID
}

// statusKey returns the Sorted Set of entrant ids in a status, scored by join time.
func statusKey(eventID string, status domain.EntryStatus) string {
	return eventTag(eventID) + "status:" + string(status)
}

// roundKey returns the Hash key of a lottery round: waitlist:{eventID}:round:{roundID}
func roundKey(eventID, roundID string) string {
	return eventTag(eventID) + "round:" + roundID
}

package interactions

// isOwner is the single ownership predicate behind every Forbidden check:
// only the entity's owner may delete it.
func isOwner(actorID, ownerID int64) bool {
	return actorID == ownerID
}

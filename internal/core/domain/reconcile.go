package domain

// Reconcile builds the list the dashboard shows from the last server snapshot,
// the pending (unconfirmed) creations and updates, and the ids being deleted.
//
// Pending records replace snapshot entries whole, so they must carry every
// field. When the same id is pending twice the later entry wins. A nil
// snapshot is treated as empty.
func Reconcile(server, pending []Action, deleting []string, order SortOptions) []Action {
	byID := make(map[string]Action, len(server)+len(pending))
	ids := make([]string, 0, len(server)+len(pending))

	put := func(a Action) {
		if _, ok := byID[a.ID]; !ok {
			ids = append(ids, a.ID)
		}
		byID[a.ID] = a
	}
	for _, a := range server {
		put(a)
	}
	for _, a := range pending {
		put(a)
	}
	for _, id := range deleting {
		delete(byID, id)
	}

	merged := make([]Action, 0, len(byID))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			merged = append(merged, a)
		}
	}
	return SortActions(merged, order)
}

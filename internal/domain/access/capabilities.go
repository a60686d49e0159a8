package access

const (
	CapLibrary      = "library"
	CapReview       = "review"
	CapCatalogWrite = "catalog:write"
	CapManageUsers  = "users:manage"
)

// CapabilitiesFor lists what a caller may do, for clients deciding what to show.
func CapabilitiesFor(actor Identity) []string {
	caps := []string{CapLibrary, CapReview}
	if actor.Role() == RoleAdmin {
		caps = append(caps, CapCatalogWrite, CapManageUsers)
	}
	return caps
}

package domain

// Identity is the authenticated actor behind a request, reconstructed from
// the access token claims.
type Identity struct {
	UserID      string
	DisplayName string
	Role        Role
}

// Can applies the same hierarchy as CanPerformAction to a token identity.
func (i *Identity) Can(required Role) bool {
	if i == nil {
		return false
	}
	return outranks(i.Role, required)
}

package domain

// Caller identifies the authenticated subject performing an operation.
// The zero value represents an unauthenticated caller.
type Caller struct {
	// Subject is the opaque identifier handed out by the identity provider.
	Subject string
}

// Authenticated reports whether the caller carries a resolvable identity.
func (c Caller) Authenticated() bool {
	return c.Subject != ""
}

// Owns reports whether a record stamped with ownerID belongs to this caller.
func (c Caller) Owns(ownerID string) bool {
	return c.Authenticated() && c.Subject == ownerID
}

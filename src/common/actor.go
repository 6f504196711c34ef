package common

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID   uint
	Username string
	IsStaff  bool
}

func (a Actor) CanAccess(ownerID uint) bool {
	return a.IsStaff || a.UserID == ownerID
}

package model

//go:generate go run github.com/dmarkham/enumer -type OwnerKind -trimprefix OwnerKind -transform lower -sql -json -output ownerkind.gen.go

// OwnerKind discriminates the polymorphic owner of a Board.
type OwnerKind int

const (
	OwnerKindUser OwnerKind = iota
	OwnerKindProject
)

// OwnerRef is a tagged reference to a board owner: either a user or a
// project, never both. Resolution code switches on Kind rather than
// comparing raw kind strings.
type OwnerRef struct {
	Kind OwnerKind
	ID   int64
}

// UserOwner returns an owner reference to a user.
func UserOwner(userID int64) OwnerRef {
	return OwnerRef{Kind: OwnerKindUser, ID: userID}
}

// ProjectOwner returns an owner reference to a project.
func ProjectOwner(projectID int64) OwnerRef {
	return OwnerRef{Kind: OwnerKindProject, ID: projectID}
}

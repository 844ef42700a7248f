package models

// AssociationKind names the kind of record a time entry is linked to.
type AssociationKind string

const (
	AssocNone     AssociationKind = ""
	AssocTask     AssociationKind = "task"
	AssocCampaign AssociationKind = "campaign"
	AssocProject  AssociationKind = "project"
)

// Association links a time entry to at most one task, campaign or project.
// A single kind/id pair makes the targets mutually exclusive by construction,
// there is no way to populate two of them at once.
type Association struct {
	Kind AssociationKind `gorm:"column:assoc_kind;type:varchar(20)" json:"kind,omitempty"`
	ID   string          `gorm:"column:assoc_id;type:varchar(50)" json:"id,omitempty"`
}

func NoAssociation() Association {
	return Association{}
}

func TaskAssociation(id string) Association {
	return Association{Kind: AssocTask, ID: id}
}

func CampaignAssociation(id string) Association {
	return Association{Kind: AssocCampaign, ID: id}
}

func ProjectAssociation(id string) Association {
	return Association{Kind: AssocProject, ID: id}
}

func (a Association) IsNone() bool {
	return a.Kind == AssocNone
}

// Valid reports whether the pair is well-formed: a known kind, and an id
// exactly when the kind is set.
func (a Association) Valid() bool {
	switch a.Kind {
	case AssocNone:
		return a.ID == ""
	case AssocTask, AssocCampaign, AssocProject:
		return a.ID != ""
	default:
		return false
	}
}

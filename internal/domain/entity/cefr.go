// Package entity contains the core business objects of the project.
package entity

// CEFRLevel is a six-point language proficiency scale used to describe
// current and target learner ability.
type CEFRLevel string

const (
	CEFRLevelA1 CEFRLevel = "A1"
	CEFRLevelA2 CEFRLevel = "A2"
	CEFRLevelB1 CEFRLevel = "B1"
	CEFRLevelB2 CEFRLevel = "B2"
	CEFRLevelC1 CEFRLevel = "C1"
	CEFRLevelC2 CEFRLevel = "C2"
)

// String returns the string representation of the CEFRLevel.
func (l CEFRLevel) String() string {
	return string(l)
}

// IsValid checks if the CEFRLevel is a valid value.
func (l CEFRLevel) IsValid() bool {
	switch l {
	case CEFRLevelA1, CEFRLevelA2, CEFRLevelB1, CEFRLevelB2, CEFRLevelC1, CEFRLevelC2:
		return true
	default:
		return false
	}
}

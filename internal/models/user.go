package models

import "time"

// Attribute names a bounded skill counter on a user profile.
type Attribute string

const (
	AttributeFaith    Attribute = "faith"
	AttributeBoldness Attribute = "boldness"
	AttributeWisdom   Attribute = "wisdom"
)

const (
	// XPPerLevel is the fixed banding used to derive level from total XP.
	XPPerLevel = 100

	AttributeMin = 1
	AttributeMax = 10
)

type UserAttributes struct {
	Faith    int `bson:"faith" json:"faith"`
	Boldness int `bson:"boldness" json:"boldness"`
	Wisdom   int `bson:"wisdom" json:"wisdom"`
}

type User struct {
	ID         string         `bson:"_id,omitempty" json:"id"`
	Name       string         `bson:"name" json:"name"`
	Avatar     string         `bson:"avatar" json:"avatar"`
	XP         int            `bson:"xp" json:"xp"`
	Level      int            `bson:"level" json:"level"`
	Attributes UserAttributes `bson:"attributes" json:"attributes"`
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `bson:"updated_at" json:"updated_at"`
}

// NewUser returns a fresh profile with all attributes at their floor.
func NewUser(id, name, avatar string) *User {
	now := time.Now()
	return &User{
		ID:     id,
		Name:   name,
		Avatar: avatar,
		XP:     0,
		Level:  1,
		Attributes: UserAttributes{
			Faith:    AttributeMin,
			Boldness: AttributeMin,
			Wisdom:   AttributeMin,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LevelForXP derives the level for a total XP amount.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// AwardXP adds XP, recomputes the level from the new total and optionally
// bumps one attribute. The level is always derived from total XP rather than
// incremented, so large awards (like the final-question bonus) stay consistent.
func (u *User) AwardXP(amount int, attribute Attribute) {
	if amount <= 0 {
		return
	}
	u.XP += amount
	u.Level = LevelForXP(u.XP)
	if attribute != "" {
		u.bumpAttribute(attribute)
	}
	u.UpdatedAt = time.Now()
}

// bumpAttribute increments the named attribute by one, capped at AttributeMax.
// Incrementing at the cap is a no-op.
func (u *User) bumpAttribute(attribute Attribute) {
	switch attribute {
	case AttributeFaith:
		u.Attributes.Faith = clampAttribute(u.Attributes.Faith + 1)
	case AttributeBoldness:
		u.Attributes.Boldness = clampAttribute(u.Attributes.Boldness + 1)
	case AttributeWisdom:
		u.Attributes.Wisdom = clampAttribute(u.Attributes.Wisdom + 1)
	}
}

func clampAttribute(v int) int {
	if v < AttributeMin {
		return AttributeMin
	}
	if v > AttributeMax {
		return AttributeMax
	}
	return v
}

// ValidAttribute reports whether the name is one of the three skills.
func ValidAttribute(name string) bool {
	switch Attribute(name) {
	case AttributeFaith, AttributeBoldness, AttributeWisdom:
		return true
	}
	return false
}

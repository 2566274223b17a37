package member

import (
	"sort"
	"strings"
)

// Member represents one row of the club roster
type Member struct {
	Callsign string `json:"callsign"`
	Name     string `json:"name"`
	JoinDate string `json:"join_date,omitempty"`
	QCNumber int    `json:"qc_number"`
}

// Valid reports whether a parsed row counts as a roster member.
// A member needs a callsign and a non-zero QC number; anything else
// is a spreadsheet artifact and gets dropped.
func (m *Member) Valid() bool {
	return m.Callsign != "" && m.QCNumber != 0
}

// Sort orders members ascending by QC number.
// Members with equal QC numbers keep their input order.
func Sort(members []*Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].QCNumber < members[j].QCNumber
	})
}

// Role is the cosmetic classification of a member
type Role string

const (
	// RoleFounder marks the three lowest QC numbers
	RoleFounder Role = "founder"
	// RoleTech marks the club's resident computer guy
	RoleTech Role = "tech"
	// RoleMember is everyone else
	RoleMember Role = "member"
)

// TechCallsign is the one callsign that carries the tech badge
const TechCallsign = "W6JSV"

// classificationRules are evaluated in order; the first match wins.
// Founder outranks the tech badge.
var classificationRules = []struct {
	match func(*Member) bool
	role  Role
}{
	{func(m *Member) bool { return m.QCNumber <= 3 }, RoleFounder},
	{func(m *Member) bool { return strings.EqualFold(m.Callsign, TechCallsign) }, RoleTech},
}

// Classify returns the member's cosmetic role. Classification only drives
// styling; it never affects validity or ordering.
func Classify(m *Member) Role {
	for _, rule := range classificationRules {
		if rule.match(m) {
			return rule.role
		}
	}
	return RoleMember
}

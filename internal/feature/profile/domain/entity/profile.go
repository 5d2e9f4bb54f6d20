// Package entity defines the domain entities for the profile feature.
package entity

import (
	"time"

	authentity "campuschain_backend/internal/feature/auth/domain/entity"
)

// Education is a single entry in a profile's education history.
type Education struct {
	College string `json:"college"`
	Course  string `json:"course"`
	Year    string `json:"year"`
}

// Project is a showcased piece of work on a profile.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Certification is a named certificate with its issuer and date.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// SocialLinks holds the external profile links a user may publish.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// Achievement is a titled accomplishment on a profile.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Experience is a single work-history entry.
type Experience struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Duration string `json:"duration"`
}

// Mentoring is a topic an alumnus offers mentoring on.
type Mentoring struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// Privacy maps a profile section name to its visibility flag.
// A missing key means the section is public.
type Privacy map[string]bool

// IsPublic reports whether the named section may be shown.
// Absent flags default to public.
func (p Privacy) IsPublic(section string) bool {
	if p == nil {
		return true
	}
	visible, ok := p[section]
	if !ok {
		return true
	}
	return visible
}

// Profile is a role-scoped document describing a user's public-facing
// information. One profile lives in exactly one role-specific store,
// keyed by email. Nested sections are persisted as JSON columns.
type Profile struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	Name     string          `gorm:"size:255" json:"name"`
	Headline string          `gorm:"size:255" json:"headline"`
	About    string          `json:"about"`
	Email    string          `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone    string          `gorm:"size:32" json:"phone"`
	GradYear string          `gorm:"size:16;column:graduation_year" json:"graduationYear"`
	Branch   string          `gorm:"size:255" json:"branch"`
	Course   string          `gorm:"size:255;column:course_name" json:"courseName"`
	Role     authentity.Role `gorm:"size:16" json:"role"`
	College  string          `gorm:"size:255" json:"college"`
	YearType string          `gorm:"size:32" json:"yearType"`

	// Alumni-only fields; left empty on student profiles.
	CurrentJob string `gorm:"size:255" json:"currentJob"`
	Location   string `gorm:"size:255" json:"location"`

	ProfilePhoto string `json:"profilePhoto"`

	Education      []Education     `gorm:"serializer:json" json:"education"`
	Skills         []string        `gorm:"serializer:json" json:"skills"`
	Projects       []Project       `gorm:"serializer:json" json:"projects"`
	Certifications []Certification `gorm:"serializer:json" json:"certifications"`
	Languages      []string        `gorm:"serializer:json" json:"languages"`
	SocialLinks    SocialLinks     `gorm:"serializer:json" json:"socialLinks"`
	Achievements   []Achievement   `gorm:"serializer:json" json:"achievements"`
	Experience     []Experience    `gorm:"serializer:json" json:"experience"`
	Mentoring      []Mentoring     `gorm:"serializer:json" json:"mentoring"`
	Privacy        Privacy         `gorm:"serializer:json" json:"privacy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// profileSections are the named sections covered by privacy flags.
var profileSections = []string{
	"about", "education", "skills", "projects", "certifications",
	"languages", "socialLinks", "achievements", "experience",
}

// alumniSections extend profileSections for alumni profiles.
var alumniSections = []string{"mentoring", "currentJob"}

// NewDefault builds the starter profile created for a credential that has
// none yet: placeholder headline, about text and education, with every
// privacy flag set to public. Used both at registration and by profile sync.
func NewDefault(name, email string, role authentity.Role) *Profile {
	headline := "Student"
	if role == authentity.RoleAlumni {
		headline = "Alumni"
	}

	privacy := Privacy{}
	for _, s := range profileSections {
		privacy[s] = true
	}
	if role == authentity.RoleAlumni {
		for _, s := range alumniSections {
			privacy[s] = true
		}
	}

	return &Profile{
		Name:     name,
		Email:    email,
		Role:     role,
		Headline: headline,
		About:    "Profile created automatically",
		GradYear: "2024",
		Branch:   "Computer Science",
		Course:   "Bachelor of Technology",
		College:  "Your College Name",
		YearType: "Full Time",
		Skills:   []string{"JavaScript", "React", "Node.js"},
		Education: []Education{{
			College: "Your College Name",
			Course:  "Bachelor of Technology",
			Year:    "2024",
		}},
		Privacy: privacy,
	}
}

package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func fullyFilledUser() *domain.User {
	return &domain.User{
		Name:     "Jane Doe",
		Bio:      "Backend engineer",
		Headline: "Go developer",
		Avatar:   "https://cdn.example.com/avatar.png",
		Resume:   "https://cdn.example.com/resume.pdf",
		Skills:   domain.StringList{"Go", "PostgreSQL"},
		Experience: domain.ExperienceList{
			{Title: "Engineer", Company: "Acme"},
		},
		Education: domain.EducationList{
			{Degree: "BSc", Institution: "State University"},
		},
		SocialLinks: &domain.SocialLinks{LinkedIn: "https://linkedin.com/in/janedoe"},
	}
}

func TestComputeCompleteness(t *testing.T) {
	t.Run("Empty profile scores zero and lists every check", func(t *testing.T) {
		got := domain.ComputeCompleteness(&domain.User{})

		assert.Equal(t, 0, got.Score)
		assert.Equal(t, []string{
			"Full Name",
			"Bio",
			"Headline",
			"Profile Photo",
			"Resume",
			"Skills",
			"Experience",
			"Education",
			"LinkedIn Profile",
		}, got.Missing)
	})

	t.Run("Full profile scores 100 with nothing missing", func(t *testing.T) {
		got := domain.ComputeCompleteness(fullyFilledUser())

		assert.Equal(t, 100, got.Score)
		assert.Empty(t, got.Missing)
	})

	t.Run("Name only scores 11", func(t *testing.T) {
		user := &domain.User{Name: "Jane Doe", Email: "jane@example.com"}
		got := domain.ComputeCompleteness(user)

		// 1 of 9 checks, rounded. Email is not part of the checklist.
		assert.Equal(t, 11, got.Score)
		assert.Len(t, got.Missing, 8)
		assert.Equal(t, "Bio", got.Missing[0])
	})

	t.Run("Five checks filled rounds up to 56", func(t *testing.T) {
		user := &domain.User{
			Name:     "Jane Doe",
			Bio:      "Backend engineer",
			Headline: "Go developer",
			Avatar:   "avatar.png",
			Resume:   "resume.pdf",
		}
		got := domain.ComputeCompleteness(user)

		assert.Equal(t, 56, got.Score)
		assert.Equal(t, []string{"Skills", "Experience", "Education", "LinkedIn Profile"}, got.Missing)
	})

	t.Run("LinkedIn check requires the linkedin link specifically", func(t *testing.T) {
		user := fullyFilledUser()
		user.SocialLinks = &domain.SocialLinks{GitHub: "https://github.com/janedoe"}

		got := domain.ComputeCompleteness(user)

		assert.Equal(t, 89, got.Score)
		assert.Equal(t, []string{"LinkedIn Profile"}, got.Missing)
	})

	t.Run("Same snapshot always yields the same result", func(t *testing.T) {
		user := fullyFilledUser()
		first := domain.ComputeCompleteness(user)
		second := domain.ComputeCompleteness(user)

		assert.Equal(t, first, second)
	})

	t.Run("Does not mutate the user", func(t *testing.T) {
		user := &domain.User{Name: "Jane Doe"}
		_ = domain.ComputeCompleteness(user)

		assert.Equal(t, "Jane Doe", user.Name)
		assert.Nil(t, user.SocialLinks)
		assert.Empty(t, user.Skills)
	})
}

package domain_test

import (
	"encoding/json"
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStringListCoercion(t *testing.T) {
	t.Run("Array decodes normally", func(t *testing.T) {
		var s domain.StringList
		err := json.Unmarshal([]byte(`["Go","SQL"]`), &s)

		assert.NoError(t, err)
		assert.Equal(t, domain.StringList{"Go", "SQL"}, s)
	})

	t.Run("Empty string coerces to empty list", func(t *testing.T) {
		var s domain.StringList
		err := json.Unmarshal([]byte(`""`), &s)

		assert.NoError(t, err)
		assert.Empty(t, s)
		assert.NotNil(t, s)
	})

	t.Run("Null coerces to empty list", func(t *testing.T) {
		var s domain.StringList
		err := json.Unmarshal([]byte(`null`), &s)

		assert.NoError(t, err)
		assert.Empty(t, s)
	})

	t.Run("Object coerces to empty list", func(t *testing.T) {
		var s domain.StringList
		err := json.Unmarshal([]byte(`{"a":1}`), &s)

		assert.NoError(t, err)
		assert.Empty(t, s)
	})

	t.Run("Array of wrong element type still errors", func(t *testing.T) {
		var s domain.StringList
		err := json.Unmarshal([]byte(`[1,2]`), &s)

		assert.Error(t, err)
	})
}

func TestExperienceListCoercion(t *testing.T) {
	t.Run("Array decodes normally", func(t *testing.T) {
		var l domain.ExperienceList
		err := json.Unmarshal([]byte(`[{"title":"Engineer","company":"Acme"}]`), &l)

		assert.NoError(t, err)
		assert.Len(t, l, 1)
		assert.Equal(t, "Engineer", l[0].Title)
	})

	t.Run("Non-array coerces to empty list", func(t *testing.T) {
		var l domain.ExperienceList
		err := json.Unmarshal([]byte(`"none"`), &l)

		assert.NoError(t, err)
		assert.Empty(t, l)
	})
}

func TestEducationListCoercion(t *testing.T) {
	t.Run("Non-array coerces to empty list", func(t *testing.T) {
		var l domain.EducationList
		err := json.Unmarshal([]byte(`0`), &l)

		assert.NoError(t, err)
		assert.Empty(t, l)
	})
}

func TestUserSerialization(t *testing.T) {
	t.Run("Password hash and storage ids never serialize", func(t *testing.T) {
		user := domain.User{
			ID:           "u1",
			Email:        "jane@example.com",
			Name:         "Jane Doe",
			PasswordHash: "$2a$10$secret",
			AvatarID:     "file-123",
			ResumeID:     "file-456",
			LogoID:       "file-789",
		}

		raw, err := json.Marshal(user)
		assert.NoError(t, err)
		assert.NotContains(t, string(raw), "secret")
		assert.NotContains(t, string(raw), "file-123")
		assert.NotContains(t, string(raw), "file-456")
		assert.NotContains(t, string(raw), "file-789")
	})
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain"
)

func testUser() domain.User {
	return domain.User{
		ID:        "user-1",
		Email:     "user@example.com",
		Role:      domain.RoleUser,
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestJWTManager_IssueAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", "storefront-api", time.Hour)

	token, err := m.Issue(testUser(), time.Now())
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Equal(t, "storefront-api", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "jti should be set")
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", "storefront-api", time.Minute)

	token, err := m.Issue(testUser(), time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", "storefront-api", time.Hour)
	verifier := NewJWTManager("secret-b", "storefront-api", time.Hour)

	token, err := issuer.Issue(testUser(), time.Now())
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Garbage(t *testing.T) {
	m := NewJWTManager("test-secret", "storefront-api", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashAndCheckPassword(t *testing.T) {
	// Low cost keeps the test fast; production uses DefaultBcryptCost.
	hash, err := HashPassword("Sup3rSecret", 4)
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "Sup3rSecret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "Sup3rSecret"))
}

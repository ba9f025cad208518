package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Procurement-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func testSubject() pkgjwt.Subject {
	return pkgjwt.Subject{
		UserID:         "user-1",
		OrganizationID: "00000000-0000-0000-0000-000000000002",
		Role:           "sourcing_manager",
		SessionID:      "sid-123",
	}
}

func TestGenerateAndParse_ConservaClaims(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject(), "procurement-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "00000000-0000-0000-0000-000000000002", claims.OrganizationID)
	assert.Equal(t, "sourcing_manager", claims.Role)
	assert.Equal(t, "sid-123", claims.SessionID)
	assert.Equal(t, "procurement-test", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject(), "procurement-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject(), "procurement-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testSubject(), "x", 60)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "a.b.c")
	assert.Error(t, err)
}

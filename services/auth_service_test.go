package services

import (
	"testing"

	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	testutil.OpenTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	name := "Amelia"
	user, err := Register(dto.RegisterRequest{
		Email:    "amelia@osoc.test",
		Password: "hunter22",
		Name:     &name,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCoach, user.Role, "new accounts start as coaches")

	// Duplicate email is rejected
	_, err = Register(dto.RegisterRequest{Email: "amelia@osoc.test", Password: "hunter22"})
	require.Error(t, err)

	response, err := Login(dto.LoginRequest{Email: "amelia@osoc.test", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Empty(t, response.User.Password)

	claims, err := ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "coach", claims.Role)

	_, err = Login(dto.LoginRequest{Email: "amelia@osoc.test", Password: "wrong"})
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	testutil.OpenTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not.a.token")
	require.Error(t, err)
}

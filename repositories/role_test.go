package repositories

import (
	"testing"

	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFindOrCreateByName(t *testing.T) {
	testutil.OpenTestDB(t)
	repo := NewRoleRepository()

	created, err := repo.FindOrCreateByName(database.DB, "Backend Developer")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	resolved, err := repo.FindOrCreateByName(database.DB, "Backend Developer")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)

	// Case matters: this is a different role
	other, err := repo.FindOrCreateByName(database.DB, "backend developer")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)

	var count int64
	require.NoError(t, database.DB.Model(&models.Role{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestFindByNameDoesNotCreate(t *testing.T) {
	testutil.OpenTestDB(t)
	repo := NewRoleRepository()

	_, err := repo.FindByName(database.DB, "Astronaut")
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	var count int64
	require.NoError(t, database.DB.Model(&models.Role{}).Count(&count).Error)
	assert.Zero(t, count)
}

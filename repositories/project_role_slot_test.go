package repositories

import (
	"sync"
	"testing"

	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProjectWithRole(t *testing.T) (models.Project, models.Role) {
	t.Helper()
	edition := models.Edition{Name: "osoc2022", Year: 2022, IsCurrent: true}
	require.NoError(t, database.DB.Create(&edition).Error)
	project := models.Project{Name: "Poucevelt", EditionID: edition.ID}
	require.NoError(t, database.DB.Create(&project).Error)
	role := models.Role{Name: "Developer"}
	require.NoError(t, database.DB.Create(&role).Error)
	return project, role
}

func TestFindOrCreateSlotIsIdempotent(t *testing.T) {
	testutil.OpenTestDB(t)
	repo := NewProjectRoleSlotRepository()
	project, role := seedProjectWithRole(t)

	first, err := repo.FindOrCreate(database.DB, project.ID, role.ID, 1)
	require.NoError(t, err)
	second, err := repo.FindOrCreate(database.DB, project.ID, role.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, second.Positions, "resolving twice never doubles capacity")

	var count int64
	require.NoError(t, database.DB.Model(&models.ProjectRoleSlot{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSlotUniquePerProjectAndRole(t *testing.T) {
	testutil.OpenTestDB(t)
	repo := NewProjectRoleSlotRepository()
	project, role := seedProjectWithRole(t)

	_, err := repo.FindOrCreate(database.DB, project.ID, role.ID, 1)
	require.NoError(t, err)

	// The schema itself rejects a second slot for the same pair, so a
	// lost create race can never leave two slots behind
	duplicate := models.ProjectRoleSlot{ProjectID: project.ID, RoleID: role.ID, Positions: 2}
	require.Error(t, database.DB.Create(&duplicate).Error)
}

func TestFindOrCreateSlotConcurrently(t *testing.T) {
	testutil.OpenTestDB(t)
	repo := NewProjectRoleSlotRepository()
	project, role := seedProjectWithRole(t)

	const attempts = 4
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	slots := make([]models.ProjectRoleSlot, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = database.DB.Transaction(func(tx *gorm.DB) error {
				var err error
				slots[i], err = repo.FindOrCreate(tx, project.ID, role.ID, 1)
				return err
			})
		}(i)
	}
	wg.Wait()

	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, slots[0].ID, slots[i].ID, "every caller must resolve to the same slot")
	}

	var count int64
	require.NoError(t, database.DB.Model(&models.ProjectRoleSlot{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFreeCapacityCountsNonCancelled(t *testing.T) {
	testutil.OpenTestDB(t)
	repo := NewProjectRoleSlotRepository()
	project, role := seedProjectWithRole(t)

	slot, err := repo.FindOrCreate(database.DB, project.ID, role.ID, 3)
	require.NoError(t, err)

	user := models.User{Email: "admin@osoc.test", Password: "irrelevant", Role: models.RoleAdmin}
	require.NoError(t, database.DB.Create(&user).Error)

	statuses := []models.ContractStatus{
		models.ContractStatusDraft,
		models.ContractStatusSigned,
		models.ContractStatusCancelled,
	}
	for i, status := range statuses {
		student := models.Student{
			FirstName: "Student",
			LastName:  string(rune('A' + i)),
			Email:     string(rune('a'+i)) + "@student.test",
		}
		require.NoError(t, database.DB.Create(&student).Error)
		contract := models.Contract{
			StudentID:        student.ID,
			SlotID:           slot.ID,
			Status:           status,
			CreatedByID:      user.ID,
			LastModifiedByID: user.ID,
		}
		require.NoError(t, database.DB.Create(&contract).Error)
	}

	free, err := repo.FreeCapacity(database.DB, slot)
	require.NoError(t, err)
	assert.Equal(t, 1, free, "cancelled contracts do not occupy a seat")
}

func TestFindByProjectAndRoleName(t *testing.T) {
	testutil.OpenTestDB(t)
	repo := NewProjectRoleSlotRepository()
	project, role := seedProjectWithRole(t)

	_, err := repo.FindByProjectAndRoleName(database.DB, project.ID, "Developer")
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	created, err := repo.FindOrCreate(database.DB, project.ID, role.ID, 2)
	require.NoError(t, err)

	found, err := repo.FindByProjectAndRoleName(database.DB, project.ID, "Developer")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Lookup is case-sensitive
	_, err = repo.FindByProjectAndRoleName(database.DB, project.ID, "developer")
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestUpdatePositionsAndDelete(t *testing.T) {
	testutil.OpenTestDB(t)
	repo := NewProjectRoleSlotRepository()
	project, role := seedProjectWithRole(t)

	slot, err := repo.FindOrCreate(database.DB, project.ID, role.ID, 1)
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePositions(slot.ID, 4))
	reloaded, err := repo.FindByID(slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, reloaded.Positions)

	assert.Equal(t, gorm.ErrRecordNotFound, repo.UpdatePositions("nope", 2))

	require.NoError(t, repo.Delete(slot.ID))
	assert.Equal(t, gorm.ErrRecordNotFound, repo.Delete(slot.ID))
}

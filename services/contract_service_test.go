package services

import (
	"testing"

	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractStatusWorkflow(t *testing.T) {
	testutil.OpenTestDB(t)
	engine := NewStaffingService()
	contracts := NewContractService()

	edition := seedEdition(t, "osoc2022", true)
	project := seedProject(t, edition.ID, "Poucevelt")
	admin := seedUser(t, "admin@osoc.test", models.RoleAdmin)
	student := seedStudent(t, "amelia")
	seedRole(t, "Developer")

	contract, err := engine.AssignStudent(admin.ID, project.ID, student.ID, "Developer")
	require.NoError(t, err)

	// Skipping a step is rejected
	_, err = contracts.UpdateStatus(admin.ID, contract.ID, models.ContractStatusApproved)
	assert.Equal(t, ErrInvalidTransition, KindOf(err))

	for _, status := range []models.ContractStatus{
		models.ContractStatusSent,
		models.ContractStatusWaitApproval,
		models.ContractStatusApproved,
		models.ContractStatusSigned,
	} {
		contract, err = contracts.UpdateStatus(admin.ID, contract.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, contract.Status)
	}

	// No way back once signed, other than cancelling
	_, err = contracts.UpdateStatus(admin.ID, contract.ID, models.ContractStatusDraft)
	assert.Equal(t, ErrInvalidTransition, KindOf(err))
}

func TestContractCancellation(t *testing.T) {
	testutil.OpenTestDB(t)
	engine := NewStaffingService()
	contracts := NewContractService()

	edition := seedEdition(t, "osoc2022", true)
	project := seedProject(t, edition.ID, "Poucevelt")
	admin := seedUser(t, "admin@osoc.test", models.RoleAdmin)
	student := seedStudent(t, "amelia")
	seedRole(t, "Developer")

	contract, err := engine.AssignStudent(admin.ID, project.ID, student.ID, "Developer")
	require.NoError(t, err)

	contract, err = contracts.UpdateStatus(admin.ID, contract.ID, models.ContractStatusSent)
	require.NoError(t, err)

	// Any non-terminal status may move to CANCELLED
	contract, err = contracts.UpdateStatus(admin.ID, contract.ID, models.ContractStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusCancelled, contract.Status)

	_, err = contracts.UpdateStatus(admin.ID, contract.ID, models.ContractStatusSent)
	assert.Equal(t, ErrInvalidTransition, KindOf(err))
}

func TestContractReadViews(t *testing.T) {
	testutil.OpenTestDB(t)
	engine := NewStaffingService()
	contracts := NewContractService()

	edition := seedEdition(t, "osoc2022", true)
	project := seedProject(t, edition.ID, "Poucevelt")
	other := seedProject(t, edition.ID, "Stereomat")
	admin := seedUser(t, "admin@osoc.test", models.RoleAdmin)
	amelia := seedStudent(t, "amelia")
	bert := seedStudent(t, "bert")
	seedRole(t, "Developer")

	_, err := engine.AssignStudent(admin.ID, project.ID, amelia.ID, "Developer")
	require.NoError(t, err)
	_, err = engine.AssignStudent(admin.ID, other.ID, bert.ID, "Developer")
	require.NoError(t, err)

	byProject, err := contracts.ContractsForProject(project.ID)
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Equal(t, amelia.ID, byProject[0].StudentID)
	assert.Equal(t, "Developer", byProject[0].Slot.Role.Name)

	byStudent, err := contracts.ContractsForStudent(bert.ID)
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	assert.Equal(t, other.ID, byStudent[0].Slot.ProjectID)

	_, err = contracts.ContractsForProject("nope")
	assert.Equal(t, ErrNotFound, KindOf(err))
	_, err = contracts.ContractsForStudent("nope")
	assert.Equal(t, ErrNotFound, KindOf(err))
}

package order

import (
	"testing"

	"carebridge/database/repository"
	"carebridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFilters(t *testing.T) {
	repo := NewMemoryOrderRepo()

	all := repo.List(repository.OrderFilter{})
	require.Len(t, all, 5)
	// Newest first.
	assert.Equal(t, "ORD20240526", all[0].ID)

	completed := repo.List(repository.OrderFilter{Status: models.OrderCompleted})
	require.Len(t, completed, 1)
	assert.Equal(t, "ORD20240520", completed[0].ID)

	mine := repo.List(repository.OrderFilter{NurseID: "n1"})
	assert.Len(t, mine, 2)

	// Keyword matches order ID or service name.
	byID := repo.List(repository.OrderFilter{Keyword: "20240524"})
	require.Len(t, byID, 1)
	assert.Equal(t, "伤口换药护理", byID[0].ServiceName)

	byName := repo.List(repository.OrderFilter{Keyword: "打针"})
	assert.Len(t, byName, 2)

	none := repo.List(repository.OrderFilter{Keyword: "不存在"})
	assert.Empty(t, none)
}

func TestCreateAndGet(t *testing.T) {
	repo := NewMemoryOrderRepo()

	order := models.Order{ID: "ORD99999999", ServiceName: "测试服务", Status: models.OrderWaitingAcceptance}
	require.NoError(t, repo.Create(order))
	assert.Error(t, repo.Create(order), "duplicate IDs are rejected")

	got, err := repo.Get("ORD99999999")
	require.NoError(t, err)
	assert.Equal(t, "测试服务", got.ServiceName)

	_, err = repo.Get("missing")
	assert.Error(t, err)
}

func TestStatusAndAssignment(t *testing.T) {
	repo := NewMemoryOrderRepo()

	nurse := models.Nurse{ID: "n9", Name: "测试护士"}
	require.NoError(t, repo.AssignNurse("ORD20240526", nurse))
	require.NoError(t, repo.UpdateStatus("ORD20240526", models.OrderWaitingService))

	got, err := repo.Get("ORD20240526")
	require.NoError(t, err)
	assert.Equal(t, models.OrderWaitingService, got.Status)
	assert.Equal(t, "n9", got.NurseID)
	require.NotNil(t, got.Nurse)
	assert.Equal(t, "测试护士", got.Nurse.Name)
}

func TestCancelRecordsReason(t *testing.T) {
	repo := NewMemoryOrderRepo()

	require.NoError(t, repo.Cancel("ORD20240525", "药品规格不符"))
	got, err := repo.Get("ORD20240525")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, got.Status)
	assert.Equal(t, "药品规格不符", got.CancelReason)

	assert.Error(t, repo.Cancel("missing", "x"))
}

func TestAttachRecord(t *testing.T) {
	repo := NewMemoryOrderRepo()

	rec := models.NursingRecord{ID: "rec9", Content: "服务完成"}
	require.NoError(t, repo.AttachRecord("ORD20240524", rec))
	got, err := repo.Get("ORD20240524")
	require.NoError(t, err)
	require.NotNil(t, got.NursingRecord)
	assert.Equal(t, "rec9", got.NursingRecord.ID)
}

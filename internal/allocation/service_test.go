package allocation_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/allocation"
	"github.com/kouden-ledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allocationSummary struct {
	BeneficiaryID uuid.UUID
	Amount        int64
	Primary       bool
}

func summarize(allocations []models.Allocation) []allocationSummary {
	s := make([]allocationSummary, 0, len(allocations))
	for _, a := range allocations {
		s = append(s, allocationSummary{a.BeneficiaryID, a.AllocatedAmount, a.IsPrimaryContributor})
	}
	return s
}

func (suite *TestSuiteStandard) TestAllocateEqual() {
	offering := suite.createTestOffering(models.Offering{Price: 10001, Type: models.OfferingTypeFlower})
	ids := suite.entries(3)

	created, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     offering.ID,
		ParticipantIDs: ids,
		Method:         allocation.MethodEqual,
	})
	require.Nil(suite.T(), err)
	require.Len(suite.T(), created, 3)

	stored, err := suite.service.OfferingAllocations(context.Background(), offering.ID)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), []allocationSummary{
		{ids[0], 3334, true},
		{ids[1], 3334, false},
		{ids[2], 3333, false},
	}, summarize(stored))

	for _, a := range stored {
		assert.Equal(suite.T(), suite.editor.UserID, a.CreatedBy)
	}

	for _, id := range ids {
		assert.True(suite.T(), suite.reloadEntry(id).HasOffering, "HasOffering must be set for every participant")
	}
}

func (suite *TestSuiteStandard) TestAllocatePrimaryContributor() {
	offering := suite.createTestOffering(models.Offering{Price: 9000})
	ids := suite.entries(3)
	outsider := uuid.New()

	tests := []struct {
		name     string
		primary  *uuid.UUID
		expected uuid.UUID
	}{
		{"Not specified", nil, ids[0]},
		{"Participant", &ids[2], ids[2]},
		{"Not a participant", &outsider, ids[0]},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			created, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
				OfferingID:           offering.ID,
				ParticipantIDs:       ids,
				Method:               allocation.MethodEqual,
				PrimaryContributorID: tt.primary,
			})
			require.Nil(t, err)

			primaries := 0
			for _, a := range created {
				if a.IsPrimaryContributor {
					primaries++
					assert.Equal(t, tt.expected, a.BeneficiaryID)
				}
			}
			assert.Equal(t, 1, primaries, "There must be exactly one primary contributor")
		})
	}
}

func (suite *TestSuiteStandard) TestAllocateIdempotent() {
	offering := suite.createTestOffering(models.Offering{Price: 10000})
	ids := suite.entries(4)

	req := allocation.AllocateRequest{
		OfferingID:     offering.ID,
		ParticipantIDs: ids,
		Method:         allocation.MethodManual,
		ManualAmounts:  []int64{4000, 3000, 2000, 1000},
	}

	_, err := suite.service.Allocate(context.Background(), suite.editor, req)
	require.Nil(suite.T(), err)

	first, err := suite.service.OfferingAllocations(context.Background(), offering.ID)
	require.Nil(suite.T(), err)

	_, err = suite.service.Allocate(context.Background(), suite.editor, req)
	require.Nil(suite.T(), err)

	second, err := suite.service.OfferingAllocations(context.Background(), offering.ID)
	require.Nil(suite.T(), err)

	assert.Len(suite.T(), second, 4, "Allocations must be replaced, not added")
	assert.Equal(suite.T(), summarize(first), summarize(second))
}

func (suite *TestSuiteStandard) TestAllocateContributionNotes() {
	offering := suite.createTestOffering(models.Offering{Price: 3000})
	ids := suite.entries(2)

	created, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:        offering.ID,
		ParticipantIDs:    ids,
		Method:            allocation.MethodEqual,
		ContributionNotes: map[uuid.UUID]string{ids[1]: "  paid in cash "},
	})
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "", created[0].ContributionNotes)
	assert.Equal(suite.T(), "paid in cash", created[1].ContributionNotes)
}

// TestAllocateFailureKeepsPrevious verifies that a failed replacement
// does not leave the offering without its previous allocations.
func (suite *TestSuiteStandard) TestAllocateFailureKeepsPrevious() {
	offering := suite.createTestOffering(models.Offering{Price: 8000})
	ids := suite.entries(2)

	_, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     offering.ID,
		ParticipantIDs: ids,
		Method:         allocation.MethodEqual,
	})
	require.Nil(suite.T(), err)

	tests := []struct {
		name string
		req  allocation.AllocateRequest
		err  error
	}{
		{
			"Manual sum mismatch",
			allocation.AllocateRequest{OfferingID: offering.ID, ParticipantIDs: ids, Method: allocation.MethodManual, ManualAmounts: []int64{4000, 3000}},
			allocation.ErrValidation,
		},
		{
			"Unknown participant",
			allocation.AllocateRequest{OfferingID: offering.ID, ParticipantIDs: []uuid.UUID{ids[0], uuid.New()}, Method: allocation.MethodEqual},
			allocation.ErrNotFound,
		},
		{
			"Unsupported method",
			allocation.AllocateRequest{OfferingID: offering.ID, ParticipantIDs: ids, Method: "random"},
			allocation.ErrUnsupportedMethod,
		},
		{
			"No participants",
			allocation.AllocateRequest{OfferingID: offering.ID, ParticipantIDs: []uuid.UUID{}, Method: allocation.MethodEqual},
			allocation.ErrNoParticipants,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.service.Allocate(context.Background(), suite.editor, tt.req)
			assert.ErrorIs(t, err, tt.err)

			stored, err := suite.service.OfferingAllocations(context.Background(), offering.ID)
			require.Nil(t, err)
			assert.Equal(t, []allocationSummary{{ids[0], 4000, true}, {ids[1], 4000, false}}, summarize(stored))
		})
	}
}

func (suite *TestSuiteStandard) TestAllocateManualOverflow() {
	offering := suite.createTestOffering(models.Offering{Price: 8000})
	ids := suite.entries(3)

	_, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     offering.ID,
		ParticipantIDs: ids,
		Method:         allocation.MethodManual,
		ManualAmounts:  []int64{math.MaxInt64, math.MaxInt64, 8002},
	})
	require.ErrorIs(suite.T(), err, allocation.ErrValidation)

	stored, err := suite.service.OfferingAllocations(context.Background(), offering.ID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), stored, 0)

	total, err := suite.service.EntryTotal(context.Background(), ids[0])
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), total.AllocatedTotal)
	assert.False(suite.T(), suite.reloadEntry(ids[0]).HasOffering)
}

func (suite *TestSuiteStandard) TestAllocateManualMismatchMessage() {
	offering := suite.createTestOffering(models.Offering{Price: 8000})
	ids := suite.entries(2)

	_, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     offering.ID,
		ParticipantIDs: ids,
		Method:         allocation.MethodManual,
		ManualAmounts:  []int64{4000, 3000},
	})

	require.ErrorIs(suite.T(), err, allocation.ErrValidation)
	assert.Contains(suite.T(), err.Error(), "7000")
	assert.Contains(suite.T(), err.Error(), "8000")
}

func (suite *TestSuiteStandard) TestAllocateUnknownOffering() {
	_, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     uuid.New(),
		ParticipantIDs: suite.entries(1),
		Method:         allocation.MethodEqual,
	})

	assert.ErrorIs(suite.T(), err, allocation.ErrNotFound)
}

func (suite *TestSuiteStandard) TestWritePermissions() {
	offering := suite.createTestOffering(models.Offering{Price: 100})
	ids := suite.entries(1)

	tests := []struct {
		name  string
		actor allocation.Actor
		err   error
	}{
		{"Viewer", allocation.Actor{UserID: uuid.New(), Role: allocation.RoleViewer}, allocation.ErrForbidden},
		{"No user", allocation.Actor{Role: allocation.RoleOwner}, allocation.ErrForbidden},
		{"Owner", allocation.Actor{UserID: uuid.New(), Role: allocation.RoleOwner}, nil},
		{"Editor", allocation.Actor{UserID: uuid.New(), Role: allocation.RoleEditor}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.service.Allocate(context.Background(), tt.actor, allocation.AllocateRequest{
				OfferingID:     offering.ID,
				ParticipantIDs: ids,
				Method:         allocation.MethodEqual,
			})
			assert.ErrorIs(t, err, tt.err)

			_, err = suite.service.Recalculate(context.Background(), tt.actor, allocation.RecalculateRequest{
				OfferingID: offering.ID,
				Method:     allocation.MethodEqual,
			})
			assert.ErrorIs(t, err, tt.err)

			err = suite.service.Remove(context.Background(), tt.actor, offering.ID)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

// TestReplaceResyncsDroppedBeneficiaries verifies that entries removed from
// an allocation by a replacement lose their flag unless another offering
// is allocated to them.
func (suite *TestSuiteStandard) TestReplaceResyncsDroppedBeneficiaries() {
	flowers := suite.createTestOffering(models.Offering{Price: 6000})
	fruit := suite.createTestOffering(models.Offering{Price: 3000})
	ids := suite.entries(3)

	_, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     flowers.ID,
		ParticipantIDs: ids,
		Method:         allocation.MethodEqual,
	})
	require.Nil(suite.T(), err)

	_, err = suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     fruit.ID,
		ParticipantIDs: []uuid.UUID{ids[2]},
		Method:         allocation.MethodEqual,
	})
	require.Nil(suite.T(), err)

	// Replace the flowers allocation with only the first entry
	_, err = suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     flowers.ID,
		ParticipantIDs: ids[:1],
		Method:         allocation.MethodEqual,
	})
	require.Nil(suite.T(), err)

	assert.True(suite.T(), suite.reloadEntry(ids[0]).HasOffering)
	assert.False(suite.T(), suite.reloadEntry(ids[1]).HasOffering, "Entry without allocations must not be flagged")
	assert.True(suite.T(), suite.reloadEntry(ids[2]).HasOffering, "Entry with an allocation of another offering must stay flagged")
}

func (suite *TestSuiteStandard) TestRemove() {
	flowers := suite.createTestOffering(models.Offering{Price: 6000})
	fruit := suite.createTestOffering(models.Offering{Price: 3000})
	ids := suite.entries(2)

	_, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     flowers.ID,
		ParticipantIDs: ids,
		Method:         allocation.MethodEqual,
	})
	require.Nil(suite.T(), err)

	_, err = suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     fruit.ID,
		ParticipantIDs: ids[1:],
		Method:         allocation.MethodEqual,
	})
	require.Nil(suite.T(), err)

	err = suite.service.Remove(context.Background(), suite.editor, flowers.ID)
	require.Nil(suite.T(), err)

	stored, err := suite.service.OfferingAllocations(context.Background(), flowers.ID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), stored, 0)

	assert.False(suite.T(), suite.reloadEntry(ids[0]).HasOffering, "Entry without remaining allocations must not be flagged")
	assert.True(suite.T(), suite.reloadEntry(ids[1]).HasOffering, "Entry with remaining allocations must stay flagged")

	// Removing again is a no-op
	err = suite.service.Remove(context.Background(), suite.editor, flowers.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestRemoveUnknownOffering() {
	err := suite.service.Remove(context.Background(), suite.editor, uuid.New())
	assert.ErrorIs(suite.T(), err, allocation.ErrNotFound)
}

func (suite *TestSuiteStandard) TestRecalculate() {
	offering := suite.createTestOffering(models.Offering{Price: 10000})
	ids := suite.entries(3)

	_, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:           offering.ID,
		ParticipantIDs:       ids,
		Method:               allocation.MethodEqual,
		PrimaryContributorID: &ids[1],
		ContributionNotes:    map[uuid.UUID]string{ids[0]: "Representative"},
	})
	require.Nil(suite.T(), err)

	recalculated, err := suite.service.Recalculate(context.Background(), suite.editor, allocation.RecalculateRequest{
		OfferingID:    offering.ID,
		Method:        allocation.MethodManual,
		ManualAmounts: []int64{5000, 3000, 2000},
	})
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), []allocationSummary{
		{ids[0], 5000, false},
		{ids[1], 3000, true},
		{ids[2], 2000, false},
	}, summarize(recalculated))
	assert.Equal(suite.T(), "Representative", recalculated[0].ContributionNotes)

	stored, err := suite.service.OfferingAllocations(context.Background(), offering.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), summarize(recalculated), summarize(stored))
}

func (suite *TestSuiteStandard) TestRecalculateWithoutAllocations() {
	offering := suite.createTestOffering(models.Offering{Price: 10000})

	_, err := suite.service.Recalculate(context.Background(), suite.editor, allocation.RecalculateRequest{
		OfferingID: offering.ID,
		Method:     allocation.MethodEqual,
	})

	assert.ErrorIs(suite.T(), err, allocation.ErrNotFound)
	assert.Contains(suite.T(), err.Error(), "no allocation data found")
}

func (suite *TestSuiteStandard) TestOfferingAllocationsUnknownOffering() {
	_, err := suite.service.OfferingAllocations(context.Background(), uuid.New())
	assert.ErrorIs(suite.T(), err, allocation.ErrNotFound)
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	offering := suite.createTestOffering(models.Offering{Price: 100})
	ids := suite.entries(1)
	suite.CloseDB()

	_, err := suite.service.Allocate(context.Background(), suite.editor, allocation.AllocateRequest{
		OfferingID:     offering.ID,
		ParticipantIDs: ids,
		Method:         allocation.MethodEqual,
	})
	assert.ErrorIs(suite.T(), err, allocation.ErrPersistence)

	err = suite.service.Remove(context.Background(), suite.editor, offering.ID)
	assert.ErrorIs(suite.T(), err, allocation.ErrPersistence)

	_, err = suite.service.OfferingAllocations(context.Background(), offering.ID)
	assert.ErrorIs(suite.T(), err, allocation.ErrPersistence)

	_, err = suite.service.EntryTotal(context.Background(), ids[0])
	assert.ErrorIs(suite.T(), err, allocation.ErrPersistence)

	_, err = suite.service.CheckIntegrity(context.Background(), nil)
	assert.ErrorIs(suite.T(), err, allocation.ErrPersistence)
}

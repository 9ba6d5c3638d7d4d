package models_test

import (
	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/models"
	"gorm.io/gorm/clause"
)

func (suite *TestSuiteStandard) TestAllocationTableName() {
	suite.Assert().Equal("offering_allocations", models.Allocation{}.TableName())
	suite.Assert().True(models.DB.Migrator().HasTable("offering_allocations"))
}

func (suite *TestSuiteStandard) TestAllocationUnique() {
	entry := suite.createTestEntry(models.Entry{})
	offering := suite.createTestOffering(models.Offering{Price: 1000})

	first := models.Allocation{OfferingID: offering.ID, BeneficiaryID: entry.ID, AllocatedAmount: 1000, AllocationRatio: 1}
	suite.Require().NoError(models.DB.Omit(clause.Associations).Create(&first).Error)

	second := models.Allocation{OfferingID: offering.ID, BeneficiaryID: entry.ID, AllocatedAmount: 1000, AllocationRatio: 1}
	err := models.DB.Omit(clause.Associations).Create(&second).Error
	suite.Assert().ErrorIs(err, models.ErrAllocationNotUnique)
}

func (suite *TestSuiteStandard) TestAllocationMissingReference() {
	offering := suite.createTestOffering(models.Offering{Price: 1000})

	allocation := models.Allocation{OfferingID: offering.ID, BeneficiaryID: uuid.New(), AllocatedAmount: 1000, AllocationRatio: 1}
	err := models.DB.Omit(clause.Associations).Create(&allocation).Error
	suite.Assert().ErrorIs(err, models.ErrReferenceNotFound)
}

func (suite *TestSuiteStandard) TestAllocationNegativeAmount() {
	allocation := models.Allocation{AllocatedAmount: -1, ContributionNotes: "  Paid  "}
	err := allocation.BeforeSave(models.DB)

	suite.Assert().ErrorIs(err, models.ErrAllocationAmountNegative)
	suite.Assert().Equal("Paid", allocation.ContributionNotes)
}

func (suite *TestSuiteStandard) TestAllocationCascade() {
	entry := suite.createTestEntry(models.Entry{})
	offering := suite.createTestOffering(models.Offering{Price: 1000})

	allocation := models.Allocation{OfferingID: offering.ID, BeneficiaryID: entry.ID, AllocatedAmount: 1000, AllocationRatio: 1}
	suite.Require().NoError(models.DB.Omit(clause.Associations).Create(&allocation).Error)

	suite.Require().NoError(models.DB.Delete(&offering).Error)

	var count int64
	models.DB.Model(&models.Allocation{}).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

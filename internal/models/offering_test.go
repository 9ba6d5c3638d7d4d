package models_test

import (
	"testing"

	"github.com/kouden-ledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestOfferingType() {
	tests := []struct {
		in  models.OfferingType
		out models.OfferingType
	}{
		{"FLOWER", models.OfferingTypeFlower},
		{"flower", models.OfferingTypeFlower},
		{"Food", models.OfferingTypeFood},
		{"OTHER", models.OfferingTypeOther},
		{"candle", models.OfferingTypeOther},
		{"", models.OfferingTypeOther},
	}

	for _, tt := range tests {
		suite.T().Run(string(tt.in), func(t *testing.T) {
			offering := suite.createTestOffering(models.Offering{Type: tt.in})
			suite.Assert().Equal(tt.out, offering.Type)
		})
	}
}

func (suite *TestSuiteStandard) TestOfferingNegativePrice() {
	offering := models.Offering{Price: -100}
	err := models.DB.Create(&offering).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}

package models_test

import (
	"github.com/kouden-ledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestEntryTrimWhitespace() {
	entry := suite.createTestEntry(models.Entry{
		Name: "\t Yamada Taro  ",
		Note: " Colleague  ",
	})

	suite.Assert().Equal("Yamada Taro", entry.Name)
	suite.Assert().Equal("Colleague", entry.Note)
}

func (suite *TestSuiteStandard) TestEntryNegativeAmount() {
	entry := models.Entry{Amount: -1}
	err := models.DB.Create(&entry).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestEntryNotFound() {
	var entry models.Entry
	err := models.DB.First(&entry, "name = ?", "Nobody").Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "entry matching your query")
}

func (suite *TestSuiteStandard) TestEntryDatabaseClosed() {
	suite.CloseDB()

	entry := models.Entry{Name: "Yamada Taro"}
	err := models.DB.Create(&entry).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

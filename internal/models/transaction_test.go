package models_test

import (
	"github.com/google/uuid"
	"github.com/niaga/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestTransaction(transaction models.Transaction) models.Transaction {
	err := models.DB.Create(&transaction).Error
	if err != nil {
		suite.Assert().FailNow("Transaction could not be saved", "Error: %s, Transaction: %#v", err, transaction)
	}

	return transaction
}

func (suite *TestSuiteStandard) TestTransactionTitleEmpty() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Transaction{
		UserID: user.ID,
		Title:  "  ",
		Amount: decimal.NewFromInt(1000),
		Type:   models.TransactionTypeIncome,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionTitleEmpty)
}

func (suite *TestSuiteStandard) TestTransactionAmountNotPositive() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Transaction{
		UserID: user.ID,
		Title:  "Salary",
		Amount: decimal.Zero,
		Type:   models.TransactionTypeIncome,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Transaction{
		UserID: user.ID,
		Title:  "Salary",
		Amount: decimal.NewFromInt(1000),
		Type:   "transfer",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaults() {
	user := suite.createTestUser(models.User{})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Title:  "Salary",
		Amount: decimal.NewFromInt(1000),
		Type:   models.TransactionTypeIncome,
	})

	suite.Assert().False(transaction.Date.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionNonExistingUser() {
	err := models.DB.Create(&models.Transaction{
		UserID: uuid.New(),
		Title:  "Orphan",
		Amount: decimal.NewFromInt(10),
		Type:   models.TransactionTypeExpense,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsOrder() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Title:  "older",
		Amount: decimal.NewFromInt(10),
		Type:   models.TransactionTypeExpense,
		Date:   date(1),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Title:  "newer",
		Amount: decimal.NewFromInt(1000),
		Type:   models.TransactionTypeIncome,
		Date:   date(2),
	})

	transactions, err := user.Transactions(models.DB)
	suite.Assert().NoError(err)
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal("newer", transactions[0].Title, "transactions are ordered newest first")
	suite.Assert().Equal("older", transactions[1].Title)
}

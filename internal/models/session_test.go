package models_test

import (
	"time"

	"github.com/niaga/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCreateAndResolveSession() {
	user := suite.createTestUser(models.User{})

	session, err := models.CreateSession(models.DB, user.ID, time.Hour)
	suite.Assert().NoError(err)
	suite.Assert().NotEmpty(session.Token)

	resolved, err := models.ResolveSession(models.DB, session.Token)
	suite.Assert().NoError(err)
	suite.Assert().Equal(user.ID, resolved.ID)
}

func (suite *TestSuiteStandard) TestResolveSessionEmptyToken() {
	_, err := models.ResolveSession(models.DB, "")
	suite.Assert().ErrorIs(err, models.ErrSessionInvalid)
}

func (suite *TestSuiteStandard) TestResolveSessionUnknownToken() {
	_, err := models.ResolveSession(models.DB, "definitely-not-issued")
	suite.Assert().ErrorIs(err, models.ErrSessionInvalid)
}

func (suite *TestSuiteStandard) TestResolveSessionExpired() {
	user := suite.createTestUser(models.User{})

	session, err := models.CreateSession(models.DB, user.ID, -time.Minute)
	suite.Assert().NoError(err)

	_, err = models.ResolveSession(models.DB, session.Token)
	suite.Assert().ErrorIs(err, models.ErrSessionInvalid, "an expired token reads like an unknown one")
}

func (suite *TestSuiteStandard) TestDeleteExpiredSessions() {
	user := suite.createTestUser(models.User{})

	expired, err := models.CreateSession(models.DB, user.ID, -time.Minute)
	suite.Assert().NoError(err)

	active, err := models.CreateSession(models.DB, user.ID, time.Hour)
	suite.Assert().NoError(err)

	suite.Assert().NoError(models.DeleteExpiredSessions(models.DB))

	var count int64
	suite.Assert().NoError(models.DB.Model(&models.Session{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	_, err = models.ResolveSession(models.DB, active.Token)
	suite.Assert().NoError(err)

	_, err = models.ResolveSession(models.DB, expired.Token)
	suite.Assert().ErrorIs(err, models.ErrSessionInvalid)
}

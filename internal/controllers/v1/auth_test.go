package v1_test

import (
	"net/http"

	v1 "github.com/niaga/backend/internal/controllers/v1"
	"github.com/niaga/backend/internal/models"
	"github.com/niaga/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.RegisterRequest{
		Name:     "Ramesh Kumar",
		Mobile:   "9876543210",
		Email:    "ramesh@example.com",
		Password: "correct horse",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RegisterResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Ramesh Kumar", response.Data.Name)
	suite.Assert().Equal("ramesh@example.com", response.Data.Email)
	suite.Assert().False(response.Data.IsPersonalized)
	suite.Assert().False(response.Data.IsBudgetAssigned)
	suite.Assert().Empty(response.Data.DailySpending)
	suite.Assert().Empty(response.Data.BudgetHistory)
}

func (suite *TestSuiteStandard) TestRegisterFieldsMissing() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.RegisterRequest{
		Name:  "No Credentials",
		Email: "nope@example.com",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	body := v1.RegisterRequest{
		Name:     "Ramesh Kumar",
		Mobile:   "9876543210",
		Email:    "ramesh@example.com",
		Password: "correct horse",
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.RegisterResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "email")
}

func (suite *TestSuiteStandard) TestRegisterInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", `{ not json `)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLogin() {
	user := suite.createTestUser(models.User{}, "correct horse")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    user.Email,
		Password: "correct horse",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().NotEmpty(response.Data.Token)
	suite.Assert().Equal(user.ID, response.Data.User.ID)
	suite.Assert().False(response.Data.IsPersonalized)
	suite.Assert().False(response.Data.IsBudgetAssigned)
}

func (suite *TestSuiteStandard) TestLoginTokenWorks() {
	user := suite.createTestUser(models.User{}, "correct horse")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    user.Email,
		Password: "correct horse",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/user/me", nil, map[string]string{
		"x-auth-token": response.Data.Token,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	user := suite.createTestUser(models.User{}, "correct horse")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    user.Email,
		Password: "battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("invalid credentials", *response.Error)
}

// An unknown email has to produce the exact same error as a wrong password.
func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("invalid credentials", *response.Error)
}

func (suite *TestSuiteStandard) TestLoginFieldsMissing() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email: "ramesh@example.com",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

package v1

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/niaga/backend/internal/httputil"
	"github.com/niaga/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// RegisterAuthRoutes registers the authentication routes with the
// RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/register", OptionsRegister)
		r.POST("/register", Register)
	}
	{
		r.OPTIONS("/login", OptionsLogin)
		r.POST("/login", Login)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new user
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	RegisterResponse
// @Failure		400		{object}	RegisterResponse
// @Failure		500		{object}	RegisterResponse
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegisterResponse{
			Error: &e,
		})
		return
	}

	if request.Name == "" || request.Mobile == "" || request.Email == "" || request.Password == "" {
		e := errRegisterFieldsMissing.Error()
		c.JSON(http.StatusBadRequest, RegisterResponse{
			Error: &e,
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, RegisterResponse{
			Error: &e,
		})
		return
	}

	user := models.User{
		Name:         request.Name,
		Mobile:       request.Mobile,
		Email:        request.Email,
		PasswordHash: string(hash),
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegisterResponse{
			Error: &e,
		})
		return
	}

	data := newProfile(c, user, []models.SpendingEntry{}, []models.BudgetArchive{})
	c.JSON(http.StatusCreated, RegisterResponse{Data: &data})
}

// @Summary		Login
// @Description	Verifies the credentials and issues an opaque token for the x-auth-token header
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	if request.Email == "" || request.Password == "" {
		e := errLoginFieldsMissing.Error()
		c.JSON(http.StatusBadRequest, LoginResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", request.Email).Error
	if err != nil {
		// An unknown email reads exactly like a wrong password so that
		// the login endpoint cannot be used to enumerate accounts
		if errors.Is(err, models.ErrResourceNotFound) {
			e := errInvalidCredentials.Error()
			c.JSON(http.StatusBadRequest, LoginResponse{
				Error: &e,
			})
			return
		}

		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password))
	if err != nil {
		e := errInvalidCredentials.Error()
		c.JSON(http.StatusBadRequest, LoginResponse{
			Error: &e,
		})
		return
	}

	session, err := models.CreateSession(models.DB, user.ID, sessionLifetime())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	data := newCredential(session, user)
	c.JSON(http.StatusOK, LoginResponse{Data: &data})
}

// sessionLifetime returns how long issued credentials stay valid.
func sessionLifetime() time.Duration {
	value, ok := os.LookupEnv("SESSION_LIFETIME")
	if !ok {
		return 24 * time.Hour
	}

	lifetime, err := time.ParseDuration(value)
	if err != nil || lifetime <= 0 {
		return 24 * time.Hour
	}

	return lifetime
}

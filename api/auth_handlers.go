package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/TaddsTechnology/huematch-api/models"
)

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	userSignup := &models.UserSignupRequest{}
	errParsingJson := json.NewDecoder(r.Body).Decode(userSignup)
	if errParsingJson != nil {
		app.badJSONRequest(w, r, errParsingJson)
		return
	}

	// Validate username doesn't contain spaces
	if len(userSignup.Username) == 0 {
		app.badRequest(w, r, errors.New("username is required"))
		return
	}

	for _, char := range userSignup.Username {
		if char == ' ' {
			app.badRequest(w, r, errors.New("username cannot contain spaces"))
			return
		}
	}

	// Create new user
	newUser, newUserErr := models.NewUser(*userSignup)
	if newUserErr != nil {
		app.internalServerError(w, r, newUserErr)
		return
	}

	// Check if email already exists
	_, getErr := app.UserRepo.GetUserByEmail(newUser.Email)
	if getErr == nil {
		app.userAlreadyExists(w, r, getErr)
		return
	}

	// Check if username already exists
	_, getUsernameErr := app.UserRepo.GetUserByUsername(newUser.Username)
	if getUsernameErr == nil {
		app.badRequest(w, r, errors.New("username already taken"))
		return
	}

	// Store new user in database
	storedUser, errStoringNewUser := app.UserRepo.Create(newUser)
	if errStoringNewUser != nil {
		app.internalServerError(w, r, errStoringNewUser)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(storedUser)
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	creds := &models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	// Validate user credentials
	user, err := app.UserRepo.ValidateAndGetUser(*creds)
	if err != nil {
		app.invalidCredentials(w, r, err)
		return
	}

	if !user.Approved {
		app.invalidCredentials(w, r, errors.New("user not yet approved"))
		return
	}

	// Generate JWT access token
	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))

	accessClaims := models.JWTClaims{
		UserID: user.UserID,
		Email:  user.Email,
		Kind:   user.Kind,
		Scope:  "authentication",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(app.Config.JwtSecret))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	// Set access token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     models.JWT.ACCESS_COOKIE_NAME,
		Value:    accessTokenString,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  accessExpiry,
	})

	w.WriteHeader(http.StatusOK)
}

// GET /v1/users/me - Get current authenticated user
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// GET /v1/users - Get all users
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, retrieveErr := app.UserRepo.GetAllUsers()
	if retrieveErr != nil {
		app.internalServerError(w, r, retrieveErr)
		return
	}

	json.NewEncoder(w).Encode(users)
}

package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/TaddsTechnology/huematch-api/models"
)

type UserRepository interface {
	Create(user models.User) (models.User, error)
	Get(userID string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	Update(user models.User) (models.User, error)
	ValidateAndGetUser(userLogin models.Credentials) (models.User, error)
	GetAllUsers() ([]models.User, error)
}

func NewUserDatabase(db *sql.DB) (UserDatabase, error) {
	var userDB UserDatabase
	userDB.database = db
	return userDB, nil
}

type NoRowsError struct {
	NoRows bool
	Err    error
}

func (nr NoRowsError) Error() string {
	return fmt.Sprintf("%v: no rows returned for scan: %v", nr.NoRows, nr.Err)
}

type UserDatabase struct {
	database *sql.DB
}

const userColumns = `
	user_id,
	username,
	email,
	password_hash,
	kind,
	approved,
	created_at,
	updated_at`

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	scanErr := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Kind,
		&user.Approved,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.User{}, NoRowsError{true, scanErr}
	case nil:
		return user, nil
	default:
		return models.User{}, scanErr
	}
}

func (pgdb UserDatabase) Create(user models.User) (models.User, error) {
	db := pgdb.database

	_, insertErr := db.Exec(`
		INSERT INTO users (
			user_id,
			username,
			email,
			password_hash,
			kind,
			approved,
			created_at,
			updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`,
		user.UserID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Kind,
		user.Approved,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if insertErr != nil {
		return user, insertErr
	}

	return user, nil
}

func (pgdb UserDatabase) Get(userID string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT`+userColumns+` FROM users WHERE user_id=$1;`, userID)
	return scanUser(row)
}

func (pgdb UserDatabase) GetUserByEmail(email string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT`+userColumns+` FROM users WHERE email=$1;`, email)
	return scanUser(row)
}

func (pgdb UserDatabase) GetUserByUsername(username string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT`+userColumns+` FROM users WHERE username=$1;`, username)
	return scanUser(row)
}

func (pgdb UserDatabase) Update(user models.User) (models.User, error) {
	db := pgdb.database

	_, updateErr := db.Exec(`
		UPDATE users SET
			username=$2,
			email=$3,
			kind=$4,
			approved=$5,
			updated_at=$6
		WHERE user_id=$1`,
		user.UserID,
		user.Username,
		user.Email,
		user.Kind,
		user.Approved,
		user.UpdatedAt,
	)

	if updateErr != nil {
		return models.User{}, updateErr
	}

	return user, nil
}

// ValidateAndGetUser checks the supplied credentials against the stored
// bcrypt hash and returns the matching user.
func (pgdb UserDatabase) ValidateAndGetUser(userLogin models.Credentials) (models.User, error) {
	user, getErr := pgdb.GetUserByEmail(userLogin.Email)
	if getErr != nil {
		return models.User{}, fmt.Errorf("no user found for email %v", userLogin.Email)
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(userLogin.Password))
	if compareErr != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}

	return user, nil
}

func (pgdb UserDatabase) GetAllUsers() ([]models.User, error) {
	db := pgdb.database

	rows, queryErr := db.Query(`SELECT` + userColumns + ` FROM users ORDER BY created_at;`)
	if queryErr != nil {
		return []models.User{}, queryErr
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		scanErr := rows.Scan(
			&user.UserID,
			&user.Username,
			&user.Email,
			&user.HashedPassword,
			&user.Kind,
			&user.Approved,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if scanErr != nil {
			return []models.User{}, scanErr
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return []models.User{}, err
	}

	return users, nil
}

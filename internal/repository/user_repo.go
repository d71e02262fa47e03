package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
)

// UserRepository handles database operations for users and sessions
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, handle, password_hash, age, email, avatar, role, bio, family_code, parental_controls, guardian_id, created_at`

// CreateUser inserts a new user. The handle carries a UNIQUE constraint;
// losing a race on it returns ErrUniqueViolation with nothing written.
func (r *UserRepository) CreateUser(user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (name, handle, password_hash, age, email, avatar, role, bio, family_code, parental_controls, guardian_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		user.Name, user.Handle, user.PasswordHash, user.Age, user.Email, user.Avatar,
		user.Role, user.Bio, user.FamilyCode, user.ParentalControls, user.GuardianID,
	)
	if err != nil {
		if r.db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("handle %q: %w", user.Handle, ErrUniqueViolation)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	user.CreatedAt = time.Now()
	return user, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var guardianID sql.NullInt64
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Handle,
		&user.PasswordHash,
		&user.Age,
		&user.Email,
		&user.Avatar,
		&user.Role,
		&user.Bio,
		&user.FamilyCode,
		&user.ParentalControls,
		&guardianID,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if guardianID.Valid {
		user.GuardianID = &guardianID.Int64
	}
	return user, nil
}

// GetUserByHandle retrieves a user by handle
func (r *UserRepository) GetUserByHandle(handle string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE handle = ?"
	user, err := scanUser(r.db.QueryRow(query, handle))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	user, err := scanUser(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateAvatar updates a user's avatar reference
func (r *UserRepository) UpdateAvatar(id int64, avatar string) error {
	query := "UPDATE users SET avatar = ? WHERE id = ?"
	_, err := r.db.Exec(query, avatar, id)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	return nil
}

// GetFamilyMembers retrieves all users in a family
func (r *UserRepository) GetFamilyMembers(familyCode string) ([]models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE family_code = ? ORDER BY created_at ASC"
	rows, err := r.db.Query(query, familyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query family members: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		var guardianID sql.NullInt64
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Handle, &user.PasswordHash, &user.Age,
			&user.Email, &user.Avatar, &user.Role, &user.Bio, &user.FamilyCode,
			&user.ParentalControls, &guardianID, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan family member: %w", err)
		}
		if guardianID.Valid {
			user.GuardianID = &guardianID.Int64
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// GetFamilyParents retrieves the users eligible to act as guardians for a
// family: parent role, adult age.
func (r *UserRepository) GetFamilyParents(familyCode string) ([]models.User, error) {
	query := "SELECT " + userColumns + ` FROM users WHERE family_code = ? AND role = ? AND age >= ? ORDER BY created_at ASC`
	rows, err := r.db.Query(query, familyCode, models.RoleParent, models.AdultAge)
	if err != nil {
		return nil, fmt.Errorf("failed to query family parents: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		var guardianID sql.NullInt64
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Handle, &user.PasswordHash, &user.Age,
			&user.Email, &user.Avatar, &user.Role, &user.Bio, &user.FamilyCode,
			&user.ParentalControls, &guardianID, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan parent: %w", err)
		}
		if guardianID.Valid {
			user.GuardianID = &guardianID.Int64
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// CreateSession creates a new session for a user
func (r *UserRepository) CreateSession(sessionID string, userID int64, expiresAt time.Time) (*models.Session, error) {
	query := "INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)"
	_, err := r.db.Exec(query, sessionID, userID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &models.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}, nil
}

// GetSession retrieves a session by ID
func (r *UserRepository) GetSession(sessionID string) (*models.Session, error) {
	query := "SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = ?"
	session := &models.Session{}
	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// DeleteSession removes a session from the database
func (r *UserRepository) DeleteSession(sessionID string) error {
	query := "DELETE FROM sessions WHERE id = ?"
	if _, err := r.db.Exec(query, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes all expired sessions
func (r *UserRepository) DeleteExpiredSessions() error {
	query := "DELETE FROM sessions WHERE expires_at < ?"
	if _, err := r.db.Exec(query, time.Now()); err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}

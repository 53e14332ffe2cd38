package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dbpg "job-board/internal/database/postgres"
	"job-board/internal/domain/role"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *PostgresDB

	stmtCreateUser    *sql.Stmt
	stmtCreateProfile *sql.Stmt
	stmtGetByID       *sql.Stmt
	stmtGetByEmail    *sql.Stmt
	stmtExistsByEmail *sql.Stmt
	stmtGetProfile    *sql.Stmt
	stmtUpdateProfile *sql.Stmt
}

const userColumns = `id, email, password_hash, role, organization_id, created_at, updated_at`

const profileColumns = `user_id, display_name, headline, location, created_at, updated_at`

func NewUserRepository(db *PostgresDB) (*UserRepository, error) {
	if db == nil || db.sqlDB() == nil {
		return nil, fmt.Errorf("nil db")
	}
	r := &UserRepository{db: db}

	prepare := func(dst **sql.Stmt, query string) error {
		s, err := db.sqlDB().PrepareContext(context.Background(), query)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}

	stmts := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&r.stmtCreateUser, `INSERT INTO users (id, email, password_hash, role, organization_id) VALUES ($1, $2, $3, $4, $5)`},
		{&r.stmtCreateProfile, `INSERT INTO candidate_profiles (user_id, display_name, headline, location) VALUES ($1, $2, $3, $4)`},
		{&r.stmtGetByID, `SELECT ` + userColumns + ` FROM users WHERE id = $1`},
		{&r.stmtGetByEmail, `SELECT ` + userColumns + ` FROM users WHERE email = $1`},
		{&r.stmtExistsByEmail, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`},
		{&r.stmtGetProfile, `SELECT ` + profileColumns + ` FROM candidate_profiles WHERE user_id = $1`},
		{&r.stmtUpdateProfile, `UPDATE candidate_profiles
			SET display_name = $2, headline = $3, location = $4, updated_at = now()
			WHERE user_id = $1
			RETURNING ` + profileColumns},
	}
	for _, s := range stmts {
		if err := prepare(s.dst, s.query); err != nil {
			_ = r.Close()
			return nil, err
		}
	}

	return r, nil
}

func (r *UserRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreateUser)
	closeStmt(r.stmtCreateProfile)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)
	closeStmt(r.stmtExistsByEmail)
	closeStmt(r.stmtGetProfile)
	closeStmt(r.stmtUpdateProfile)

	return firstErr
}

// Provision writes the user row and its candidate profile in one transaction.
func (r *UserRepository) Provision(ctx context.Context, u user.User, p user.Profile) error {
	tx, err := r.db.sqlDB().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.StmtContext(ctx, r.stmtCreateUser).ExecContext(ctx,
		u.ID, u.Email, u.PasswordHash, u.Role.String(), u.OrganizationID,
	); err != nil {
		if dbpg.IsUniqueViolation(err) {
			return user.ErrEmailTaken
		}
		return err
	}

	if _, err := tx.StmtContext(ctx, r.stmtCreateProfile).ExecContext(ctx,
		u.ID, p.DisplayName, p.Headline, p.Location,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return scanUser(r.stmtGetByID.QueryRowContext(ctx, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.stmtGetByEmail.QueryRowContext(ctx, email))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExistsByEmail.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	return scanProfile(r.stmtGetProfile.QueryRowContext(ctx, userID))
}

func (r *UserRepository) UpdateProfile(ctx context.Context, p user.Profile) (user.Profile, error) {
	return scanProfile(r.stmtUpdateProfile.QueryRowContext(ctx, p.UserID, p.DisplayName, p.Headline, p.Location))
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	var roleName string
	var orgID uuid.NullUUID
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &roleName, &orgID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	rl, err := role.Parse(roleName)
	if err != nil {
		return user.User{}, err
	}
	u.Role = rl
	if orgID.Valid {
		id := orgID.UUID
		u.OrganizationID = &id
	}
	return u, nil
}

func scanProfile(row userRow) (user.Profile, error) {
	var p user.Profile
	var headline, location sql.NullString
	if err := row.Scan(&p.UserID, &p.DisplayName, &headline, &location, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	if headline.Valid {
		p.Headline = &headline.String
	}
	if location.Valid {
		p.Location = &location.String
	}
	return p, nil
}

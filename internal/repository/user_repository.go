package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/utils"
)

// UserRepo provides account persistence for guests, staff and admins.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a new UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = `id, unique_id, name, email, password_hash, role,
	staff_title, staff_department, staff_hire_date, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	var title, dept sql.NullString
	var hire sql.NullTime
	err := row.Scan(&u.ID, &u.UniqueID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&title, &dept, &hire, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if title.Valid {
		u.Staff.Title = title.String
	}
	if dept.Valid {
		u.Staff.Department = dept.String
	}
	if hire.Valid {
		t := hire.Time
		u.Staff.HireDate = &t
	}
	return u, err
}

// Create inserts a user with a hashed password and a generated unique
// ID, returning the new row's primary key.  Staff fields may be zero
// for guests.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, role model.Role, staff model.StaffDetails, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	uniqueID, err := utils.NewUniqueID(role)
	if err != nil {
		return 0, err
	}
	var title, dept, hire any
	if staff.Title != "" {
		title = staff.Title
	}
	if staff.Department != "" {
		dept = staff.Department
	}
	if staff.HireDate != nil {
		hire = *staff.HireDate
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (unique_id, name, email, password_hash, role, staff_title, staff_department, staff_hire_date)
		 VALUES (?,?,?,?,?,?,?,?)`,
		uniqueID, name, email, hash, role, title, dept, hire)
	if err != nil {
		// MySQL duplicate key on the unique email index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// ListStaff returns every non-guest account.
func (r *UserRepo) ListStaff(ctx context.Context) ([]model.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE role <> ? ORDER BY created_at DESC`, model.RoleGuest)
}

// ListGuests returns every guest account.
func (r *UserRepo) ListGuests(ctx context.Context) ([]model.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY created_at DESC`, model.RoleGuest)
}

// RecentGuests returns the newest guest accounts up to limit, for the
// admin dashboard guest list.
func (r *UserRepo) RecentGuests(ctx context.Context, limit int) ([]model.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY created_at DESC LIMIT ?`, model.RoleGuest, limit)
}

func (r *UserRepo) list(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// SetActive toggles whether the account may log in.
func (r *UserRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET is_active = ? WHERE id = ?`, active, id)
	if err != nil {
		return err
	}
	return affectedOrUserNotFound(res)
}

// SetRole changes a user's role.  Callers validate the role first.
func (r *UserRepo) SetRole(ctx context.Context, id uint64, role model.Role) (model.User, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET role = ? WHERE id = ?`, role, id)
	if err != nil {
		return model.User{}, err
	}
	if err := affectedOrUserNotFound(res); err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// SetHiredAsStaff promotes an account created from a hired application:
// role plus employment details in one statement.
func (r *UserRepo) SetHiredAsStaff(ctx context.Context, id uint64, role model.Role, title, department string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE users SET role = ?, staff_title = ?, staff_department = ?, staff_hire_date = ? WHERE id = ?`,
		role, title, department, time.Now().UTC(), id)
	return err
}

// Delete removes an account.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return affectedOrUserNotFound(res)
}

func affectedOrUserNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

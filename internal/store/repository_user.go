package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.UserName, &u.Email, &u.Password)
	return u, err
}

func (r *userRepository) selectUsers() sq.SelectBuilder {
	return r.builder.Select(userColumns...).From(usersTable).OrderBy("id")
}

// CreateUser inserts a new user and returns its identifier.
//
// A duplicate userName or email is reported as [ErrConstraintViolation].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := r.insert(ctx, r.builder.Insert(usersTable).
		Columns("user_first_name", "user_last_name", "user_name", "email", "password").
		Values(user.FirstName, user.LastName, user.UserName, user.Email, user.Password))
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Str("user_name", user.UserName).Msg("failed to insert user")
		return 0, err
	}

	log.Debug().Str("func", "userRepository.CreateUser").Int64("user_id", id).Msg("user created")
	return id, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := queryAll(ctx, r.DB, r.selectUsers(), scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.ListUsers").Msg("failed to list users")
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := queryOne(ctx, r.DB, r.selectUsers().Where(sq.Eq{"id": id}), scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.GetUser").Int64("user_id", id).Msg("failed to get user")
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser overwrites the non-nil columns of update. It returns
// [ErrNotFound] when the user does not exist.
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) error {
	set := make(map[string]any, 2)
	if update.UserName != nil {
		set["user_name"] = *update.UserName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}

	err := r.execAffectingOne(ctx, r.builder.Update(usersTable).SetMap(set).Where(sq.Eq{"id": update.ID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", update.ID).Msg("failed to update user")
		return err
	}
	return nil
}

// DeleteUser removes the user row only; owned addresses are kept.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	err := r.execAffectingOne(ctx, r.builder.Delete(usersTable).Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.DeleteUser").Int64("user_id", id).Msg("failed to delete user")
		return err
	}
	return nil
}

func (r *userRepository) FindUserByCredentials(ctx context.Context, userName, email string) (models.User, error) {
	user, err := queryOne(ctx, r.DB, r.selectUsers().Where(sq.Eq{"user_name": userName, "email": email}).Limit(1), scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.FindUserByCredentials").Str("user_name", userName).Msg("user lookup failed")
		return models.User{}, err
	}
	return user, nil
}

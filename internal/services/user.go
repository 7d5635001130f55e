package services

import (
	"errors"

	"github.com/recipebook-dev/recipebook/internal/apperrors"
	"github.com/recipebook-dev/recipebook/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages user identity and the one-to-one profile lifecycle.
// A profile only ever exists attached to a persisted user and is deleted
// with it.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserUpdate carries a sparse update: nil means "leave unchanged".
type UserUpdate struct {
	Email    *string
	Username *string
	Password *string
}

// ProfileUpdate carries a sparse profile update: nil means "leave unchanged".
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Bio       *string
}

// Register stores a new user with a bcrypt-derived password hash. Email is
// checked before username, so a request clashing on both reports the email
// conflict.
func (s *UserService) Register(email, username, password string) (*models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(passwordHash),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkFieldFree(tx, "email", email, 0, "Email already exists"); err != nil {
			return err
		}

		if err := s.checkFieldFree(tx, "username", username, 0, "Username already exists"); err != nil {
			return err
		}

		return tx.Create(&user).Error
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User", id)
		}
		return nil, err
	}

	return &user, nil
}

// Update applies a sparse update. A provided email or username must not
// collide with a different user; the unique indexes backstop the check
// against concurrent writers.
func (s *UserService) Update(id uint, req UserUpdate) (*models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("User", id)
			}
			return err
		}

		if req.Email != nil {
			if err := s.checkFieldFree(tx, "email", *req.Email, user.ID, "Email already exists"); err != nil {
				return err
			}
			user.Email = *req.Email
		}

		if req.Username != nil {
			if err := s.checkFieldFree(tx, "username", *req.Username, user.ID, "Username already exists"); err != nil {
				return err
			}
			user.Username = *req.Username
		}

		if req.Password != nil {
			passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.PasswordHash = string(passwordHash)
		}

		return tx.Omit("Profile", "Recipes").Save(&user).Error
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Delete removes the user together with its profile and owned recipes. The
// dependent rows are deleted explicitly so the lifecycle is visible here
// rather than buried in schema constraints.
func (s *UserService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("User", id)
			}
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}

		var recipes []models.Recipe

		if err := tx.Where("owner_id = ?", id).Find(&recipes).Error; err != nil {
			return err
		}

		for i := range recipes {
			if err := tx.Model(&recipes[i]).Association("Ingredients").Clear(); err != nil {
				return err
			}
		}

		if len(recipes) > 0 {
			if err := tx.Where("owner_id = ?", id).Delete(&models.Recipe{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}

// ListRecipes returns the user's recipes recomputed from the recipe side.
// The user row holds no list of its own that could go stale.
func (s *UserService) ListRecipes(userID uint) ([]models.Recipe, error) {
	if err := s.mustExist(s.db, userID); err != nil {
		return nil, err
	}

	var recipes []models.Recipe

	err := s.db.Where("owner_id = ?", userID).
		Preload("Ingredients").
		Order("id").
		Find(&recipes).Error

	if err != nil {
		return nil, err
	}

	return recipes, nil
}

// CreateProfile attaches a profile to the user. If the user already has one
// it is replaced: the old row is deleted in the same transaction, so no
// detached profile ever survives.
func (s *UserService) CreateProfile(userID uint, firstName, lastName, bio string) (*models.UserProfile, error) {
	var profile models.UserProfile

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.mustExist(tx, userID); err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}

		profile = models.UserProfile{
			FirstName: firstName,
			LastName:  lastName,
			Bio:       bio,
			UserID:    userID,
		}

		return tx.Create(&profile).Error
	})

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile sparsely updates an existing profile. A user without a
// profile yet reports a profile-specific not-found, keyed by the user id.
func (s *UserService) UpdateProfile(userID uint, req ProfileUpdate) (*models.UserProfile, error) {
	var profile models.UserProfile

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.mustExist(tx, userID); err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Profile", userID)
			}
			return err
		}

		if req.FirstName != nil {
			profile.FirstName = *req.FirstName
		}

		if req.LastName != nil {
			profile.LastName = *req.LastName
		}

		if req.Bio != nil {
			profile.Bio = *req.Bio
		}

		return tx.Save(&profile).Error
	})

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Authenticate checks the raw password against the stored hash and returns
// the user on success. Callers get the same error for an unknown email and
// a wrong password.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bcrypt.ErrMismatchedHashAndPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}

	return &user, nil
}

// exists reports whether the user row is present, inside the caller's
// transaction.
func (s *UserService) exists(tx *gorm.DB, id uint) (bool, error) {
	var count int64

	if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *UserService) mustExist(tx *gorm.DB, id uint) error {
	ok, err := s.exists(tx, id)

	if err != nil {
		return err
	}

	if !ok {
		return apperrors.NewNotFound("User", id)
	}

	return nil
}

func (s *UserService) checkFieldFree(tx *gorm.DB, column, value string, excludeID uint, conflict string) error {
	var existing models.User

	query := tx.Where(column+" = ?", value)

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	err := query.First(&existing).Error

	if err == nil {
		return apperrors.NewDuplicate(conflict)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return nil
}

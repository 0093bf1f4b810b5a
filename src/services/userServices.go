package services

import (
	"errors"
	"strings"
	"time"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/middleware"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is how long a login token stays valid.
const TokenTTL = 12 * time.Hour

// ErrCredenciaisInvalidas is returned for a wrong username or password.
// One error for both cases, so login responses never reveal which
// usernames exist.
var ErrCredenciaisInvalidas = errors.New("usuário ou senha inválidos")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetAllUsers() ([]models.UserModel, error) {
	var users []models.UserModel
	result := s.db.Order("username").Find(&users)
	return users, result.Error
}

// CreateUser stores a new account with the password bcrypt-hashed; the
// plaintext never reaches the database.
func (s *UserService) CreateUser(user *models.UserModel) (*models.UserModel, error) {
	if strings.TrimSpace(user.Username) == "" || user.Password == "" {
		return nil, NewValidationError("username", "Usuário e senha são obrigatórios")
	}

	var existing models.UserModel
	if err := s.db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return nil, NewValidationError("username", "Nome de usuário já está em uso")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id int) error {
	result := s.db.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "usuário", Id: id}
	}
	return nil
}

// AuthenticateUser checks the credentials and mints a signed token.
func (s *UserService) AuthenticateUser(username, password string) (string, error) {
	var user models.UserModel
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCredenciaisInvalidas
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrCredenciaisInvalidas
	}

	claims := jwt.MapClaims{
		"id":       user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.GetSecretKey()))
}

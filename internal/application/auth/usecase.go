package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
)

// UseCase registro, login y consulta de empleados.
type UseCase struct {
	userRepo      repository.UserRepository
	warehouseRepo repository.WarehouseRepository
	jwtSecret     string
	jwtIssuer     string
	jwtExpMinutes int
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	userRepo repository.UserRepository,
	warehouseRepo repository.WarehouseRepository,
	jwtSecret, jwtIssuer string,
	jwtExpMinutes int,
) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		warehouseRepo: warehouseRepo,
		jwtSecret:     jwtSecret,
		jwtIssuer:     jwtIssuer,
		jwtExpMinutes: jwtExpMinutes,
	}
}

// Register da de alta un empleado. Las contraseñas deben coincidir, login y
// email son únicos y la bodega base debe existir. El rol inicial es employee.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserInfoResponse, error) {
	if in.Password1 != in.Password2 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password1) < 8 || in.Login == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrReferenceNotFound
	}

	existing, err := uc.userRepo.GetByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	existing, err = uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:          uuid.New().String(),
		Firstname:   in.Firstname,
		Lastname:    in.Lastname,
		Login:       in.Login,
		Email:       in.Email,
		Phone:       in.Phone,
		Password:    string(hash),
		WarehouseID: in.WarehouseID,
		Role:        entity.RoleEmployee,
		LastUpdated: time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

// Login verifica credenciales y emite un token Bearer. Un login exitoso
// refresca last_updated del usuario.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if err := uc.userRepo.UpdateLastUpdated(user.ID, time.Now()); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.WarehouseID, user.Role, uc.jwtIssuer, uc.jwtExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Type: "Bearer"}, nil
}

// UserInfo consulta los datos visibles de un empleado.
func (uc *UseCase) UserInfo(ctx context.Context, userID string) (*dto.UserInfoResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserInfo(user), nil
}

// ListUsers consulta todos los empleados.
func (uc *UseCase) ListUsers(ctx context.Context) ([]dto.UserInfoResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserInfoResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserInfo(u))
	}
	return out, nil
}

func toUserInfo(u *entity.User) *dto.UserInfoResponse {
	return &dto.UserInfoResponse{
		ID:          u.ID,
		Login:       u.Login,
		Firstname:   u.Firstname,
		Lastname:    u.Lastname,
		Email:       u.Email,
		Phone:       u.Phone,
		WarehouseID: u.WarehouseID,
		Role:        u.Role,
		LastUpdated: u.LastUpdated,
	}
}

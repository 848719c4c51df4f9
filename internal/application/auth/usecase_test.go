package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/remitospro/remitos-api/internal/application/auth"
	"github.com/remitospro/remitos-api/internal/application/dto"
	"github.com/remitospro/remitos-api/internal/domain"
	"github.com/remitospro/remitos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.Email] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}
func (r *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	u := r.users[email]
	if u != nil && u.CompanyID == companyID {
		return u, nil
	}
	return nil, nil
}
func (r *fakeUserRepo) ListByCompany(string, int, int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.Email] = u
	return nil
}
func (r *fakeUserRepo) Delete(string) error { return nil }

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *fakeCompanyRepo) GetByName(string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) Update(*entity.Company) error              { return nil }
func (r *fakeCompanyRepo) List(int, int) ([]*entity.Company, error)  { return nil, nil }
func (r *fakeCompanyRepo) Delete(string) error                       { return nil }

const (
	testCompanyID = "company-01"
	testSecret    = "secret-de-test"
)

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	users := &fakeUserRepo{users: map[string]*entity.User{}}
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "Empresa Test"},
	}}
	uc := auth.NewAuthUseCase(users, companies, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "remitos-api-test",
	})
	return uc, users
}

func hashed(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CreaConHashYRolDefault(t *testing.T) {
	uc, users := buildAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Email:     "nuevo@test.com",
		Password:  "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperador, out.Role, "rol default operador")
	assert.True(t, out.IsActive)

	stored := users.users["nuevo@test.com"]
	require.NotNil(t, stored)
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("secreta123")))
}

func TestRegisterUser_EmailRepetidoEnEmpresa_ErrEmailAlreadyExists(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{CompanyID: testCompanyID, Email: "dup@test.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{CompanyID: testCompanyID, Email: "dup@test.com", Password: "otra12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_EmpresaInexistente_ErrNotFound(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{CompanyID: "company-fantasma", Email: "x@test.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_OK_DevuelveToken(t *testing.T) {
	uc, users := buildAuthUC()
	users.users["ana@test.com"] = &entity.User{
		ID: "user-ana", CompanyID: testCompanyID, Email: "ana@test.com",
		PasswordHash: hashed(t, "secreta123"), Role: entity.RoleAdmin, IsActive: true,
	}

	out, err := uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "user-ana", out.User.ID)
}

func TestLogin_PasswordIncorrecta_ErrUnauthorized(t *testing.T) {
	uc, users := buildAuthUC()
	users.users["ana@test.com"] = &entity.User{
		ID: "user-ana", CompanyID: testCompanyID, Email: "ana@test.com",
		PasswordHash: hashed(t, "secreta123"), IsActive: true,
	}

	_, err := uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un usuario clonado (sin hash, contraseña temporal) no puede entrar hasta
// completar el alta de contraseña.
func TestLogin_UsuarioClonado_ErrPasswordNotSet(t *testing.T) {
	uc, users := buildAuthUC()
	users.users["clonado@test.com"] = &entity.User{
		ID: "user-clon", CompanyID: testCompanyID, Email: "clonado@test.com",
		PasswordHash: nil, HasTemporaryPassword: true, IsActive: true,
	}

	_, err := uc.Login(dto.LoginRequest{Email: "clonado@test.com", Password: "loquesea1"})
	assert.ErrorIs(t, err, domain.ErrPasswordNotSet)
}

func TestLogin_UsuarioInactivo_ErrForbidden(t *testing.T) {
	uc, users := buildAuthUC()
	users.users["baja@test.com"] = &entity.User{
		ID: "user-baja", CompanyID: testCompanyID, Email: "baja@test.com",
		PasswordHash: hashed(t, "secreta123"), IsActive: false,
	}

	_, err := uc.Login(dto.LoginRequest{Email: "baja@test.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_UsuarioInexistente_ErrUserNotFound(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@test.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Flujo completo del usuario clonado: set-password y luego login normal.
func TestSetPassword_CompletaAltaYPermiteLogin(t *testing.T) {
	uc, users := buildAuthUC()
	users.users["clonado@test.com"] = &entity.User{
		ID: "user-clon", CompanyID: testCompanyID, Email: "clonado@test.com",
		PasswordHash: nil, HasTemporaryPassword: true, IsActive: true,
	}

	out, err := uc.SetPassword(dto.SetPasswordRequest{Email: "clonado@test.com", Password: "nueva1234"})
	require.NoError(t, err)
	assert.False(t, out.HasTemporaryPassword)

	login, err := uc.Login(dto.LoginRequest{Email: "clonado@test.com", Password: "nueva1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestSetPassword_UsuarioConPassword_ErrConflict(t *testing.T) {
	uc, users := buildAuthUC()
	users.users["ana@test.com"] = &entity.User{
		ID: "user-ana", CompanyID: testCompanyID, Email: "ana@test.com",
		PasswordHash: hashed(t, "secreta123"), IsActive: true,
	}

	_, err := uc.SetPassword(dto.SetPasswordRequest{Email: "ana@test.com", Password: "nueva1234"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSetPassword_UsuarioInexistente_ErrUserNotFound(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.SetPassword(dto.SetPasswordRequest{Email: "nadie@test.com", Password: "nueva1234"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

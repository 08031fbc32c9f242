package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/employee-directory-api/internal/application/dto"
	"github.com/jhoicas/employee-directory-api/internal/application/usecase"
	"github.com/jhoicas/employee-directory-api/internal/domain"
	"github.com/jhoicas/employee-directory-api/internal/domain/entity"
	"github.com/jhoicas/employee-directory-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func authed() context.Context {
	return entity.WithIdentity(context.Background(), entity.Identity{UserID: "u-1"})
}

func sampleInput(email string) dto.EmployeeInput {
	return dto.EmployeeInput{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         email,
		Gender:        "Female",
		Designation:   "Engineer",
		Salary:        decimal.RequireFromString("85000.50"),
		DateOfJoining: "2023-05-01",
		Department:    "R&D",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización: sin identidad nunca se toca el repositorio
// ──────────────────────────────────────────────────────────────────────────────

func TestOperacionesProtegidas_SinIdentidad_Unauthorized(t *testing.T) {
	repo := new(testutil.MockEmployeeRepository)
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := uc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	designation := "Engineer"
	_, err = uc.Search(ctx, dto.EmployeeSearchRequest{Designation: &designation})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Create(ctx, sampleInput("ada@x.com"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Update(ctx, id, sampleInput("ada@x.com"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Empty(t, repo.Calls, "ninguna operación debe llegar al repositorio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_LuegoGetByID_DevuelveMismosCampos(t *testing.T) {
	repo := testutil.NewMemoryEmployeeRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	photo := "https://cdn.example.com/ada.png"
	in := sampleInput("ada@x.com")
	in.EmployeePhoto = &photo

	created, err := uc.Create(authed(), in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := uc.GetByID(authed(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.FirstName, found.FirstName)
	assert.Equal(t, in.LastName, found.LastName)
	assert.Equal(t, in.Email, found.Email)
	assert.Equal(t, in.Gender, found.Gender)
	assert.Equal(t, in.Designation, found.Designation)
	assert.True(t, in.Salary.Equal(found.Salary))
	assert.Equal(t, in.DateOfJoining, found.DateOfJoining)
	assert.Equal(t, in.Department, found.Department)
	require.NotNil(t, found.EmployeePhoto)
	assert.Equal(t, photo, *found.EmployeePhoto)
}

func TestCreate_EmailDuplicado_Conflict(t *testing.T) {
	repo := testutil.NewMemoryEmployeeRepository()
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.Create(authed(), sampleInput("ada@x.com"))
	require.NoError(t, err)

	_, err = uc.Create(authed(), sampleInput("ada@x.com"))
	assert.ErrorIs(t, err, domain.ErrEmployeeEmailExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, repo.Count())
}

func TestCreate_GuardaCamposTalCual(t *testing.T) {
	repo := testutil.NewMemoryEmployeeRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	in := sampleInput("  Ada.Lovelace@Example.COM ")
	in.FirstName = " Ada"
	in.Designation = "  Engineer "

	created, err := uc.Create(authed(), in)
	require.NoError(t, err)

	found, err := uc.GetByID(authed(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "  Ada.Lovelace@Example.COM ", found.Email)
	assert.Equal(t, " Ada", found.FirstName)
	assert.Equal(t, "  Engineer ", found.Designation)

	// el email solo choca con una coincidencia exacta
	_, err = uc.Create(authed(), sampleInput("ada.lovelace@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Count())
}

func TestCreate_Validaciones(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.EmployeeInput)
		field  string
	}{
		{"first_name vacío", func(in *dto.EmployeeInput) { in.FirstName = " " }, "first_name"},
		{"department vacío", func(in *dto.EmployeeInput) { in.Department = "" }, "department"},
		{"email inválido", func(in *dto.EmployeeInput) { in.Email = "no-es-email" }, "email"},
		{"salario negativo", func(in *dto.EmployeeInput) { in.Salary = decimal.NewFromInt(-1) }, "salary"},
		{"fecha inválida", func(in *dto.EmployeeInput) { in.DateOfJoining = "01/05/2023" }, "date_of_joining"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(testutil.MockEmployeeRepository)
			in := sampleInput("ada@x.com")
			tt.mutate(&in)

			_, err := usecase.NewEmployeeUseCase(repo).Create(authed(), in)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGetByID_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(testutil.NewMemoryEmployeeRepository())

	_, err := uc.GetByID(authed(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	_, err = uc.GetByID(authed(), "no-es-un-uuid")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound, "un id mal formado se trata como inexistente")

	_, err = uc.GetByID(authed(), "urn:uuid:"+uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestIDs_FormasAlternativas_SeCanonicalizan(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(testutil.NewMemoryEmployeeRepository())
	created, err := uc.Create(authed(), sampleInput("ada@x.com"))
	require.NoError(t, err)

	for _, id := range []string{
		strings.ToUpper(created.ID),
		"urn:uuid:" + created.ID,
		"{" + created.ID + "}",
	} {
		found, err := uc.GetByID(authed(), id)
		require.NoError(t, err, id)
		assert.Equal(t, created.ID, found.ID)
	}

	updated, err := uc.Update(authed(), "urn:uuid:"+strings.ToUpper(created.ID), sampleInput("ada@x.com"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	_, err = uc.Delete(authed(), strings.ToUpper(created.ID))
	require.NoError(t, err)
	_, err = uc.GetByID(authed(), created.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestGetByID_PasaIDCanonicoAlRepositorio(t *testing.T) {
	repo := new(testutil.MockEmployeeRepository)
	id := uuid.NewString()
	repo.On("GetByID", mock.Anything, id).Return(nil, nil)

	_, err := usecase.NewEmployeeUseCase(repo).GetByID(authed(), "urn:uuid:"+strings.ToUpper(id))

	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	repo.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: sobrescritura completa
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SobrescribeTodosLosCampos(t *testing.T) {
	repo := testutil.NewMemoryEmployeeRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	photo := "https://cdn.example.com/ada.png"
	before := sampleInput("ada@x.com")
	before.EmployeePhoto = &photo
	created, err := uc.Create(authed(), before)
	require.NoError(t, err)

	next := dto.EmployeeInput{
		FirstName:     "Grace",
		LastName:      "Hopper",
		Email:         "grace@x.com",
		Gender:        "Other",
		Designation:   "Admiral",
		Salary:        decimal.NewFromInt(120000),
		DateOfJoining: "2024-01-15",
		Department:    "Navy",
	}
	updated, err := uc.Update(authed(), created.ID, next)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "created_at se conserva")
	assert.Nil(t, updated.EmployeePhoto, "un campo omitido se elimina")

	found, err := uc.GetByID(authed(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", found.FirstName)
	assert.Equal(t, "Hopper", found.LastName)
	assert.Equal(t, "grace@x.com", found.Email)
	assert.Equal(t, "Other", found.Gender)
	assert.Equal(t, "Admiral", found.Designation)
	assert.True(t, decimal.NewFromInt(120000).Equal(found.Salary))
	assert.Equal(t, "2024-01-15", found.DateOfJoining)
	assert.Equal(t, "Navy", found.Department)
	assert.Nil(t, found.EmployeePhoto)
}

func TestUpdate_Inexistente_NotFound_SinCambios(t *testing.T) {
	repo := testutil.NewMemoryEmployeeRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	created, err := uc.Create(authed(), sampleInput("ada@x.com"))
	require.NoError(t, err)

	_, err = uc.Update(authed(), uuid.NewString(), sampleInput("otro@x.com"))
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	found, err := uc.GetByID(authed(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", found.Email)
	assert.Equal(t, 1, repo.Count())
}

func TestUpdate_EmailDeOtroEmpleado_Conflict(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(testutil.NewMemoryEmployeeRepository())
	_, err := uc.Create(authed(), sampleInput("ada@x.com"))
	require.NoError(t, err)
	other, err := uc.Create(authed(), sampleInput("grace@x.com"))
	require.NoError(t, err)

	_, err = uc.Update(authed(), other.ID, sampleInput("ada@x.com"))
	assert.ErrorIs(t, err, domain.ErrEmployeeEmailExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_LuegoGetByID_NotFound(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(testutil.NewMemoryEmployeeRepository())
	created, err := uc.Create(authed(), sampleInput("ada@x.com"))
	require.NoError(t, err)

	msg, err := uc.Delete(authed(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.MsgEmployeeDeleted, msg)

	_, err = uc.GetByID(authed(), created.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	_, err = uc.Delete(authed(), created.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search (OR)
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_UnionDeDesignationYDepartment(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(testutil.NewMemoryEmployeeRepository())
	mk := func(email, designation, department string) {
		in := sampleInput(email)
		in.Designation = designation
		in.Department = department
		_, err := uc.Create(authed(), in)
		require.NoError(t, err)
	}
	mk("a@x.com", "Engineer", "R&D")
	mk("b@x.com", "Manager", "Sales")
	mk("c@x.com", "Analyst", "Finance")

	designation, department := "Engineer", "Sales"
	list, err := uc.Search(authed(), dto.EmployeeSearchRequest{Designation: &designation, Department: &department})
	require.NoError(t, err)

	emails := make([]string, 0, len(list))
	for _, e := range list {
		emails = append(emails, e.Email)
	}
	assert.ElementsMatch(t, []string{"a@x.com", "b@x.com"}, emails)
}

func TestSearch_SinFiltros_ListaVacia(t *testing.T) {
	repo := new(testutil.MockEmployeeRepository)
	blank := "  "

	list, err := usecase.NewEmployeeUseCase(repo).Search(authed(), dto.EmployeeSearchRequest{Department: &blank})

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseDate
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDate_AceptaFechaYRFC3339(t *testing.T) {
	d, err := usecase.ParseDate("2023-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = usecase.ParseDate("2023-05-01T22:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), d)
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/employee-directory-api/internal/application/dto"
	"github.com/jhoicas/employee-directory-api/internal/domain"
	"github.com/jhoicas/employee-directory-api/internal/domain/entity"
	"github.com/jhoicas/employee-directory-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD del directorio. Todas las operaciones exigen
// una identidad en el contexto antes de tocar el repositorio.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	now  func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }}
}

func requireIdentity(ctx context.Context) error {
	if _, ok := entity.IdentityFrom(ctx); !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// List devuelve todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	if err := requireIdentity(ctx); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(list), nil
}

// GetByID obtiene un empleado por ID. IDs con formato inválido se tratan como inexistentes.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	if err := requireIdentity(ctx); err != nil {
		return nil, err
	}
	id, ok := canonicalID(id)
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Search devuelve los empleados cuyo designation O department coincide.
// Sin ningún filtro el resultado es una lista vacía.
func (uc *EmployeeUseCase) Search(ctx context.Context, in dto.EmployeeSearchRequest) ([]dto.EmployeeResponse, error) {
	if err := requireIdentity(ctx); err != nil {
		return nil, err
	}
	filter := entity.EmployeeFilter{
		Designation: searchTerm(in.Designation),
		Department:  searchTerm(in.Department),
	}
	if filter.IsEmpty() {
		return []dto.EmployeeResponse{}, nil
	}
	list, err := uc.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(list), nil
}

// Create valida y crea un empleado. Los campos se guardan tal cual llegan;
// el email duplicado (comparación exacta) lo detecta el almacén.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeInput) (*dto.EmployeeResponse, error) {
	if err := requireIdentity(ctx); err != nil {
		return nil, err
	}
	employee, err := buildEmployee(in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	employee.ID = uuid.New().String()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Update sobrescribe todos los campos del empleado (no es un patch parcial).
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeInput) (*dto.EmployeeResponse, error) {
	if err := requireIdentity(ctx); err != nil {
		return nil, err
	}
	id, ok := canonicalID(id)
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	employee, err := buildEmployee(in)
	if err != nil {
		return nil, err
	}
	employee.ID = id
	employee.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina un empleado por ID.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) (string, error) {
	if err := requireIdentity(ctx); err != nil {
		return "", err
	}
	id, ok := canonicalID(id)
	if !ok {
		return "", domain.ErrEmployeeNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return dto.MsgEmployeeDeleted, nil
}

// canonicalID normaliza cualquier forma aceptada por uuid.Parse (urn:uuid:, {...},
// mayúsculas) a la forma canónica en minúsculas con la que se almacenan los IDs.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// searchTerm devuelve el criterio tal cual; nil o solo espacios no participa.
func searchTerm(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return ""
	}
	return *s
}

func buildEmployee(in dto.EmployeeInput) (*entity.Employee, error) {
	required := []struct {
		field string
		value string
	}{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"email", in.Email},
		{"gender", in.Gender},
		{"designation", in.Designation},
		{"department", in.Department},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.Invalid(r.field, "is required")
		}
	}
	if !strings.Contains(in.Email, "@") {
		return nil, domain.Invalid("email", "invalid format")
	}
	if in.Salary.IsNegative() {
		return nil, domain.Invalid("salary", "must not be negative")
	}
	doj, err := ParseDate(in.DateOfJoining)
	if err != nil {
		return nil, err
	}
	var photo *string
	if in.EmployeePhoto != nil {
		p := *in.EmployeePhoto
		photo = &p
	}
	return &entity.Employee{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Gender:        in.Gender,
		Designation:   in.Designation,
		Salary:        in.Salary,
		DateOfJoining: doj,
		Department:    in.Department,
		EmployeePhoto: photo,
	}, nil
}

// ParseDate acepta YYYY-MM-DD o RFC 3339 y devuelve la fecha a medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.Invalid("date_of_joining", "is required")
	}
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, domain.Invalid("date_of_joining", "expected YYYY-MM-DD")
		}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func toEmployeeResponses(list []*entity.Employee) []dto.EmployeeResponse {
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Gender:        e.Gender,
		Designation:   e.Designation,
		Salary:        e.Salary,
		DateOfJoining: e.DateOfJoining.Format(entity.DateLayout),
		Department:    e.Department,
		EmployeePhoto: e.EmployeePhoto,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

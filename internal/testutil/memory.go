package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/employee-directory-api/internal/domain"
	"github.com/jhoicas/employee-directory-api/internal/domain/entity"
	"github.com/jhoicas/employee-directory-api/internal/domain/repository"
)

// ==================== IN-MEMORY STORE ====================
// Repositorios en memoria con las mismas garantías de unicidad que los índices reales,
// para pruebas de extremo a extremo sin base de datos.

var (
	_ repository.UserRepository     = (*MemoryUserRepository)(nil)
	_ repository.EmployeeRepository = (*MemoryEmployeeRepository)(nil)
)

// MemoryUserRepository usuarios en memoria (username y email únicos).
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]entity.User
}

// NewMemoryUserRepository construye el repositorio vacío.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[string]entity.User{}}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// Count número de usuarios almacenados.
func (r *MemoryUserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// MemoryEmployeeRepository empleados en memoria (email único).
type MemoryEmployeeRepository struct {
	mu        sync.Mutex
	employees map[string]entity.Employee
}

// NewMemoryEmployeeRepository construye el repositorio vacío.
func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{employees: map[string]entity.Employee{}}
}

func (r *MemoryEmployeeRepository) emailTaken(email, exceptID string) bool {
	for id, e := range r.employees {
		if id != exceptID && e.Email == email {
			return true
		}
	}
	return false
}

func (r *MemoryEmployeeRepository) Create(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(e.Email, "") {
		return domain.ErrEmployeeEmailExists
	}
	r.employees[e.ID] = *e
	return nil
}

func (r *MemoryEmployeeRepository) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *MemoryEmployeeRepository) List(_ context.Context) ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(entity.Employee) bool { return true }), nil
}

func (r *MemoryEmployeeRepository) Search(_ context.Context, f entity.EmployeeFilter) ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(e entity.Employee) bool {
		return (f.Designation != "" && e.Designation == f.Designation) ||
			(f.Department != "" && e.Department == f.Department)
	}), nil
}

func (r *MemoryEmployeeRepository) Update(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.employees[e.ID]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	if r.emailTaken(e.Email, e.ID) {
		return domain.ErrEmployeeEmailExists
	}
	e.CreatedAt = current.CreatedAt
	r.employees[e.ID] = *e
	return nil
}

func (r *MemoryEmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

// Count número de empleados almacenados.
func (r *MemoryEmployeeRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.employees)
}

func (r *MemoryEmployeeRepository) sorted(keep func(entity.Employee) bool) []*entity.Employee {
	list := make([]*entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if keep(e) {
			found := e
			list = append(list, &found)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

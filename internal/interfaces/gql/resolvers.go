package gql

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/jhoicas/employee-directory-api/internal/application/dto"
	"github.com/shopspring/decimal"
)

type resolver struct {
	deps Deps
}

func (r *resolver) fail(err error, op string) (interface{}, error) {
	return nil, toAPIError(err, r.deps.Log, op)
}

// ── públicas ─────────────────────────────────────────────────────────────────

func (r *resolver) signup(p graphql.ResolveParams) (interface{}, error) {
	msg, err := r.deps.Auth.Signup(p.Context, dto.SignupRequest{
		Username: stringArg(p, "username"),
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	})
	if err != nil {
		return r.fail(err, "signup")
	}
	return msg, nil
}

func (r *resolver) login(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.Auth.Login(p.Context, dto.LoginRequest{
		Username: stringArg(p, "username"),
		Password: stringArg(p, "password"),
	})
	if err != nil {
		return r.fail(err, "login")
	}
	return out.Token, nil
}

// ── protegidas (el use case exige identidad en p.Context) ────────────────────

func (r *resolver) getAllEmployees(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.deps.Employees.List(p.Context)
	if err != nil {
		return r.fail(err, "getAllEmployees")
	}
	return employeeList(list), nil
}

func (r *resolver) searchEmployeeByID(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.Employees.GetByID(p.Context, stringArg(p, "eid"))
	if err != nil {
		return r.fail(err, "searchEmployeeById")
	}
	return employeeObject(out), nil
}

func (r *resolver) searchEmployeeByDesignationOrDepartment(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.deps.Employees.Search(p.Context, dto.EmployeeSearchRequest{
		Designation: optionalStringArg(p, "designation"),
		Department:  optionalStringArg(p, "department"),
	})
	if err != nil {
		return r.fail(err, "searchEmployeeByDesignationOrDepartment")
	}
	return employeeList(list), nil
}

func (r *resolver) addEmployee(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.Employees.Create(p.Context, employeeInput(p))
	if err != nil {
		return r.fail(err, "addEmployee")
	}
	return employeeObject(out), nil
}

func (r *resolver) updateEmployee(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.Employees.Update(p.Context, stringArg(p, "eid"), employeeInput(p))
	if err != nil {
		return r.fail(err, "updateEmployee")
	}
	return employeeObject(out), nil
}

func (r *resolver) deleteEmployee(p graphql.ResolveParams) (interface{}, error) {
	msg, err := r.deps.Employees.Delete(p.Context, stringArg(p, "eid"))
	if err != nil {
		return r.fail(err, "deleteEmployee")
	}
	return msg, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func optionalStringArg(p graphql.ResolveParams, name string) *string {
	s, ok := p.Args[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func employeeInput(p graphql.ResolveParams) dto.EmployeeInput {
	var salary decimal.Decimal
	switch v := p.Args["salary"].(type) {
	case float64:
		salary = decimal.NewFromFloat(v)
	case int:
		salary = decimal.NewFromInt(int64(v))
	}
	return dto.EmployeeInput{
		FirstName:     stringArg(p, "first_name"),
		LastName:      stringArg(p, "last_name"),
		Email:         stringArg(p, "email"),
		Gender:        stringArg(p, "gender"),
		Designation:   stringArg(p, "designation"),
		Salary:        salary,
		DateOfJoining: stringArg(p, "date_of_joining"),
		Department:    stringArg(p, "department"),
		EmployeePhoto: optionalStringArg(p, "employee_photo"),
	}
}

// employeeObject proyecta el DTO a los nombres de campo del esquema.
func employeeObject(e *dto.EmployeeResponse) map[string]interface{} {
	if e == nil {
		return nil
	}
	obj := map[string]interface{}{
		"_id":             e.ID,
		"first_name":      e.FirstName,
		"last_name":       e.LastName,
		"email":           e.Email,
		"gender":          e.Gender,
		"designation":     e.Designation,
		"salary":          e.Salary.InexactFloat64(),
		"date_of_joining": e.DateOfJoining,
		"department":      e.Department,
		"employee_photo":  nil,
		"created_at":      e.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":      e.UpdatedAt.Format(time.RFC3339Nano),
	}
	if e.EmployeePhoto != nil {
		obj["employee_photo"] = *e.EmployeePhoto
	}
	return obj
}

func employeeList(list []dto.EmployeeResponse) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(list))
	for i := range list {
		out = append(out, employeeObject(&list[i]))
	}
	return out
}

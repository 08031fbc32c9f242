package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/jhoicas/employee-directory-api/internal/application/auth"
	"github.com/jhoicas/employee-directory-api/internal/application/usecase"
	"github.com/jhoicas/employee-directory-api/pkg/logger"
)

// Deps dependencias de los resolvers.
type Deps struct {
	Auth      *auth.AuthUseCase
	Employees *usecase.EmployeeUseCase
	Log       *logger.Logger
}

var employeeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Employee",
	Fields: graphql.Fields{
		"_id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"first_name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"last_name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"gender":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"designation":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"salary":          &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"date_of_joining": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"department":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"employee_photo":  &graphql.Field{Type: graphql.String},
		"created_at":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"updated_at":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

func nonNullString() *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}
}

// employeeArgs argumentos comunes de addEmployee y updateEmployee.
func employeeArgs(withID bool) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{
		"first_name":      nonNullString(),
		"last_name":       nonNullString(),
		"email":           nonNullString(),
		"gender":          nonNullString(),
		"designation":     nonNullString(),
		"salary":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
		"date_of_joining": nonNullString(),
		"department":      nonNullString(),
		"employee_photo":  &graphql.ArgumentConfig{Type: graphql.String},
	}
	if withID {
		args["eid"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	}
	return args
}

// NewSchema construye el esquema GraphQL con las operaciones públicas
// (signup, login) y las protegidas sobre empleados.
func NewSchema(deps Deps) (graphql.Schema, error) {
	r := &resolver{deps: deps}
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"username": nonNullString(),
					"password": nonNullString(),
				},
				Resolve: r.login,
			},
			"getAllEmployees": &graphql.Field{
				Type:    graphql.NewList(employeeType),
				Resolve: r.getAllEmployees,
			},
			"searchEmployeeById": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.searchEmployeeByID,
			},
			"searchEmployeeByDesignationOrDepartment": &graphql.Field{
				Type: graphql.NewList(employeeType),
				Args: graphql.FieldConfigArgument{
					"designation": &graphql.ArgumentConfig{Type: graphql.String},
					"department":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.searchEmployeeByDesignationOrDepartment,
			},
		},
	})
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"username": nonNullString(),
					"email":    nonNullString(),
					"password": nonNullString(),
				},
				Resolve: r.signup,
			},
			"addEmployee": &graphql.Field{
				Type:    employeeType,
				Args:    employeeArgs(false),
				Resolve: r.addEmployee,
			},
			"updateEmployee": &graphql.Field{
				Type:    employeeType,
				Args:    employeeArgs(true),
				Resolve: r.updateEmployee,
			},
			"deleteEmployee": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteEmployee,
			},
		},
	})
	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

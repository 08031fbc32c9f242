package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/employee-directory-api/internal/domain"
	"github.com/jhoicas/employee-directory-api/internal/domain/entity"
	"github.com/jhoicas/employee-directory-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

type employeeDocument struct {
	ID            string               `bson:"_id"`
	FirstName     string               `bson:"first_name"`
	LastName      string               `bson:"last_name"`
	Email         string               `bson:"email"`
	Gender        string               `bson:"gender"`
	Designation   string               `bson:"designation"`
	Salary        primitive.Decimal128 `bson:"salary"`
	DateOfJoining time.Time            `bson:"date_of_joining"`
	Department    string               `bson:"department"`
	EmployeePhoto *string              `bson:"employee_photo,omitempty"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

// EmployeeRepo implementación del puerto EmployeeRepository sobre MongoDB.
type EmployeeRepo struct {
	coll *mongo.Collection
}

// NewEmployeeRepository construye el adaptador sobre la colección employees de db.
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{coll: db.Collection(EmployeesCollection)}
}

var byCreation = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

// Create inserta el empleado; el índice employees_email_key detecta el email duplicado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	doc, err := toDocument(e)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmployeeEmailExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	var doc employeeDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return fromDocument(doc)
}

// List lista todos los empleados por fecha de creación.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	return r.find(ctx, bson.M{})
}

// Search filtra por designation OR department; un criterio vacío no participa.
func (r *EmployeeRepo) Search(ctx context.Context, f entity.EmployeeFilter) ([]*entity.Employee, error) {
	filter := searchFilter(f)
	if filter == nil {
		return []*entity.Employee{}, nil
	}
	return r.find(ctx, filter)
}

// Update sobrescribe todos los campos; un EmployeePhoto nil elimina el campo.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	salary, err := primitive.ParseDecimal128(e.Salary.String())
	if err != nil {
		return fmt.Errorf("salary a decimal128: %w", err)
	}
	set := bson.M{
		"first_name":      e.FirstName,
		"last_name":       e.LastName,
		"email":           e.Email,
		"gender":          e.Gender,
		"designation":     e.Designation,
		"salary":          salary,
		"date_of_joining": e.DateOfJoining,
		"department":      e.Department,
		"updated_at":      e.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if e.EmployeePhoto != nil {
		set["employee_photo"] = *e.EmployeePhoto
	} else {
		update["$unset"] = bson.M{"employee_photo": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employeeDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": e.ID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrEmployeeNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmployeeEmailExists
		}
		return fmt.Errorf("update employee: %w", err)
	}
	e.CreatedAt = doc.CreatedAt.UTC()
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepo) find(ctx context.Context, filter any) ([]*entity.Employee, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(byCreation))
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	var docs []employeeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	list := make([]*entity.Employee, 0, len(docs))
	for _, d := range docs {
		e, err := fromDocument(d)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

// searchFilter construye el $or; devuelve nil si no hay criterios.
func searchFilter(f entity.EmployeeFilter) bson.M {
	var or bson.A
	if f.Designation != "" {
		or = append(or, bson.M{"designation": f.Designation})
	}
	if f.Department != "" {
		or = append(or, bson.M{"department": f.Department})
	}
	if len(or) == 0 {
		return nil
	}
	return bson.M{"$or": or}
}

func toDocument(e *entity.Employee) (employeeDocument, error) {
	salary, err := primitive.ParseDecimal128(e.Salary.String())
	if err != nil {
		return employeeDocument{}, fmt.Errorf("salary a decimal128: %w", err)
	}
	return employeeDocument{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Gender:        e.Gender,
		Designation:   e.Designation,
		Salary:        salary,
		DateOfJoining: e.DateOfJoining,
		Department:    e.Department,
		EmployeePhoto: e.EmployeePhoto,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}, nil
}

func fromDocument(d employeeDocument) (*entity.Employee, error) {
	salary, err := decimal.NewFromString(d.Salary.String())
	if err != nil {
		return nil, fmt.Errorf("salary %q: %w", d.Salary.String(), err)
	}
	return &entity.Employee{
		ID:            d.ID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Email:         d.Email,
		Gender:        d.Gender,
		Designation:   d.Designation,
		Salary:        salary,
		DateOfJoining: d.DateOfJoining.UTC(),
		Department:    d.Department,
		EmployeePhoto: d.EmployeePhoto,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}, nil
}

package core

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbcore "syncronic.com/empmonitor/core"
	"syncronic.com/empmonitor/monitor/model"
)

var ErrMissingEmployeeID = errors.New("employee id is required")

// UpsertEmployee inserts emp unless a row with the same employee_id exists.
// An existing row is left untouched. The returned bool reports whether a row was created.
func UpsertEmployee(db *gorm.DB, emp *model.Employee) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}},
		DoNothing: true,
	}).Create(emp)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func FindEmployee(db *gorm.DB, employeeID string) (*model.Employee, error) {
	var emp model.Employee
	result := db.Where("employee_id = ?", employeeID).Take(&emp)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}

type RegistrationService struct {
	dm *dbcore.DatabaseManager
}

func NewRegistrationService(dm *dbcore.DatabaseManager) *RegistrationService {
	return &RegistrationService{dm: dm}
}

// Register creates the employee on first sight. Later calls with the same id
// report created=false and keep the stored name and email.
func (s *RegistrationService) Register(ctx context.Context, employeeID string, name, email *string) (bool, error) {
	if employeeID == "" {
		return false, ErrMissingEmployeeID
	}

	var created bool
	err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		created, err = UpsertEmployee(db, &model.Employee{
			EmployeeID: employeeID,
			Name:       name,
			Email:      email,
		})
		return err
	})
	if err != nil {
		return false, fmt.Errorf("register employee %s: %w", employeeID, err)
	}
	return created, nil
}

func (s *RegistrationService) Find(ctx context.Context, employeeID string) (*model.Employee, error) {
	var emp *model.Employee
	err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		emp, err = FindEmployee(db, employeeID)
		return err
	})
	return emp, err
}

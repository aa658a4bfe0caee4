package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/recurrence"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the domain rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("product_type", validateProductType)
	_ = v.RegisterValidation("statement_type", validateStatementType)
	_ = v.RegisterValidation("publish_type", validatePublishType)
	_ = v.RegisterValidation("recurrence", validateRecurrence)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateProductType(fl validator.FieldLevel) bool {
	return models.IsValidProductType(fl.Field().String())
}

// Only CAMT.053 documents are produced.
func validateStatementType(fl validator.FieldLevel) bool {
	return fl.Field().String() == models.StatementTypeCAMT053
}

func validatePublishType(fl validator.FieldLevel) bool {
	return models.IsValidPublishType(fl.Field().String())
}

func validateRecurrence(fl validator.FieldLevel) bool {
	return recurrence.Validate(fl.Field().String()) == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

// RegisterCustomValidators wires the domain enums into gin's binding
// validator so handlers can use the `accounttype` and `taxmode` tags.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return domain.AccountType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("taxmode", func(fl validator.FieldLevel) bool {
		return domain.TaxMode(fl.Field().String()).Valid()
	})
}

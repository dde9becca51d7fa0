package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ccjb/compliance-backend/internal/domain/valueobjects"
)

// RegisterCustomValidators registra a validação de CNPJ no validator do
// Gin. Deve ser chamado uma vez no bootstrap. A tag é usada apenas onde
// um CNPJ sintaticamente válido é exigido (consulta ao registro
// público); o cadastro de empresas aceita o CNPJ como digitado.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("cnpj", validateCNPJ)
}

func validateCNPJ(fl validator.FieldLevel) bool {
	_, err := valueobjects.NewCNPJ(fl.Field().String())
	return err == nil
}

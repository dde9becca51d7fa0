package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccjb/compliance-backend/internal/domain/errors"
	"github.com/ccjb/compliance-backend/internal/handlers/dto"
)

// respondError traduz erros de domínio para respostas RFC 7807.
// A ordem importa: erros tipados antes dos sentinelas.
func respondError(c *gin.Context, err error) {
	var validationErr *errors.ValidationError
	if errs.As(err, &validationErr) {
		var fieldErrors []dto.ValidationError
		if validationErr.Field != "" || validationErr.Message != "" {
			fieldErrors = []dto.ValidationError{{
				Field:   validationErr.Field,
				Message: validationErr.Message,
			}}
		}
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, fieldErrors))
		return
	}

	if resource, ok := notFoundResource(err); ok {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, resource))
		return
	}

	switch {
	case errs.Is(err, errors.ErrNotAuthenticated), errs.Is(err, errors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
	case errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))
	default:
		var remoteErr *errors.RemoteStoreError
		if errs.As(err, &remoteErr) {
			c.JSON(http.StatusBadGateway, dto.RemoteStoreErrorResponseI18n(c))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}

func notFoundResource(err error) (string, bool) {
	switch {
	case errs.Is(err, errors.ErrCompanyNotFound):
		return "Company", true
	case errs.Is(err, errors.ErrRepresentanteNotFound):
		return "Representante Legal", true
	case errs.Is(err, errors.ErrFlowNotFound):
		return "Flow", true
	case errs.Is(err, errors.ErrNoteNotFound):
		return "Note", true
	case errs.Is(err, errors.ErrParecerNotFound):
		return "Parecer Final", true
	case errs.Is(err, errors.ErrTaskNotFound):
		return "Task", true
	case errs.Is(err, errors.ErrNotificationNotFound):
		return "Notification", true
	case errs.Is(err, errors.ErrUserNotFound):
		return "User", true
	}
	return "", false
}

// bindingErrorResponse converte erro de binding do Gin em resposta 400
func bindingErrorResponse(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
}

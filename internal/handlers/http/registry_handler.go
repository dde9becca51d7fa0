package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccjb/compliance-backend/internal/handlers/dto"
	"github.com/ccjb/compliance-backend/internal/handlers/middleware"
	"github.com/ccjb/compliance-backend/internal/services"
)

// RegistryHandler lida com a consulta pública de CNPJ
type RegistryHandler struct {
	registryService *services.RegistryService
}

// NewRegistryHandler cria um novo RegistryHandler
func NewRegistryHandler(registryService *services.RegistryService) *RegistryHandler {
	return &RegistryHandler{
		registryService: registryService,
	}
}

// LookupCNPJ consulta os dados cadastrais de um CNPJ no registro público
func (h *RegistryHandler) LookupCNPJ(c *gin.Context) {
	var uri dto.RegistryLookupURI
	if err := c.ShouldBindUri(&uri); err != nil {
		bindingErrorResponse(c)
		return
	}

	record, err := h.registryService.Lookup(c.Request.Context(), middleware.ActorID(c), uri.CNPJ)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistryLookupResponse(record))
}

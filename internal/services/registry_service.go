package services

import (
	"context"

	"github.com/ccjb/compliance-backend/internal/domain/errors"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/domain/valueobjects"
	"github.com/ccjb/compliance-backend/internal/infrastructure/registry"
)

// RegistryService consulta o cadastro público de empresas para
// pré-preencher o formulário de cadastro. A consulta é conveniência:
// falha aqui não impede o cadastro manual.
type RegistryService struct {
	client *registry.Client
	logger ports.Logger
}

// NewRegistryService cria um novo RegistryService
func NewRegistryService(client *registry.Client, logger ports.Logger) *RegistryService {
	return &RegistryService{
		client: client,
		logger: logger,
	}
}

// Lookup valida o CNPJ e consulta o cadastro público
func (s *RegistryService) Lookup(ctx context.Context, actorID, rawCNPJ string) (*registry.CompanyRecord, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	cnpj, err := valueobjects.NewCNPJ(rawCNPJ)
	if err != nil {
		return nil, errors.NewValidationError("cnpj", "malformed cnpj")
	}

	record, err := s.client.Lookup(ctx, cnpj.String())
	if err != nil {
		s.logger.Warn("registry lookup failed", "cnpj", cnpj.String(), "error", err)
		return nil, errors.NewRemoteStoreError("registry.lookup", err)
	}
	return record, nil
}

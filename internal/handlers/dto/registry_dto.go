package dto

import (
	"github.com/ccjb/compliance-backend/internal/infrastructure/registry"
)

// RegistryLookupURI representa o CNPJ consultado no path. Diferente do
// cadastro de empresas, aqui o dígito verificador é validado: a API
// externa só responde para um CNPJ sintaticamente válido.
type RegistryLookupURI struct {
	CNPJ string `uri:"cnpj" binding:"required,cnpj"`
}

// RegistryLookupResponse representa os dados cadastrais retornados pela
// consulta pública de CNPJ, usados para pré-preencher o formulário
type RegistryLookupResponse struct {
	RazaoSocial string `json:"razao_social"`
	Abertura    string `json:"abertura,omitempty"`
	CNAE        string `json:"cnae,omitempty"`
	Endereco    string `json:"endereco,omitempty"`
	Cidade      string `json:"cidade,omitempty"`
	Estado      string `json:"estado,omitempty"`
	Telefone    string `json:"telefone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// ToRegistryLookupResponse converte o registro da consulta pública
func ToRegistryLookupResponse(record *registry.CompanyRecord) RegistryLookupResponse {
	return RegistryLookupResponse{
		RazaoSocial: record.RazaoSocial,
		Abertura:    record.Abertura,
		CNAE:        record.CNAE,
		Endereco:    record.Endereco,
		Cidade:      record.Cidade,
		Estado:      record.Estado,
		Telefone:    record.Telefone,
		Email:       record.Email,
	}
}

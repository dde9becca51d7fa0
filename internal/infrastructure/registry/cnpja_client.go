package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/infrastructure/config"
)

// CompanyRecord é o retorno da consulta pública de CNPJ, usado apenas
// para pré-preencher o formulário de cadastro de empresas
type CompanyRecord struct {
	RazaoSocial string
	Abertura    string
	CNAE        string
	Endereco    string
	Cidade      string
	Estado      string
	Telefone    string
	Email       string
}

// Client consulta o cadastro público de empresas (open.cnpja.com).
// A consulta é opcional: falha aqui nunca bloqueia o cadastro manual.
type Client struct {
	baseURL string
	http    *http.Client
	logger  ports.Logger
}

// NewClient cria um novo cliente da consulta de CNPJ
func NewClient(cfg *config.RegistryConfig, logger ports.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// officePayload espelha os campos relevantes da resposta da API
type officePayload struct {
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	Founded string `json:"founded"`
	Address struct {
		Street  string `json:"street"`
		Number  string `json:"number"`
		City    string `json:"city"`
		State   string `json:"state"`
		ZipCode string `json:"zip"`
	} `json:"address"`
	MainActivity struct {
		ID int `json:"id"`
	} `json:"mainActivity"`
	Phones []struct {
		Area   string `json:"area"`
		Number string `json:"number"`
	} `json:"phones"`
	Emails []struct {
		Address string `json:"address"`
	} `json:"emails"`
}

// Lookup consulta um CNPJ (somente dígitos) no cadastro público
func (c *Client) Lookup(ctx context.Context, cnpj string) (*CompanyRecord, error) {
	url := fmt.Sprintf("%s/office/%s", c.baseURL, cnpj)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry lookup returned status %d", resp.StatusCode)
	}

	var payload officePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode registry response: %w", err)
	}

	record := &CompanyRecord{
		RazaoSocial: payload.Company.Name,
		Abertura:    payload.Founded,
		Cidade:      payload.Address.City,
		Estado:      payload.Address.State,
	}

	if payload.MainActivity.ID > 0 {
		record.CNAE = fmt.Sprintf("%d", payload.MainActivity.ID)
	}
	if payload.Address.Street != "" {
		record.Endereco = strings.TrimSpace(payload.Address.Street + ", " + payload.Address.Number)
	}
	if len(payload.Phones) > 0 {
		record.Telefone = payload.Phones[0].Area + payload.Phones[0].Number
	}
	if len(payload.Emails) > 0 {
		record.Email = payload.Emails[0].Address
	}

	c.logger.Debug("registry lookup succeeded", "cnpj", cnpj)
	return record, nil
}

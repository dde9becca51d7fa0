package entities

import "testing"

func TestCompany_ApplyDefaults(t *testing.T) {
	t.Run("preenche os defaults de análise", func(t *testing.T) {
		company := &Company{CNPJ: "11222333000181", NomeEmpresa: "Acme", DueDate: "2026-12-31"}
		company.ApplyDefaults()

		if company.Status != CompanyStatusTodo {
			t.Errorf("esperava status 'todo', obteve '%s'", company.Status)
		}
		if company.Priority != PriorityMedium {
			t.Errorf("esperava priority 'medium', obteve '%s'", company.Priority)
		}
		if company.Risco != RiscoBaixo {
			t.Errorf("esperava risco 'Baixo', obteve '%s'", company.Risco)
		}
		if company.Archived {
			t.Error("empresa recém-criada não deveria estar arquivada")
		}
	})

	t.Run("não sobrescreve valores explícitos", func(t *testing.T) {
		company := &Company{Status: CompanyStatusInProgress, Priority: PriorityHigh, Risco: RiscoAlto}
		company.ApplyDefaults()

		if company.Status != CompanyStatusInProgress {
			t.Errorf("status explícito foi sobrescrito: '%s'", company.Status)
		}
		if company.Priority != PriorityHigh {
			t.Errorf("priority explícita foi sobrescrita: '%s'", company.Priority)
		}
		if company.Risco != RiscoAlto {
			t.Errorf("risco explícito foi sobrescrito: '%s'", company.Risco)
		}
	})
}

func TestCompany_Validate(t *testing.T) {
	valid := func() *Company {
		company := &Company{CNPJ: "11222333000181", NomeEmpresa: "Acme", DueDate: "2026-12-31"}
		company.ApplyDefaults()
		return company
	}

	t.Run("empresa válida passa", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Company)
	}{
		{"sem cnpj", func(c *Company) { c.CNPJ = "" }},
		{"sem nome", func(c *Company) { c.NomeEmpresa = "" }},
		{"sem due date", func(c *Company) { c.DueDate = "" }},
		{"status inválido", func(c *Company) { c.Status = "done" }},
		{"priority inválida", func(c *Company) { c.Priority = "urgent" }},
		{"risco inválido", func(c *Company) { c.Risco = "Extremo" }},
		{"porte inválido", func(c *Company) { c.Porte = "Gigante" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			company := valid()
			tt.mutate(company)
			if err := company.Validate(); err == nil {
				t.Error("esperava erro, obteve sucesso")
			}
		})
	}

	t.Run("porte vazio é aceito", func(t *testing.T) {
		company := valid()
		company.Porte = ""
		if err := company.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})
}

func TestPartitionCompanies(t *testing.T) {
	companies := []*Company{
		{ID: "a", Status: CompanyStatusTodo},
		{ID: "b", Status: CompanyStatusInProgress},
		{ID: "c", Status: CompanyStatusCompleted},
		{ID: "d", Status: CompanyStatusCompleted, Archived: true},
		{ID: "e", Status: CompanyStatusTodo},
	}

	buckets := PartitionCompanies(companies)

	if len(buckets.Todo) != 2 {
		t.Errorf("esperava 2 em todo, obteve %d", len(buckets.Todo))
	}
	if len(buckets.InProgress) != 1 {
		t.Errorf("esperava 1 em in-progress, obteve %d", len(buckets.InProgress))
	}
	if len(buckets.Completed) != 1 {
		t.Errorf("esperava 1 em completed, obteve %d", len(buckets.Completed))
	}
	if len(buckets.Archived) != 1 {
		t.Errorf("esperava 1 arquivada, obteve %d", len(buckets.Archived))
	}

	// Arquivada não aparece nos buckets ativos mesmo com status completed
	for _, company := range buckets.Completed {
		if company.Archived {
			t.Error("empresa arquivada apareceu em bucket ativo")
		}
	}
}

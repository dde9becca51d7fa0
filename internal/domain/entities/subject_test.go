package entities

import "testing"

func TestSubject_Validate(t *testing.T) {
	companyID := "company-1"
	repID := "rep-1"
	empty := ""

	tests := []struct {
		name    string
		subject Subject
		wantErr bool
	}{
		{"empresa", Subject{CompanyID: &companyID}, false},
		{"representante legal", Subject{RepresentanteID: &repID}, false},
		{"nenhum dos dois", Subject{}, true},
		{"ambos preenchidos", Subject{CompanyID: &companyID, RepresentanteID: &repID}, true},
		{"strings vazias contam como ausentes", Subject{CompanyID: &empty, RepresentanteID: &empty}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.subject.Validate()
			if tt.wantErr && err == nil {
				t.Error("esperava erro, obteve sucesso")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("esperava sucesso, obteve erro: %v", err)
			}
		})
	}
}

func TestParecerFinal_Validate(t *testing.T) {
	t.Run("rejeita risco Crítico para representante legal", func(t *testing.T) {
		parecer := &ParecerFinal{
			Subject:    NewRepresentanteSubject("rep-1"),
			Risco:      RiscoCritico,
			Orientacao: OrientacaoRejeitar,
			Parecer:    "antecedentes",
		}
		if err := parecer.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("aceita risco Crítico para empresa", func(t *testing.T) {
		parecer := &ParecerFinal{
			Subject:    NewCompanySubject("company-1"),
			Risco:      RiscoCritico,
			Orientacao: OrientacaoRejeitar,
			Parecer:    "empresa de fachada",
		}
		if err := parecer.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("aceita demais riscos para representante legal", func(t *testing.T) {
		for _, risco := range []Risco{RiscoBaixo, RiscoMedio, RiscoAlto} {
			parecer := &ParecerFinal{
				Subject:    NewRepresentanteSubject("rep-1"),
				Risco:      risco,
				Orientacao: OrientacaoAprovar,
				Parecer:    "sem restrições",
			}
			if err := parecer.Validate(); err != nil {
				t.Errorf("esperava sucesso para risco '%s', obteve erro: %v", risco, err)
			}
		}
	})

	t.Run("exige texto do parecer", func(t *testing.T) {
		parecer := &ParecerFinal{
			Subject:    NewCompanySubject("company-1"),
			Risco:      RiscoBaixo,
			Orientacao: OrientacaoAprovar,
		}
		if err := parecer.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}

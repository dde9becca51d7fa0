package valueobjects

import "testing"

func TestNewCNPJ(t *testing.T) {
	t.Run("aceita CNPJ válido sem máscara", func(t *testing.T) {
		cnpj, err := NewCNPJ("11222333000181")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cnpj.String() != "11222333000181" {
			t.Errorf("esperava '11222333000181', obteve '%s'", cnpj.String())
		}
	})

	t.Run("aceita CNPJ válido com máscara", func(t *testing.T) {
		cnpj, err := NewCNPJ("11.222.333/0001-81")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cnpj.String() != "11222333000181" {
			t.Errorf("esperava dígitos sem máscara, obteve '%s'", cnpj.String())
		}
	})

	t.Run("formata com a máscara padrão", func(t *testing.T) {
		cnpj, err := NewCNPJ("11222333000181")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cnpj.Formatted() != "11.222.333/0001-81" {
			t.Errorf("esperava '11.222.333/0001-81', obteve '%s'", cnpj.Formatted())
		}
	})

	tests := []struct {
		name string
		raw  string
	}{
		{"dígito verificador errado", "11222333000180"},
		{"todos os dígitos iguais", "11111111111111"},
		{"curto demais", "1122233300018"},
		{"longo demais", "112223330001811"},
		{"vazio", ""},
		{"só letras", "abcdefghijklmn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCNPJ(tt.raw); err == nil {
				t.Errorf("esperava erro para '%s', obteve sucesso", tt.raw)
			}
		})
	}
}

package services

import "testing"

func TestExtractDetails(t *testing.T) {
	tests := []struct {
		name         string
		description  string
		wantModality string
		wantCategory string
		wantGender   string
	}{
		{
			name:         "combined sentence with gender",
			description:  "Inscrição em Mountain bike - Elite, gênero Masculino",
			wantModality: "Mountain bike",
			wantCategory: "Elite",
			wantGender:   "Masculino",
		},
		{
			name:         "category only falls back to leading text for modality",
			description:  "categoria junior",
			wantModality: "Categoria junior",
			wantCategory: "Junior",
			wantGender:   "",
		},
		{
			name:         "labeled fields with separators",
			description:  "modalidade: ciclismo de estrada, categoria: sub-23, gênero: feminino, lote 2",
			wantModality: "Ciclismo de estrada",
			wantCategory: "Sub-23",
			wantGender:   "Feminino",
		},
		{
			name:         "unaccented genero variant",
			description:  "modalidade mtb, genero masculino",
			wantModality: "Mtb",
			wantCategory: "",
			wantGender:   "Masculino",
		},
		{
			name:         "gender literal anywhere in the text",
			description:  "pagamento inscricao feminino elite",
			wantModality: "Pagamento inscricao feminino elite",
			wantCategory: "",
			wantGender:   "Feminino",
		},
		{
			name:         "leading text stops at first comma",
			description:  "Corrida de rua, lote promocional",
			wantModality: "Corrida de rua",
			wantCategory: "",
			wantGender:   "",
		},
		{
			name:        "empty description yields nothing",
			description: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDetails(tt.description)
			assertLabel(t, "modality", got.ModalityName, tt.wantModality)
			assertLabel(t, "category", got.CategoryName, tt.wantCategory)
			assertLabel(t, "gender", got.GenderName, tt.wantGender)
		})
	}
}

func assertLabel(t *testing.T, field string, got *string, want string) {
	t.Helper()
	if want == "" {
		if got != nil {
			t.Fatalf("%s: expected no match, got %q", field, *got)
		}
		return
	}
	if got == nil {
		t.Fatalf("%s: expected %q, got no match", field, want)
	}
	if *got != want {
		t.Fatalf("%s: expected %q, got %q", field, want, *got)
	}
}

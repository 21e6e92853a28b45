package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCanonicalLabels(t *testing.T) {
	cases := []struct {
		label string
		want  Key
	}{
		{"Testosterona Total", KeyTestosteroneTotal},
		{"TESTOSTERONA LIVRE", KeyTestosteroneFree},
		{"  Free Testosterone  ", KeyTestosteroneFree},
		{"Hemoglobina Glicada (HbA1c)", KeyHbA1c},
		{"Hemoglobina", KeyHemoglobin},
		{"Colesterol Total", KeyCholesterolTotal},
		{"Colesterol LDL", KeyLDL},
		{"HDL-Colesterol", KeyHDL},
		{"Triglicerídeos", KeyTriglycerides},
		{"Triglicerideos", KeyTriglycerides},
		{"Glicemia de Jejum", KeyGlucose},
		{"Vitamina D 25-OH", KeyVitaminD},
		{"25-Hidroxivitamina D", KeyVitaminD},
		{"TSH Ultra Sensível", KeyTSH},
		{"T4 Livre", KeyT4Free},
		{"Índice de Massa Corporal", KeyBMI},
		{"Indice de Massa Corporal", KeyBMI},
		{"Circunferência Abdominal", KeyWaist},
		{"Peso", KeyWeight},
		{"Creatinina", KeyCreatinine},
		{"TGP", KeyALT},
		{"TGO", KeyAST},
		{"Ferritina", KeyFerritin},
		{"Hematócrito", KeyHematocrit},
		{"Hematocrito", KeyHematocrit},
		{"Estradiol (E2)", KeyEstradiol},
		{"Cortisol Basal", KeyCortisol},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.label), "label %q", tc.label)
	}
}

func TestNormalizeSpecificBeforeGeneric(t *testing.T) {
	// "testosterona livre" contains "testosterona"; the more specific rule
	// must win.
	assert.Equal(t, KeyTestosteroneFree, Normalize("Dosagem de Testosterona Livre"))
	assert.Equal(t, KeyTestosteroneTotal, Normalize("Dosagem de Testosterona"))

	// Glycated hemoglobin must not be swallowed by the hemoglobin rule.
	assert.Equal(t, KeyHbA1c, Normalize("hemoglobina glicada"))
}

func TestNormalizeUnknownFallsBackToGeneric(t *testing.T) {
	assert.Equal(t, KeyGeneric, Normalize("Zinco Sérico"))
	assert.Equal(t, KeyGeneric, Normalize(""))
	assert.Equal(t, KeyGeneric, Normalize("   "))
}

func TestNormalizeDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, Normalize("Vitamina D"), Normalize("Vitamina D"))
	}
}

package engine

import "strings"

// Key is the canonical identifier for a marker, independent of how the
// source document labelled it.
type Key string

const (
	// Hormonal axis.
	KeyTestosteroneFree  Key = "testosterone_free"
	KeyTestosteroneTotal Key = "testosterone_total"
	KeyEstradiol         Key = "estradiol"
	KeyProgesterone      Key = "progesterone"
	KeyCortisol          Key = "cortisol"
	KeyDHEAS             Key = "dhea_s"
	KeySHBG              Key = "shbg"
	KeyLH                Key = "lh"
	KeyFSH               Key = "fsh"
	KeyProlactin         Key = "prolactin"
	KeyIGF1              Key = "igf_1"

	// Thyroid.
	KeyTSH    Key = "tsh"
	KeyT4Free Key = "t4_free"
	KeyT3Free Key = "t3_free"

	// Body composition / anthropometry.
	KeyWeight     Key = "weight"
	KeyBMI        Key = "bmi"
	KeyBodyFat    Key = "body_fat"
	KeyMuscleMass Key = "muscle_mass"
	KeyWaist      Key = "waist"

	// Lipid / metabolic.
	KeyCholesterolTotal Key = "cholesterol_total"
	KeyLDL              Key = "ldl"
	KeyHDL              Key = "hdl"
	KeyTriglycerides    Key = "triglycerides"
	KeyHbA1c            Key = "hba1c"
	KeyGlucose          Key = "glucose"
	KeyInsulin          Key = "insulin"

	// Hematology.
	KeyHemoglobin Key = "hemoglobin"
	KeyHematocrit Key = "hematocrit"
	KeyFerritin   Key = "ferritin"

	// Organ function / vitamins.
	KeyCreatinine Key = "creatinine"
	KeyALT        Key = "alt"
	KeyAST        Key = "ast"
	KeyVitaminD   Key = "vitamin_d"
	KeyVitaminB12 Key = "vitamin_b12"

	// KeyGeneric is the sentinel for labels no rule matches.
	KeyGeneric Key = "generic"
)

// normalizeRule maps a set of literal label fragments to a canonical key.
// Accented and unaccented Portuguese spellings appear as separate literals;
// no diacritic stripping is performed.
type normalizeRule struct {
	patterns []string
	key      Key
}

// normalizeRules is evaluated top to bottom and the first match wins, so
// specific rules must precede rules whose patterns are their substrings
// (e.g. "testosterona livre" before the bare "testosterona", "hemoglobina
// glicada" before "hemoglobina").
var normalizeRules = []normalizeRule{
	// Hormonal axis.
	{[]string{"testosterona livre", "free testosterone", "testosterone free"}, KeyTestosteroneFree},
	{[]string{"testosterona total", "testosterona", "total testosterone", "testosterone"}, KeyTestosteroneTotal},
	{[]string{"estradiol", "e2"}, KeyEstradiol},
	{[]string{"progesterona", "progesterone"}, KeyProgesterone},
	{[]string{"cortisol"}, KeyCortisol},
	{[]string{"dhea"}, KeyDHEAS},
	{[]string{"shbg", "globulina ligadora"}, KeySHBG},
	{[]string{"hormônio luteinizante", "hormonio luteinizante", "lh"}, KeyLH},
	{[]string{"folículo", "foliculo", "fsh"}, KeyFSH},
	{[]string{"prolactina", "prolactin"}, KeyProlactin},
	{[]string{"igf-1", "igf1", "somatomedina"}, KeyIGF1},

	// Thyroid.
	{[]string{"t4 livre", "tiroxina livre", "free t4", "t4l"}, KeyT4Free},
	{[]string{"t3 livre", "triiodotironina", "free t3", "t3l"}, KeyT3Free},
	{[]string{"tireoestimulante", "tireotrofina", "tsh"}, KeyTSH},

	// Body composition / anthropometry.
	{[]string{"índice de massa corporal", "indice de massa corporal", "imc", "bmi"}, KeyBMI},
	{[]string{"massa muscular", "massa magra", "muscle"}, KeyMuscleMass},
	{[]string{"gordura corporal", "percentual de gordura", "gordura", "body fat"}, KeyBodyFat},
	{[]string{"circunferência abdominal", "circunferencia abdominal", "cintura", "waist"}, KeyWaist},
	{[]string{"peso", "weight"}, KeyWeight},

	// Lipid / metabolic. Glicada and glicemia both contain "glic", so the
	// glycated-hemoglobin rule stays ahead of the glucose rule.
	{[]string{"hemoglobina glicada", "hba1c", "a1c"}, KeyHbA1c},
	{[]string{"colesterol total", "total cholesterol"}, KeyCholesterolTotal},
	{[]string{"ldl"}, KeyLDL},
	{[]string{"hdl"}, KeyHDL},
	{[]string{"triglicerídeos", "triglicerideos", "triglicérides", "triglicerides", "triglyceride"}, KeyTriglycerides},
	{[]string{"glicose", "glicemia", "glucose"}, KeyGlucose},
	{[]string{"insulina", "insulin"}, KeyInsulin},

	// Hematology.
	{[]string{"hemoglobina", "hemoglobin"}, KeyHemoglobin},
	{[]string{"hematócrito", "hematocrito", "hematocrit"}, KeyHematocrit},
	{[]string{"ferritina", "ferritin"}, KeyFerritin},

	// Organ function / vitamins.
	{[]string{"creatinina", "creatinine"}, KeyCreatinine},
	{[]string{"vitamina d", "vitamin d", "25-oh", "hidroxivitamina"}, KeyVitaminD},
	{[]string{"b12", "cobalamina", "cobalamin"}, KeyVitaminB12},
	{[]string{"tgp", "alanina", "alt"}, KeyALT},
	{[]string{"tgo", "aspartato", "ast"}, KeyAST},
}

// Normalize maps a free-text marker label to its canonical key, or
// KeyGeneric when no rule matches. It is total and deterministic.
func Normalize(label string) Key {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return KeyGeneric
	}
	for _, rule := range normalizeRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(needle, pattern) {
				return rule.key
			}
		}
	}
	return KeyGeneric
}
